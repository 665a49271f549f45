package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/uibind/annotation"
	"github.com/teranos/uibind/emit"
	"github.com/teranos/uibind/errors"
	"github.com/teranos/uibind/tag"
)

// InspectCmd shows what the compiler understood from the annotations
var InspectCmd = &cobra.Command{
	Use:   "inspect [packages]",
	Short: "Show the parsed tag trees and event schemas",
	Long: `Print, per generated type, every annotated field with its tag tree and the
synthesized events fields. With --expr, parse one annotation given on the
command line instead of loading packages.

Examples:
  uibind inspect ./gui
  uibind inspect --format json -t Settings
  uibind inspect --expr "bullet(text('hi')), slider(min = 0, max = 1)"`,
	RunE: runInspect,
}

func init() {
	addGenerateFlags(InspectCmd)
	InspectCmd.Flags().StringP("format", "f", "yaml", "Output format: yaml, json")
	InspectCmd.Flags().StringP("expr", "e", "", "Annotation text to parse instead of loading packages")
}

type inspectField struct {
	Name string                   `json:"name" yaml:"name"`
	Type string                   `json:"type" yaml:"type"`
	Tags []map[string]interface{} `json:"tags" yaml:"tags"`
}

type inspectEvent struct {
	emit.Event `yaml:",inline"`
	Kind       string `json:"kind" yaml:"kind"`
}

type inspectType struct {
	Name    string         `json:"name" yaml:"name"`
	Package string         `json:"package" yaml:"package"`
	File    string         `json:"file" yaml:"file"`
	Events  string         `json:"events" yaml:"events"`
	Method  string         `json:"method" yaml:"method"`
	Fields  []inspectField `json:"fields" yaml:"fields"`
	Schema  []inspectEvent `json:"schema" yaml:"schema"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")

	if expr, _ := cmd.Flags().GetString("expr"); expr != "" {
		src, err := annotation.Parse(expr)
		if err != nil {
			return err
		}
		tree, err := tag.NewParser(cfg.ShorthandMode()).Parse(src)
		if err != nil {
			return err
		}
		return encode(cmd.OutOrStdout(), format, tag.Dump(tree))
	}

	dir, err := workDir(cmd)
	if err != nil {
		return err
	}
	results, err := newGenerator(cmd, cfg).Generate(context.Background(), dir, args...)
	if err != nil {
		return err
	}

	var out []inspectType
	for _, r := range results {
		for _, u := range r.Units {
			t := inspectType{
				Name:    u.Aggregate.Name,
				Package: r.Package,
				File:    relative(dir, r.File),
				Events:  u.Events,
				Method:  u.Method,
			}
			for _, f := range u.Aggregate.Annotated() {
				t.Fields = append(t.Fields, inspectField{Name: f.Name, Type: f.Type.String(), Tags: tag.Dump(f.Tree)})
			}
			for _, ev := range u.Schema.Events {
				t.Schema = append(t.Schema, inspectEvent{Event: *ev, Kind: ev.Kind.String()})
			}
			out = append(out, t)
		}
	}
	return encode(cmd.OutOrStdout(), format, out)
}

func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "failed to encode yaml")
		}
		return enc.Close()
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to encode json")
		}
		fmt.Fprintln(w, string(data))
		return nil
	}
	return errors.WithHint(errors.Newf("unsupported format: %s", format), "use yaml or json")
}

package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/uibind/logger"
	"github.com/teranos/uibind/tag"
	"github.com/teranos/uibind/uigen"
)

// GenerateCmd writes the generated file of every matched package
var GenerateCmd = &cobra.Command{
	Use:   "generate [packages]",
	Short: "Generate draw methods for marked types",
	Long: `Generate a Draw method and an events type for every struct type marked with
the //uibind:draw directive (or named by --types) in the given packages.

One file, <package><suffix>, is written per package next to its sources.
Packages without marked types are skipped. The first annotation error aborts
the run and is reported with its position.

Examples:
  uibind generate                   # Current package
  uibind generate ./...             # Every package below the current directory
  uibind generate -t Settings -o settings_ui.go
  uibind generate --dry-run ./gui   # Print instead of writing`,
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(GenerateCmd)
	GenerateCmd.Flags().StringP("output", "o", "", "Output file name (single package only)")
	GenerateCmd.Flags().Bool("dry-run", false, "Print generated code instead of writing files")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dir, err := workDir(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	results, err := newGenerator(cmd, cfg).Generate(context.Background(), dir, args...)
	if err != nil {
		return err
	}
	describe(cmd, results, time.Since(start))

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		for _, r := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "// %s\n%s", r.File, r.Content)
		}
		return nil
	}

	for _, r := range results {
		if err := uigen.Write(r); err != nil {
			return err
		}
		pterm.Success.Printfln("%s (%d types)", relative(dir, r.File), len(r.Units))
	}
	return nil
}

func relative(base, path string) string {
	if rel, err := filepath.Rel(base, path); err == nil {
		return rel
	}
	return path
}

// describe prints what each verbosity level asks for beyond the written files
func describe(cmd *cobra.Command, results []*uigen.Result, took time.Duration) {
	verbosity, _ := cmd.Flags().GetCount("verbose")

	for _, r := range results {
		if logger.ShouldOutput(verbosity, logger.OutputProgress) {
			pterm.Info.Printfln("%s: %s", r.Package, strings.Join(r.Aggregates(), ", "))
		}
		for _, u := range r.Units {
			if logger.ShouldOutput(verbosity, logger.OutputSchema) {
				var fields []string
				for _, ev := range u.Schema.Events {
					fields = append(fields, ev.GoName+" "+ev.Type)
				}
				pterm.Printfln("  %s{%s}", u.Events, strings.Join(fields, "; "))
			}
			if logger.ShouldOutput(verbosity, logger.OutputTagTrees) {
				for _, f := range u.Aggregate.Annotated() {
					pterm.Printfln("    %s.%s: %v", u.Aggregate.Name, f.Name, tag.Dump(f.Tree))
				}
			}
		}
	}
	if logger.ShouldOutput(verbosity, logger.OutputTiming) {
		pterm.Info.Printfln("Generated %d file(s) in %s", len(results), took.Round(time.Millisecond))
	}
}

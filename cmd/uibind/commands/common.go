// Package commands implements the uibind subcommands.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/uibind/config"
	"github.com/teranos/uibind/errors"
	"github.com/teranos/uibind/internal/version"
	"github.com/teranos/uibind/uigen"
)

// loadConfig loads and validates the layered configuration, or the file
// named by --config on top of the defaults
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	load := config.Load
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		load = func() (*config.Config, error) { return config.LoadFromFile(path) }
	}
	cfg, err := load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithHint(
			errors.Wrap(err, "invalid configuration"),
			"run 'uibind config show --sources' to see where each setting comes from")
	}
	return cfg, nil
}

// addGenerateFlags registers the flags shared by commands that generate
func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("types", "t", nil, "Generate exactly these types instead of those marked with the directive")
	cmd.Flags().StringP("dir", "C", "", "Directory to resolve package patterns from (default: current directory)")
}

// newGenerator builds a generator from cfg and the command's flags
func newGenerator(cmd *cobra.Command, cfg *config.Config) *uigen.Generator {
	g := uigen.New(cfg, version.Tag())
	g.Types, _ = cmd.Flags().GetStringSlice("types")
	if cmd.Flags().Lookup("output") != nil {
		g.Output, _ = cmd.Flags().GetString("output")
	}
	return g
}

func workDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("dir")
	if dir != "" {
		return dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "failed to get working directory")
	}
	return wd, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/uibind/cmd/uibind/commands"
	"github.com/teranos/uibind/config"
	"github.com/teranos/uibind/logger"
)

var rootCmd = &cobra.Command{
	Use:   "uibind",
	Short: "uibind - Generate immediate-mode UI code from struct tag annotations",
	Long: `uibind - Generate immediate-mode UI code from struct tag annotations.

uibind reads the imgui:"..." annotations on the fields of marked struct types
and generates, per type, a Draw method that draws and updates the fields
through an immediate-mode UI host and an events type reporting which widgets
were interacted with.

Mark a type for generation with a directive comment:

  //uibind:draw
  type Settings struct {
      Volume float32 ` + "`imgui:\"slider(min = 0, max = 1)\"`" + `
  }

Available commands:
  generate - Generate draw methods for marked types
  check    - Report generated files that are out of date
  watch    - Regenerate whenever sources change
  inspect  - Show the parsed tag trees and event schemas
  config   - Manage uibind configuration
  version  - Show version information

Examples:
  uibind generate ./...          # Generate for every package in the module
  uibind generate --types Settings
  uibind check ./...             # Fail when a generated file is stale
  uibind inspect --expr "tree(label = 'A', node(checkbox))"`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")

		// A broken config must still be reportable by 'config' commands
		jsonLogs, theme := false, config.DefaultTheme
		cfg, cfgErr := config.Load()
		if cfgErr == nil {
			jsonLogs, theme = cfg.Log.JSON, cfg.Log.Theme
		}
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.SetTheme(theme)

		logger.Debugw("Logger initialized", "verbosity", logger.LevelName(verbosity), "json", logger.JSONOutput)
		if logger.ShouldLogTrace(verbosity) && cfgErr == nil {
			logger.Debugf("Effective %s from %v", cfg, config.Paths())
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().String("config", "", "Read this configuration file instead of the layered uibind.toml files")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.InspectCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		commands.Report(os.Stderr, err)
		os.Exit(1)
	}
}

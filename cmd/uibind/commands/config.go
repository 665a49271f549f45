package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/uibind/config"
	"github.com/teranos/uibind/errors"
)

// ConfigCmd groups the configuration subcommands
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage uibind configuration",
	Long: `Display and manage uibind configuration.

Configuration sources (later overrides earlier):
1. Built-in defaults
2. System config (/etc/uibind/uibind.toml)
3. User config (~/.uibind/uibind.toml)
4. Project config (uibind.toml, searched up from the current directory)
5. Environment variables (UIBIND_* prefix, e.g. UIBIND_ANNOTATION_KEY)

A package directory may also hold a .uibind.toml overriding the annotation,
output and host settings for that package only.

Examples:
  uibind config show                  # Effective configuration as TOML
  uibind config show --format json
  uibind config show --sources        # Where every setting comes from
  uibind config get annotation.key
  uibind config validate
  uibind config init                  # Write ./uibind.toml with defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a specific configuration value using dot notation (e.g., annotation.key, watch.debounce_ms)",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the effective configuration",
	RunE:  runConfigValidate,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a configuration file with the defaults",
	Long: `Write the default configuration to path (default ./uibind.toml).
An existing file is kept unless --force is given; it is then saved to
<path>.back first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	configShowCmd.Flags().StringP("format", "f", config.FormatTOML, "Output format: toml, yaml, json")
	configShowCmd.Flags().Bool("sources", false, "List every setting with the layer it comes from")
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configGetCmd)
	ConfigCmd.AddCommand(configValidateCmd)
	ConfigCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if sources, _ := cmd.Flags().GetBool("sources"); sources {
		settings, err := config.Introspect()
		if err != nil {
			return err
		}
		data := pterm.TableData{{"Key", "Value", "Source", "From"}}
		for _, s := range settings {
			data = append(data, []string{s.Key, fmt.Sprint(s.Value), string(s.Source), s.SourcePath})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return errors.Wrap(err, "failed to render settings")
		}
		fmt.Fprintln(out, table)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	format, _ := cmd.Flags().GetString("format")
	data, err := config.Marshal(cfg, format)
	if err != nil {
		return err
	}
	if format != config.FormatJSON {
		fmt.Fprintln(out, "# uibind configuration")
	}
	fmt.Fprint(out, string(data))
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	v := config.GetViper()
	if !v.IsSet(args[0]) {
		return errors.WithHint(errors.Newf("configuration key %q not found", args[0]),
			"run 'uibind config show --sources' to list the keys")
	}
	fmt.Fprintln(cmd.OutOrStdout(), v.Get(args[0]))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}
	pterm.Success.Println("Configuration is valid")
	for _, p := range config.Paths() {
		pterm.Info.Printfln("Read %s", p)
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.ProjectFile
	if len(args) == 1 {
		path = args[0]
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			path = filepath.Join(path, config.ProjectFile)
		}
	}
	force, _ := cmd.Flags().GetBool("force")
	if err := config.Init(path, force); err != nil {
		return err
	}
	pterm.Success.Printfln("Wrote %s", path)
	return nil
}

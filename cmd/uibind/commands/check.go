package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/uibind/internal/version"
	"github.com/teranos/uibind/uigen"
)

// CheckCmd fails when a generated file differs from what generate would write
var CheckCmd = &cobra.Command{
	Use:   "check [packages]",
	Short: "Report generated files that are out of date",
	Long: `Generate in memory and compare with the files on disk. Nothing is written.

Exits non-zero when any file is missing or differs, printing a unified diff
per stale file. A file whose header records a newer uibind than the one
running is reported with a warning, since regenerating would downgrade it.

Examples:
  uibind check ./...
  uibind check --quiet ./...        # Only list stale files`,
	RunE: runCheck,
}

func init() {
	addGenerateFlags(CheckCmd)
	CheckCmd.Flags().BoolP("quiet", "q", false, "List stale files without diffs")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dir, err := workDir(cmd)
	if err != nil {
		return err
	}

	results, err := newGenerator(cmd, cfg).Generate(context.Background(), dir, args...)
	if err != nil {
		return err
	}

	stale, err := uigen.CheckAll(results, version.Tag())
	quiet, _ := cmd.Flags().GetBool("quiet")
	for _, s := range stale {
		switch {
		case s.Missing:
			pterm.Warning.Printfln("%s is missing", relative(dir, s.File))
		case s.Newer:
			pterm.Warning.Printfln("%s was generated by uibind %s, newer than %s",
				relative(dir, s.File), s.Recorded, version.Tag())
		default:
			pterm.Warning.Printfln("%s is out of date", relative(dir, s.File))
		}
		if !quiet && !s.Missing {
			printDiff(cmd, s.Diff)
		}
	}
	if err != nil {
		return err
	}

	pterm.Success.Printfln("%d generated file(s) up to date", len(results))
	return nil
}

func printDiff(cmd *cobra.Command, diff string) {
	out := cmd.OutOrStdout()
	for _, line := range strings.SplitAfter(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			fmt.Fprint(out, pterm.Bold.Sprint(line))
		case strings.HasPrefix(line, "+"):
			fmt.Fprint(out, pterm.Green(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprint(out, pterm.Red(line))
		case strings.HasPrefix(line, "@@"):
			fmt.Fprint(out, pterm.Cyan(line))
		default:
			fmt.Fprint(out, line)
		}
	}
}

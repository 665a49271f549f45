package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/uibind/config"
	"github.com/teranos/uibind/diag"
	"github.com/teranos/uibind/errors"
	"github.com/teranos/uibind/logger"
	"github.com/teranos/uibind/uigen"
)

// WatchCmd regenerates on every source change until interrupted
var WatchCmd = &cobra.Command{
	Use:   "watch [packages]",
	Short: "Regenerate whenever sources change",
	Long: `Generate once, then regenerate whenever a Go source or .uibind.toml in one
of the packages changes. Bursts of changes are debounced (watch.debounce_ms).
Annotation errors are reported and watching continues. Changes to the
uibind.toml configuration files restart the watch with the new settings.

Examples:
  uibind watch ./gui/...`,
	RunE: runWatch,
}

func init() {
	addGenerateFlags(WatchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dir, err := workDir(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reloads := make(chan *config.Config, 1)
	if paths := config.Paths(); len(paths) > 0 {
		w, err := config.NewWatcher(paths...)
		if err != nil {
			return err
		}
		w.OnReload(func(c *config.Config) error {
			select {
			case reloads <- c:
			default:
			}
			return nil
		})
		config.SetGlobalWatcher(w)
		w.Start()
		defer w.Stop()
	}

	report := func(results []*uigen.Result, err error) {
		if err != nil {
			if d, ok := diag.As(err); ok {
				pterm.Println(d.Show())
				return
			}
			pterm.Error.Println(err.Error())
			for _, hint := range errors.GetAllHints(err) {
				pterm.Info.Println(hint)
			}
			return
		}
		for _, r := range results {
			pterm.Success.Printfln("%s (%d types)", relative(dir, r.File), len(r.Units))
		}
	}

	pterm.Info.Printfln("Watching %s (Ctrl+C to stop)", dir)
	for {
		runCtx, cancel := context.WithCancel(ctx)
		done := make(chan error, 1)
		g := newGenerator(cmd, cfg)
		debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
		go func() { done <- g.Watch(runCtx, dir, debounce, report, args...) }()

		select {
		case err := <-done:
			cancel()
			return err
		case next := <-reloads:
			cancel()
			<-done
			cfg = next
			logger.Infow("Restarting watch with reloaded configuration", logger.FieldDir, dir)
			pterm.Info.Println("Configuration changed, restarting")
		}
	}
}

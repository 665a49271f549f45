package uigen

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/teranos/uibind/config"
	"github.com/teranos/uibind/errors"
	"github.com/teranos/uibind/logger"
)

// RunFunc receives the outcome of every generation run made by Watch
type RunFunc func(results []*Result, err error)

// Watch generates and writes once, then again whenever a Go source or a
// package override in the loaded package directories changes. Changes are
// debounced. Generated files never trigger a run. Watch returns when ctx is
// done.
func (g *Generator) Watch(ctx context.Context, dir string, debounce time.Duration, onRun RunFunc, patterns ...string) error {
	log := logger.ComponentLogger("watch")

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create fsnotify watcher")
	}
	defer fw.Close()

	run := func() {
		results, err := g.Generate(ctx, dir, patterns...)
		if err == nil {
			for _, r := range results {
				if werr := Write(r); werr != nil {
					err = werr
					break
				}
			}
		}
		onRun(results, err)
	}

	// Directories come from loading so a failing first run still watches
	// the package it failed in
	pkgs, err := Load(ctx, dir, g.Config.Output.Suffix, patterns...)
	if err != nil {
		return err
	}
	for _, p := range pkgs {
		if err := fw.Add(p.Dir); err != nil {
			return errors.Wrapf(err, "failed to watch %s", p.Dir)
		}
		log.Debugw("Watching package", logger.FieldDir, p.Dir)
	}
	run()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op == fsnotify.Chmod || !relevant(ev.Name, g.Config.Output.Suffix) {
				continue
			}
			log.Debugw("Source changed", logger.FieldFile, ev.Name, "op", ev.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			run()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warnw("Source watcher error", logger.FieldError, err)
		}
	}
}

// relevant reports whether a change to name can alter generated output
func relevant(name, suffix string) bool {
	base := filepath.Base(name)
	if base == config.PackageFile {
		return true
	}
	if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_") {
		return false
	}
	return strings.HasSuffix(base, ".go") && !strings.HasSuffix(base, "_test.go") && !strings.HasSuffix(base, suffix)
}

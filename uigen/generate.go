// Package uigen drives generation: it loads Go packages, discovers the
// aggregates to draw, runs both compiler passes and writes or compares the
// generated files.
package uigen

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/uibind/config"
	"github.com/teranos/uibind/emit"
	"github.com/teranos/uibind/errors"
	"github.com/teranos/uibind/logger"
	"github.com/teranos/uibind/model"
	"github.com/teranos/uibind/tag"
)

// Result is the generated file of one package
type Result struct {
	Package string // import path
	Name    string // package name
	File    string // output path
	Content []byte
	Units   []*emit.Unit
}

// Aggregates returns the names of the generated aggregates in order
func (r *Result) Aggregates() []string {
	names := make([]string, len(r.Units))
	for i, u := range r.Units {
		names[i] = u.Aggregate.Name
	}
	return names
}

// Generator compiles annotated aggregates into draw methods
type Generator struct {
	Config  *config.Config
	Version string   // recorded in file headers
	Types   []string // when set, generate exactly these types instead of directive-marked ones
	Output  string   // output file name overriding <package><suffix>; single package only
}

// New creates a generator for cfg
func New(cfg *config.Config, version string) *Generator {
	return &Generator{Config: cfg, Version: version}
}

// Generate loads the packages matched by patterns relative to dir and
// compiles each. Packages without aggregates are skipped; finding none at
// all is ErrNoAggregates. The first diagnostic aborts the run.
func (g *Generator) Generate(ctx context.Context, dir string, patterns ...string) ([]*Result, error) {
	ctx = logger.WithRunID(ctx, uuid.NewString())
	ctx = logger.WithComponent(ctx, "uigen")
	log := logger.LoggerFromContext(ctx).Named("uigen")
	start := time.Now()

	pkgs, err := Load(ctx, dir, g.Config.Output.Suffix, patterns...)
	if err != nil {
		return nil, err
	}
	if g.Output != "" && len(pkgs) > 1 {
		return nil, errors.WithHint(
			errors.Newf("--output needs exactly one package, %d matched", len(pkgs)),
			"drop --output to write one file per package")
	}
	log.Debugw("Loaded packages", logger.FieldCount, len(pkgs),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	var results []*Result
	for _, pkg := range pkgs {
		r, err := g.GeneratePackage(ctx, pkg)
		if errors.IsNoAggregates(err) {
			log.Debugw("Skipping package", logger.FieldPackage, pkg.Path)
			continue
		}
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	if len(results) == 0 {
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrNoAggregates, "in %d package(s)", len(pkgs)),
			"mark struct types with //"+g.Config.Annotation.Directive+" or pass --types")
	}

	log.Infow("Generated packages",
		logger.FieldCount, len(results),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return results, nil
}

// GeneratePackage compiles the aggregates of one loaded package
func (g *Generator) GeneratePackage(ctx context.Context, pkg *Package) (*Result, error) {
	log := logger.ChildLogger(logger.LoggerFromContext(ctx).Named("uigen"), logger.FieldPackage, pkg.Path)

	cfg, err := g.Config.ForPackage(pkg.Dir)
	if err != nil {
		return nil, err
	}

	aggs, err := discover(pkg, cfg, g.Types)
	if err != nil {
		return nil, err
	}
	if len(aggs) == 0 {
		return nil, errors.Wrapf(errors.ErrNoAggregates, "%s", pkg.Path)
	}

	opts := cfg.EmitOptions(g.Version)
	opts.Funcs = funcResolver{pkg: pkg.Types}
	parser := tag.NewParser(cfg.ShorthandMode())

	var units []*emit.Unit
	for _, agg := range aggs {
		u, err := compile(log, parser, agg, opts)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}

	file := g.Output
	if file == "" {
		file = pkg.Name + cfg.Output.Suffix
	}
	if !filepath.IsAbs(file) {
		file = filepath.Join(pkg.Dir, file)
	}

	content, err := emit.File(filepath.Base(file), pkg.Name, units, opts)
	if err != nil {
		return nil, err
	}

	log.Infow("Generated file", logger.FieldFile, file, logger.FieldCount, len(units))
	return &Result{
		Package: pkg.Path,
		Name:    pkg.Name,
		File:    file,
		Content: content,
		Units:   units,
	}, nil
}

func compile(log *zap.SugaredLogger, p *tag.Parser, agg *model.Aggregate, opts emit.Options) (*emit.Unit, error) {
	if err := agg.ParseTags(p); err != nil {
		return nil, err
	}
	for _, f := range agg.Annotated() {
		log.Debugw("Parsed tags", logger.FieldAggregate, agg.Name, logger.FieldField, f.Name,
			logger.FieldCount, len(f.Tree))
	}

	u, err := emit.Compile(agg, opts)
	if err != nil {
		return nil, err
	}
	log.Debugw("Compiled aggregate", logger.FieldAggregate, agg.Name,
		logger.FieldEvent, len(u.Schema.Events))
	return u, nil
}

// Write writes the generated file
func Write(r *Result) error {
	if err := os.WriteFile(r.File, r.Content, config.DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write %s", r.File)
	}
	return nil
}

package uigen

import (
	"bytes"
	"context"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/teranos/uibind/emit"
	"github.com/teranos/uibind/errors"
)

// Package is one type-checked Go package the generator works on
type Package struct {
	Name  string // package name
	Path  string // import path
	Dir   string
	Fset  *token.FileSet
	Files []*ast.File
	Types *types.Package
	Info  *types.Info
}

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
	packages.NeedTypes | packages.NeedTypesInfo

// Load loads and type-checks the packages matched by patterns, relative to
// dir. Files previously generated by uibind with the given suffix are
// replaced by their package clause so a stale file never blocks
// regeneration.
func Load(ctx context.Context, dir, suffix string, patterns ...string) ([]*Package, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Dir:     dir,
		Overlay: overlayGenerated(dir, suffix, patterns),
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrPackageLoad, "%s: %v", strings.Join(patterns, " "), err),
			"run the command from inside the module that holds the packages")
	}

	var out []*Package
	for _, p := range pkgs {
		if len(p.Errors) > 0 {
			msgs := make([]string, len(p.Errors))
			for i, e := range p.Errors {
				msgs[i] = e.Error()
			}
			return nil, errors.WithDetail(
				errors.Wrapf(errors.ErrPackageLoad, "%s", p.PkgPath),
				strings.Join(msgs, "\n"))
		}
		if len(p.GoFiles) == 0 {
			continue
		}
		out = append(out, &Package{
			Name:  p.Name,
			Path:  p.PkgPath,
			Dir:   filepath.Dir(p.GoFiles[0]),
			Fset:  p.Fset,
			Files: p.Syntax,
			Types: p.Types,
			Info:  p.TypesInfo,
		})
	}
	if len(out) == 0 {
		return nil, errors.Wrapf(errors.ErrPackageLoad, "no packages match %s", strings.Join(patterns, " "))
	}
	return out, nil
}

// overlayGenerated maps every uibind-generated file in the directories
// named by patterns to a bare package clause. Import-path patterns are
// skipped.
func overlayGenerated(dir, suffix string, patterns []string) map[string][]byte {
	overlay := map[string][]byte{}
	for _, pattern := range patterns {
		root, recursive := strings.CutSuffix(pattern, "/...")
		if pattern == "./..." || pattern == "..." {
			root, recursive = ".", true
		}
		if !filepath.IsAbs(root) {
			root = filepath.Join(dir, root)
		}
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			continue
		}

		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if path != root && (!recursive || skipDir(d.Name())) {
					return filepath.SkipDir
				}
				return nil
			}
			if !strings.HasSuffix(path, suffix) {
				return nil
			}
			if stub, ok := stubGenerated(path); ok {
				overlay[path] = stub
			}
			return nil
		})
	}
	return overlay
}

func skipDir(name string) bool {
	return name == "testdata" || name == "vendor" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

// stubGenerated returns the package clause of a uibind-generated file
func stubGenerated(path string) ([]byte, bool) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	if _, ok := emit.HeaderVersion(src); !ok {
		return nil, false
	}
	f, err := parser.ParseFile(token.NewFileSet(), path, src, parser.PackageClauseOnly)
	if err != nil {
		return nil, false
	}
	var buf bytes.Buffer
	buf.WriteString(emit.Header("") + "\n\npackage " + f.Name.Name + "\n")
	return buf.Bytes(), true
}

// LoadSource type-checks a package given as file name to content, without
// the go command. Imports resolve from the standard library only.
func LoadSource(path, dir string, files map[string]string) (*Package, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	fset := token.NewFileSet()
	var syntax []*ast.File
	for _, name := range names {
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), files[name], parser.ParseComments)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrPackageLoad, "%s: %v", name, err)
		}
		syntax = append(syntax, f)
	}
	if len(syntax) == 0 {
		return nil, errors.Wrapf(errors.ErrPackageLoad, "no files for %s", path)
	}

	info := &types.Info{
		Types: map[ast.Expr]types.TypeAndValue{},
		Defs:  map[*ast.Ident]types.Object{},
		Uses:  map[*ast.Ident]types.Object{},
	}
	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	tpkg, err := conf.Check(path, fset, syntax, info)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrPackageLoad, "%s: %v", path, err)
	}

	return &Package{
		Name:  tpkg.Name(),
		Path:  path,
		Dir:   dir,
		Fset:  fset,
		Files: syntax,
		Types: tpkg,
		Info:  info,
	}, nil
}

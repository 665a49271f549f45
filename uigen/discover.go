package uigen

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/pflag"

	"github.com/teranos/uibind/annotation"
	"github.com/teranos/uibind/config"
	"github.com/teranos/uibind/diag"
	"github.com/teranos/uibind/errors"
	"github.com/teranos/uibind/model"
)

// directive is a parsed `//uibind:draw [-events Name] [-method Name]` comment
type directive struct {
	events string
	method string
}

// findDirective returns the directive among doc comments, if any. Options
// are split shell-style.
func findDirective(name string, pos diag.Position, docs ...*ast.CommentGroup) (*directive, error) {
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		for _, c := range doc.List {
			text, ok := strings.CutPrefix(c.Text, "//"+name)
			if !ok || (text != "" && text[0] != ' ' && text[0] != '\t') {
				continue
			}
			return parseDirective(name, text, pos)
		}
	}
	return nil, nil
}

func parseDirective(name, args string, pos diag.Position) (*directive, error) {
	bad := func(format string, a ...interface{}) error {
		d := diag.New(diag.InvalidFormat, diag.Span{}, format, a...).
			WithSuggestion("//%s [-events Name] [-method Name]", name)
		d.Position = pos
		return d
	}

	words, err := shellquote.Split(args)
	if err != nil {
		return nil, bad("malformed %s directive: %v", name, err)
	}

	d := &directive{}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(discard{})
	fs.StringVar(&d.events, "events", "", "events type name")
	fs.StringVar(&d.method, "method", "", "draw method name")

	// Accept Go-style single-dash flags
	for i, w := range words {
		if strings.HasPrefix(w, "-") && !strings.HasPrefix(w, "--") {
			words[i] = "-" + w
		}
	}
	if err := fs.Parse(words); err != nil {
		return nil, bad("%s directive: %v", name, err)
	}
	if fs.NArg() > 0 {
		return nil, bad("%s directive: unexpected argument %q", name, fs.Arg(0))
	}
	if d.events != "" && !token.IsIdentifier(d.events) {
		return nil, bad("%s directive: -events %q is not an identifier", name, d.events)
	}
	if d.method != "" && (!token.IsIdentifier(d.method) || !token.IsExported(d.method)) {
		return nil, bad("%s directive: -method %q is not an exported identifier", name, d.method)
	}
	return d, nil
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// discover collects the aggregates of pkg: every type carrying the directive,
// or exactly the named types when names is non-empty. Declaration order is
// kept.
func discover(pkg *Package, cfg *config.Config, names []string) ([]*model.Aggregate, error) {
	want := map[string]bool{}
	for _, n := range names {
		want[n] = false
	}

	var aggs []*model.Aggregate
	for _, file := range pkg.Files {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)
				pos := position(pkg.Fset, ts.Pos())

				docs := []*ast.CommentGroup{ts.Doc}
				if len(gen.Specs) == 1 {
					docs = append(docs, gen.Doc)
				}
				dir, err := findDirective(cfg.Annotation.Directive, pos, docs...)
				if err != nil {
					return nil, err
				}

				if len(names) > 0 {
					if _, named := want[ts.Name.Name]; !named {
						continue
					}
					want[ts.Name.Name] = true
					if dir == nil {
						dir = &directive{}
					}
				}
				if dir == nil {
					continue
				}

				agg, err := aggregate(pkg, cfg, ts, pos)
				if err != nil {
					return nil, err
				}
				agg.Events, agg.Method = dir.events, dir.method
				aggs = append(aggs, agg)
			}
		}
	}

	for _, n := range names {
		if !want[n] {
			return nil, errors.NewUnknownTypeError(n, pkg.Path)
		}
	}
	return aggs, nil
}

// aggregate builds the model of one struct type declaration
func aggregate(pkg *Package, cfg *config.Config, ts *ast.TypeSpec, pos diag.Position) (*model.Aggregate, error) {
	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		d := diag.New(diag.NonStruct, diag.Span{}, "%s is not a struct type", ts.Name.Name).
			WithSuggestion("only structs with named fields can be drawn")
		d.Position = pos
		return nil, d
	}
	if ts.TypeParams != nil {
		d := diag.New(diag.NonStruct, diag.Span{}, "%s is a generic type", ts.Name.Name)
		d.Position = pos
		return nil, d
	}

	qual := types.RelativeTo(pkg.Types)
	agg := &model.Aggregate{Name: ts.Name.Name, Package: pkg.Name, Pos: pos}

	for _, field := range st.Fields.List {
		var (
			literal string
			at      diag.Position
		)
		if field.Tag != nil {
			literal = field.Tag.Value
			at = position(pkg.Fset, field.Tag.Pos())
		}

		if len(field.Names) == 0 {
			if literal != "" && hasKey(literal, cfg.Annotation.Key) {
				d := diag.New(diag.NonStruct, diag.Span{}, "embedded field %s cannot carry an annotation",
					types.ExprString(field.Type)).
					WithSuggestion("give the field a name")
				d.Position = at
				return nil, d
			}
			continue
		}

		typ := model.Describe(pkg.Info.TypeOf(field.Type), qual)
		for _, name := range field.Names {
			f := model.Field{Name: name.Name, Type: typ, Pos: position(pkg.Fset, name.Pos())}
			if literal != "" {
				src, err := annotation.Extract(literal, cfg.Annotation.Key, at)
				if err != nil {
					return nil, err
				}
				f.Source = src
			}
			if f.Annotated() && name.Name == "_" {
				d := diag.New(diag.InvalidFormat, diag.Span{}, "blank field cannot carry an annotation")
				d.Position = f.Pos
				return nil, d
			}
			agg.Fields = append(agg.Fields, f)
		}
	}
	return agg, nil
}

func hasKey(literal, key string) bool {
	for _, k := range annotation.Keys(literal) {
		if k == key {
			return true
		}
	}
	return false
}

func position(fset *token.FileSet, p token.Pos) diag.Position {
	pos := fset.Position(p)
	return diag.Position{File: pos.Filename, Line: pos.Line, Column: pos.Column, Offset: pos.Offset}
}

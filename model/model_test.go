package model

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/uibind/annotation"
	"github.com/teranos/uibind/diag"
	"github.com/teranos/uibind/tag"
)

const fixture = `package demo

type Level int8

type Inner struct{ On bool }

type Settings struct {
	Age    int32
	Ratio  float64
	Count  uint
	Name   string
	Pos    [3]float32
	Hist   []int
	Child  Inner
	Ptr    *Inner
	Lvl    Level
	Other  map[string]int
}
`

func settingsStruct(t *testing.T) (*types.Struct, *types.Package) {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "demo.go", fixture, 0)
	require.NoError(t, err)

	conf := types.Config{Importer: importer.Default()}
	pkg, err := conf.Check("demo", fset, []*ast.File{file}, nil)
	require.NoError(t, err)

	st, ok := pkg.Scope().Lookup("Settings").Type().Underlying().(*types.Struct)
	require.True(t, ok)
	return st, pkg
}

func TestDescribe(t *testing.T) {
	st, pkg := settingsStruct(t)
	qual := types.RelativeTo(pkg)

	got := map[string]TypeDesc{}
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		got[f.Name()] = Describe(f.Type(), qual)
	}

	assert.Equal(t, Int, got["Age"].Kind)
	assert.Equal(t, "int32", got["Age"].Expr)
	assert.True(t, got["Age"].Numeric())
	assert.Equal(t, Float, got["Ratio"].Kind)
	assert.Equal(t, Uint, got["Count"].Kind)
	assert.Equal(t, String, got["Name"].Kind)
	assert.False(t, got["Name"].Numeric())

	pos := got["Pos"]
	assert.Equal(t, Array, pos.Kind)
	assert.Equal(t, int64(3), pos.Len)
	assert.Equal(t, "[3]float32", pos.Expr)
	assert.Equal(t, Float, pos.Elem.Kind)
	assert.True(t, pos.Sequence())

	assert.Equal(t, Slice, got["Hist"].Kind)
	assert.True(t, got["Hist"].Sequence())

	child := got["Child"]
	assert.Equal(t, Struct, child.Kind)
	assert.Equal(t, "Inner", child.Named)

	ptr := got["Ptr"]
	assert.Equal(t, Pointer, ptr.Kind)
	assert.Equal(t, "*Inner", ptr.Expr)
	assert.Equal(t, "Inner", ptr.Deref().Named)
	assert.Equal(t, "", ptr.Named)

	lvl := got["Lvl"]
	assert.Equal(t, Int, lvl.Kind)
	assert.Equal(t, "Level", lvl.Named)

	assert.Equal(t, Other, got["Other"].Kind)
}

func TestDescribeQualifiesForeignPackages(t *testing.T) {
	st, _ := settingsStruct(t)
	f := st.Field(6) // Child
	d := Describe(f.Type(), nil)
	assert.Equal(t, "demo.Inner", d.Named)
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, Float, Basic("float32").Kind)
	assert.Equal(t, Bool, Basic("bool").Kind)
	assert.Equal(t, TypeDesc{Expr: "nope"}, Basic("nope"))

	arr := ArrayOf(4, Basic("float32"))
	assert.Equal(t, "[4]float32", arr.Expr)
	assert.Equal(t, "[]int", SliceOf(Basic("int")).Expr)
	assert.Equal(t, "*geom.Rect", PointerTo(NamedStruct("geom.Rect")).Expr)

	lvl := Named("Level", Basic("int8"))
	assert.Equal(t, "Level", lvl.Expr)
	assert.Equal(t, Int, lvl.Kind)
	assert.Equal(t, "array", Array.String())
}

func field(t *testing.T, name, text string) Field {
	t.Helper()
	src, err := annotation.Parse(text)
	require.NoError(t, err)
	return Field{Name: name, Type: Basic("int32"), Source: src}
}

func TestAggregateParseTags(t *testing.T) {
	agg := &Aggregate{
		Name: "Settings",
		Fields: []Field{
			field(t, "Age", "slider(min = 0, max = 100)"),
			{Name: "Hidden", Type: Basic("int")},
			field(t, "Turbo", "checkbox, display"),
		},
	}

	require.NoError(t, agg.ParseTags(tag.NewParser(tag.ShorthandError)))

	annotated := agg.Annotated()
	require.Len(t, annotated, 2)
	assert.Equal(t, "Age", annotated[0].Name)
	assert.Len(t, annotated[0].Tree, 1)
	assert.Len(t, annotated[1].Tree, 2)

	f, ok := agg.Field("Hidden")
	require.True(t, ok)
	assert.False(t, f.Annotated())
	assert.Nil(t, f.Tree)

	_, ok = agg.Field("Missing")
	assert.False(t, ok)
}

func TestAggregateParseTagsStopsAtFirstError(t *testing.T) {
	agg := &Aggregate{
		Name: "Broken",
		Fields: []Field{
			field(t, "A", "checkbox(foo = 'bar')"),
			field(t, "B", "checkbox"),
		},
	}

	err := agg.ParseTags(tag.NewParser(tag.ShorthandError))
	require.Error(t, err)
	assert.True(t, diag.Is(err, diag.UnexpectedParam))
	assert.Nil(t, agg.Fields[1].Tree, "fields after the failure are not parsed")
}

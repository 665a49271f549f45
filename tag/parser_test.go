package tag

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/uibind/annotation"
	"github.com/teranos/uibind/diag"
)

// cmpTags compares tag trees structurally, ignoring spans
var cmpTags = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmp.Comparer(func(a, b diag.Span) bool { return true }),
}

func parse(t *testing.T, text string) Tree {
	t.Helper()
	src, err := annotation.Parse(text)
	require.NoError(t, err)
	tree, err := Parse(src)
	require.NoError(t, err, text)
	return tree
}

func parseErr(t *testing.T, text string) *diag.Error {
	t.Helper()
	src, err := annotation.Parse(text)
	require.NoError(t, err)
	_, err = Parse(src)
	require.Error(t, err, text)
	d, ok := diag.As(err)
	require.True(t, ok, "expected diagnostic, got %v", err)
	return d
}

func str(s string) Value  { return Value{Kind: Str, Str: s} }
func num(n int64) Value   { return Value{Kind: Int, Int: n} }
func flt(f float64) Value { return Value{Kind: Float, Float: f} }

func TestParseSingleTags(t *testing.T) {
	tests := []struct {
		in   string
		want Tree
	}{
		{"separator", Tree{&Separator{}}},
		{"new_line", Tree{&NewLine{}}},
		{"checkbox", Tree{&Checkbox{}}},
		{"checkbox(label = 'Turbo', catch = 'boost')", Tree{&Checkbox{Label: str("Turbo"), Catch: str("boost")}}},
		{"input(step = 1, step_fast = '10', format = '%d', flags = 'inputFlags', map = 'asInt')", Tree{&Input{
			Step: num(1), StepFast: num(10), Format: str("%d"), Flags: str("inputFlags"), Map: str("asInt"),
		}}},
		{"drag(min = -1, max = 1, speed = 0.01, power = '2.5')", Tree{&Drag{
			Min: num(-1), Max: num(1), Speed: flt(0.01), Power: flt(2.5),
		}}},
		{"slider(min = 0, max = 100)", Tree{&Slider{Min: num(0), Max: num(100)}}},
		{"slider(max = '1e3', min = '-0.5', label = 'Vol', format = '%.1f')", Tree{&Slider{
			Min: flt(-0.5), Max: flt(1000), Label: str("Vol"), Format: str("%.1f"),
		}}},
		{"button(label = 'Go', size = 'ui.ButtonSize')", Tree{&Button{Label: str("Go"), Size: str("ui.ButtonSize")}}},
		{"nested", Tree{&Nested{}}},
		{"nested(catch = 'inner', map = 'unwrap')", Tree{&Nested{Catch: str("inner"), Map: str("unwrap")}}},
		{"text('hello')", Tree{&Text{Lit: str("hello")}}},
		{"text_wrap(lit = 'long')", Tree{&TextWrap{Lit: str("long")}}},
		{"progress(overlay = 'loading', size = 'barSize')", Tree{&Progress{Overlay: str("loading"), Size: str("barSize")}}},
		{"image(size = 'thumb', tint = 'white')", Tree{&Image{Size: str("thumb"), Tint: str("white")}}},
		{"image_button(size = 'thumb', frame_padding = '2', catch = 'pick')", Tree{&ImageButton{
			Size: str("thumb"), FramePadding: num(2), Catch: str("pick"),
		}}},
		{"display", Tree{&Display{}}},
		{"label", Tree{&Display{}}},
		{"display(label = 'Name', display = '%s (%d)', Name, 3)", Tree{&Display{
			Label: str("Name"), Display: str("%s (%d)"),
			Args: []Arg{{Field: "Name"}, {Lit: num(3)}},
		}}},
		{"tree", Tree{&TreeNode{}}},
		{"vars", Tree{&Vars{}}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := parse(t, tt.in)
			if diff := cmp.Diff(tt.want, got, cmpTags...); diff != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseEmptyBlockIsDisplay(t *testing.T) {
	got := parse(t, "")
	if diff := cmp.Diff(Tree{&Display{}}, got, cmpTags...); diff != "" {
		t.Error(diff)
	}
}

func TestParseMultipleTagsKeepOrder(t *testing.T) {
	got := parse(t, "checkbox, display, separator")
	require.Len(t, got, 3)
	assert.Equal(t, []string{"checkbox", "display", "separator"}, []string{got[0].Name(), got[1].Name(), got[2].Name()})
}

func TestParseIsDeterministic(t *testing.T) {
	const in = "tree(label = 'G', node(checkbox, bullet(text('x')), color(edit, picker)))"
	first := parse(t, in)
	for i := 0; i < 3; i++ {
		assert.Empty(t, cmp.Diff(first, parse(t, in), cmpTags...))
	}
}

func TestParseTree(t *testing.T) {
	got := parse(t, "tree(label = 'Group', node(checkbox, drag(min = -1, max = 1)))")
	want := Tree{&TreeNode{
		Label: str("Group"),
		Node: Tree{
			&Checkbox{},
			&Drag{Min: num(-1), Max: num(1)},
		},
	}}
	if diff := cmp.Diff(want, got, cmpTags...); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTreeCondition(t *testing.T) {
	got := parse(t, "tree(cond = 'FirstUseEver', flags = 'treeFlags', node())")
	node := got[0].(*TreeNode)
	assert.Equal(t, "FirstUseEver", node.Cond.Str)
	assert.Equal(t, "treeFlags", node.Flags.Str)
	assert.Empty(t, node.Node)

	d := parseErr(t, "tree(cond = 'Sometimes')")
	assert.Equal(t, diag.ParseError, d.Kind)
	assert.Equal(t, "'Sometimes'", d.Culprit())
}

func TestParseVars(t *testing.T) {
	got := parse(t, "vars(color = 'warnColors', style = 'compact', content(text('careful'), button(label = 'Ok')))")
	want := Tree{&Vars{
		Color: str("warnColors"),
		Style: str("compact"),
		Content: Tree{
			&Text{Lit: str("careful")},
			&Button{Label: str("Ok")},
		},
	}}
	if diff := cmp.Diff(want, got, cmpTags...); diff != "" {
		t.Errorf("vars mismatch (-want +got):\n%s", diff)
	}
}

func TestParseChildListRules(t *testing.T) {
	d := parseErr(t, "tree(node(checkbox), node(display))")
	assert.Equal(t, diag.AlreadyDefined, d.Kind)
	assert.Equal(t, "node", d.Culprit())
	assert.Equal(t, 21, d.Span.From)

	d = parseErr(t, "vars(content(), content())")
	assert.Equal(t, diag.AlreadyDefined, d.Kind)

	d = parseErr(t, "tree(content(checkbox))")
	assert.Equal(t, diag.UnexpectedParam, d.Kind)
	assert.Equal(t, "content", d.Culprit())
}

func TestParseColor(t *testing.T) {
	got := parse(t, "color(edit, picker(label = 'Pick'), button(size = 'swatch', catch = 'swatched'))")
	want := Tree{
		&ColorEdit{},
		&ColorPicker{Label: str("Pick")},
		&ColorButton{Size: str("swatch"), Catch: str("swatched")},
	}
	if diff := cmp.Diff(want, got, cmpTags...); diff != "" {
		t.Errorf("color mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, parse(t, "color"))
	assert.Empty(t, parse(t, "color()"))

	d := parseErr(t, "color(wheel)")
	assert.Equal(t, diag.UnexpectedMode, d.Kind)
	assert.Equal(t, "wheel", d.Culprit())

	d = parseErr(t, "color('edit')")
	assert.Equal(t, diag.InvalidFormat, d.Kind)

	d = parseErr(t, "color(edit(size = 'x'))")
	assert.Equal(t, diag.UnexpectedParam, d.Kind)
}

func TestParseBullet(t *testing.T) {
	t.Run("bare forms", func(t *testing.T) {
		for _, in := range []string{"bullet", "bullet()"} {
			got := parse(t, in)
			if diff := cmp.Diff(Tree{&Bullet{}}, got, cmpTags...); diff != "" {
				t.Errorf("%s: %s", in, diff)
			}
		}
	})

	t.Run("text", func(t *testing.T) {
		got := parse(t, "bullet(text = 'point')")
		if diff := cmp.Diff(Tree{&Bullet{Text: str("point")}}, got, cmpTags...); diff != "" {
			t.Error(diff)
		}
	})

	t.Run("one child", func(t *testing.T) {
		got := parse(t, "bullet(slider(min = 0, max = 1))")
		want := Tree{&BulletParent{}, &Slider{Min: num(0), Max: num(1)}}
		if diff := cmp.Diff(want, got, cmpTags...); diff != "" {
			t.Error(diff)
		}
	})

	t.Run("bare word child", func(t *testing.T) {
		got := parse(t, "bullet(checkbox)")
		if diff := cmp.Diff(Tree{&BulletParent{}, &Checkbox{}}, got, cmpTags...); diff != "" {
			t.Error(diff)
		}
	})

	t.Run("two children", func(t *testing.T) {
		d := parseErr(t, "bullet(checkbox(label = 'a'), button(label = 'b'))")
		assert.Equal(t, diag.Bullet, d.Kind)
		assert.Equal(t, 0, d.Span.From)
	})

	t.Run("child error surfaces", func(t *testing.T) {
		d := parseErr(t, "bullet(slider(max = 1))")
		assert.Equal(t, diag.MissingParam, d.Kind)
		assert.Equal(t, "min", d.Param)
	})
}

func TestParseDuplicateParamAtSecondOccurrence(t *testing.T) {
	tests := []struct {
		in   string
		from int
	}{
		{"checkbox(label = 'a', label = 'b')", 22},
		{"slider(min = 0, max = 1, min = 2)", 25},
		{"tree(label = 'x', label = 'y', node())", 18},
		{"display(display = 'a', display = 'b')", 23},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d := parseErr(t, tt.in)
			assert.Equal(t, diag.AlreadyDefined, d.Kind)
			assert.Equal(t, tt.from, d.Span.From)
		})
	}
}

func TestParseMissingParam(t *testing.T) {
	tests := []struct {
		in    string
		param string
	}{
		{"slider(max = 1)", "min"},
		{"slider()", "min"},
		{"slider", "min"},
		{"slider(min = 0)", "max"},
		{"button", "label"},
		{"image", "size"},
		{"image_button(uv0 = 'zero')", "size"},
		{"text", "lit"},
		{"text_wrap()", "lit"},
		{"display(Name)", "display"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d := parseErr(t, tt.in)
			assert.Equal(t, diag.MissingParam, d.Kind)
			assert.Equal(t, tt.param, d.Param)
		})
	}
}

func TestParseUnexpected(t *testing.T) {
	tests := []struct {
		in      string
		kind    diag.Kind
		culprit string
	}{
		{"checkbox(foo = 'bar')", diag.UnexpectedParam, "foo"},
		{"separator(size = 'x')", diag.UnexpectedParam, "size"},
		{"slider(min = 0, max = 1, knob)", diag.UnexpectedParam, "knob"},
		{"button(label = 'a', nested(checkbox))", diag.UnexpectedParam, "nested"},
		{"checkbox('x')", diag.InvalidFormat, "'x'"},
		{"sliders", diag.UnexpectedMode, "sliders"},
		{"knob(min = 0)", diag.UnexpectedMode, "knob"},
		{"tree(node(wheel))", diag.UnexpectedMode, "wheel"},
		{"'loose'", diag.InvalidFormat, "'loose'"},
		{"checkbox, min = 0", diag.InvalidFormat, "min = 0"},
		{"checkbox, label = 'x'", diag.InvalidFormat, "label = 'x'"},
		{"text(a)", diag.UnexpectedParam, "a"},
		{"text('a', 'b')", diag.AlreadyDefined, "'b'"},
		{"text(lit = 'a', 'b')", diag.AlreadyDefined, "'b'"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d := parseErr(t, tt.in)
			assert.Equal(t, tt.kind, d.Kind, d.Message)
			assert.Equal(t, tt.culprit, d.Culprit())
		})
	}
}

func TestParseCoercion(t *testing.T) {
	tests := []struct {
		in   string
		kind diag.Kind
	}{
		{"slider(min = 'zero', max = 1)", diag.ParseError},
		{"drag(speed = 'fast')", diag.ParseError},
		{"image_button(size = 's', frame_padding = 1.5)", diag.ParseError},
		{"image_button(size = 's', frame_padding = 'two')", diag.ParseError},
		{"checkbox(label = 3)", diag.InvalidFormat},
		{"button(label = 'x', size = 'not a func')", diag.InvalidFormat},
		{"button(label = 'x', size = 3)", diag.InvalidFormat},
		{"input(flags = 'a.b.c')", diag.InvalidFormat},
		{"slider(min = 99999999999999999999, max = 1)", diag.ParseError},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.kind, parseErr(t, tt.in).Kind)
		})
	}
}

func TestShorthand(t *testing.T) {
	got := parse(t, "label = 'Name', display = 'hello %s', Label")
	want := Tree{&Display{
		Label:   str("Name"),
		Display: str("hello %s"),
		Args:    []Arg{{Field: "Label"}},
	}}
	if diff := cmp.Diff(want, got, cmpTags...); diff != "" {
		t.Errorf("shorthand mismatch (-want +got):\n%s", diff)
	}

	got = parse(t, "display = 'v=%v', 'lit', 2.5")
	d := got[0].(*Display)
	require.Len(t, d.Args, 2)
	assert.Equal(t, str("lit").Str, d.Args[0].Lit.Str)
	assert.Equal(t, 2.5, d.Args[1].Lit.Float)
}

func TestShorthandTrailingEntries(t *testing.T) {
	const in = "label = 'Name', checkbox(catch = 'x'), separator"

	t.Run("error", func(t *testing.T) {
		d := parseErr(t, in)
		assert.Equal(t, diag.InvalidFormat, d.Kind)
		assert.Equal(t, "checkbox(catch = 'x')", d.Culprit())
	})

	t.Run("truncate", func(t *testing.T) {
		src, err := annotation.Parse(in)
		require.NoError(t, err)
		got, err := NewParser(ShorthandTruncate).Parse(src)
		require.NoError(t, err)
		if diff := cmp.Diff(Tree{&Display{Label: str("Name")}}, got, cmpTags...); diff != "" {
			t.Error(diff)
		}
	})

	t.Run("nested list", func(t *testing.T) {
		d := parseErr(t, "tree(node(label = 'x', checkbox()))")
		assert.Equal(t, diag.InvalidFormat, d.Kind)
		assert.Equal(t, "checkbox()", d.Culprit())
	})

	assert.True(t, ShorthandTruncate.Valid())
	assert.False(t, ShorthandMode("lenient").Valid())
}

func TestParseErrorsCarrySource(t *testing.T) {
	d := parseErr(t, "checkbox(foo = 'bar')")
	assert.Equal(t, "checkbox(foo = 'bar')", d.Source)
	assert.Equal(t, diag.Span{From: 9, To: 12}, d.Span)
	assert.NotEmpty(t, d.Suggestions)
}

func TestWalk(t *testing.T) {
	tree := parse(t, "tree(node(checkbox, vars(content(button(label = 'x'))))), separator")

	var names []string
	require.NoError(t, Walk(tree, func(tg Tag) error {
		names = append(names, tg.Name())
		return nil
	}))
	assert.Equal(t, []string{"tree", "checkbox", "vars", "button", "separator"}, names)
}

func TestDump(t *testing.T) {
	tree := parse(t, "tree(label = 'G', node(image(size = 'thumb', uv0 = 'zero'), display(display = '%d', Count, 2)))")
	got := Dump(tree)

	want := []map[string]interface{}{{
		"tag":   "tree",
		"label": "G",
		"children": []map[string]interface{}{
			{"tag": "image", "size": "thumb", "uv0": "zero"},
			{"tag": "display", "display": "%d", "args": []interface{}{
				map[string]interface{}{"field": "Count"},
				int64(2),
			}},
		},
	}}
	assert.Equal(t, want, got)
}

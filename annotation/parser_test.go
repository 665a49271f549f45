package annotation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/uibind/diag"
)

func TestParseNodes(t *testing.T) {
	src, err := Parse("checkbox, slider(min = 0, max = '100'), text('hi'), 2.5")
	require.NoError(t, err)

	want := []Node{
		&Word{Name: "checkbox", At: diag.Span{From: 0, To: 8}},
		&List{
			Name:   "slider",
			NameAt: diag.Span{From: 10, To: 16},
			Nodes: []Node{
				&KeyValue{
					Name:   "min",
					NameAt: diag.Span{From: 17, To: 20},
					Value:  &Literal{Kind: LitInt, Raw: "0", Value: "0", At: diag.Span{From: 23, To: 24}},
					At:     diag.Span{From: 17, To: 24},
				},
				&KeyValue{
					Name:   "max",
					NameAt: diag.Span{From: 26, To: 29},
					Value:  &Literal{Kind: LitString, Raw: "'100'", Value: "100", At: diag.Span{From: 32, To: 37}},
					At:     diag.Span{From: 26, To: 37},
				},
			},
			At: diag.Span{From: 10, To: 38},
		},
		&List{
			Name:   "text",
			NameAt: diag.Span{From: 40, To: 44},
			Nodes: []Node{
				&Literal{Kind: LitString, Raw: "'hi'", Value: "hi", At: diag.Span{From: 45, To: 49}},
			},
			At: diag.Span{From: 40, To: 50},
		},
		&Literal{Kind: LitFloat, Raw: "2.5", Value: "2.5", At: diag.Span{From: 52, To: 55}},
	}

	if diff := cmp.Diff(want, src.Nodes); diff != "" {
		t.Errorf("nodes mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		in    string
		kind  LitKind
		value string
	}{
		{"-1", LitInt, "-1"},
		{"+7", LitInt, "+7"},
		{".5", LitFloat, ".5"},
		{"-2e3", LitFloat, "-2e3"},
		{"1.5E-2", LitFloat, "1.5E-2"},
		{`"double"`, LitString, "double"},
		{`'it\'s'`, LitString, "it's"},
		{`'a\nb'`, LitString, "a\nb"},
		{`''`, LitString, ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			src, err := Parse("x = " + tt.in)
			require.NoError(t, err)
			require.Len(t, src.Nodes, 1)
			kv := src.Nodes[0].(*KeyValue)
			assert.Equal(t, tt.kind, kv.Value.Kind)
			assert.Equal(t, tt.value, kv.Value.Value)
		})
	}
}

func TestParseEmptyAndNested(t *testing.T) {
	src, err := Parse("   ")
	require.NoError(t, err)
	assert.Empty(t, src.Nodes)

	src, err = Parse("tree(label = 'G', node(checkbox, drag(min = -1, max = 1)),)")
	require.NoError(t, err)
	require.Len(t, src.Nodes, 1)

	tree := src.Nodes[0].(*List)
	require.Len(t, tree.Nodes, 2)
	node := tree.Nodes[1].(*List)
	assert.Equal(t, "node", node.Name)
	assert.Equal(t, []string{"checkbox", "drag"}, []string{NameOf(node.Nodes[0]), NameOf(node.Nodes[1])})

	src, err = Parse("bullet()")
	require.NoError(t, err)
	assert.Empty(t, src.Nodes[0].(*List).Nodes)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in      string
		span    diag.Span
		message string
	}{
		{"slider(min = )", diag.Span{From: 13, To: 14}, "expected literal after '=', found ')'"},
		{"slider(min = 0", diag.Span{From: 14, To: 14}, "expected ',' or ')', found end of annotation"},
		{"checkbox display", diag.Span{From: 9, To: 16}, "expected ',' or end of annotation, found identifier display"},
		{"text('open", diag.Span{From: 5, To: 10}, "unterminated string literal"},
		{"a = 'x\\q'", diag.Span{From: 6, To: 8}, `unknown escape sequence "\\q"`},
		{"a = 12ab", diag.Span{From: 4, To: 8}, `malformed number "12ab"`},
		{"a = -", diag.Span{From: 4, To: 6}, `malformed number "-"`},
		{"slider(#)", diag.Span{From: 7, To: 8}, `unexpected character '#'`},
		{", checkbox", diag.Span{From: 0, To: 1}, "expected tag, parameter or literal, found ','"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse(tt.in)
			require.Error(t, err)

			d, ok := diag.As(err)
			require.True(t, ok)
			assert.Equal(t, diag.InvalidFormat, d.Kind)
			assert.Equal(t, tt.span, d.Span)
			assert.Equal(t, tt.message, d.Message)
			assert.Equal(t, tt.in, d.Source)
		})
	}
}

func TestParseDeterministic(t *testing.T) {
	const text = "label = 'Name', display = 'hello %s', Label"
	a, err := Parse(text)
	require.NoError(t, err)
	b, err := Parse(text)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(a.Nodes, b.Nodes))
}

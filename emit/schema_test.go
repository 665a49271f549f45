package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/uibind/diag"
)

func TestSchemaRegister(t *testing.T) {
	s := NewSchema()

	a, err := s.Register("changed", BoolEvent, "bool", "Turbo", diag.Span{})
	require.NoError(t, err)
	assert.Equal(t, "Changed", a.GoName)

	b, err := s.Register("changed", BoolEvent, "bool", "Lights", diag.Span{})
	require.NoError(t, err)
	assert.Same(t, a, b, "same name and kind share one event")
	assert.Equal(t, "Turbo", b.Field)

	got, ok := s.Lookup("changed")
	require.True(t, ok)
	assert.Same(t, a, got)
	assert.Len(t, s.Events, 1)
}

func TestSchemaRegisterErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup []string // bool events registered first
		reg   string
		kind  EventKind
		typ   string
		want  diag.Kind
	}{
		{"kind clash", []string{"child"}, "child", NestedEvent, "InnerEvents", diag.AlreadyDefined},
		{"go name clash", []string{"dirty_flag"}, "DirtyFlag", BoolEvent, "bool", diag.AlreadyDefined},
		{"reserved", nil, "any", BoolEvent, "bool", diag.AlreadyDefined},
		{"not an identifier", nil, "1st", BoolEvent, "bool", diag.InvalidFormat},
		{"empty", nil, "", BoolEvent, "bool", diag.InvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSchema()
			for _, name := range tt.setup {
				_, err := s.Register(name, BoolEvent, "bool", "F", diag.Span{})
				require.NoError(t, err)
			}
			_, err := s.Register(tt.reg, tt.kind, tt.typ, "G", diag.Span{From: 2, To: 5})
			require.Error(t, err)
			assert.True(t, diag.Is(err, tt.want), "got %v", err)

			d, _ := diag.As(err)
			assert.Equal(t, diag.Span{From: 2, To: 5}, d.Span)
		})
	}
}

func TestSchemaOrder(t *testing.T) {
	s := NewSchema()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := s.Register(name, BoolEvent, "bool", name, diag.Span{})
		require.NoError(t, err)
	}
	var names []string
	for _, ev := range s.Events {
		names = append(names, ev.GoName)
	}
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, names)
}

package emit

import (
	"go/token"

	"github.com/iancoleman/strcase"

	"github.com/teranos/uibind/diag"
	"github.com/teranos/uibind/model"
	"github.com/teranos/uibind/tag"
)

// EventKind is the type of one events field
type EventKind int

const (
	BoolEvent   EventKind = iota // OR-accumulated interaction flag
	NestedEvent                  // Events value of a nested aggregate
)

func (k EventKind) String() string {
	if k == NestedEvent {
		return "nested"
	}
	return "bool"
}

// Event is one field of a generated events type
type Event struct {
	Name   string    `json:"name" yaml:"name"`       // catch name or field identifier
	GoName string    `json:"go_name" yaml:"go_name"` // exported field name
	Kind   EventKind `json:"-" yaml:"-"`
	Type   string    `json:"type" yaml:"type"` // Go type of the field
	Field  string    `json:"field" yaml:"field"`
}

// Schema maps event names to events for one aggregate. Names are unique and
// registration order is the field order of the events type.
type Schema struct {
	Events []*Event

	byName map[string]*Event
	byGo   map[string]*Event
}

// NewSchema creates an empty schema
func NewSchema() *Schema {
	return &Schema{
		byName: make(map[string]*Event),
		byGo:   make(map[string]*Event),
	}
}

// reserved names are methods of the generated events type
var reserved = map[string]bool{"Any": true}

// Register resolves name to an event, creating it on first use. A second
// registration of the same name and kind reuses the event so results are
// combined; any other clash is AlreadyDefined.
func (s *Schema) Register(name string, kind EventKind, typ, field string, at diag.Span) (*Event, error) {
	if ev, ok := s.byName[name]; ok {
		if ev.Kind != kind || ev.Type != typ {
			return nil, diag.New(diag.AlreadyDefined, at,
				"event %q is already defined as %s %s", name, ev.Kind, ev.Type).
				WithSuggestion("use a different catch name")
		}
		return ev, nil
	}

	goName := strcase.ToCamel(name)
	if !token.IsIdentifier(goName) || !token.IsExported(goName) {
		return nil, diag.New(diag.InvalidFormat, at, "event name %q does not form a Go field name", name)
	}
	if reserved[goName] {
		return nil, diag.New(diag.AlreadyDefined, at, "event name %q collides with the %s method", name, goName)
	}
	if other, ok := s.byGo[goName]; ok {
		return nil, diag.New(diag.AlreadyDefined, at,
			"events %q and %q both become field %s", other.Name, name, goName)
	}

	ev := &Event{Name: name, GoName: goName, Kind: kind, Type: typ, Field: field}
	s.Events = append(s.Events, ev)
	s.byName[name] = ev
	s.byGo[goName] = ev
	return ev, nil
}

// Lookup returns the event registered under name
func (s *Schema) Lookup(name string) (*Event, bool) {
	ev, ok := s.byName[name]
	return ev, ok
}

// Synthesize is pass 1: it resolves the event of every interactive tag of
// every annotated field, in declaration order, before any code is emitted.
func Synthesize(agg *model.Aggregate, opts Options) (*Schema, error) {
	s := NewSchema()
	for _, f := range agg.Annotated() {
		err := tag.Walk(f.Tree, func(t tag.Tag) error {
			c, ok := t.(tag.Catcher)
			if !ok {
				return nil
			}

			name := c.CatchName().Or(f.Name).Str
			kind, typ := BoolEvent, "bool"
			if n, ok := t.(*tag.Nested); ok {
				et, err := nestedEventsType(f, n, opts)
				if err != nil {
					return err
				}
				kind, typ = NestedEvent, et
			}

			_, err := s.Register(name, kind, typ, f.Name, t.Span())
			return err
		})
		if err != nil {
			return nil, f.Source.Error(err)
		}
	}
	return s, nil
}

// nestedEventsType derives the events type of a nested field from its type,
// or from the result of its map function
func nestedEventsType(f *model.Field, n *tag.Nested, opts Options) (string, error) {
	td := f.Type
	if n.Map.IsSet() {
		var ok bool
		if opts.Funcs != nil {
			td, ok = opts.Funcs.Result(n.Map.Str)
		}
		if !ok {
			return "", diag.New(diag.InvalidFormat, n.Map.At,
				"cannot resolve the result type of map function %q", n.Map.Str)
		}
	}

	td = td.Deref()
	if td.Kind != model.Struct || td.Named == "" {
		return "", diag.New(diag.NonStruct, n.Span(),
			"nested needs a named struct, %s has type %s", f.Name, td.Expr).
			WithSuggestion("annotate the struct type with //uibind:draw and use it as the field type")
	}
	return td.Named + opts.eventsSuffix(), nil
}

// Package model holds the aggregates and fields the compiler works on.
package model

import (
	"github.com/teranos/uibind/annotation"
	"github.com/teranos/uibind/diag"
	"github.com/teranos/uibind/tag"
)

// Field is one named struct field
type Field struct {
	Name   string
	Type   TypeDesc
	Source *annotation.Source // nil when the field carries no annotation
	Tree   tag.Tree           // set by ParseTags
	Pos    diag.Position
}

// Annotated reports whether the field carries an annotation block
func (f *Field) Annotated() bool {
	return f.Source != nil
}

// Aggregate is a named-field struct whose annotated fields are drawn in
// declaration order
type Aggregate struct {
	Name    string
	Package string // Package name of the generated file
	Fields  []Field
	Pos     diag.Position
	Events  string // Name of the generated events type
	Method  string // Name of the generated draw method
}

// Field looks up a field by name
func (a *Aggregate) Field(name string) (*Field, bool) {
	for i := range a.Fields {
		if a.Fields[i].Name == name {
			return &a.Fields[i], true
		}
	}
	return nil, false
}

// Annotated returns the annotated fields in declaration order
func (a *Aggregate) Annotated() []*Field {
	var out []*Field
	for i := range a.Fields {
		if a.Fields[i].Annotated() {
			out = append(out, &a.Fields[i])
		}
	}
	return out
}

// ParseTags builds the tag tree of every annotated field. The first error
// aborts; later fields are not parsed.
func (a *Aggregate) ParseTags(p *tag.Parser) error {
	for _, f := range a.Annotated() {
		tree, err := p.Parse(f.Source)
		if err != nil {
			return err
		}
		f.Tree = tree
	}
	return nil
}

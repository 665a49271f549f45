package annotation

import (
	"strconv"

	"github.com/teranos/uibind/diag"
)

// Node is one entry of an annotation meta-list
type Node interface {
	// Span covers the whole node in the annotation text
	Span() diag.Span
	node()
}

// Word is a bare identifier: `checkbox`
type Word struct {
	Name string
	At   diag.Span
}

// KeyValue is a named literal: `min = 0`
type KeyValue struct {
	Name   string
	NameAt diag.Span
	Value  *Literal
	At     diag.Span
}

// List is a named, parenthesized nested meta-list: `slider(min = 0, max = 1)`
type List struct {
	Name   string
	NameAt diag.Span
	Nodes  []Node
	At     diag.Span
}

// LitKind is the lexical class of a literal
type LitKind int

const (
	LitInt LitKind = iota
	LitFloat
	LitString
)

func (k LitKind) String() string {
	switch k {
	case LitInt:
		return "int"
	case LitFloat:
		return "float"
	case LitString:
		return "string"
	}
	return "literal"
}

// Literal is an integer, float or string literal.
// Raw is the source text, Value the decoded content (unquoted for strings).
type Literal struct {
	Kind  LitKind
	Raw   string
	Value string
	At    diag.Span
}

func (n *Word) Span() diag.Span     { return n.At }
func (n *KeyValue) Span() diag.Span { return n.At }
func (n *List) Span() diag.Span     { return n.At }
func (n *Literal) Span() diag.Span  { return n.At }

func (*Word) node()     {}
func (*KeyValue) node() {}
func (*List) node()     {}
func (*Literal) node()  {}

// NameOf returns the name of a Word, KeyValue or List, or "" for literals
func NameOf(n Node) string {
	switch n := n.(type) {
	case *Word:
		return n.Name
	case *KeyValue:
		return n.Name
	case *List:
		return n.Name
	}
	return ""
}

// NameSpan returns the span of a node's name, or the whole node for literals
func NameSpan(n Node) diag.Span {
	switch n := n.(type) {
	case *KeyValue:
		return n.NameAt
	case *List:
		return n.NameAt
	}
	return n.Span()
}

// Quote renders a string literal value as Go source
func (n *Literal) Quote() string {
	return strconv.Quote(n.Value)
}

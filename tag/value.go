package tag

import (
	"go/token"
	"strconv"
	"strings"

	"github.com/teranos/uibind/annotation"
	"github.com/teranos/uibind/diag"
)

// ValueKind is the type of a parameter value
type ValueKind int

const (
	Unset ValueKind = iota // Parameter not given
	Int
	Float
	Str
)

func (k ValueKind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case Str:
		return "string"
	}
	return "none"
}

// Value is a typed literal parameter. The zero Value is an unset parameter.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Str   string
	At    diag.Span
}

// IsSet reports whether the parameter was given
func (v Value) IsSet() bool {
	return v.Kind != Unset
}

// Or returns v if set, otherwise a string value holding def
func (v Value) Or(def string) Value {
	if v.IsSet() {
		return v
	}
	return Value{Kind: Str, Str: def}
}

// Interface returns the Go value held, or nil when unset
func (v Value) Interface() interface{} {
	switch v.Kind {
	case Int:
		return v.Int
	case Float:
		return v.Float
	case Str:
		return v.Str
	}
	return nil
}

// Go renders the value as a Go constant expression
func (v Value) Go() string {
	switch v.Kind {
	case Int:
		return strconv.FormatInt(v.Int, 10)
	case Float:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case Str:
		return strconv.Quote(v.Str)
	}
	return ""
}

func (v Value) String() string {
	if v.Kind == Str {
		return v.Str
	}
	return v.Go()
}

// paramKind is the slot type a parameter literal is coerced into
type paramKind int

const (
	kindStr  paramKind = iota // string literal
	kindNum                   // int or float; strings coerced int-then-float
	kindInt                   // int; strings coerced with an integer parse
	kindFunc                  // string naming a Go identifier or pkg.Ident
)

func (k paramKind) String() string {
	switch k {
	case kindStr:
		return "string"
	case kindNum:
		return "number"
	case kindInt:
		return "integer"
	case kindFunc:
		return "function name"
	}
	return "value"
}

// literalValue converts a literal to a Value of its own lexical kind
func literalValue(lit *annotation.Literal) (Value, error) {
	switch lit.Kind {
	case annotation.LitInt:
		return parseInt(lit.Raw, lit.At)
	case annotation.LitFloat:
		return parseFloat(lit.Raw, lit.At)
	}
	return Value{Kind: Str, Str: lit.Value, At: lit.At}, nil
}

// coerce is the single conversion rule every parameter goes through
func coerce(lit *annotation.Literal, kind paramKind, name string) (Value, error) {
	switch kind {
	case kindStr:
		if lit.Kind != annotation.LitString {
			return Value{}, diag.New(diag.InvalidFormat, lit.At,
				"parameter %q expects a string, found %s %s", name, lit.Kind, lit.Raw).
				WithSuggestion("quote it: %s = '%s'", name, lit.Raw)
		}
		return Value{Kind: Str, Str: lit.Value, At: lit.At}, nil

	case kindNum:
		if lit.Kind != annotation.LitString {
			return literalValue(lit)
		}
		if v, err := parseInt(lit.Value, lit.At); err == nil {
			return v, nil
		}
		if v, err := parseFloat(lit.Value, lit.At); err == nil {
			return v, nil
		}
		return Value{}, diag.New(diag.ParseError, lit.At,
			"parameter %q expects a number, cannot parse %s", name, lit.Raw)

	case kindInt:
		text := lit.Raw
		if lit.Kind == annotation.LitString {
			text = lit.Value
		}
		v, err := parseInt(text, lit.At)
		if err != nil {
			return Value{}, diag.New(diag.ParseError, lit.At,
				"parameter %q expects an integer, cannot parse %s", name, lit.Raw)
		}
		return v, nil

	case kindFunc:
		if lit.Kind != annotation.LitString || !isFuncName(lit.Value) {
			return Value{}, diag.New(diag.InvalidFormat, lit.At,
				"parameter %q expects a function name such as 'sizeOf' or 'pkg.SizeOf', found %s", name, lit.Raw)
		}
		return Value{Kind: Str, Str: lit.Value, At: lit.At}, nil
	}
	return Value{}, diag.New(diag.InvalidFormat, lit.At, "")
}

func parseInt(s string, at diag.Span) (Value, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Value{}, diag.New(diag.ParseError, at, "cannot parse %q as an integer", s)
	}
	return Value{Kind: Int, Int: n, At: at}, nil
}

func parseFloat(s string, at diag.Span) (Value, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, diag.New(diag.ParseError, at, "cannot parse %q as a float", s)
	}
	return Value{Kind: Float, Float: f, At: at}, nil
}

// isFuncName accepts `name` and `pkg.Name`
func isFuncName(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return false
	}
	for _, p := range parts {
		if !token.IsIdentifier(p) {
			return false
		}
	}
	return true
}

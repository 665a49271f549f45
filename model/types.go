package model

import (
	"go/types"
	"strconv"
	"strings"
)

// TypeKind classifies a field type for widget selection
type TypeKind int

const (
	Other TypeKind = iota
	Bool
	Int
	Uint
	Float
	String
	Array
	Slice
	Pointer
	Struct
)

var kindNames = map[TypeKind]string{
	Other:   "other",
	Bool:    "bool",
	Int:     "int",
	Uint:    "uint",
	Float:   "float",
	String:  "string",
	Array:   "array",
	Slice:   "slice",
	Pointer: "pointer",
	Struct:  "struct",
}

func (k TypeKind) String() string {
	return kindNames[k]
}

// TypeDesc describes a field's type as seen from the generated file
type TypeDesc struct {
	Expr  string    // Go type expression, package-qualified where needed
	Kind  TypeKind  // Kind of the underlying type
	Elem  *TypeDesc // Element of Array/Slice, target of Pointer
	Len   int64     // Array length
	Named string    // Name expression when the type is named, e.g. "Inner" or "geom.Vec"
}

// Numeric reports whether the type is an integer or float scalar
func (t TypeDesc) Numeric() bool {
	return t.Kind == Int || t.Kind == Uint || t.Kind == Float
}

// Sequence reports whether the type is an array or slice
func (t TypeDesc) Sequence() bool {
	return t.Kind == Array || t.Kind == Slice
}

// Deref strips any pointers
func (t TypeDesc) Deref() TypeDesc {
	for t.Kind == Pointer && t.Elem != nil {
		t = *t.Elem
	}
	return t
}

func (t TypeDesc) String() string {
	return t.Expr
}

// Describe builds a TypeDesc from a go/types type. qual decides how package
// names are written, normally relative to the package being generated.
func Describe(t types.Type, qual types.Qualifier) TypeDesc {
	d := TypeDesc{Expr: types.TypeString(t, qual)}

	if named, ok := t.(*types.Named); ok {
		d.Named = types.TypeString(named, qual)
		if i := strings.IndexByte(d.Named, '['); i >= 0 {
			d.Named = d.Named[:i]
		}
	}

	switch u := t.Underlying().(type) {
	case *types.Basic:
		d.Kind = basicKind(u)
	case *types.Array:
		elem := Describe(u.Elem(), qual)
		d.Kind, d.Elem, d.Len = Array, &elem, u.Len()
	case *types.Slice:
		elem := Describe(u.Elem(), qual)
		d.Kind, d.Elem = Slice, &elem
	case *types.Pointer:
		elem := Describe(u.Elem(), qual)
		d.Kind, d.Elem = Pointer, &elem
	case *types.Struct:
		d.Kind = Struct
	}
	return d
}

func basicKind(b *types.Basic) TypeKind {
	info := b.Info()
	switch {
	case info&types.IsBoolean != 0:
		return Bool
	case info&types.IsUnsigned != 0:
		return Uint
	case info&types.IsInteger != 0:
		return Int
	case info&types.IsFloat != 0:
		return Float
	case info&types.IsString != 0:
		return String
	}
	return Other
}

// Basic describes a predeclared type by name, e.g. "int32" or "string"
func Basic(name string) TypeDesc {
	obj := types.Universe.Lookup(name)
	if obj == nil {
		return TypeDesc{Expr: name}
	}
	return Describe(obj.Type(), nil)
}

// ArrayOf describes [n]elem
func ArrayOf(n int64, elem TypeDesc) TypeDesc {
	return TypeDesc{Expr: "[" + strconv.FormatInt(n, 10) + "]" + elem.Expr, Kind: Array, Elem: &elem, Len: n}
}

// SliceOf describes []elem
func SliceOf(elem TypeDesc) TypeDesc {
	return TypeDesc{Expr: "[]" + elem.Expr, Kind: Slice, Elem: &elem}
}

// PointerTo describes *elem
func PointerTo(elem TypeDesc) TypeDesc {
	return TypeDesc{Expr: "*" + elem.Expr, Kind: Pointer, Elem: &elem}
}

// NamedStruct describes a named struct type such as "Inner" or "geom.Rect"
func NamedStruct(name string) TypeDesc {
	return TypeDesc{Expr: name, Kind: Struct, Named: name}
}

// Named gives an existing descriptor a type name
func Named(name string, underlying TypeDesc) TypeDesc {
	underlying.Expr = name
	underlying.Named = name
	return underlying
}

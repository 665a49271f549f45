package ui

import "reflect"

// DataKind is the element type behind a Scalars view
type DataKind int

const (
	S8 DataKind = iota
	U8
	S16
	U16
	S32
	U32
	S64
	U64
	F32
	F64
)

// Float reports whether the kind is a floating point type
func (k DataKind) Float() bool {
	return k == F32 || k == F64
}

// DefaultFormat is the printf format backends use for the kind
func DefaultFormat(k DataKind) string {
	if k.Float() {
		return "%.3f"
	}
	return "%d"
}

// Number is every scalar type a numeric widget can edit
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~float32 | ~float64
}

// Scalars is a fixed-size sequence of numbers of one kind. Backends read and
// write it as float64 so a single routine serves every (kind, arity) pair.
type Scalars interface {
	Kind() DataKind
	Len() int
	Float(i int) float64
	SetFloat(i int, v float64)
}

type scalars[T Number] struct {
	kind DataKind
	data []T
}

// View wraps a slice as Scalars. Writes go through to the slice.
func View[T Number](data []T) Scalars {
	return scalars[T]{kind: kindOf[T](), data: data}
}

func (s scalars[T]) Kind() DataKind            { return s.kind }
func (s scalars[T]) Len() int                  { return len(s.data) }
func (s scalars[T]) Float(i int) float64       { return float64(s.data[i]) }
func (s scalars[T]) SetFloat(i int, v float64) { s.data[i] = T(v) }

func kindOf[T Number]() DataKind {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Int8:
		return S8
	case reflect.Uint8:
		return U8
	case reflect.Int16:
		return S16
	case reflect.Uint16:
		return U16
	case reflect.Int32:
		return S32
	case reflect.Uint32:
		return U32
	case reflect.Int64:
		return S64
	case reflect.Int:
		if reflect.TypeOf(zero).Size() == 4 {
			return S32
		}
		return S64
	case reflect.Uint64, reflect.Uintptr:
		return U64
	case reflect.Uint:
		if reflect.TypeOf(zero).Size() == 4 {
			return U32
		}
		return U64
	case reflect.Float32:
		return F32
	}
	return F64
}

// Input edits one number
func Input[T Number](h Host, label string, v *T, opts InputOptions) bool {
	buf := [1]T{*v}
	changed := h.InputScalars(label, View(buf[:]), opts)
	*v = buf[0]
	return changed
}

// InputN edits a fixed-size sequence of numbers
func InputN[T Number](h Host, label string, v []T, opts InputOptions) bool {
	return h.InputScalars(label, View(v), opts)
}

// Drag edits one number by dragging
func Drag[T Number](h Host, label string, v *T, opts DragOptions) bool {
	buf := [1]T{*v}
	changed := h.DragScalars(label, View(buf[:]), opts)
	*v = buf[0]
	return changed
}

// DragN edits a sequence of numbers by dragging
func DragN[T Number](h Host, label string, v []T, opts DragOptions) bool {
	return h.DragScalars(label, View(v), opts)
}

// Slider edits one number within [min, max]
func Slider[T Number](h Host, label string, v *T, min, max T, opts SliderOptions) bool {
	buf := [1]T{*v}
	changed := h.SliderScalars(label, View(buf[:]), float64(min), float64(max), opts)
	*v = buf[0]
	return changed
}

// SliderN edits a sequence of numbers within [min, max]
func SliderN[T Number](h Host, label string, v []T, min, max T, opts SliderOptions) bool {
	return h.SliderScalars(label, View(v), float64(min), float64(max), opts)
}

package ui

import "math"

// InputOptions configures numeric input widgets. Zero fields take backend defaults.
type InputOptions struct {
	Step     float64
	StepFast float64
	Format   string
	Flags    InputFlags
}

// Resolve fills defaults for data of the given kind
func (o InputOptions) Resolve(kind DataKind) InputOptions {
	if o.Format == "" {
		o.Format = DefaultFormat(kind)
	}
	return o
}

// DragOptions configures drag widgets. Min >= Max means unbounded.
type DragOptions struct {
	Speed  float64
	Min    float64
	Max    float64
	Format string
	Power  float64
}

// Bounded reports whether the drag clamps to [Min, Max]
func (o DragOptions) Bounded() bool {
	return o.Min < o.Max
}

// Resolve fills defaults for data of the given kind
func (o DragOptions) Resolve(kind DataKind) DragOptions {
	if o.Speed == 0 {
		o.Speed = 1
	}
	if o.Power == 0 {
		o.Power = 1
	}
	if o.Format == "" {
		o.Format = DefaultFormat(kind)
	}
	return o
}

// Clamp applies the drag bounds to v
func (o DragOptions) Clamp(v float64) float64 {
	if !o.Bounded() {
		return v
	}
	return math.Max(o.Min, math.Min(o.Max, v))
}

// SliderOptions configures slider widgets
type SliderOptions struct {
	Format string
	Power  float64
}

// Resolve fills defaults for data of the given kind
func (o SliderOptions) Resolve(kind DataKind) SliderOptions {
	if o.Power == 0 {
		o.Power = 1
	}
	if o.Format == "" {
		o.Format = DefaultFormat(kind)
	}
	return o
}

// TreeOptions configures a collapsible tree node
type TreeOptions struct {
	Flags TreeFlags
	Cond  Cond
}

// ImageOptions configures Image. Zero Tint is opaque white, zero UV1 is (1, 1).
type ImageOptions struct {
	Border Vec4
	Tint   Vec4
	UV0    Vec2
	UV1    Vec2
}

// Resolve fills defaults
func (o ImageOptions) Resolve() ImageOptions {
	if o.Tint == (Vec4{}) {
		o.Tint = Vec4{1, 1, 1, 1}
	}
	if o.UV1 == (Vec2{}) {
		o.UV1 = Vec2{1, 1}
	}
	return o
}

// ImageButtonOptions configures ImageButton. FramePadding < 0 uses the style
// padding; since zero is a valid padding, Padded marks an explicit value.
type ImageButtonOptions struct {
	Background   Vec4
	FramePadding int
	Padded       bool
	UV0          Vec2
	UV1          Vec2
}

// Resolve fills defaults
func (o ImageButtonOptions) Resolve() ImageButtonOptions {
	if !o.Padded {
		o.FramePadding = -1
	}
	if o.UV1 == (Vec2{}) {
		o.UV1 = Vec2{1, 1}
	}
	return o
}

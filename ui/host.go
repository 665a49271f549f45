// Package ui is the contract between generated Draw methods and an
// immediate-mode UI backend. Generated code only calls Host methods and the
// generic helpers in this package; backends implement Host.
package ui

// Vec2 is a 2D size or coordinate
type Vec2 struct{ X, Y float32 }

// Vec4 is an RGBA color or a 4-component vector
type Vec4 struct{ X, Y, Z, W float32 }

// TextureID identifies a backend texture
type TextureID uintptr

type (
	InputFlags     int
	ColorEditFlags int
	TreeFlags      int
	StyleVar       int
	ColorID        int
)

// Cond is the condition under which a tree node's open state is applied
type Cond int

const (
	CondNone Cond = iota
	CondAlways
	CondOnce
	CondFirstUseEver
	CondAppearing
)

var condNames = map[Cond]string{
	CondNone:         "None",
	CondAlways:       "Always",
	CondOnce:         "Once",
	CondFirstUseEver: "FirstUseEver",
	CondAppearing:    "Appearing",
}

func (c Cond) String() string {
	if name, ok := condNames[c]; ok {
		return name
	}
	return "Cond(?)"
}

// StyleVarValue overrides one style variable; scalar variables use X
type StyleVarValue struct {
	Var   StyleVar
	Value Vec2
}

// ColorVar overrides one style color
type ColorVar struct {
	Color ColorID
	Value Vec4
}

// Host is the set of widget primitives generated code draws with. Methods
// returning bool report whether the widget was interacted with this frame.
type Host interface {
	Checkbox(label string, v *bool) bool
	InputScalars(label string, data Scalars, opts InputOptions) bool
	InputText(label string, v *string, flags InputFlags) bool
	DragScalars(label string, data Scalars, opts DragOptions) bool
	SliderScalars(label string, data Scalars, min, max float64, opts SliderOptions) bool

	Button(label string, size Vec2) bool
	ColorEdit(label string, col []float32, flags ColorEditFlags) bool
	ColorPicker(label string, col []float32, flags ColorEditFlags) bool
	ColorButton(label string, col []float32, flags ColorEditFlags, size Vec2) bool
	Image(texture TextureID, size Vec2, opts ImageOptions)
	ImageButton(texture TextureID, size Vec2, opts ImageButtonOptions) bool
	ProgressBar(fraction float32, size Vec2, overlay string)

	TreeNode(label string, opts TreeOptions) bool
	TreePop()
	Bullet()
	BulletText(text string)

	PushStyleVar(v StyleVarValue)
	PopStyleVar(count int)
	PushStyleColor(c ColorVar)
	PopStyleColor(count int)

	LabelText(label, text string)
	Text(text string)
	TextWrapped(text string)
	Separator()
	NewLine()
}

// PushStyles pushes every style override and returns the matching pop.
// Generated code defers the returned function.
func PushStyles(h Host, vars []StyleVarValue) (pop func()) {
	for _, v := range vars {
		h.PushStyleVar(v)
	}
	return func() {
		if len(vars) > 0 {
			h.PopStyleVar(len(vars))
		}
	}
}

// PushColors pushes every color override and returns the matching pop
func PushColors(h Host, vars []ColorVar) (pop func()) {
	for _, c := range vars {
		h.PushStyleColor(c)
	}
	return func() {
		if len(vars) > 0 {
			h.PopStyleColor(len(vars))
		}
	}
}

package tag

import "github.com/teranos/uibind/diag"

// Tag is one parsed widget annotation. The set of implementations is closed.
type Tag interface {
	// Name is the annotation keyword the tag was parsed from
	Name() string
	// Span covers the tag in the annotation text
	Span() diag.Span
	tag()
}

// Catcher is implemented by interactive tags whose result feeds an event
type Catcher interface {
	Tag
	// CatchName is the explicit catch parameter, unset when the field name applies
	CatchName() Value
}

// Tree is an ordered list of tags; emission preserves the order
type Tree []Tag

type base struct {
	At diag.Span
}

func (b base) Span() diag.Span { return b.At }
func (base) tag()              {}

// Arg is a positional Display argument: a sibling field reference or a literal
type Arg struct {
	Field string
	Lit   Value
	At    diag.Span
}

// Display draws a label followed by the field's text or a formatted string
type Display struct {
	base
	Label   Value
	Display Value // format string
	Args    []Arg
}

type Checkbox struct {
	base
	Label Value
	Catch Value
}

type Input struct {
	base
	Label    Value
	Step     Value
	StepFast Value
	Format   Value
	Flags    Value
	Catch    Value
	Map      Value
}

type Drag struct {
	base
	Label  Value
	Min    Value
	Max    Value
	Speed  Value
	Power  Value
	Format Value
	Catch  Value
	Map    Value
}

type Slider struct {
	base
	Min    Value
	Max    Value
	Label  Value
	Format Value
	Power  Value
	Catch  Value
	Map    Value
}

type Button struct {
	base
	Label Value
	Size  Value
	Catch Value
}

// Nested draws a field whose type is itself an annotated aggregate
type Nested struct {
	base
	Catch Value
	Map   Value
}

type Separator struct{ base }

type NewLine struct{ base }

type Text struct {
	base
	Lit Value
}

type TextWrap struct {
	base
	Lit Value
}

// Bullet draws a bullet point, with text when given
type Bullet struct {
	base
	Text Value
}

// BulletParent draws a bare bullet that the following tag sits beside
type BulletParent struct{ base }

type Progress struct {
	base
	Overlay Value
	Size    Value
	Map     Value
}

type Image struct {
	base
	Size   Value
	Border Value
	Tint   Value
	UV0    Value `param:"uv0"`
	UV1    Value `param:"uv1"`
}

type ImageButton struct {
	base
	Size         Value
	Background   Value
	FramePadding Value
	UV0          Value `param:"uv0"`
	UV1          Value `param:"uv1"`
	Catch        Value
}

type ColorEdit struct {
	base
	Label Value
	Flags Value
	Catch Value
}

type ColorPicker struct {
	base
	Label Value
	Flags Value
	Catch Value
}

type ColorButton struct {
	base
	Label Value
	Flags Value
	Size  Value
	Catch Value
}

// TreeNode draws a collapsible node whose body is the Node tree
type TreeNode struct {
	base
	Label Value
	Flags Value
	Cond  Value
	Node  Tree
}

// Vars scopes Content inside color and style variable pushes
type Vars struct {
	base
	Style   Value
	Color   Value
	Content Tree
}

// None draws nothing
type None struct{ base }

func (*Display) Name() string      { return "display" }
func (*Checkbox) Name() string     { return "checkbox" }
func (*Input) Name() string        { return "input" }
func (*Drag) Name() string         { return "drag" }
func (*Slider) Name() string       { return "slider" }
func (*Button) Name() string       { return "button" }
func (*Nested) Name() string       { return "nested" }
func (*Separator) Name() string    { return "separator" }
func (*NewLine) Name() string      { return "new_line" }
func (*Text) Name() string         { return "text" }
func (*TextWrap) Name() string     { return "text_wrap" }
func (*Bullet) Name() string       { return "bullet" }
func (*BulletParent) Name() string { return "bullet_parent" }
func (*Progress) Name() string     { return "progress" }
func (*Image) Name() string        { return "image" }
func (*ImageButton) Name() string  { return "image_button" }
func (*ColorEdit) Name() string    { return "color_edit" }
func (*ColorPicker) Name() string  { return "color_picker" }
func (*ColorButton) Name() string  { return "color_button" }
func (*TreeNode) Name() string     { return "tree" }
func (*Vars) Name() string         { return "vars" }
func (*None) Name() string         { return "none" }

func (t *Checkbox) CatchName() Value    { return t.Catch }
func (t *Input) CatchName() Value       { return t.Catch }
func (t *Drag) CatchName() Value        { return t.Catch }
func (t *Slider) CatchName() Value      { return t.Catch }
func (t *Button) CatchName() Value      { return t.Catch }
func (t *Nested) CatchName() Value      { return t.Catch }
func (t *ImageButton) CatchName() Value { return t.Catch }
func (t *ColorEdit) CatchName() Value   { return t.Catch }
func (t *ColorPicker) CatchName() Value { return t.Catch }
func (t *ColorButton) CatchName() Value { return t.Catch }

// Walk calls fn for every tag in the tree, depth first, descending into
// TreeNode and Vars children. It stops at the first error.
func Walk(tree Tree, fn func(Tag) error) error {
	for _, t := range tree {
		if err := fn(t); err != nil {
			return err
		}
		var child Tree
		switch t := t.(type) {
		case *TreeNode:
			child = t.Node
		case *Vars:
			child = t.Content
		}
		if err := Walk(child, fn); err != nil {
			return err
		}
	}
	return nil
}

// Conditions accepted by tree(cond = ...)
var Conditions = []string{"Always", "Once", "FirstUseEver", "Appearing"}

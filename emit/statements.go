package emit

import (
	"strconv"
	"strings"

	"github.com/teranos/uibind/diag"
	"github.com/teranos/uibind/model"
	"github.com/teranos/uibind/tag"
)

// field emits the statements of one field's tag tree (pass 2)
func (c *Context) field(f *model.Field) error {
	for _, t := range f.Tree {
		if err := c.tag(f, t); err != nil {
			return f.Source.Error(err)
		}
	}
	return nil
}

func (c *Context) tree(f *model.Field, tree tag.Tree) error {
	for _, t := range tree {
		if err := c.tag(f, t); err != nil {
			return err
		}
	}
	return nil
}

// catch assigns an interaction result to its event, OR-ing with earlier results
func (c *Context) catch(f *model.Field, t tag.Catcher, call string) {
	ev, _ := c.schema.Lookup(t.CatchName().Or(f.Name).Str)
	ref := events + "." + ev.GoName
	c.line("%s = %s || %s", ref, call, ref)
}

func (c *Context) tag(f *model.Field, t tag.Tag) error {
	h := hostV

	switch t := t.(type) {
	case *tag.Checkbox:
		c.catch(f, t, h+".Checkbox("+label(t.Label, f)+", &"+fieldRef(f)+")")

	case *tag.Input:
		c.catch(f, t, c.input(f, t))

	case *tag.Drag:
		opts := c.options("DragOptions",
			"Speed", val(t.Speed),
			"Min", val(t.Min),
			"Max", val(t.Max),
			"Format", val(t.Format),
			"Power", val(t.Power),
		)
		c.catch(f, t, c.numeric("Drag", f, t.Label, t.Map, "", opts))

	case *tag.Slider:
		opts := c.options("SliderOptions",
			"Format", val(t.Format),
			"Power", val(t.Power),
		)
		bounds := t.Min.Go() + ", " + t.Max.Go() + ", "
		c.catch(f, t, c.numeric("Slider", f, t.Label, t.Map, bounds, opts))

	case *tag.Button:
		c.catch(f, t, h+".Button("+strconv.Quote(t.Label.Str)+", "+provide(t.Size, c.hostFn("Vec2{}"))+")")

	case *tag.Nested:
		return c.nested(f, t)

	case *tag.ImageButton:
		opts := c.options("ImageButtonOptions",
			"Background", fn(t.Background),
			"FramePadding", val(t.FramePadding),
			"Padded", boolIf(t.FramePadding.IsSet()),
			"UV0", fn(t.UV0),
			"UV1", fn(t.UV1),
		)
		c.catch(f, t, h+".ImageButton("+c.texture(f)+", "+fn(t.Size)+", "+opts+")")

	case *tag.Image:
		opts := c.options("ImageOptions",
			"Border", fn(t.Border),
			"Tint", fn(t.Tint),
			"UV0", fn(t.UV0),
			"UV1", fn(t.UV1),
		)
		c.line("%s.Image(%s, %s, %s)", h, c.texture(f), fn(t.Size), opts)

	case *tag.ColorEdit:
		c.catch(f, t, h+".ColorEdit("+label(t.Label, f)+", "+sequence(f)+", "+provide(t.Flags, "0")+")")

	case *tag.ColorPicker:
		c.catch(f, t, h+".ColorPicker("+label(t.Label, f)+", "+sequence(f)+", "+provide(t.Flags, "0")+")")

	case *tag.ColorButton:
		c.catch(f, t, h+".ColorButton("+label(t.Label, f)+", "+sequence(f)+", "+
			provide(t.Flags, "0")+", "+provide(t.Size, c.hostFn("Vec2{}"))+")")

	case *tag.Progress:
		fraction := "float32(" + fieldRef(f) + ")"
		if t.Map.IsSet() {
			fraction = t.Map.Str + "(&" + fieldRef(f) + ")"
		}
		c.line("%s.ProgressBar(%s, %s, %s)", h, fraction, provide(t.Size, c.hostFn("Vec2{}")), strconv.Quote(t.Overlay.Str))

	case *tag.TreeNode:
		opts := c.options("TreeOptions",
			"Flags", fn(t.Flags),
			"Cond", cond(c, t.Cond),
		)
		c.line("if %s.TreeNode(%s, %s) {", h, label(t.Label, f), opts)
		c.indent++
		if err := c.tree(f, t.Node); err != nil {
			return err
		}
		c.line("%s.TreePop()", h)
		c.indent--
		c.line("}")

	case *tag.Vars:
		return c.vars(f, t)

	case *tag.Display:
		return c.display(f, t)

	case *tag.Text:
		c.line("%s.Text(%s)", h, t.Lit.Go())

	case *tag.TextWrap:
		c.line("%s.TextWrapped(%s)", h, t.Lit.Go())

	case *tag.Bullet:
		if t.Text.IsSet() {
			c.line("%s.BulletText(%s)", h, t.Text.Go())
		} else {
			c.line("%s.Bullet()", h)
		}

	case *tag.BulletParent:
		c.line("%s.Bullet()", h)

	case *tag.Separator:
		c.line("%s.Separator()", h)

	case *tag.NewLine:
		c.line("%s.NewLine()", h)

	case *tag.None:
	}
	return nil
}

// input picks the text, sequence or scalar form of an input widget
func (c *Context) input(f *model.Field, t *tag.Input) string {
	if f.Type.Kind == model.String && !t.Map.IsSet() {
		return hostV + ".InputText(" + label(t.Label, f) + ", &" + fieldRef(f) + ", " + provide(t.Flags, "0") + ")"
	}
	opts := c.options("InputOptions",
		"Step", val(t.Step),
		"StepFast", val(t.StepFast),
		"Format", val(t.Format),
		"Flags", fn(t.Flags),
	)
	return c.numeric("Input", f, t.Label, t.Map, "", opts)
}

// numeric renders a call to the generic scalar helper or its N variant
func (c *Context) numeric(widget string, f *model.Field, lbl, mapFn tag.Value, extra, opts string) string {
	target := pointer(f, mapFn)
	if !mapFn.IsSet() && f.Type.Sequence() {
		widget += "N"
		target = sequence(f)
	}
	return c.hostFn(widget) + "(" + hostV + ", " + label(lbl, f) + ", " + target + ", " + extra + opts + ")"
}

func (c *Context) texture(f *model.Field) string {
	return c.hostFn("TextureID") + "(" + fieldRef(f) + ")"
}

func (c *Context) nested(f *model.Field, t *tag.Nested) error {
	ev, _ := c.schema.Lookup(t.CatchName().Or(f.Name).Str)
	method := c.opts.method()
	ref := events + "." + ev.GoName

	if t.Map.IsSet() {
		c.line("%s = %s(&%s).%s(%s)", ref, t.Map.Str, fieldRef(f), method, hostV)
		return nil
	}
	if f.Type.Kind == model.Pointer {
		c.line("if %s != nil {", fieldRef(f))
		c.indent++
		c.line("%s = %s.%s(%s)", ref, fieldRef(f), method, hostV)
		c.indent--
		c.line("}")
		return nil
	}
	c.line("%s = %s.%s(%s)", ref, fieldRef(f), method, hostV)
	return nil
}

// vars wraps the content in deferred style and color pops inside a closure so
// they are released when the block ends. Styles are the outer scope: pushed
// first, popped last.
func (c *Context) vars(f *model.Field, t *tag.Vars) error {
	if !t.Color.IsSet() && !t.Style.IsSet() {
		return c.tree(f, t.Content)
	}

	c.line("func() {")
	c.indent++
	if t.Style.IsSet() {
		c.line("defer %s(%s, %s)()", c.hostFn("PushStyles"), hostV, fn(t.Style))
	}
	if t.Color.IsSet() {
		c.line("defer %s(%s, %s)()", c.hostFn("PushColors"), hostV, fn(t.Color))
	}
	if err := c.tree(f, t.Content); err != nil {
		return err
	}
	c.indent--
	c.line("}()")
	return nil
}

func (c *Context) display(f *model.Field, t *tag.Display) error {
	var text string
	switch {
	case t.Display.IsSet():
		args := []string{t.Display.Go()}
		if len(t.Args) == 0 {
			args = append(args, fieldRef(f))
		}
		for _, a := range t.Args {
			if a.Field == "" {
				args = append(args, a.Lit.Go())
				continue
			}
			sibling, ok := c.agg.Field(a.Field)
			if !ok {
				return diag.New(diag.UnexpectedParam, a.At,
					"display argument %q is not a field of %s", a.Field, c.agg.Name)
			}
			args = append(args, fieldRef(sibling))
		}
		c.needFmt = true
		text = "fmt.Sprintf(" + strings.Join(args, ", ") + ")"

	case f.Type.Kind == model.String && f.Type.Named == "":
		text = fieldRef(f)

	default:
		c.needFmt = true
		text = "fmt.Sprint(" + fieldRef(f) + ")"
	}

	c.line("%s.LabelText(%s, %s)", hostV, label(t.Label, f), text)
	return nil
}

func cond(c *Context, v tag.Value) string {
	if !v.IsSet() {
		return ""
	}
	return c.hostFn("Cond" + v.Str)
}

func boolIf(b bool) string {
	if b {
		return "true"
	}
	return ""
}

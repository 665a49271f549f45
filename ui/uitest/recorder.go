// Package uitest provides a ui.Host that records draw calls for tests.
package uitest

import (
	"fmt"
	"strings"

	"github.com/teranos/uibind/ui"
)

// Call is one recorded host call
type Call struct {
	Op    string
	Label string
	Args  string
}

func (c Call) String() string {
	var sb strings.Builder
	sb.WriteString(c.Op)
	if c.Label != "" {
		fmt.Fprintf(&sb, " %q", c.Label)
	}
	if c.Args != "" {
		sb.WriteString(" ")
		sb.WriteString(c.Args)
	}
	return sb.String()
}

// Recorder implements ui.Host. Widgets whose label is in Fire report an
// interaction: checkboxes toggle, numeric widgets add Step to every element,
// buttons report a click. Tree nodes are open unless listed in Closed.
type Recorder struct {
	Calls  []Call
	Fire   map[string]bool
	Closed map[string]bool
	Step   float64

	styles int
	colors int
	depth  int
}

// New creates a recorder firing the given labels
func New(fire ...string) *Recorder {
	r := &Recorder{Fire: map[string]bool{}, Closed: map[string]bool{}, Step: 1}
	for _, l := range fire {
		r.Fire[l] = true
	}
	return r
}

var _ ui.Host = (*Recorder)(nil)

func (r *Recorder) record(op, label, format string, args ...interface{}) {
	r.Calls = append(r.Calls, Call{Op: op, Label: label, Args: fmt.Sprintf(format, args...)})
}

func (r *Recorder) fired(label string) bool {
	return r.Fire[label]
}

// Ops returns the recorded calls rendered as strings
func (r *Recorder) Ops() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.String()
	}
	return out
}

// Balanced reports whether every push and tree node was popped
func (r *Recorder) Balanced() bool {
	return r.styles == 0 && r.colors == 0 && r.depth == 0
}

// Reset clears recorded calls
func (r *Recorder) Reset() {
	r.Calls = nil
}

func (r *Recorder) bump(data ui.Scalars, clamp func(float64) float64) {
	for i := 0; i < data.Len(); i++ {
		data.SetFloat(i, clamp(data.Float(i)+r.Step))
	}
}

func (r *Recorder) Checkbox(label string, v *bool) bool {
	r.record("Checkbox", label, "%t", *v)
	if r.fired(label) {
		*v = !*v
		return true
	}
	return false
}

func (r *Recorder) InputScalars(label string, data ui.Scalars, opts ui.InputOptions) bool {
	opts = opts.Resolve(data.Kind())
	r.record("InputScalars", label, "n=%d step=%g format=%s", data.Len(), opts.Step, opts.Format)
	if r.fired(label) {
		r.bump(data, func(f float64) float64 { return f })
		return true
	}
	return false
}

func (r *Recorder) InputText(label string, v *string, flags ui.InputFlags) bool {
	r.record("InputText", label, "%q", *v)
	if r.fired(label) {
		*v += "!"
		return true
	}
	return false
}

func (r *Recorder) DragScalars(label string, data ui.Scalars, opts ui.DragOptions) bool {
	opts = opts.Resolve(data.Kind())
	r.record("DragScalars", label, "n=%d speed=%g bounded=%t min=%g max=%g",
		data.Len(), opts.Speed, opts.Bounded(), opts.Min, opts.Max)
	if r.fired(label) {
		r.bump(data, opts.Clamp)
		return true
	}
	return false
}

func (r *Recorder) SliderScalars(label string, data ui.Scalars, min, max float64, opts ui.SliderOptions) bool {
	opts = opts.Resolve(data.Kind())
	r.record("SliderScalars", label, "n=%d min=%g max=%g format=%s", data.Len(), min, max, opts.Format)
	if r.fired(label) {
		r.bump(data, func(f float64) float64 {
			if f > max {
				return max
			}
			if f < min {
				return min
			}
			return f
		})
		return true
	}
	return false
}

func (r *Recorder) Button(label string, size ui.Vec2) bool {
	r.record("Button", label, "%gx%g", size.X, size.Y)
	return r.fired(label)
}

func (r *Recorder) ColorEdit(label string, col []float32, flags ui.ColorEditFlags) bool {
	r.record("ColorEdit", label, "n=%d", len(col))
	return r.fired(label)
}

func (r *Recorder) ColorPicker(label string, col []float32, flags ui.ColorEditFlags) bool {
	r.record("ColorPicker", label, "n=%d", len(col))
	return r.fired(label)
}

func (r *Recorder) ColorButton(label string, col []float32, flags ui.ColorEditFlags, size ui.Vec2) bool {
	r.record("ColorButton", label, "n=%d", len(col))
	return r.fired(label)
}

func (r *Recorder) Image(texture ui.TextureID, size ui.Vec2, opts ui.ImageOptions) {
	r.record("Image", "", "%d %gx%g", texture, size.X, size.Y)
}

func (r *Recorder) ImageButton(texture ui.TextureID, size ui.Vec2, opts ui.ImageButtonOptions) bool {
	opts = opts.Resolve()
	label := fmt.Sprintf("texture:%d", texture)
	r.record("ImageButton", label, "padding=%d", opts.FramePadding)
	return r.fired(label)
}

func (r *Recorder) ProgressBar(fraction float32, size ui.Vec2, overlay string) {
	r.record("ProgressBar", overlay, "%.2f", fraction)
}

func (r *Recorder) TreeNode(label string, opts ui.TreeOptions) bool {
	r.record("TreeNode", label, "cond=%s", opts.Cond)
	if r.Closed[label] {
		return false
	}
	r.depth++
	return true
}

func (r *Recorder) TreePop() {
	r.depth--
	r.record("TreePop", "", "")
}

func (r *Recorder) Bullet() {
	r.record("Bullet", "", "")
}

func (r *Recorder) BulletText(text string) {
	r.record("BulletText", text, "")
}

func (r *Recorder) PushStyleVar(v ui.StyleVarValue) {
	r.styles++
	r.record("PushStyleVar", "", "%d", v.Var)
}

func (r *Recorder) PopStyleVar(count int) {
	r.styles -= count
	r.record("PopStyleVar", "", "%d", count)
}

func (r *Recorder) PushStyleColor(c ui.ColorVar) {
	r.colors++
	r.record("PushStyleColor", "", "%d", c.Color)
}

func (r *Recorder) PopStyleColor(count int) {
	r.colors -= count
	r.record("PopStyleColor", "", "%d", count)
}

func (r *Recorder) LabelText(label, text string) {
	r.record("LabelText", label, "%q", text)
}

func (r *Recorder) Text(text string) {
	r.record("Text", text, "")
}

func (r *Recorder) TextWrapped(text string) {
	r.record("TextWrapped", text, "")
}

func (r *Recorder) Separator() {
	r.record("Separator", "", "")
}

func (r *Recorder) NewLine() {
	r.record("NewLine", "", "")
}

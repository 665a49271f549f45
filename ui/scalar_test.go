package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/uibind/ui"
	"github.com/teranos/uibind/ui/uitest"
)

type level int8

func TestViewKinds(t *testing.T) {
	assert.Equal(t, ui.S8, ui.View([]level{1}).Kind())
	assert.Equal(t, ui.U8, ui.View([]uint8{1}).Kind())
	assert.Equal(t, ui.S32, ui.View([]int32{1}).Kind())
	assert.Equal(t, ui.U64, ui.View([]uint64{1}).Kind())
	assert.Equal(t, ui.F32, ui.View([]float32{1}).Kind())
	assert.Equal(t, ui.F64, ui.View([]float64{1}).Kind())
}

func TestViewWritesThrough(t *testing.T) {
	data := []float32{1, 2, 3}
	v := ui.View(data)
	require.Equal(t, 3, v.Len())

	v.SetFloat(1, 7.5)
	assert.Equal(t, []float32{1, 7.5, 3}, data)
	assert.Equal(t, 3.0, v.Float(2))
}

func TestScalarHelpers(t *testing.T) {
	h := uitest.New("age", "pos", "speed", "vol")

	age := int32(40)
	assert.True(t, ui.Slider(h, "age", &age, 0, 41, ui.SliderOptions{}))
	assert.Equal(t, int32(41), age)
	assert.True(t, ui.Slider(h, "age", &age, 0, 41, ui.SliderOptions{}))
	assert.Equal(t, int32(41), age, "slider clamps to max")

	pos := [3]float32{0, 1, 2}
	assert.True(t, ui.InputN(h, "pos", pos[:], ui.InputOptions{}))
	assert.Equal(t, [3]float32{1, 2, 3}, pos)

	speed := 0.5
	assert.True(t, ui.Drag(h, "speed", &speed, ui.DragOptions{Min: 0, Max: 1}))
	assert.Equal(t, 1.0, speed)

	vol := []uint8{9, 10}
	assert.True(t, ui.DragN(h, "vol", vol, ui.DragOptions{}))
	assert.Equal(t, []uint8{10, 11}, vol)

	quiet := 3
	assert.False(t, ui.Input(h, "quiet", &quiet, ui.InputOptions{}))
	assert.Equal(t, 3, quiet)

	assert.Equal(t, []string{
		`SliderScalars "age" n=1 min=0 max=41 format=%d`,
		`SliderScalars "age" n=1 min=0 max=41 format=%d`,
		`InputScalars "pos" n=3 step=0 format=%.3f`,
		`DragScalars "speed" n=1 speed=1 bounded=true min=0 max=1`,
		`DragScalars "vol" n=2 speed=1 bounded=false min=0 max=0`,
		`InputScalars "quiet" n=1 step=0 format=%d`,
	}, h.Ops())
}

func TestPushScopes(t *testing.T) {
	h := uitest.New()

	func() {
		defer ui.PushStyles(h, []ui.StyleVarValue{{Var: 3}})()
		defer ui.PushColors(h, []ui.ColorVar{{Color: 1}, {Color: 2}})()
		h.Text("inside")
	}()

	assert.True(t, h.Balanced())
	assert.Equal(t, []string{
		"PushStyleVar 3",
		"PushStyleColor 1",
		"PushStyleColor 2",
		`Text "inside"`,
		"PopStyleColor 2",
		"PopStyleVar 1",
	}, h.Ops())

	h.Reset()
	ui.PushStyles(h, nil)()
	assert.Empty(t, h.Ops())
}

func TestOptionDefaults(t *testing.T) {
	d := ui.DragOptions{}.Resolve(ui.F32)
	assert.Equal(t, 1.0, d.Speed)
	assert.Equal(t, "%.3f", d.Format)
	assert.False(t, d.Bounded())
	assert.Equal(t, 42.0, d.Clamp(42))

	s := ui.SliderOptions{Format: "%.1f"}.Resolve(ui.S32)
	assert.Equal(t, "%.1f", s.Format)
	assert.Equal(t, 1.0, s.Power)

	img := ui.ImageOptions{}.Resolve()
	assert.Equal(t, ui.Vec4{X: 1, Y: 1, Z: 1, W: 1}, img.Tint)
	assert.Equal(t, ui.Vec2{X: 1, Y: 1}, img.UV1)

	assert.Equal(t, -1, ui.ImageButtonOptions{}.Resolve().FramePadding)
	assert.Equal(t, 0, ui.ImageButtonOptions{Padded: true}.Resolve().FramePadding)
	assert.Equal(t, "FirstUseEver", ui.CondFirstUseEver.String())
}

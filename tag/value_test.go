package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueGo(t *testing.T) {
	assert.Equal(t, "-3", Value{Kind: Int, Int: -3}.Go())
	assert.Equal(t, "0.25", Value{Kind: Float, Float: 0.25}.Go())
	assert.Equal(t, "1e+21", Value{Kind: Float, Float: 1e21}.Go())
	assert.Equal(t, `"a\"b"`, Value{Kind: Str, Str: `a"b`}.Go())
	assert.Equal(t, "", Value{}.Go())
}

func TestValueOr(t *testing.T) {
	assert.Equal(t, "Age", Value{}.Or("Age").Str)
	assert.Equal(t, "Years", Value{Kind: Str, Str: "Years"}.Or("Age").Str)
	assert.False(t, Value{}.IsSet())
	assert.Nil(t, Value{}.Interface())
}

func TestIsFuncName(t *testing.T) {
	assert.True(t, isFuncName("sizeOf"))
	assert.True(t, isFuncName("ui.DefaultSize"))
	assert.False(t, isFuncName(""))
	assert.False(t, isFuncName("a.b.c"))
	assert.False(t, isFuncName("9lives"))
	assert.False(t, isFuncName("with space"))
}

func TestUnsetKind(t *testing.T) {
	assert.Equal(t, Unset, Value{}.Kind)
	assert.Equal(t, "none", Unset.String())
	assert.True(t, Value{Kind: Int}.IsSet())

	var tg Tag = &None{}
	assert.Equal(t, "none", tg.Name())
}

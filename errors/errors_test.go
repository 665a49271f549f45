package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrapf(ErrPackageLoad, "loading %s", "./widgets")

	assert.True(t, Is(err, ErrPackageLoad))
	assert.Contains(t, err.Error(), "loading ./widgets")
	assert.Contains(t, err.Error(), "package load failed")
}

func TestIsStale(t *testing.T) {
	assert.False(t, IsStale(nil))
	assert.False(t, IsStale(New("other")))
	assert.True(t, IsStale(Wrap(ErrStale, "widgets_imgui.go")))
}

func TestIsNoAggregates(t *testing.T) {
	assert.False(t, IsNoAggregates(nil))
	assert.True(t, IsNoAggregates(Wrapf(ErrNoAggregates, "package %s", "demo")))
}

func TestNewUnknownTypeError(t *testing.T) {
	err := NewUnknownTypeError("Settigns", "example.com/demo")

	assert.True(t, Is(err, ErrUnknownType))
	assert.Contains(t, err.Error(), "Settigns in example.com/demo")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], "--types")
}

type positioned struct {
	msg string
}

func (e *positioned) Error() string {
	return e.msg
}

func TestAsThroughWrap(t *testing.T) {
	original := &positioned{msg: "unexpected parameter"}
	wrapped := Wrap(original, "aggregate Settings")

	var target *positioned
	require.True(t, As(wrapped, &target))
	assert.Equal(t, "unexpected parameter", target.msg)
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
}

func TestErrorChaining(t *testing.T) {
	err := Wrap(ErrStale, "widgets_imgui.go")
	err = WithHint(err, "run 'uibind generate'")
	err = WithDetail(err, "3 lines differ")
	err = Wrap(err, "check failed")

	assert.True(t, Is(err, ErrStale))
	assert.Contains(t, err.Error(), "check failed")
	assert.Contains(t, GetAllHints(err), "run 'uibind generate'")
	assert.Contains(t, GetAllDetails(err), "3 lines differ")
}

func ExampleWrap() {
	err := Wrap(ErrNoAggregates, "package demo")
	fmt.Println(err)
	// Output: package demo: no annotated aggregates
}

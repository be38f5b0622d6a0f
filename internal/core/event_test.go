package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceSource(t *testing.T) {
	src := NewSliceSource(UpdateEvent{DT: 0.5}, PointerMoveEvent{X: 1, Y: 2})
	assert.Equal(t, 2, src.Remaining())

	ev, ok := src.Next()
	assert.True(t, ok)
	assert.Equal(t, UpdateEvent{DT: 0.5}, ev)

	ev, ok = src.Next()
	assert.True(t, ok)
	assert.Equal(t, PointerMoveEvent{X: 1, Y: 2}, ev)

	ev, ok = src.Next()
	assert.False(t, ok)
	assert.Nil(t, ev)
	assert.Zero(t, src.Remaining())
}

func TestButtonStrings(t *testing.T) {
	assert.Equal(t, "Space", KeyboardButton{Key: "Space"}.String())
	assert.Equal(t, "Left", MouseButton{Button: "Left"}.String())
	assert.Equal(t, "0:FaceA", ControllerButton{ID: 0, Button: "FaceA"}.String())
}

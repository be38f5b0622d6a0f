package rocket

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/rocket/internal/core"
)

func TestOnMoveKeepsPlayerY(t *testing.T) {
	w := worldWith(player(100, 645, core.ColorGreen))
	in := NewInputAdapter(nil)

	in.OnMove(w, 400, 50)

	assert.Equal(t, core.NewRect(400, 645, 25, 25), w.Player.Rect)
	x, y := in.Cursor()
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 50.0, y)
}

func TestOnReleaseMouseCyclesColor(t *testing.T) {
	w := worldWith(player(0, 645, core.ColorGreen))
	var diag bytes.Buffer
	in := NewInputAdapter(&diag)

	in.OnRelease(w, core.MouseButton{Button: "Left"})
	assert.Equal(t, core.ColorBlue, w.Player.Color)

	in.OnRelease(w, core.MouseButton{Button: "Right"})
	in.OnRelease(w, core.MouseButton{Button: "Middle"})
	assert.Equal(t, core.ColorGreen, w.Player.Color)
	assert.Empty(t, diag.String(), "mouse releases are not reported")
}

func TestOnReleaseKeyboardReports(t *testing.T) {
	w := worldWith(player(0, 645, core.ColorGreen))
	var diag bytes.Buffer
	in := NewInputAdapter(&diag)

	in.OnRelease(w, core.KeyboardButton{Key: "Space"})
	in.OnRelease(w, core.KeyboardButton{Key: "A"})

	assert.Equal(t, "Released keyboard key 'Space'\nReleased keyboard key 'A'\n", diag.String())
	assert.Equal(t, core.ColorGreen, w.Player.Color)
	assert.Equal(t, 0.0, w.Player.Rect.X)
}

func TestOnReleaseControllerReports(t *testing.T) {
	w := worldWith(player(0, 645, core.ColorRed))
	var diag bytes.Buffer
	in := NewInputAdapter(&diag)

	in.OnRelease(w, core.ControllerButton{ID: 1, Button: "3"})

	assert.Equal(t, "Released controller button '1:3'\n", diag.String())
	assert.Equal(t, core.ColorRed, w.Player.Color)
}

package rocket

import (
	"fmt"
	"io"

	"github.com/vovakirdan/rocket/internal/core"
)

// InputAdapter applies pointer and button input to the world.
// It only ever touches the player's x position and color.
type InputAdapter struct {
	diag             io.Writer // Receives the release diagnostics, one line each
	cursorX, cursorY float64
}

// NewInputAdapter creates an adapter writing diagnostics to diag.
// A nil writer discards them.
func NewInputAdapter(diag io.Writer) *InputAdapter {
	if diag == nil {
		diag = io.Discard
	}
	return &InputAdapter{diag: diag}
}

// OnMove moves the player horizontally to x. The player's y is fixed,
// so y is only remembered as the last cursor position.
func (a *InputAdapter) OnMove(w *World, x, y float64) {
	a.cursorX, a.cursorY = x, y
	w.Player.Rect.X = x
}

// OnRelease handles a button release. Mouse buttons cycle the player's
// color; keyboard and controller releases are only reported.
func (a *InputAdapter) OnRelease(w *World, b core.Button) {
	switch b := b.(type) {
	case core.KeyboardButton:
		fmt.Fprintf(a.diag, "Released keyboard key '%s'\n", b)
	case core.MouseButton:
		w.Player.NextColor()
	case core.ControllerButton:
		fmt.Fprintf(a.diag, "Released controller button '%s'\n", b)
	}
}

// Cursor returns the last pointer position seen.
func (a *InputAdapter) Cursor() (x, y float64) {
	return a.cursorX, a.cursorY
}

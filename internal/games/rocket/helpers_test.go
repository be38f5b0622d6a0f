package rocket

import (
	"fmt"
	"image"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rocket/internal/core"
)

// fakeTexture is a named texture of a fixed size.
type fakeTexture struct {
	name string
	w, h int
}

func (t fakeTexture) Bounds() image.Rectangle { return image.Rect(0, 0, t.w, t.h) }

// recordingSurface logs every draw call as a string.
type recordingSurface struct {
	calls []string
}

func (s *recordingSurface) Clear(c core.Color) {
	s.calls = append(s.calls, fmt.Sprintf("clear %v", c))
}

func (s *recordingSurface) DrawTexture(t core.Texture, tx, ty float64) {
	name := "?"
	if ft, ok := t.(fakeTexture); ok {
		name = ft.name
	}
	s.calls = append(s.calls, fmt.Sprintf("texture %s %g,%g", name, tx, ty))
}

func (s *recordingSurface) FillRect(c core.Color, r core.Rect) {
	s.calls = append(s.calls, fmt.Sprintf("fill %v %g,%g %gx%g", c, r.X, r.Y, r.W, r.H))
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// worldWith builds a world with default params and the given bars.
func worldWith(player core.ColoredRect, bars ...core.ColoredRect) *World {
	return &World{
		Player:   player,
		Bars:     bars,
		BGOffset: [2]float64{-720, 0},
		Params:   DefaultParams(),
	}
}

func bar(x, y, w, h float64, c core.Color) core.ColoredRect {
	return core.NewColoredRect().WithSize(w, h).WithColor(c).WithPosition(x, y)
}

func player(x, y float64, c core.Color) core.ColoredRect {
	return bar(x, y, 25, 25, c)
}

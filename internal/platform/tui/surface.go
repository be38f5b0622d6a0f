package tui

import (
	"image"
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/rocket/internal/core"
)

// Glyphs used for cell rendering.
const (
	FillChar = '█'
	StarChar = '.'
)

// Starfield is a background tile for terminals: a fixed scatter of stars
// in world pixels. It stands in for the window host's image texture.
type Starfield struct {
	width, height int
	stars         []image.Point
}

// NewStarfield creates a tile of the given size in world pixels. The
// layout only depends on seed.
func NewStarfield(width, height, count int, seed uint64) *Starfield {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	stars := make([]image.Point, count)
	for i := range stars {
		stars[i] = image.Pt(rng.IntN(max(width, 1)), rng.IntN(max(height, 1)))
	}
	return &Starfield{width: width, height: height, stars: stars}
}

// Bounds implements core.Texture.
func (s *Starfield) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// Stars returns the star positions in world pixels.
func (s *Starfield) Stars() []image.Point {
	return s.stars
}

// cellSurface draws world-pixel geometry onto a character Screen.
type cellSurface struct {
	screen *core.Screen
	worldW float64
	worldH float64
}

func newCellSurface(screen *core.Screen, worldW, worldH int) *cellSurface {
	return &cellSurface{screen: screen, worldW: float64(worldW), worldH: float64(worldH)}
}

// scale returns cells per world pixel on each axis.
func (s *cellSurface) scale() (float64, float64) {
	return float64(s.screen.Width()) / s.worldW, float64(s.screen.Height()) / s.worldH
}

func (s *cellSurface) Clear(c core.Color) {
	s.screen.Fill(' ', c)
}

// DrawTexture plots starfield tiles; other textures have no cell form.
func (s *cellSurface) DrawTexture(t core.Texture, tx, ty float64) {
	field, ok := t.(*Starfield)
	if !ok {
		return
	}
	sx, sy := s.scale()
	for _, p := range field.stars {
		x := int(math.Floor((float64(p.X) + tx) * sx))
		y := int(math.Floor((float64(p.Y) + ty) * sy))
		s.screen.Set(x, y, StarChar, core.ColorGrey)
	}
}

// FillRect covers every cell the rectangle touches, at least one cell for
// a non-empty rectangle.
func (s *cellSurface) FillRect(c core.Color, r core.Rect) {
	if r.W <= 0 || r.H <= 0 || c == core.ColorTransparent {
		return
	}
	sx, sy := s.scale()
	x0 := int(math.Floor(r.X * sx))
	y0 := int(math.Floor(r.Y * sy))
	x1 := max(int(math.Ceil(r.Right()*sx)), x0+1)
	y1 := max(int(math.Ceil(r.Bottom()*sy)), y0+1)
	s.screen.FillCells(x0, y0, x1, y1, FillChar, c)
}

// toWorld converts a cell position to world pixels.
func (s *cellSurface) toWorld(col, row int) (float64, float64) {
	sx, sy := s.scale()
	if sx == 0 || sy == 0 {
		return 0, 0
	}
	x := core.ClampF(float64(col)/sx, 0, s.worldW)
	y := core.ClampF(float64(row)/sy, 0, s.worldH)
	return x, y
}

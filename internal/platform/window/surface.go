package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/rocket/internal/core"
)

// imageSurface draws onto the ebiten screen image for the duration of a
// single Draw call.
type imageSurface struct {
	dst *ebiten.Image
	op  ebiten.DrawImageOptions
}

func (s *imageSurface) Clear(c core.Color) {
	s.dst.Fill(c)
}

// DrawTexture only draws ebiten images; other textures are skipped.
func (s *imageSurface) DrawTexture(t core.Texture, tx, ty float64) {
	img, ok := t.(*ebiten.Image)
	if !ok {
		return
	}
	s.op.GeoM.Reset()
	s.op.GeoM.Translate(tx, ty)
	s.dst.DrawImage(img, &s.op)
}

func (s *imageSurface) FillRect(c core.Color, r core.Rect) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

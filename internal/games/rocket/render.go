package rocket

import "github.com/vovakirdan/rocket/internal/core"

// Renderer draws the world onto a host surface.
type Renderer struct {
	backgrounds [2]core.Texture
}

// NewRenderer creates a renderer for the two background tiles.
// Either tile may be nil, in which case it is skipped.
func NewRenderer(tile0, tile1 core.Texture) *Renderer {
	return &Renderer{backgrounds: [2]core.Texture{tile0, tile1}}
}

// Render draws one frame: black clear, both background tiles at their
// offsets, the player, then every bar in order. The world is not modified.
func (r *Renderer) Render(w *World, dst core.Surface) {
	if dst == nil {
		return
	}

	dst.Clear(core.ColorBlack)

	for i, tile := range r.backgrounds {
		if tile != nil {
			dst.DrawTexture(tile, 0, w.BGOffset[i])
		}
	}

	dst.FillRect(w.Player.Color, w.Player.Rect)

	for _, bar := range w.Bars {
		dst.FillRect(bar.Color, bar.Rect)
	}
}

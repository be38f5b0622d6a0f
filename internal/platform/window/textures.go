package window

import (
	"fmt"
	_ "image/jpeg" // nebula.jpg
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LoadBackgrounds loads the image at path twice, into two independent
// textures, one per scrolling background tile.
func LoadBackgrounds(path string) (*ebiten.Image, *ebiten.Image, error) {
	tile0, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load texture %s: %w", path, err)
	}
	tile1, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		tile0.Deallocate()
		return nil, nil, fmt.Errorf("load texture %s: %w", path, err)
	}
	return tile0, tile1, nil
}

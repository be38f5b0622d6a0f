package core

import "image"

// Texture is an immutable image that a Surface can draw.
// *ebiten.Image satisfies it directly.
type Texture interface {
	Bounds() image.Rectangle
}

// Surface is the 2D drawing API a host lends to the renderer for one frame.
type Surface interface {
	// Clear fills the whole frame with c.
	Clear(c Color)
	// DrawTexture draws t with its top-left corner translated to (tx, ty).
	DrawTexture(t Texture, tx, ty float64)
	// FillRect fills r with c.
	FillRect(c Color, r Rect)
}

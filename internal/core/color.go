package core

import (
	"fmt"
	"strings"
)

// Color is one entry of the game palette.
// Colors stay symbolic inside the simulation and become RGBA only at draw time.
type Color uint8

// Palette entries. The zero value is fully transparent black.
const (
	ColorTransparent Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorBlack
	ColorGrey
)

// channels holds the normalized (r, g, b, a) of each palette entry.
var channels = [...][4]float32{
	ColorTransparent: {0, 0, 0, 0},
	ColorRed:         {1, 0, 0, 1},
	ColorGreen:       {0, 1, 0, 1},
	ColorBlue:        {0, 0, 1, 1},
	ColorBlack:       {0, 0, 0, 1},
	ColorGrey:        {0.5, 0.5, 0.5, 1},
}

var colorNames = [...]string{
	ColorTransparent: "transparent",
	ColorRed:         "red",
	ColorGreen:       "green",
	ColorBlue:        "blue",
	ColorBlack:       "black",
	ColorGrey:        "grey",
}

// Next returns the color that follows c in the player cycle:
// red -> green -> blue -> red. Anything else yields ColorTransparent.
func (c Color) Next() Color {
	switch c {
	case ColorRed:
		return ColorGreen
	case ColorGreen:
		return ColorBlue
	case ColorBlue:
		return ColorRed
	default:
		return ColorTransparent
	}
}

// Channels returns the normalized (r, g, b, a) components.
func (c Color) Channels() [4]float32 {
	if int(c) >= len(channels) {
		return channels[ColorTransparent]
	}
	return channels[c]
}

// RGBA implements image/color.Color with alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	ch := c.Channels()
	a = uint32(ch[3] * 0xffff)
	r = uint32(ch[0]*0xffff) * a / 0xffff
	g = uint32(ch[1]*0xffff) * a / 0xffff
	b = uint32(ch[2]*0xffff) * a / 0xffff
	return r, g, b, a
}

// String returns the palette name of the color.
func (c Color) String() string {
	if int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return colorNames[c]
}

// ParseColor resolves a palette name. "gray" is accepted as an alias of "grey".
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "gray" {
		return ColorGrey, nil
	}
	for i, candidate := range colorNames {
		if candidate == n {
			return Color(i), nil
		}
	}
	return ColorTransparent, fmt.Errorf("unknown color %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so colors can be
// written by name in configuration files.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ColoredRect is a rectangle painted in a single palette color.
type ColoredRect struct {
	Rect  Rect
	Color Color
}

// NewColoredRect returns an empty rectangle at the origin colored green.
func NewColoredRect() ColoredRect {
	return ColoredRect{Color: ColorGreen}
}

// WithSize returns a copy with the given width and height.
func (cr ColoredRect) WithSize(w, h float64) ColoredRect {
	cr.Rect.W = w
	cr.Rect.H = h
	return cr
}

// WithColor returns a copy painted in c.
func (cr ColoredRect) WithColor(c Color) ColoredRect {
	cr.Color = c
	return cr
}

// WithPosition returns a copy moved to (x, y).
func (cr ColoredRect) WithPosition(x, y float64) ColoredRect {
	cr.Rect.X = x
	cr.Rect.Y = y
	return cr
}

// NextColor advances the color along the player cycle in place.
func (cr *ColoredRect) NextColor() {
	cr.Color = cr.Color.Next()
}

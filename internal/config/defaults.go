package config

import (
	_ "embed"

	"github.com/vovakirdan/rocket/internal/core"
)

//go:embed defaults/rocket.yaml
var defaultRocketYAML []byte

// DefaultRocketConfig returns the built-in configuration.
func DefaultRocketConfig() RocketConfig {
	bar := func(x, y, w, h float64, c core.Color) RectConfig {
		return RectConfig{X: x, Y: y, Width: w, Height: h, Color: c}
	}

	return RocketConfig{
		Window: WindowConfig{
			Title:  "rocket",
			Width:  1280,
			Height: 720,
		},
		Assets: AssetsConfig{
			Folder:     "res",
			Background: "nebula.jpg",
			Parents:    3,
			Kids:       3,
		},
		Playfield: PlayfieldConfig{
			TileHeight:        720,
			CullY:             720,
			BarSpeed:          100,
			BackgroundSpeed:   100,
			BackgroundOffsets: [2]float64{-720, 0},
			CullPolicy:        CullTail,
		},
		Player: bar(0, 720-75, 25, 25, core.ColorGreen),
		Bars: []RectConfig{
			bar(0, -200, 640, 50, core.ColorGrey),
			bar(700, -200, 640, 50, core.ColorGrey),
			bar(0, 0, 1280, 25, core.ColorRed),
			bar(0, 100, 1280, 25, core.ColorGreen),
			bar(0, 200, 1280, 25, core.ColorBlue),
			bar(0, 300, 1280, 25, core.ColorRed),
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRocketYAML
}

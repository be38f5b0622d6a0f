// Package config provides YAML-based configuration loading for the rocket
// game: window, assets, playfield constants, player and initial bars.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/rocket/internal/core"
)

// RocketConfig contains all configuration for the game.
type RocketConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Assets    AssetsConfig    `yaml:"assets"`
	Playfield PlayfieldConfig `yaml:"playfield"`
	Player    RectConfig      `yaml:"player"`
	Bars      []RectConfig    `yaml:"bars"`
}

// WindowConfig defines the game window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// AssetsConfig defines where the background texture is searched for.
type AssetsConfig struct {
	Folder     string `yaml:"folder"`     // Folder name searched around the executable
	Background string `yaml:"background"` // File name inside the folder
	Parents    int    `yaml:"parents"`    // Parent levels searched
	Kids       int    `yaml:"kids"`       // Child levels searched
}

// PlayfieldConfig defines motion and culling parameters.
type PlayfieldConfig struct {
	TileHeight        float64    `yaml:"tile_height"`        // Background tile height; offsets wrap past it
	CullY             float64    `yaml:"cull_y"`             // Bars whose top is below this are culled
	BarSpeed          float64    `yaml:"bar_speed"`          // Pixels per second
	BackgroundSpeed   float64    `yaml:"background_speed"`   // Pixels per second
	BackgroundOffsets [2]float64 `yaml:"background_offsets"` // Initial offsets of both tiles
	CullPolicy        CullPolicy `yaml:"cull_policy"`
}

// RectConfig describes one colored rectangle.
type RectConfig struct {
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  core.Color `yaml:"color"`
}

// ColoredRect converts the entry to a core.ColoredRect.
func (r RectConfig) ColoredRect() core.ColoredRect {
	return core.NewColoredRect().
		WithSize(r.Width, r.Height).
		WithColor(r.Color).
		WithPosition(r.X, r.Y)
}

// CullPolicy selects how off-screen bars are removed.
type CullPolicy string

const (
	// CullTail pops as many bars from the tail as were seen off-screen.
	CullTail CullPolicy = "tail"
	// CullFilter removes exactly the bars seen off-screen, keeping order.
	CullFilter CullPolicy = "filter"
)

// Validate checks the configuration for values the game cannot run with.
func (c RocketConfig) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Playfield.BarSpeed < 0 || c.Playfield.BackgroundSpeed < 0 {
		errs = append(errs, errors.New("speeds must not be negative"))
	}
	if c.Playfield.TileHeight <= 0 {
		errs = append(errs, errors.New("tile_height must be positive"))
	}
	switch c.Playfield.CullPolicy {
	case CullTail, CullFilter:
	default:
		errs = append(errs, fmt.Errorf("unknown cull_policy %q", c.Playfield.CullPolicy))
	}
	if c.Player.Width < 0 || c.Player.Height < 0 {
		errs = append(errs, errors.New("player size must not be negative"))
	}
	for i, b := range c.Bars {
		if b.Width < 0 || b.Height < 0 {
			errs = append(errs, fmt.Errorf("bar %d: size must not be negative", i))
		}
	}

	return errors.Join(errs...)
}

// Package rocket implements the rocket game: a player square slides along
// the bottom of the window and must pass through descending bars of its own
// color. Hosts feed it events; the package owns no window, clock or textures.
package rocket

import (
	"github.com/vovakirdan/rocket/internal/config"
	"github.com/vovakirdan/rocket/internal/core"
)

// Params holds the playfield constants the simulation runs with.
type Params struct {
	TileHeight      float64 // Background offsets past this wrap to -TileHeight
	CullY           float64 // Bars whose top is below this are culled
	BarSpeed        float64 // Pixels per second
	BackgroundSpeed float64 // Pixels per second
	CullPolicy      config.CullPolicy
}

// DefaultParams returns the playfield constants of a 1280x720 window.
func DefaultParams() Params {
	return ParamsFromConfig(config.DefaultRocketConfig().Playfield)
}

// ParamsFromConfig extracts simulation parameters from the playfield config.
func ParamsFromConfig(pf config.PlayfieldConfig) Params {
	return Params{
		TileHeight:      pf.TileHeight,
		CullY:           pf.CullY,
		BarSpeed:        pf.BarSpeed,
		BackgroundSpeed: pf.BackgroundSpeed,
		CullPolicy:      pf.CullPolicy,
	}
}

// World is the complete game state.
type World struct {
	Player   core.ColoredRect
	Bars     []core.ColoredRect // Ordered; shrinks as bars fall off, never grows
	BGOffset [2]float64         // Vertical offsets of the two background tiles
	GameOver bool               // Sticky once set
	Params   Params
}

// NewWorld builds the initial world described by cfg.
func NewWorld(cfg config.RocketConfig) *World {
	bars := make([]core.ColoredRect, 0, len(cfg.Bars))
	for _, b := range cfg.Bars {
		bars = append(bars, b.ColoredRect())
	}

	return &World{
		Player:   cfg.Player.ColoredRect(),
		Bars:     bars,
		BGOffset: cfg.Playfield.BackgroundOffsets,
		Params:   ParamsFromConfig(cfg.Playfield),
	}
}

package rocket

import (
	"github.com/vovakirdan/rocket/internal/config"
	"github.com/vovakirdan/rocket/internal/core"
)

// TickResult reports what happened during one Advance.
type TickResult struct {
	Culled   int  // Bars removed this tick
	GameOver bool // World state after the tick
}

// Advance moves the world forward by dt seconds.
//
// Order of work:
//  1. Both background offsets scroll down; an offset past TileHeight resets
//     to -TileHeight (the overshoot is dropped, not carried).
//  2. Each bar, in order: counted for culling if its top is already below
//     CullY, tested against the player, then moved down.
//  3. Culled bars are removed according to the cull policy.
//
// A bar hits the player when the player's top-left corner lies strictly
// inside it and their colors differ. Matching colors pass through.
// Advance does nothing once the game is over. It never allocates.
func Advance(w *World, dt float64) TickResult {
	if w.GameOver {
		return TickResult{GameOver: true}
	}
	p := w.Params

	for i := range w.BGOffset {
		w.BGOffset[i] += p.BackgroundSpeed * dt
		if w.BGOffset[i] > p.TileHeight {
			w.BGOffset[i] = -p.TileHeight
		}
	}

	filter := p.CullPolicy == config.CullFilter
	culled, kept := 0, 0
	for _, bar := range w.Bars {
		offscreen := bar.Rect.Y > p.CullY
		if offscreen {
			culled++
		}

		if hits(bar, w.Player) {
			w.GameOver = true
		}

		bar.Rect = bar.Rect.Translate(0, p.BarSpeed*dt)

		if filter && offscreen {
			continue
		}
		w.Bars[kept] = bar
		kept++
	}
	w.Bars = w.Bars[:kept]

	if !filter {
		// Bars are assumed to leave in order, so the tail goes first.
		w.Bars = w.Bars[:len(w.Bars)-culled]
	}

	return TickResult{Culled: culled, GameOver: w.GameOver}
}

// hits reports whether bar ends the game for player.
func hits(bar, player core.ColoredRect) bool {
	return bar.Color != player.Color && bar.Rect.ContainsOpen(player.Rect.X, player.Rect.Y)
}

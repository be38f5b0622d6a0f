package rocket

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rocket/internal/config"
	"github.com/vovakirdan/rocket/internal/core"
)

// Outcome tells why a session stopped.
type Outcome int

const (
	OutcomeSourceClosed Outcome = iota // Event source exhausted
	OutcomeGameOver                    // The player hit a bar of another color
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSourceClosed:
		return "source closed"
	case OutcomeGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Session owns a world and routes host events to the input adapter,
// the simulator and the renderer, one event at a time.
type Session struct {
	world    *World
	input    *InputAdapter
	renderer *Renderer
	logger   *log.Logger
	ticks    uint64
}

// NewSession wires the game components together.
func NewSession(world *World, input *InputAdapter, renderer *Renderer, logger *log.Logger) *Session {
	return &Session{
		world:    world,
		input:    input,
		renderer: renderer,
		logger:   logger,
	}
}

// New builds a session for the initial world of cfg. Release diagnostics
// go to diag; tile0 and tile1 are the background textures.
func New(cfg config.RocketConfig, tile0, tile1 core.Texture, diag io.Writer, logger *log.Logger) *Session {
	return NewSession(NewWorld(cfg), NewInputAdapter(diag), NewRenderer(tile0, tile1), logger)
}

// World returns the session's world.
func (s *Session) World() *World {
	return s.world
}

// Over reports whether the game has ended.
func (s *Session) Over() bool {
	return s.world.GameOver
}

// Dispatch handles one event. It returns false without handling the event
// if the game is already over, telling the host to stop.
// Unknown events are ignored.
func (s *Session) Dispatch(ev core.Event) bool {
	if s.world.GameOver {
		return false
	}

	switch ev := ev.(type) {
	case core.RenderEvent:
		s.renderer.Render(s.world, ev.Surface)
	case core.ButtonReleaseEvent:
		s.input.OnRelease(s.world, ev.Button)
	case core.PointerMoveEvent:
		s.input.OnMove(s.world, ev.X, ev.Y)
	case core.UpdateEvent:
		s.update(ev.DT)
	}

	return true
}

func (s *Session) update(dt float64) {
	s.ticks++
	res := Advance(s.world, dt)

	if res.Culled > 0 {
		s.logger.Debug("bars culled", "count", res.Culled, "remaining", len(s.world.Bars))
	}
	if res.GameOver {
		s.logger.Info("game over", "tick", s.ticks, "player", s.world.Player.Color, "bars", len(s.world.Bars))
	}
}

// Run pulls events from src until it is exhausted or the game ends.
func (s *Session) Run(src core.EventSource) Outcome {
	for {
		ev, ok := src.Next()
		if !ok {
			s.logger.Info("event source closed", "ticks", s.ticks)
			return OutcomeSourceClosed
		}
		if !s.Dispatch(ev) {
			return OutcomeGameOver
		}
	}
}

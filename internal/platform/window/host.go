// Package window runs the game in a desktop window through Ebiten.
// It owns the window, the frame clock, input polling and the background
// textures, and feeds everything to a rocket.Session as events.
package window

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/rocket/internal/assets"
	"github.com/vovakirdan/rocket/internal/config"
	"github.com/vovakirdan/rocket/internal/core"
	"github.com/vovakirdan/rocket/internal/games/rocket"
)

// Host implements ebiten.Game on top of a rocket.Session.
type Host struct {
	session *rocket.Session
	cfg     config.WindowConfig
	logger  *log.Logger
	input   *inputPoller
	surface *imageSurface
	events  []core.Event
}

// NewHost creates a host for an already built session.
func NewHost(session *rocket.Session, cfg config.WindowConfig, logger *log.Logger) *Host {
	return &Host{
		session: session,
		cfg:     cfg,
		logger:  logger,
		input:   newInputPoller(),
		surface: &imageSurface{},
	}
}

// Open locates and loads the background texture, builds the initial world
// and returns a host ready to Run. Release diagnostics go to diag.
func Open(cfg config.RocketConfig, diag io.Writer, logger *log.Logger) (*Host, error) {
	roots, err := assets.SearchRoots()
	if err != nil {
		return nil, err
	}

	search := assets.ParentsThenKids(cfg.Assets.Parents, cfg.Assets.Kids)
	path, err := assets.ResolveFirst(search, roots, cfg.Assets.Folder, cfg.Assets.Background)
	if err != nil {
		return nil, fmt.Errorf("background %s/%s: %w", cfg.Assets.Folder, cfg.Assets.Background, err)
	}
	logger.Info("assets found", "path", path)

	tile0, tile1, err := LoadBackgrounds(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("background loaded", "width", tile0.Bounds().Dx(), "height", tile0.Bounds().Dy())

	session := rocket.New(cfg, tile0, tile1, diag, logger)
	return NewHost(session, cfg.Window, logger), nil
}

// Update polls input and advances the simulation by one frame.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.logger.Info("escape pressed, closing window")
		return ebiten.Termination
	}

	h.events = h.input.poll(h.events[:0])
	h.events = append(h.events, core.UpdateEvent{DT: 1.0 / float64(ebiten.TPS())})

	for _, ev := range h.events {
		if !h.session.Dispatch(ev) {
			return ebiten.Termination
		}
	}
	return nil
}

// Draw renders the current world onto the screen image.
func (h *Host) Draw(screen *ebiten.Image) {
	h.surface.dst = screen
	bounds := screen.Bounds()
	h.session.Dispatch(core.RenderEvent{
		Viewport: core.Viewport{Width: bounds.Dx(), Height: bounds.Dy()},
		Surface:  h.surface,
	})
	h.surface.dst = nil
}

// Layout keeps the logical screen at the configured window size.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.cfg.Width, h.cfg.Height
}

// Run opens the window and blocks until it is closed, Esc is pressed or
// the game ends.
func (h *Host) Run() error {
	ebiten.SetWindowSize(h.cfg.Width, h.cfg.Height)
	ebiten.SetWindowTitle(h.cfg.Title)

	h.logger.Info("opening window", "title", h.cfg.Title, "width", h.cfg.Width, "height", h.cfg.Height)
	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	if h.session.Over() {
		h.logger.Info("window closed after game over")
	}
	return nil
}

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rocket/internal/config"
	"github.com/vovakirdan/rocket/internal/core"
	"github.com/vovakirdan/rocket/internal/games/rocket"
)

// footerLines is the number of rows below the playfield (status + help).
const footerLines = 2

// Stars per background tile.
const starCount = 90

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model running one rocket session.
type Model struct {
	session  *rocket.Session
	screen   *core.Screen
	surface  *cellSurface
	config   core.RuntimeConfig
	status   *StatusLine
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model for session. world is the window the session's
// geometry is expressed in; status receives the release diagnostics.
func NewModel(session *rocket.Session, world config.WindowConfig, status *StatusLine, cfg core.RuntimeConfig, logger *log.Logger) Model {
	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerLines, 1))
	return Model{
		session: session,
		screen:  screen,
		surface: newCellSurface(screen, world.Width, world.Height),
		config:  cfg,
		status:  status,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Terminals only report presses, so
// every other key is forwarded as a release.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.status.Set(fmt.Sprintf("screenshot failed: %v", err))
		} else {
			m.status.Set("saved " + path)
		}
		return m, nil
	}

	return m.dispatch(core.ButtonReleaseEvent{Button: core.KeyboardButton{Key: msg.String()}})
}

// handleMouse maps pointer motion and button releases to game events.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		x, y := m.surface.toWorld(msg.X, msg.Y)
		return m.dispatch(core.PointerMoveEvent{X: x, Y: y})
	case tea.MouseActionRelease:
		return m.dispatch(core.ButtonReleaseEvent{Button: core.MouseButton{Button: mouseButtonName(msg.Button)}})
	}
	return m, nil
}

// mouseButtonName names a terminal mouse button.
func mouseButtonName(b tea.MouseButton) string {
	switch b {
	case tea.MouseButtonLeft:
		return "left"
	case tea.MouseButtonMiddle:
		return "middle"
	case tea.MouseButtonRight:
		return "right"
	case tea.MouseButtonBackward:
		return "backward"
	case tea.MouseButtonForward:
		return "forward"
	case tea.MouseButtonNone:
		return "none"
	default:
		return fmt.Sprintf("button%d", int(b))
	}
}

// handleResize processes window resize events. The world keeps its pixel
// geometry; only the cell scale changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerLines, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	next, cmd := m.dispatch(core.UpdateEvent{DT: m.config.TickDuration()})
	if cmd != nil {
		return next, cmd
	}
	return next, tickCmd(m.config.TickRate)
}

// dispatch forwards ev to the session and quits once the game is over.
func (m Model) dispatch(ev core.Event) (tea.Model, tea.Cmd) {
	if !m.session.Dispatch(ev) || m.session.Over() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// saveScreenshot writes the current screen to ~/.rocket/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.session.Dispatch(core.RenderEvent{Surface: m.surface})

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".rocket", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("rocket_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Dispatch(core.RenderEvent{
		Viewport: core.Viewport{Width: m.screen.Width(), Height: m.screen.Height()},
		Surface:  m.surface,
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		statusStyle.Render(m.status.String()),
		m.help.View(m.keys),
	)
}

// Open builds a session for cfg with starfield backgrounds whose release
// diagnostics go to the returned model's status line.
func Open(cfg config.RocketConfig, rc core.RuntimeConfig, logger *log.Logger) Model {
	status := NewStatusLine()
	tileH := int(cfg.Playfield.TileHeight)
	tile0 := NewStarfield(cfg.Window.Width, tileH, starCount, 1)
	tile1 := NewStarfield(cfg.Window.Width, tileH, starCount, 2)

	session := rocket.New(cfg, tile0, tile1, status, logger)
	return NewModel(session, cfg.Window, status, rc, logger)
}

// Run starts the Bubble Tea program with the given model.
func Run(m Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Report motion without a pressed button
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.session.Over() {
		m.logger.Info("game over")
	}
	return nil
}

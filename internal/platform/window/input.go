package window

import (
	"fmt"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/rocket/internal/core"
)

// inputReader is the slice of ebiten's input API the poller needs.
type inputReader interface {
	CursorPosition() (x, y int)
	AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key
	IsMouseButtonJustReleased(b ebiten.MouseButton) bool
	AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID
	IsGamepadButtonJustReleased(id ebiten.GamepadID, b ebiten.GamepadButton) bool
}

// ebitenReader reads the live ebiten input state.
type ebitenReader struct{}

func (ebitenReader) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenReader) AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustReleasedKeys(keys)
}

func (ebitenReader) IsMouseButtonJustReleased(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(b)
}

func (ebitenReader) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	return ebiten.AppendGamepadIDs(ids)
}

func (ebitenReader) IsGamepadButtonJustReleased(id ebiten.GamepadID, b ebiten.GamepadButton) bool {
	return inpututil.IsGamepadButtonJustReleased(id, b)
}

// inputPoller turns per-frame input state into game events.
type inputPoller struct {
	reader   inputReader
	cursorX  int
	cursorY  int
	seen     bool // Whether a cursor position was reported yet
	keys     []ebiten.Key
	gamepads []ebiten.GamepadID
}

func newInputPoller() *inputPoller {
	return &inputPoller{reader: ebitenReader{}}
}

// poll appends this frame's events to dst: a pointer move if the cursor
// changed, then keyboard, mouse and controller releases.
func (p *inputPoller) poll(dst []core.Event) []core.Event {
	x, y := p.reader.CursorPosition()
	if !p.seen || x != p.cursorX || y != p.cursorY {
		p.cursorX, p.cursorY, p.seen = x, y, true
		dst = append(dst, core.PointerMoveEvent{X: float64(x), Y: float64(y)})
	}

	p.keys = p.reader.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		dst = append(dst, core.ButtonReleaseEvent{Button: core.KeyboardButton{Key: k.String()}})
	}

	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		if p.reader.IsMouseButtonJustReleased(b) {
			dst = append(dst, core.ButtonReleaseEvent{Button: core.MouseButton{Button: mouseButtonName(b)}})
		}
	}

	p.gamepads = p.reader.AppendGamepadIDs(p.gamepads[:0])
	for _, id := range p.gamepads {
		for b := ebiten.GamepadButton(0); b <= ebiten.GamepadButtonMax; b++ {
			if p.reader.IsGamepadButtonJustReleased(id, b) {
				dst = append(dst, core.ButtonReleaseEvent{Button: core.ControllerButton{
					ID:     int(id),
					Button: strconv.Itoa(int(b)),
				}})
			}
		}
	}

	return dst
}

func mouseButtonName(b ebiten.MouseButton) string {
	switch b {
	case ebiten.MouseButtonLeft:
		return "Left"
	case ebiten.MouseButtonMiddle:
		return "Middle"
	case ebiten.MouseButtonRight:
		return "Right"
	default:
		return fmt.Sprintf("X%d", int(b))
	}
}

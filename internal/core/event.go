package core

import "fmt"

// Event is anything a host delivers to the game loop. Only the concrete
// types declared in this file carry meaning; everything else is ignored.
type Event interface{}

// Viewport describes the drawable area of a render request in pixels.
type Viewport struct {
	Width, Height int
}

// RenderEvent asks the game to draw one frame onto Surface.
// The surface is only valid until the handler returns.
type RenderEvent struct {
	Viewport Viewport
	Surface  Surface
}

// UpdateEvent advances the simulation by DT seconds.
type UpdateEvent struct {
	DT float64
}

// PointerMoveEvent reports the pointer position in window pixels.
type PointerMoveEvent struct {
	X, Y float64
}

// ButtonReleaseEvent reports that a button was released.
type ButtonReleaseEvent struct {
	Button Button
}

// Button identifies the device and button of a release.
// Implementations are KeyboardButton, MouseButton and ControllerButton.
type Button interface {
	fmt.Stringer
	button()
}

// KeyboardButton is a keyboard key, named the way the host names it.
type KeyboardButton struct {
	Key string
}

// MouseButton is a pointer button.
type MouseButton struct {
	Button string
}

// ControllerButton is a gamepad button, qualified by the gamepad it came from.
type ControllerButton struct {
	ID     int
	Button string
}

func (KeyboardButton) button()   {}
func (MouseButton) button()      {}
func (ControllerButton) button() {}

func (b KeyboardButton) String() string { return b.Key }

func (b MouseButton) String() string { return b.Button }

func (b ControllerButton) String() string {
	return fmt.Sprintf("%d:%s", b.ID, b.Button)
}

// EventSource yields events one at a time.
// Next returns false once the source is exhausted (window closed, Esc pressed).
type EventSource interface {
	Next() (Event, bool)
}

// SliceSource replays a fixed list of events. It is used for headless runs
// and tests.
type SliceSource struct {
	events []Event
	pos    int
}

// NewSliceSource creates a source that yields events in order.
func NewSliceSource(events ...Event) *SliceSource {
	return &SliceSource{events: events}
}

// Next returns the next event, or false when all events were consumed.
func (s *SliceSource) Next() (Event, bool) {
	if s.pos >= len(s.events) {
		return nil, false
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, true
}

// Remaining returns how many events have not been consumed yet.
func (s *SliceSource) Remaining() int {
	return len(s.events) - s.pos
}

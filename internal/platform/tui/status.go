package tui

import "bytes"

// StatusLine is an io.Writer that keeps the last complete line written to
// it. The terminal host shows it under the playfield. It is only used from
// the Bubble Tea event loop.
type StatusLine struct {
	pending []byte
	last    string
}

// NewStatusLine creates an empty status line.
func NewStatusLine() *StatusLine {
	return &StatusLine{}
}

// Write implements io.Writer.
func (s *StatusLine) Write(p []byte) (int, error) {
	s.pending = append(s.pending, p...)
	for {
		i := bytes.IndexByte(s.pending, '\n')
		if i < 0 {
			break
		}
		s.last = string(s.pending[:i])
		s.pending = s.pending[i+1:]
	}
	return len(p), nil
}

// Set replaces the status text.
func (s *StatusLine) Set(text string) {
	s.last = text
}

// String returns the last complete line.
func (s *StatusLine) String() string {
	return s.last
}

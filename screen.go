package cursers

import (
	"fmt"

	"github.com/threeal/cursers/terminal"
)

// TextStyle selects the attributes for DrawText. The zero value draws
// unstyled text.
type TextStyle struct {
	Bold      bool
	Underline bool
}

func (s TextStyle) attr() terminal.Attr {
	attr := terminal.AttrNormal
	if s.Bold {
		attr |= terminal.AttrBold
	}
	if s.Underline {
		attr |= terminal.AttrUnderline
	}
	return attr
}

// Screen is a thin facade over a terminal surface. It is created and
// released by the owning App; all operations besides Init and Cleanup
// require an initialized screen and fail fast otherwise.
type Screen struct {
	surface      terminal.Surface
	extendedKeys bool
	ready        bool
}

// NewScreen wraps the given surface. The extended-keys capability is
// fixed at construction.
func NewScreen(surface terminal.Surface, extendedKeys bool) *Screen {
	return &Screen{
		surface:      surface,
		extendedKeys: extendedKeys,
	}
}

// Init acquires the surface exactly once: enters raw mode, hides the
// cursor, disables echo and switches reads to non-blocking. Calling
// Init on an already initialized screen is a no-op.
func (s *Screen) Init() error {
	if s.ready {
		return nil
	}
	if s.surface == nil {
		return fmt.Errorf("screen already released")
	}

	if err := s.surface.Init(); err != nil {
		return fmt.Errorf("surface init: %w", err)
	}

	s.surface.HideCursor()
	s.surface.DisableEcho()
	s.surface.SetNonBlocking(true)
	if s.extendedKeys {
		s.surface.EnableExtendedKeys(true)
	}

	s.ready = true
	return nil
}

// Cleanup releases the surface, restoring the terminal to its
// pre-acquisition mode. Safe to call repeatedly.
func (s *Screen) Cleanup() {
	if s.surface == nil {
		return
	}
	if s.ready {
		s.surface.Fini()
	}
	s.surface = nil
	s.ready = false
}

// GetKey returns the next pending key code, or terminal.KeyNone (-1)
// when no key is waiting. Never blocks.
func (s *Screen) GetKey() int {
	return s.surface.ReadKey()
}

// DrawText places text at the given row and column. Coordinates are not
// bounds checked; out-of-surface writes behave as the surface decides.
func (s *Screen) DrawText(row, col int, text string, style TextStyle) {
	s.surface.WriteText(row, col, text, style.attr())
}

// Refresh flushes pending draws to the physical display.
func (s *Screen) Refresh() {
	s.surface.Flush()
}

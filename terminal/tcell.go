package terminal

import (
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const keyBufferSize = 256

// tcellSurface implements Surface on top of tcell. Input is pumped by a
// dedicated goroutine into a buffered key channel so that reads never
// block the caller; keys arriving while the buffer is full are dropped.
type tcellSurface struct {
	screen tcell.Screen

	keyCh  chan int
	stopCh chan struct{}
	doneCh chan struct{}

	nonBlocking atomic.Bool
	extended    atomic.Bool
	initialized bool
}

// NewTcellSurface returns an uninitialized surface over the process
// terminal. Init must be called before any other operation.
func NewTcellSurface() Surface {
	return &tcellSurface{}
}

// newTcellSurface wraps an existing tcell screen, typically a
// SimulationScreen in tests.
func newTcellSurface(screen tcell.Screen) *tcellSurface {
	return &tcellSurface{screen: screen}
}

func (s *tcellSurface) Init() error {
	if s.initialized {
		return fmt.Errorf("terminal surface already initialized")
	}

	if s.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		s.screen = screen
	}

	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	s.keyCh = make(chan int, keyBufferSize)
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	s.initialized = true

	go s.pumpEvents()

	return nil
}

func (s *tcellSurface) Fini() {
	if !s.initialized {
		return
	}
	s.initialized = false

	close(s.stopCh)
	// Fini unblocks the pump's PollEvent with a nil event
	s.screen.Fini()
	<-s.doneCh
}

// pumpEvents translates tcell events into key codes until the screen is
// finalized. Resize events are absorbed here; the framework core does
// not track dimensions.
func (s *tcellSurface) pumpEvents() {
	defer close(s.doneCh)

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}

		select {
		case <-s.stopCh:
			return
		default:
		}

		switch tev := ev.(type) {
		case *tcell.EventKey:
			code := translateKey(tev, s.extended.Load())
			if code == KeyNone {
				continue
			}
			select {
			case s.keyCh <- code:
			default:
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

// translateKey maps a tcell key event to an integer key code. Special
// keys beyond the basic control set are reported only when extended
// decoding is on; otherwise they are swallowed.
func translateKey(ev *tcell.EventKey, extended bool) int {
	switch ev.Key() {
	case tcell.KeyRune:
		return int(ev.Rune())
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyTab:
		return KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	}

	if !extended {
		return KeyNone
	}

	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyHome:
		return KeyHome
	case tcell.KeyEnd:
		return KeyEnd
	case tcell.KeyPgUp:
		return KeyPageUp
	case tcell.KeyPgDn:
		return KeyPageDown
	case tcell.KeyInsert:
		return KeyInsert
	case tcell.KeyDelete:
		return KeyDelete
	}

	if k := ev.Key(); k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return KeyF1 + int(k-tcell.KeyF1)
	}

	return KeyNone
}

func (s *tcellSurface) Size() (int, int) {
	return s.screen.Size()
}

func (s *tcellSurface) SetNonBlocking(enabled bool) {
	s.nonBlocking.Store(enabled)
}

func (s *tcellSurface) EnableExtendedKeys(enabled bool) {
	s.extended.Store(enabled)
}

func (s *tcellSurface) HideCursor() {
	s.screen.HideCursor()
}

func (s *tcellSurface) DisableEcho() {
	// tcell raw mode never echoes input; nothing further to disable
}

func (s *tcellSurface) ReadKey() int {
	// Without this guard a blocking read on a never-Init'd surface
	// would select on nil channels and hang instead of failing fast
	if !s.initialized {
		panic("terminal surface not initialized")
	}

	if s.nonBlocking.Load() {
		select {
		case code := <-s.keyCh:
			return code
		default:
			return KeyNone
		}
	}

	select {
	case code := <-s.keyCh:
		return code
	case <-s.doneCh:
		return KeyNone
	}
}

func (s *tcellSurface) WriteText(row, col int, text string, attr Attr) {
	style := tcell.StyleDefault
	if attr&AttrBold != 0 {
		style = style.Bold(true)
	}
	if attr&AttrUnderline != 0 {
		style = style.Underline(true)
	}

	x := col
	for _, r := range text {
		s.screen.SetContent(x, row, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func (s *tcellSurface) Flush() {
	s.screen.Show()
}

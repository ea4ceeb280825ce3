// Package terminal defines the surface boundary between the cursers
// framework and the terminal-control library that owns the physical
// terminal. The framework only ever talks to a Surface; the tcell-backed
// implementation in this package is the production surface.
package terminal

// Attr is a bitmask of text attributes for WriteText.
type Attr uint8

const (
	AttrNormal    Attr = 0
	AttrBold      Attr = 1 << 0
	AttrUnderline Attr = 1 << 1
)

// Surface abstracts the terminal operations the framework depends on.
// Implementations own the physical terminal handle; at most one Surface
// may hold the terminal in raw mode at a time.
type Surface interface {
	// Lifecycle
	// Init enters raw mode and takes ownership of the terminal.
	Init() error
	// Fini restores the terminal to its pre-Init mode and releases it.
	// Safe to call after a failed Init.
	Fini()

	// Capabilities
	Size() (width, height int)
	SetNonBlocking(enabled bool)
	EnableExtendedKeys(enabled bool)
	HideCursor()
	DisableEcho()

	// I/O
	// ReadKey returns the next pending key code. In non-blocking mode it
	// returns KeyNone (-1) immediately when no key is pending.
	ReadKey() int
	// WriteText places text at the given row and column with the given
	// attributes. No bounds checking is performed.
	WriteText(row, col int, text string, attr Attr)
	// Flush makes all pending writes visible on the physical display.
	Flush()
}

package terminal

import "io"

// Escape sequences for last-resort terminal restoration.
var (
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// EmergencyReset writes raw escape sequences that force the terminal
// back to a usable state. Intended for panic handlers where the surface
// may be mid-teardown and its own Fini cannot be trusted to run.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
}

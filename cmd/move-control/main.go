// Command move-control is the synchronous example: the caller drives
// the update loop, WASD moves a coordinate pair, ESC exits.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	xterm "golang.org/x/term"

	"github.com/threeal/cursers"
	"github.com/threeal/cursers/terminal"
)

type moveControl struct {
	cursers.NopHandler
	app  *cursers.App
	x, y int
}

func (m *moveControl) OnEnter(screen *cursers.Screen) {
	screen.DrawText(0, 7, "Movement Control", cursers.TextStyle{Bold: true, Underline: true})

	screen.DrawText(3, 2, fmt.Sprintf("X coordinate: %12d", m.x), cursers.TextStyle{})
	screen.DrawText(4, 2, fmt.Sprintf("Y coordinate: %12d", m.y), cursers.TextStyle{})

	screen.DrawText(7, 2, "Keyboard Controls:", cursers.TextStyle{Bold: true})
	screen.DrawText(8, 4, "W/S - Move up/down", cursers.TextStyle{})
	screen.DrawText(9, 4, "A/D - Move left/right", cursers.TextStyle{})
	screen.DrawText(10, 4, "ESC - Exit app", cursers.TextStyle{Bold: true})
}

func (m *moveControl) OnUpdate(screen *cursers.Screen) {
	switch screen.GetKey() {
	case terminal.KeyEscape:
		m.app.RequestExit()
		return
	case 'w', 'W':
		m.y--
	case 's', 'S':
		m.y++
	case 'a', 'A':
		m.x--
	case 'd', 'D':
		m.x++
	}

	screen.DrawText(3, 16, fmt.Sprintf("%12d", m.x), cursers.TextStyle{})
	screen.DrawText(4, 16, fmt.Sprintf("%12d", m.y), cursers.TextStyle{})
}

var fpsFlag = flag.Int("fps", 30, "target frames per second")

func main() {
	flag.Parse()

	if !xterm.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "move-control must run on a terminal")
		os.Exit(1)
	}

	// Restore the terminal even if the app crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\nmove-control crashed: %v\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	handler := &moveControl{}
	app := cursers.NewApp(handler, cursers.Config{FPS: *fpsFlag})
	handler.app = app

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "move-control: %v\n", err)
		os.Exit(1)
	}
}

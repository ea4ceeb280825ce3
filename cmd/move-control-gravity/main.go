// Command move-control-gravity is the threaded example: input runs on
// the background update loop while the owning goroutine applies gravity
// once per second. Both sides mutate the coordinates under the app
// lock, held for the whole critical section.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	xterm "golang.org/x/term"

	"github.com/threeal/cursers"
	"github.com/threeal/cursers/terminal"
)

// blip plays a short sine tone on each gravity pull. Audio failure is
// not fatal; the example just runs silent.
type blip struct {
	sampleRate beep.SampleRate
	ready      bool
}

func newBlip() *blip {
	sampleRate := beep.SampleRate(44100)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &blip{}
	}
	return &blip{sampleRate: sampleRate, ready: true}
}

func (b *blip) play() {
	if !b.ready {
		return
	}
	sine, err := generators.SineTone(b.sampleRate, 880)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(b.sampleRate.N(50*time.Millisecond), sine))
}

func (b *blip) close() {
	if b.ready {
		speaker.Close()
	}
}

type gravityControl struct {
	cursers.NopHandler
	app  *cursers.ThreadedApp
	x, y int
}

func (g *gravityControl) OnEnter(screen *cursers.Screen) {
	screen.DrawText(0, 1, "Movement Control with Gravity", cursers.TextStyle{Bold: true, Underline: true})

	screen.DrawText(3, 2, fmt.Sprintf("X coordinate: %12d", g.x), cursers.TextStyle{})
	screen.DrawText(4, 2, fmt.Sprintf("Y coordinate: %12d", g.y), cursers.TextStyle{})

	screen.DrawText(7, 2, "Keyboard Controls:", cursers.TextStyle{Bold: true})
	screen.DrawText(8, 4, "W/S - Move up/down", cursers.TextStyle{})
	screen.DrawText(9, 4, "A/D - Move left/right", cursers.TextStyle{})
	screen.DrawText(10, 4, "ESC - Exit app", cursers.TextStyle{Bold: true})
}

func (g *gravityControl) OnUpdate(screen *cursers.Screen) {
	g.app.Mu.Lock()
	defer g.app.Mu.Unlock()

	switch screen.GetKey() {
	case terminal.KeyEscape:
		g.app.RequestExit()
		return
	case 'w', 'W':
		g.y--
	case 's', 'S':
		g.y++
	case 'a', 'A':
		g.x--
	case 'd', 'D':
		g.x++
	}

	screen.DrawText(3, 16, fmt.Sprintf("%12d", g.x), cursers.TextStyle{})
	screen.DrawText(4, 16, fmt.Sprintf("%12d", g.y), cursers.TextStyle{})
}

var fpsFlag = flag.Int("fps", 30, "target frames per second")

func main() {
	flag.Parse()

	if !xterm.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "move-control-gravity must run on a terminal")
		os.Exit(1)
	}

	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\nmove-control-gravity crashed: %v\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	sound := newBlip()
	defer sound.close()

	handler := &gravityControl{}
	app := cursers.NewThreadedApp(handler, cursers.Config{FPS: *fpsFlag})
	handler.app = app

	// Deferred before Enter: restores the terminal even when a hook
	// panics mid-acquisition, and is a no-op when Enter fails cleanly
	defer app.Exit()

	if err := app.Enter(); err != nil {
		fmt.Fprintf(os.Stderr, "move-control-gravity: %v\n", err)
		os.Exit(1)
	}

	// Gravity on the owning goroutine, one pull per second; the update
	// loop draws the new position on its next frame
	for !app.IsExitRequested() {
		app.Mu.Lock()
		handler.y++
		app.Mu.Unlock()

		sound.play()
		time.Sleep(time.Second)
	}
}

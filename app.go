package cursers

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/threeal/cursers/terminal"
)

// App is the synchronous application lifecycle state machine. Between
// Enter and Exit it owns a Screen with exclusive terminal control; the
// caller drives the loop by invoking Update once per frame.
//
// The exit-requested flag is monotonic within one lifecycle: once set
// it stays set until the next Enter resets it.
type App struct {
	handler Handler

	fps           int
	frameInterval time.Duration
	extendedKeys  bool

	screen        *Screen
	active        bool
	exitRequested atomic.Bool

	// injected for tests
	sleep      func(time.Duration)
	newSurface func() terminal.Surface
}

// NewApp creates an App driving the given handler. A nil handler runs
// with empty hooks. A zero cfg.FPS resolves to the default rate.
func NewApp(handler Handler, cfg Config) *App {
	if handler == nil {
		handler = NopHandler{}
	}

	fps := cfg.FPS
	if fps == 0 {
		fps = DefaultConfig().FPS
	}

	app := &App{
		handler:      handler,
		fps:          fps,
		extendedKeys: cfg.ExtendedKeys,
		sleep:        time.Sleep,
		newSurface:   terminal.NewTcellSurface,
	}
	if fps > 0 {
		app.frameInterval = time.Second / time.Duration(fps)
	}
	return app
}

// Enter transitions the App from inactive to active: it creates and
// initializes the Screen (raw mode, hidden cursor, echo off), resets
// the exit-requested flag and fires OnEnter on the calling goroutine.
//
// Callers should defer Exit before calling Enter; Exit on an inactive
// App is a no-op, and it restores the terminal even when OnEnter
// panics mid-Enter.
func (a *App) Enter() error {
	if a.active {
		return fmt.Errorf("app already active")
	}
	if a.fps <= 0 {
		return fmt.Errorf("invalid fps %d", a.fps)
	}

	screen := NewScreen(a.newSurface(), a.extendedKeys)
	if err := screen.Init(); err != nil {
		screen.Cleanup()
		return fmt.Errorf("screen init: %w", err)
	}

	// Activate before the hook so a panicking OnEnter still leaves the
	// App in a state Exit can tear down.
	a.screen = screen
	a.active = true
	a.exitRequested.Store(false)

	a.handler.OnEnter(screen)
	return nil
}

// Update performs one frame: fires OnUpdate (which reads pending input
// through the Screen), refreshes the display and sleeps one frame
// interval. An exit request made during the hook takes effect at the
// caller's next check, never inside this call.
func (a *App) Update() {
	if !a.active {
		return
	}

	a.handler.OnUpdate(a.screen)
	a.screen.Refresh()
	a.sleep(a.frameInterval)
}

// Exit transitions the App back to inactive: it fires OnExit and then,
// unconditionally, releases the Screen and restores the terminal. The
// release runs even when OnExit panics. Calling Exit on an inactive App
// is a no-op.
func (a *App) Exit() {
	if a.screen == nil {
		a.active = false
		return
	}

	screen := a.screen
	defer func() {
		screen.Cleanup()
		a.screen = nil
		a.active = false
	}()

	a.handler.OnExit(screen)
}

// RequestExit signals the application to stop. Callable from any
// goroutine; takes effect at the next polling point.
func (a *App) RequestExit() {
	a.exitRequested.Store(true)
}

// IsExitRequested reports whether an exit has been requested in the
// current lifecycle.
func (a *App) IsExitRequested() bool {
	return a.exitRequested.Load()
}

// Screen returns the active screen, or nil while the App is inactive.
func (a *App) Screen() *Screen {
	return a.screen
}

// Run is the synchronous driver: Enter, loop Update until an exit is
// requested, then Exit on every path out. Exit is deferred before
// Enter so the terminal is restored even when OnEnter panics.
func (a *App) Run() error {
	defer a.Exit()

	if err := a.Enter(); err != nil {
		return err
	}
	for !a.IsExitRequested() {
		a.Update()
	}
	return nil
}

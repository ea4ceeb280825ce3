package cursers

import "sync"

// ThreadedApp composes an App with a background update loop. Enter runs
// the App's acquisition on the calling goroutine, so OnEnter always
// completes before the first OnUpdate; the loop then runs autonomously
// until an exit is requested. Exit joins the loop before tearing the
// App down, so the last OnUpdate always completes before OnExit.
//
// The framework takes no locks around the hooks. An application that
// mutates state from both the owning goroutine and OnUpdate must guard
// it with Mu, held for the whole critical section on each side.
type ThreadedApp struct {
	// Mu guards application state shared between the owning goroutine
	// and the background update loop.
	Mu sync.Mutex

	app    *App
	thread Thread

	// loopPanic carries a panic recovered on the loop goroutine until
	// Exit can redeliver it on the owning goroutine. Written before the
	// loop returns, read after Join.
	loopPanic any
}

// NewThreadedApp creates a ThreadedApp driving the given handler.
func NewThreadedApp(handler Handler, cfg Config) *ThreadedApp {
	return &ThreadedApp{app: NewApp(handler, cfg)}
}

// Enter acquires the App on the calling goroutine and then starts the
// background update loop.
func (t *ThreadedApp) Enter() error {
	if err := t.app.Enter(); err != nil {
		return err
	}
	t.thread.Start(t.loop)
	return nil
}

// Exit requests an exit if none is pending, blocks until the background
// loop has fully stopped, and only then releases the App. No OnUpdate
// can start once teardown begins. A panic that escaped OnUpdate on the
// loop goroutine is redelivered here, after the terminal is restored.
func (t *ThreadedApp) Exit() {
	t.app.RequestExit()
	t.thread.Join()
	t.app.Exit()

	if r := t.loopPanic; r != nil {
		t.loopPanic = nil
		panic(r)
	}
}

// loop runs on the background goroutine. A panic from OnUpdate must not
// kill the process before the terminal is restored, so it is parked for
// Exit to redeliver.
func (t *ThreadedApp) loop() {
	defer func() {
		if r := recover(); r != nil {
			t.loopPanic = r
			t.app.RequestExit()
		}
	}()

	for !t.app.IsExitRequested() {
		t.app.Update()
	}
}

// RequestExit signals the background loop to stop at its next iteration.
func (t *ThreadedApp) RequestExit() {
	t.app.RequestExit()
}

// IsExitRequested reports whether an exit has been requested.
func (t *ThreadedApp) IsExitRequested() bool {
	return t.app.IsExitRequested()
}

// Screen returns the active screen, or nil while inactive. Drawing from
// the owning goroutine must be synchronized with the update loop via Mu.
func (t *ThreadedApp) Screen() *Screen {
	return t.app.Screen()
}

package cursers

import (
	"testing"
	"time"

	"github.com/threeal/cursers/terminal"
)

// newTestThreadedApp wires a ThreadedApp to a mock surface and a no-op
// sleep so loop iterations are instantaneous.
func newTestThreadedApp(handler Handler, cfg Config) (*ThreadedApp, *mockSurface) {
	surface := &mockSurface{}
	app := NewThreadedApp(handler, cfg)
	app.app.newSurface = func() terminal.Surface { return surface }
	app.app.sleep = func(time.Duration) {}
	return app, surface
}

// threadedScript requests exit during its Nth OnUpdate and records the
// hook sequence. Hooks are only ever invoked from one goroutine at a
// time (Enter/Exit on the owner, OnUpdate on the loop, sequenced by
// start and join), so the plain slice is safe.
type threadedScript struct {
	app     *ThreadedApp
	exitOn  int
	updates int
	events  []string
}

func (h *threadedScript) OnEnter(*Screen) { h.events = append(h.events, "enter") }

func (h *threadedScript) OnUpdate(*Screen) {
	h.events = append(h.events, "update")
	h.updates++
	if h.updates == h.exitOn {
		h.app.RequestExit()
	}
}

func (h *threadedScript) OnExit(*Screen) { h.events = append(h.events, "exit") }

func waitForExitRequest(t *testing.T, app *ThreadedApp) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for !app.IsExitRequested() {
		if time.Now().After(deadline) {
			t.Fatal("Timed out waiting for the loop to request exit")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestThreadedAppRunsExactCycles(t *testing.T) {
	handler := &threadedScript{exitOn: 5}
	app, surface := newTestThreadedApp(handler, Config{})
	handler.app = app

	if err := app.Enter(); err != nil {
		t.Fatalf("Enter failed: %v", err)
	}
	waitForExitRequest(t, app)
	app.Exit()

	// The request during update 5 takes effect on the next iteration,
	// never mid-cycle
	if handler.updates != 5 {
		t.Errorf("Expected exactly 5 update cycles, got %d", handler.updates)
	}
	if surface.flushCalls != 5 {
		t.Errorf("Expected exactly 5 refreshes, got %d", surface.flushCalls)
	}
}

func TestThreadedAppHookOrdering(t *testing.T) {
	handler := &threadedScript{exitOn: 3}
	app, _ := newTestThreadedApp(handler, Config{})
	handler.app = app

	if err := app.Enter(); err != nil {
		t.Fatalf("Enter failed: %v", err)
	}
	waitForExitRequest(t, app)
	app.Exit()

	if len(handler.events) == 0 || handler.events[0] != "enter" {
		t.Fatalf("Expected OnEnter to complete before any update, got %v", handler.events)
	}
	if handler.events[len(handler.events)-1] != "exit" {
		t.Fatalf("Expected OnExit after the last update, got %v", handler.events)
	}
	for _, event := range handler.events[1 : len(handler.events)-1] {
		if event != "update" {
			t.Fatalf("Expected only updates between enter and exit, got %v", handler.events)
		}
	}
}

func TestThreadedAppExitStopsLoop(t *testing.T) {
	handler := &threadedScript{exitOn: 1 << 30} // never exits on its own
	app, surface := newTestThreadedApp(handler, Config{})
	handler.app = app

	if err := app.Enter(); err != nil {
		t.Fatalf("Enter failed: %v", err)
	}
	app.Exit()

	// Join happened: the loop is gone and the count is final
	updates := handler.updates
	time.Sleep(10 * time.Millisecond)
	if handler.updates != updates {
		t.Error("Expected no update to start after Exit began teardown")
	}
	if surface.finiCalls != 1 {
		t.Errorf("Expected terminal restored exactly once, got %d finis", surface.finiCalls)
	}
	if app.Screen() != nil {
		t.Error("Expected screen released after Exit")
	}
}

func TestThreadedAppExitFlagResets(t *testing.T) {
	app, _ := newTestThreadedApp(nil, Config{})

	if err := app.Enter(); err != nil {
		t.Fatalf("Enter failed: %v", err)
	}
	app.Exit()

	if !app.IsExitRequested() {
		t.Fatal("Expected exit flag set after Exit")
	}

	if err := app.Enter(); err != nil {
		t.Fatalf("Re-enter failed: %v", err)
	}
	if app.IsExitRequested() {
		t.Error("Expected exit flag to reset on Enter")
	}
	app.Exit()
}

// explodingHandler panics during its Nth OnUpdate.
type explodingHandler struct {
	NopHandler
	panicOn int
	updates int
}

func (h *explodingHandler) OnUpdate(*Screen) {
	h.updates++
	if h.updates == h.panicOn {
		panic("frame hook failed")
	}
}

func TestThreadedAppLoopPanicRestoresTerminal(t *testing.T) {
	app, surface := newTestThreadedApp(&explodingHandler{panicOn: 2}, Config{})

	if err := app.Enter(); err != nil {
		t.Fatalf("Enter failed: %v", err)
	}
	waitForExitRequest(t, app)

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected Exit to redeliver the loop panic")
			}
		}()
		app.Exit()
	}()

	if surface.finiCalls != 1 {
		t.Errorf("Expected terminal restored despite hook panic, got %d finis", surface.finiCalls)
	}
	if app.Screen() != nil {
		t.Error("Expected screen released despite hook panic")
	}
}

func TestThreadedAppEnterFailurePropagates(t *testing.T) {
	app, surface := newTestThreadedApp(nil, Config{FPS: -1})

	if err := app.Enter(); err == nil {
		t.Fatal("Expected Enter to fail, got nil")
	}
	if surface.initCalls != 0 {
		t.Errorf("Expected no surface acquisition, got %d inits", surface.initCalls)
	}

	// Exit directly after a failed Enter must not hang or panic
	app.Exit()
}

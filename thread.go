package cursers

import (
	"sync"
	"sync/atomic"
)

// Thread manages at most one background goroutine at a time. Start
// launches the unit of work, Join blocks until it has fully returned.
// Intended for single-owner use: one goroutine calls Start and Join.
type Thread struct {
	wg     sync.WaitGroup
	active atomic.Bool
}

// Start launches run on a new goroutine. Returns false without starting
// anything if a previous unit of work is still active.
func (t *Thread) Start(run func()) bool {
	if !t.active.CompareAndSwap(false, true) {
		return false
	}

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		if run != nil {
			run()
		}
	}()
	return true
}

// Join blocks until the active unit of work has returned and clears the
// handle. A Join with nothing active is a no-op.
func (t *Thread) Join() {
	if !t.active.Load() {
		return
	}
	t.wg.Wait()
	t.active.Store(false)
}

// Package cursers is a minimal lifecycle framework for full-screen
// terminal applications.
//
// An App owns exclusive terminal control between Enter and Exit, fires
// three lifecycle hooks (OnEnter, OnUpdate, OnExit) and drives one
// update per frame at a configurable rate. ThreadedApp runs the same
// update loop on a background goroutine while the owning goroutine
// stays free for other work; shared state between the two sides is
// guarded by the exported Mu lock.
//
// The framework never interprets drawn content or key codes; all
// application behavior lives in the Handler hooks.
package cursers

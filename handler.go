package cursers

// Handler is the application-side extension point. The framework calls
// OnEnter once after the screen is acquired, OnUpdate once per frame,
// and OnExit once before the screen is released. Default behavior for
// every hook is empty; embed NopHandler and override what you need.
type Handler interface {
	OnEnter(screen *Screen)
	OnUpdate(screen *Screen)
	OnExit(screen *Screen)
}

// NopHandler implements Handler with empty hooks.
type NopHandler struct{}

func (NopHandler) OnEnter(*Screen)  {}
func (NopHandler) OnUpdate(*Screen) {}
func (NopHandler) OnExit(*Screen)   {}

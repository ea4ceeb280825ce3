package cursers

// Config carries the construction-time settings of an App.
type Config struct {
	// FPS is the target update rate; the frame interval is 1/FPS
	// seconds. Zero resolves to the default at construction.
	FPS int

	// ExtendedKeys enables arrow and function key decoding on the
	// screen. Without it only runes and basic control keys are
	// delivered.
	ExtendedKeys bool
}

// DefaultConfig returns the default application settings.
func DefaultConfig() Config {
	return Config{
		FPS:          30,
		ExtendedKeys: false,
	}
}

package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The seed feeds the AI and effect RNGs for deterministic simulation in tests.
type RuntimeConfig struct {
	ScreenW  int   // Framebuffer width in pixels
	ScreenH  int   // Framebuffer height in pixels
	TickRate int   // Target ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time in the platform layer
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  160,
		ScreenH:  96,
		TickRate: 60,
		Seed:     0,
	}
}

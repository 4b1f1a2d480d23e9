package core

// RuntimeConfig contains configuration passed to a grid screen at start.
// The presentation layer uses it to lay out tiles and drive animations.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Animation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickSeconds returns the duration of one tick in seconds.
func (c RuntimeConfig) TickSeconds() float32 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float32(c.TickRate)
}

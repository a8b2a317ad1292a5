package core

// Fixed display geometry of the emulated machine.
const (
	ScreenWidth  = 256
	ScreenHeight = 256
)

// RuntimeConfig contains configuration passed to the engine at start up.
type RuntimeConfig struct {
	TickRate int // Frames per second (default 60)
	Scale    int // Pixels per terminal column; rows cover 2*Scale pixels
	OffsetX  int // Frame offset in terminal cells (restored window position)
	OffsetY  int
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Scale:    2,
	}
}

// MsPerFrame returns the tick delta of one frame in milliseconds.
func (c RuntimeConfig) MsPerFrame() uint32 {
	if c.TickRate <= 0 {
		return 1000 / 60
	}
	return uint32(1000 / c.TickRate)
}

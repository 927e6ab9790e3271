package core

import "time"

// ReferenceFrame is the frame interval motion constants are tuned for.
// Per-frame updates are scaled by elapsed/ReferenceFrame.
const ReferenceFrame = 16 * time.Millisecond

// RuntimeConfig contains host settings passed down to the engine.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	FPS     int   // Frame requests per second
	Seed    int64 // RNG seed; 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     60,
	}
}

// FrameInterval returns the delay between frame requests.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return ReferenceFrame
	}
	return time.Second / time.Duration(c.FPS)
}

// Scale converts an elapsed frame delta in milliseconds into reference
// frame units.
func Scale(dtMS float64) float64 {
	return dtMS / float64(ReferenceFrame.Milliseconds())
}

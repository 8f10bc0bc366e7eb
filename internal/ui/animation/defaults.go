package animation

import "time"

// DefaultConfig returns a short ease-out matching the countdown tick rate.
func DefaultConfig() Config {
	return Config{
		Duration:      250 * time.Millisecond,
		FrameInterval: 16 * time.Millisecond,
	}
}

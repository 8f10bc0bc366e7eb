package model

import "time"

// MaxTickInterval is the coarsest tick that still updates progress at 10 Hz.
const MaxTickInterval = 100 * time.Millisecond

// CountdownConfig contains runtime settings for the countdown engine.
type CountdownConfig struct {
	// TickInterval is how often remaining time and progress are recomputed.
	// Values above MaxTickInterval are clamped.
	TickInterval time.Duration
	// GraceDelay holds the finished state before the session reports idle.
	// Zero flips to idle immediately.
	GraceDelay time.Duration
}

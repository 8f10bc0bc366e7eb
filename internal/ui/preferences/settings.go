package preferences

import (
	"time"

	"tickpad/internal/core/model"
)

// Upper bounds for editable values.
const (
	MaxTickInterval      = model.MaxTickInterval
	MaxGraceDelay        = 10 * time.Second
	MaxAnimationDuration = 2 * time.Second
)

// Settings defines editable user preferences.
type Settings struct {
	TickInterval time.Duration
	GraceDelay   time.Duration

	AnimateProgress   bool
	AnimationDuration time.Duration
}

// DefaultSettings returns default settings for tickpad.
func DefaultSettings() Settings {
	return Settings{
		TickInterval:      10 * time.Millisecond,
		GraceDelay:        time.Second,
		AnimateProgress:   true,
		AnimationDuration: 250 * time.Millisecond,
	}
}

// CountdownConfig converts settings to the countdown engine config.
func (settings Settings) CountdownConfig() model.CountdownConfig {
	return model.CountdownConfig{
		TickInterval: settings.TickInterval,
		GraceDelay:   settings.GraceDelay,
	}
}

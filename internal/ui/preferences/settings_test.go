package preferences

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tickpad/internal/core/model"
)

func TestDefaultSettingsCountdownConfig(t *testing.T) {
	config := DefaultSettings().CountdownConfig()
	assert.Equal(t, model.CountdownConfig{
		TickInterval: 10 * time.Millisecond,
		GraceDelay:   time.Second,
	}, config)
}

func TestParseMillis(t *testing.T) {
	const limit = 2 * time.Second

	value, ok := parseMillis("250", true, limit)
	assert.True(t, ok)
	assert.Equal(t, 250*time.Millisecond, value)

	value, ok = parseMillis(" 0 ", true, limit)
	assert.True(t, ok)
	assert.Zero(t, value)

	_, ok = parseMillis("0", false, limit)
	assert.False(t, ok)
	_, ok = parseMillis("-3", true, limit)
	assert.False(t, ok)
	_, ok = parseMillis("abc", true, limit)
	assert.False(t, ok)

	value, ok = parseMillis("2000", true, limit)
	assert.True(t, ok)
	assert.Equal(t, limit, value)
	_, ok = parseMillis("2001", true, limit)
	assert.False(t, ok)
}

func TestTickIntervalEntryRejectsSlowTicks(t *testing.T) {
	value, ok := parseMillis("100", false, MaxTickInterval)
	assert.True(t, ok)
	assert.Equal(t, 100*time.Millisecond, value)

	_, ok = parseMillis("101", false, MaxTickInterval)
	assert.False(t, ok)
	_, ok = parseMillis("1000", false, MaxTickInterval)
	assert.False(t, ok)
}

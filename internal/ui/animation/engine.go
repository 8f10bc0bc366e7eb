package animation

import (
	"context"
	"sync"
	"time"
)

// Config contains tween timing values.
type Config struct {
	Duration      time.Duration
	FrameInterval time.Duration
}

// Engine eases a displayed progress value toward the latest target.
type Engine struct {
	mu       sync.Mutex
	config   Config
	update   func(float64)
	cancel   context.CancelFunc
	current  float64
	target   float64
	parent   context.Context
	disabled bool
}

// New creates a new animation engine. update receives every displayed value
// and must not call back into the engine.
func New(config Config, update func(float64)) *Engine {
	if config.FrameInterval <= 0 {
		config.FrameInterval = DefaultConfig().FrameInterval
	}
	return &Engine{
		config: config,
		update: update,
		parent: context.Background(),
	}
}

// SetEnabled toggles easing. A disabled engine jumps straight to each target.
func (engine *Engine) SetEnabled(enabled bool) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.disabled = !enabled
}

// SetDuration changes the length of future tweens.
func (engine *Engine) SetDuration(duration time.Duration) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.config.Duration = duration
}

// Value returns the last displayed value.
func (engine *Engine) Value() float64 {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.current
}

// AnimateTo starts easing from the displayed value toward target, replacing
// any tween in flight. Calls for the target already shown or in flight are ignored.
func (engine *Engine) AnimateTo(target float64) {
	engine.mu.Lock()
	if target == engine.target && (engine.cancel != nil || engine.current == target) {
		engine.mu.Unlock()
		return
	}
	engine.target = target
	engine.stopLocked()
	if engine.disabled || engine.config.Duration <= 0 {
		engine.current = target
		engine.update(target)
		engine.mu.Unlock()
		return
	}
	from := engine.current
	runCtx, cancel := context.WithCancel(engine.parent)
	engine.cancel = cancel
	config := engine.config
	engine.mu.Unlock()

	go engine.run(runCtx, from, target, config)
}

// Jump cancels any tween and shows value immediately.
func (engine *Engine) Jump(value float64) {
	engine.mu.Lock()
	engine.stopLocked()
	engine.current = value
	engine.target = value
	engine.update(value)
	engine.mu.Unlock()
}

// Stop terminates any active tween.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.stopLocked()
}

func (engine *Engine) stopLocked() {
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func (engine *Engine) run(ctx context.Context, from, to float64, config Config) {
	start := time.Now()
	for {
		fraction := float64(time.Since(start)) / float64(config.Duration)
		if fraction > 1 {
			fraction = 1
		}
		value := Ease(from, to, fraction)
		if !engine.show(ctx, value) || fraction >= 1 {
			return
		}
		if !sleepWithContext(ctx, config.FrameInterval) {
			return
		}
	}
}

func (engine *Engine) show(ctx context.Context, value float64) bool {
	engine.mu.Lock()
	if ctx.Err() != nil {
		engine.mu.Unlock()
		return false
	}
	engine.current = value
	engine.update(value)
	engine.mu.Unlock()
	return true
}

// Ease interpolates between from and to with a cubic ease-out.
func Ease(from, to, fraction float64) float64 {
	if fraction <= 0 {
		return from
	}
	if fraction >= 1 {
		return to
	}
	inverse := 1 - fraction
	eased := 1 - inverse*inverse*inverse
	return from + (to-from)*eased
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

package countdown

import (
	"sync"
	"time"

	"tickpad/internal/core/keypad"
	"tickpad/internal/core/model"
)

const (
	// DefaultTickInterval is used when the config leaves TickInterval unset.
	DefaultTickInterval = 10 * time.Millisecond
	// DefaultGraceDelay is how long a finished countdown is held by default.
	DefaultGraceDelay = time.Second
)

type phase int

const (
	phaseIdle phase = iota
	phaseCounting
	phaseSettling
)

// Session is the root countdown state: the digit pad, the displayed duration
// and the countdown engine driving it. All methods are safe for concurrent use
// and are serialized by a single mutex.
type Session struct {
	mu          sync.Mutex
	config      model.CountdownConfig
	clock       Clock
	pad         *keypad.Pad
	duration    model.Duration
	phase       phase
	progress    float64
	totalMillis int64
	deadline    time.Time
	timer       Timer
	generation  uint64
	events      []chan Event
	closed      bool
}

// New creates an idle Session with empty buffers and a zero duration.
func New(config model.CountdownConfig) *Session {
	return &Session{
		config: normalizeConfig(config),
		clock:  SystemClock,
		pad:    keypad.NewPad(),
	}
}

// SetClock injects the clock used for ticks. Call it before Start.
func (session *Session) SetClock(clock Clock) {
	if clock == nil {
		clock = SystemClock
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	session.clock = clock
}

// UpdateConfig replaces the engine settings. A running countdown keeps its
// deadline and picks up the new tick interval on its next tick.
func (session *Session) UpdateConfig(config model.CountdownConfig) {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.config = normalizeConfig(config)
}

// Subscribe registers a new observer channel. Slow observers miss events
// rather than block the session.
func (session *Session) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.closed {
		close(ch)
		return ch
	}
	session.events = append(session.events, ch)
	return ch
}

// Snapshot returns the current observable state.
func (session *Session) Snapshot() Snapshot {
	session.mu.Lock()
	defer session.mu.Unlock()
	return Snapshot{
		Duration: session.duration,
		Running:  session.phase != phaseIdle,
		Progress: session.progress,
		Target:   session.pad.Target(),
	}
}

// Duration returns the displayed hour/minute/second values.
func (session *Session) Duration() model.Duration {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.duration
}

// Running reports whether a countdown is active or holding its finished state.
func (session *Session) Running() bool {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.phase != phaseIdle
}

// Progress returns the completed fraction of the current countdown.
func (session *Session) Progress() float64 {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.progress
}

// Target returns the field currently receiving digits.
func (session *Session) Target() keypad.EditTarget {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.pad.Target()
}

// Digits returns the buffered digits for target.
func (session *Session) Digits(target keypad.EditTarget) []int {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.pad.Digits(target)
}

// AppendDigit types digit into the buffer for target. It is ignored while
// running or when the buffer is full.
func (session *Session) AppendDigit(target keypad.EditTarget, digit int) {
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.phase != phaseIdle {
		return
	}
	updated, changed := session.pad.Append(target, digit, session.duration)
	if !changed {
		return
	}
	session.duration = updated
	session.emitLocked(session.eventLocked(EventEdit, session.clock.Now()))
}

// DeleteLast removes the last digit typed for target.
func (session *Session) DeleteLast(target keypad.EditTarget) {
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.phase != phaseIdle {
		return
	}
	updated, changed := session.pad.DeleteLast(target, session.duration)
	if !changed {
		return
	}
	session.duration = updated
	session.emitLocked(session.eventLocked(EventEdit, session.clock.Now()))
}

// SelectTarget switches which field receives digits.
func (session *Session) SelectTarget(target keypad.EditTarget) {
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.phase != phaseIdle || !target.Valid() {
		return
	}
	session.pad.Select(target, session.duration)
	session.emitLocked(session.eventLocked(EventEdit, session.clock.Now()))
}

// Type appends digit to the active target.
func (session *Session) Type(digit int) {
	session.AppendDigit(session.Target(), digit)
}

// Backspace deletes from the active target.
func (session *Session) Backspace() {
	session.DeleteLast(session.Target())
}

// Close stops any countdown and closes observer channels.
func (session *Session) Close() {
	session.mu.Lock()
	if session.closed {
		session.mu.Unlock()
		return
	}
	session.cancelTimerLocked()
	session.generation++
	session.phase = phaseIdle
	session.closed = true
	events := session.events
	session.events = nil
	session.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (session *Session) eventLocked(eventType EventType, at time.Time) Event {
	return Event{
		Type:     eventType,
		Running:  session.phase != phaseIdle,
		Duration: session.duration,
		Progress: session.progress,
		Target:   session.pad.Target(),
		At:       at,
	}
}

func (session *Session) emitLocked(event Event) {
	for _, ch := range session.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func normalizeConfig(config model.CountdownConfig) model.CountdownConfig {
	if config.TickInterval <= 0 {
		config.TickInterval = DefaultTickInterval
	}
	if config.TickInterval > model.MaxTickInterval {
		config.TickInterval = model.MaxTickInterval
	}
	if config.GraceDelay < 0 {
		config.GraceDelay = 0
	}
	return config
}

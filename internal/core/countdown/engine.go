package countdown

import (
	"time"

	"tickpad/internal/core/model"
)

// Start begins counting down from the displayed duration. A zero duration is
// ignored. Calling Start while counting re-arms from the current value.
func (session *Session) Start() {
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.closed || session.duration.IsZero() {
		return
	}

	session.cancelTimerLocked()
	session.generation++
	session.pad.Lock()
	session.duration = session.duration.Normalize()
	session.totalMillis = session.duration.TotalSeconds() * 1000

	now := session.clock.Now()
	session.deadline = now.Add(time.Duration(session.totalMillis) * time.Millisecond)
	session.phase = phaseCounting
	session.progress = 0

	session.emitLocked(session.eventLocked(EventStateChange, now))
	session.scheduleTickLocked(session.config.TickInterval)
}

// Stop cancels the countdown. The displayed duration and typed digits are
// kept so editing can resume. Stop is idempotent.
func (session *Session) Stop() {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.cancelTimerLocked()
	session.generation++
	wasRunning := session.phase != phaseIdle
	session.phase = phaseIdle
	session.progress = 0
	if wasRunning {
		session.emitLocked(session.eventLocked(EventStateChange, session.clock.Now()))
	}
}

func (session *Session) tick(generation uint64) {
	session.mu.Lock()
	defer session.mu.Unlock()
	if generation != session.generation || session.phase != phaseCounting {
		return
	}
	session.timer = nil

	now := session.clock.Now()
	remaining := session.deadline.Sub(now).Milliseconds()
	if remaining <= 0 {
		session.finishLocked(now)
		return
	}

	session.duration = model.FromMillis(remaining)
	session.progress = progressFor(session.totalMillis, remaining)
	session.emitLocked(session.eventLocked(EventProgress, now))

	next := session.config.TickInterval
	if left := time.Duration(remaining) * time.Millisecond; left < next {
		next = left
	}
	session.scheduleTickLocked(next)
}

func (session *Session) finishLocked(now time.Time) {
	session.progress = 1
	session.duration = model.Duration{}
	session.pad.Reset()
	session.phase = phaseSettling
	session.emitLocked(session.eventLocked(EventFinished, now))

	if session.config.GraceDelay <= 0 {
		session.settleLocked(now)
		return
	}
	generation := session.generation
	session.timer = session.clock.AfterFunc(session.config.GraceDelay, func() {
		session.settle(generation)
	})
}

func (session *Session) settle(generation uint64) {
	session.mu.Lock()
	defer session.mu.Unlock()
	if generation != session.generation || session.phase != phaseSettling {
		return
	}
	session.timer = nil
	session.settleLocked(session.clock.Now())
}

func (session *Session) settleLocked(now time.Time) {
	session.phase = phaseIdle
	session.progress = 0
	session.emitLocked(session.eventLocked(EventStateChange, now))
}

func (session *Session) scheduleTickLocked(delay time.Duration) {
	generation := session.generation
	session.timer = session.clock.AfterFunc(delay, func() {
		session.tick(generation)
	})
}

func (session *Session) cancelTimerLocked() {
	if session.timer != nil {
		session.timer.Stop()
		session.timer = nil
	}
}

// progressFor returns the completed fraction in hundredths.
func progressFor(totalMillis, remainingMillis int64) float64 {
	if totalMillis <= 0 {
		return 1
	}
	percent := (totalMillis - remainingMillis) * 100 / totalMillis
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return float64(percent) / 100
}

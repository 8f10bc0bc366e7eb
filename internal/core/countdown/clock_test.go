package countdown

import (
	"sort"
	"sync"
	"time"
)

// manualClock fires callbacks only when Advance moves time past them.
type manualClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	clock   *manualClock
	when    time.Time
	seq     int
	fn      func()
	stopped bool
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (clock *manualClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.seq++
	timer := &manualTimer{clock: clock, when: clock.now.Add(d), seq: clock.seq, fn: f}
	clock.timers = append(clock.timers, timer)
	return timer
}

func (timer *manualTimer) Stop() bool {
	timer.clock.mu.Lock()
	defer timer.clock.mu.Unlock()
	wasActive := !timer.stopped
	timer.stopped = true
	return wasActive
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (clock *manualClock) Pending() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	count := 0
	for _, timer := range clock.timers {
		if !timer.stopped {
			count++
		}
	}
	return count
}

// Advance moves time forward by d, firing due callbacks in order.
func (clock *manualClock) Advance(d time.Duration) {
	clock.mu.Lock()
	target := clock.now.Add(d)
	clock.mu.Unlock()

	for {
		clock.mu.Lock()
		next := clock.nextDueLocked(target)
		if next == nil {
			clock.now = target
			clock.mu.Unlock()
			return
		}
		next.stopped = true
		clock.now = next.when
		clock.mu.Unlock()

		next.fn()
	}
}

func (clock *manualClock) nextDueLocked(target time.Time) *manualTimer {
	active := clock.timers[:0]
	for _, timer := range clock.timers {
		if !timer.stopped {
			active = append(active, timer)
		}
	}
	clock.timers = active
	sort.Slice(active, func(i, j int) bool {
		if active[i].when.Equal(active[j].when) {
			return active[i].seq < active[j].seq
		}
		return active[i].when.Before(active[j].when)
	})
	if len(active) == 0 || active[0].when.After(target) {
		return nil
	}
	return active[0]
}

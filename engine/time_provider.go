package engine

import "time"

// Clock is the time source for frame pacing
type Clock interface {
	Now() time.Time
}

// TimeProvider reads the system monotonic clock
type TimeProvider struct{}

func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// FrameClock measures variable frame deltas, clamped to a maximum
type FrameClock struct {
	clock   Clock
	max     time.Duration
	last    time.Time
	started bool
}

func NewFrameClock(clock Clock, max time.Duration) *FrameClock {
	return &FrameClock{clock: clock, max: max}
}

// Tick returns time since the previous Tick; the first call returns zero
func (f *FrameClock) Tick() time.Duration {
	now := f.clock.Now()
	if !f.started {
		f.started = true
		f.last = now
		return 0
	}
	dt := now.Sub(f.last)
	f.last = now
	if dt < 0 {
		return 0
	}
	if f.max > 0 && dt > f.max {
		return f.max
	}
	return dt
}

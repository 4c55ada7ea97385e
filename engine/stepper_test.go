package engine

import (
	"testing"
	"time"
)

func TestStepperAccumulates(t *testing.T) {
	s := NewStepper(0.1, 8)
	calls := 0
	fn := func(step float64) {
		if step != 0.1 {
			t.Errorf("step = %v, want 0.1", step)
		}
		calls++
	}

	if n := s.Advance(0.05, fn); n != 0 {
		t.Errorf("half step ran %d steps", n)
	}
	if n := s.Advance(0.06, fn); n != 1 {
		t.Errorf("carry-over should complete one step, ran %d", n)
	}
	if n := s.Advance(0.25, fn); n != 2 {
		t.Errorf("0.25s should run 2 steps, ran %d", n)
	}
	if calls != 3 || s.Total() != 3 {
		t.Errorf("calls = %d, total = %d, want 3", calls, s.Total())
	}
}

func TestStepperCapsCatchUp(t *testing.T) {
	s := NewStepper(0.01, 4)
	n := s.Advance(1.0, func(float64) {})
	if n != 4 {
		t.Fatalf("capped advance ran %d steps, want 4", n)
	}
	// Backlog was dropped: a tiny dt must not trigger a burst
	if n := s.Advance(0.001, func(float64) {}); n > 1 {
		t.Errorf("backlog leaked: %d steps", n)
	}
}

func TestStepperHugeDeltaIsBounded(t *testing.T) {
	s := NewStepper(1.0/60, 8)
	done := make(chan int, 1)
	go func() { done <- s.Advance(time.Duration(1<<62).Seconds(), func(float64) {}) }()

	select {
	case n := <-done:
		if n != 8 {
			t.Fatalf("huge dt ran %d steps, want cap 8", n)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Advance with a huge dt did not return")
	}
	if n := s.Advance(1.0/60, func(float64) {}); n > 2 {
		t.Errorf("remainder after huge dt ran %d steps", n)
	}
}

func TestStepperResetDropsCarry(t *testing.T) {
	s := NewStepper(0.1, 8)
	s.Advance(0.08, func(float64) {})
	s.Reset()
	if n := s.Advance(0.05, func(float64) {}); n != 0 {
		t.Errorf("carry survived Reset: %d steps", n)
	}
}

func TestStepperIgnoresNonPositive(t *testing.T) {
	s := NewStepper(0.1, 8)
	if s.Advance(-1, func(float64) { t.Error("called") }) != 0 {
		t.Error("negative dt should not step")
	}
	zero := NewStepper(0, 8)
	if zero.Advance(1, func(float64) { t.Error("called") }) != 0 {
		t.Error("zero step size should not step")
	}
}

func TestFrameClockClamps(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	fc := NewFrameClock(mock, 100*time.Millisecond)

	if dt := fc.Tick(); dt != 0 {
		t.Errorf("first Tick = %v, want 0", dt)
	}
	mock.Advance(16 * time.Millisecond)
	if dt := fc.Tick(); dt != 16*time.Millisecond {
		t.Errorf("Tick = %v, want 16ms", dt)
	}
	mock.Advance(2 * time.Second)
	if dt := fc.Tick(); dt != 100*time.Millisecond {
		t.Errorf("stalled Tick = %v, want clamp 100ms", dt)
	}
	mock.SetTime(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if dt := fc.Tick(); dt != 0 {
		t.Errorf("backwards Tick = %v, want 0", dt)
	}
}

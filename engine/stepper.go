package engine

import "math"

// Stepper converts variable frame time into whole fixed steps
// Leftover time carries to the next frame; steps beyond MaxSteps are dropped
type Stepper struct {
	Step     float64 // Seconds per fixed step
	MaxSteps int

	accumulator float64
	total       uint64
}

func NewStepper(step float64, maxSteps int) *Stepper {
	return &Stepper{Step: step, MaxSteps: maxSteps}
}

// Advance adds dt seconds and calls fn once per due step, returning the count
func (s *Stepper) Advance(dt float64, fn func(step float64)) int {
	if s.Step <= 0 || dt <= 0 {
		return 0
	}
	s.accumulator += dt

	n := 0
	for s.accumulator >= s.Step {
		if s.MaxSteps > 0 && n >= s.MaxSteps {
			// Spiral of death guard: keep only the fractional remainder
			s.accumulator = math.Mod(s.accumulator, s.Step)
			break
		}
		s.accumulator -= s.Step
		fn(s.Step)
		n++
	}
	s.total += uint64(n)
	return n
}

// Total returns fixed steps run since creation
func (s *Stepper) Total() uint64 {
	return s.total
}

// Reset drops accumulated time
func (s *Stepper) Reset() {
	s.accumulator = 0
}

package engine

import "time"

// System runs once per variable frame in Priority order
type System interface {
	Name() string
	Priority() int
	Update(dt time.Duration)
}

// FixedSystem runs once per fixed step driven by Stepper
type FixedSystem interface {
	Name() string
	FixedUpdate(step float64)
}

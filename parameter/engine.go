package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the interactive render/update cadence (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FixedStepSeconds is the gravity integration step (60 steps per second)
	FixedStepSeconds = 1.0 / 60.0

	// MaxFrameDelta caps a single variable frame so a stalled terminal does not
	// hand the integrators a huge step
	MaxFrameDelta = 100 * time.Millisecond

	// MaxFixedStepsPerFrame bounds catch-up work inside one frame
	MaxFixedStepsPerFrame = 8

	// EventDispatchRounds bounds re-dispatch when handlers emit further events
	EventDispatchRounds = 8
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = EventQueueSize - 1
)

// System priorities, lower runs first after the fixed steps
const (
	PriorityMotion    = 20
	PriorityProximity = 30
)

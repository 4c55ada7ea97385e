package game

// Input is one frame of player intent
// PressStart and PressEnd are edges, not held state
type Input struct {
	PressStart bool
	PressEnd   bool
	Aim        float64 // [-1, 1], clamped
}

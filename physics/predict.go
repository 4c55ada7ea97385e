package physics

import (
	"github.com/lixenwraith/sunshot/vmath"
)

// Trajectory parameters for Predict
type Trajectory struct {
	Start    vmath.Vec2
	Velocity vmath.Vec2
	Mass     float64
	Step     float64 // Fixed step, seconds
	Scale    float64 // Velocity integration scale
	MinDist  float64
}

// Predict samples n future positions, one per fixed step, under static sources
// Stops early when a sample enters any source's hit radius
func Predict(tr Trajectory, sources []Source, n int) []vmath.Vec2 {
	if n <= 0 {
		return nil
	}
	out := make([]vmath.Vec2, 0, n)
	pos, vel := tr.Start, tr.Velocity
	for i := 0; i < n; i++ {
		vel = vmath.V2Add(vel, GravityStep(pos, tr.Mass, sources, tr.MinDist))
		pos = vmath.V2Add(pos, vmath.V2Scale(vel, tr.Step*tr.Scale))
		out = append(out, pos)
		for _, src := range sources {
			if Within(pos, src.Position, src.Radius) {
				return out
			}
		}
	}
	return out
}

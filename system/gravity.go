package system

import (
	"sync/atomic"

	"github.com/lixenwraith/sunshot/engine"
	"github.com/lixenwraith/sunshot/parameter"
	"github.com/lixenwraith/sunshot/physics"
	"github.com/lixenwraith/sunshot/status"
)

// GravitySystem adds every visible attractor's pull to each crate in flight
// Runs per fixed step; velocity only, positions move in MotionSystem
type GravitySystem struct {
	world *engine.World
	steps *atomic.Int64
}

func NewGravitySystem(world *engine.World) *GravitySystem {
	return &GravitySystem{
		world: world,
		steps: world.Status.Ints.Get(status.MetricFixedSteps),
	}
}

func (s *GravitySystem) Name() string {
	return "gravity"
}

// Sources snapshots attractor positions and strengths for this step
func (s *GravitySystem) Sources() []physics.Source {
	attractors := s.world.Attractors()
	out := make([]physics.Source, 0, len(attractors))
	for _, a := range attractors {
		out = append(out, physics.Source{
			Position: s.world.PlanarPosition(a.Entity),
			Strength: a.Strength,
			Radius:   a.Radius,
		})
	}
	return out
}

func (s *GravitySystem) FixedUpdate(step float64) {
	s.steps.Add(1)

	sources := s.Sources()
	if len(sources) == 0 {
		return
	}
	for _, p := range s.world.Projectiles() {
		if !p.Launched || p.Consumed {
			continue
		}
		pos := s.world.PlanarPosition(p.Entity)
		dv := physics.GravityStep(pos, p.Mass, sources, parameter.GravityMinDistance)
		p.Velocity.X += dv.X
		p.Velocity.Y += dv.Y
	}
}

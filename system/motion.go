package system

import (
	"time"

	"github.com/lixenwraith/sunshot/engine"
	"github.com/lixenwraith/sunshot/parameter"
	"github.com/lixenwraith/sunshot/physics"
	"github.com/lixenwraith/sunshot/vmath"
)

// MotionSystem integrates velocities into positions each variable frame
// Also drives crate spin, in-flight mass gain and the secondary planet's orbit
type MotionSystem struct {
	world *engine.World
}

func NewMotionSystem(world *engine.World) *MotionSystem {
	return &MotionSystem{world: world}
}

func (s *MotionSystem) Name() string {
	return "motion"
}

func (s *MotionSystem) Priority() int {
	return parameter.PriorityMotion
}

func (s *MotionSystem) Update(dt time.Duration) {
	secs := dt.Seconds()
	if secs <= 0 {
		return
	}
	w := s.world
	m := w.Tuning.Motion
	w.Elapsed += secs

	spin := vmath.QRotZ(secs * m.CrateSpinRate)
	for _, p := range w.Projectiles() {
		body, ok := w.Body(p.Entity)
		if !ok || p.Consumed {
			continue
		}
		body.Local.Rotation = vmath.QNormalize(vmath.QMul(body.Local.Rotation, spin))
		if !p.Launched {
			continue
		}
		body.Local.Position = physics.Advance(body.Local.Position, p.Velocity, secs, m.VelocityScale)
		p.Mass += m.FlightMassGain * secs
	}

	if w.Visible(w.Secondary) {
		w.SecondaryAngle += m.SecondaryOrbitSpeed * secs
		if body, ok := w.Body(w.Secondary); ok {
			body.Local = w.SecondaryOrbitTransform(w.SecondaryAngle)
		}
	}
}

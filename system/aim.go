package system

import (
	"math"
	"time"

	"github.com/lixenwraith/sunshot/engine"
	"github.com/lixenwraith/sunshot/vmath"
)

// AimSystem swings the cannon along its arc around the home planet
// The pose eases toward the aimed target instead of snapping
type AimSystem struct {
	world *engine.World
	aim   float64 // [-1, 1], 0 = straight up
}

func NewAimSystem(world *engine.World) *AimSystem {
	return &AimSystem{world: world}
}

func (s *AimSystem) Name() string {
	return "aim"
}

// SetAim stores the normalised aim; values outside [-1, 1] are clamped
func (s *AimSystem) SetAim(aim float64) {
	if math.IsNaN(aim) {
		return
	}
	s.aim = vmath.Clamp(aim, -1, 1)
}

// Aim returns the stored aim
func (s *AimSystem) Aim() float64 {
	return s.aim
}

// Angle returns the cannon angle from vertical for the stored aim
func (s *AimSystem) Angle() float64 {
	return s.aim * math.Pi / 2 * s.world.Tuning.Launch.CannonMaxAngle
}

// Target returns the pose the cannon is easing toward
func (s *AimSystem) Target() vmath.Transform {
	angle := s.Angle()
	planet := s.world.WorldTransform(s.world.Planet).Position
	r := s.world.Tuning.Launch.CannonOrbitRadius
	t := vmath.TransformAt(vmath.V3FAdd(planet, vmath.Vec3F{X: math.Sin(angle) * r, Y: math.Cos(angle) * r}))
	t.Rotation = vmath.QRotZ(-angle)
	return t
}

func (s *AimSystem) Update(dt time.Duration) {
	body, ok := s.world.Body(s.world.Cannon)
	if !ok {
		return
	}
	f := math.Min(1, dt.Seconds()*s.world.Tuning.Launch.CannonFollowRate)
	if f <= 0 {
		return
	}
	target := s.Target()
	body.Local.Position = vmath.V3FLerp(body.Local.Position, target.Position, f)
	body.Local.Rotation = vmath.QNlerp(body.Local.Rotation, target.Rotation, f)
}

package system

import (
	"log"
	"math"

	"github.com/lixenwraith/sunshot/engine"
	"github.com/lixenwraith/sunshot/event"
	"github.com/lixenwraith/sunshot/vmath"
)

// LevelSystem builds the scene for the current level and loads crates
type LevelSystem struct {
	world *engine.World
}

func NewLevelSystem(world *engine.World) *LevelSystem {
	return &LevelSystem{world: world}
}

func (s *LevelSystem) Name() string {
	return "level"
}

// DebrisLayout returns the debris positions for level, deterministic in level
// Ring around the sun's xy at z = 0, angles and radii perturbed by sines
func (s *LevelSystem) DebrisLayout(level int) []vmath.Vec3F {
	lt := s.world.Tuning.Level
	n := lt.DebrisCount(level)
	sun := s.world.PlanarPosition(s.world.Sun)
	l := float64(level)

	out := make([]vmath.Vec3F, n)
	for i := range out {
		fi := float64(i)
		angle := 2*math.Pi*fi/float64(n) + lt.AngleJitter*math.Sin(1.7*fi+0.9*l)
		radius := lt.RingRadius + lt.RadiusWobble*math.Sin(2.3*fi+l)
		out[i] = vmath.Vec3F{
			X: sun.X + radius*math.Cos(angle),
			Y: sun.Y + radius*math.Sin(angle),
		}
	}
	return out
}

// Setup clears leftovers, restores the home planet, spawns the debris field and
// places or hides the secondary planet
func (s *LevelSystem) Setup() {
	w := s.world
	level := w.State.Level

	for _, p := range append([]*engine.Projectile(nil), w.Projectiles()...) {
		w.Despawn(p.Entity)
	}
	for _, d := range append([]*engine.Debris(nil), w.Debris()...) {
		w.Despawn(d.Entity)
	}

	w.SetVisible(w.Planet, true)

	for _, pos := range s.DebrisLayout(level) {
		w.SpawnDebris(vmath.TransformAt(pos))
	}

	secondary := level >= w.Tuning.Level.SecondaryLevel
	w.SetVisible(w.Secondary, secondary)
	w.SecondaryAngle = 0.6 * float64(level)
	if body, ok := w.Body(w.Secondary); ok {
		body.Local = w.SecondaryOrbitTransform(w.SecondaryAngle)
	}

	w.Emit(event.EventLevelSetup, &event.LevelSetupPayload{
		Level:     level,
		Debris:    len(w.Debris()),
		Secondary: secondary,
	})
	log.Printf("level: %d set up with %d debris, secondary=%v", level, len(w.Debris()), secondary)
}

// LoadCrate mounts a fresh crate on the cannon unless one is already loaded
func (s *LevelSystem) LoadCrate() *engine.Projectile {
	w := s.world
	if p := w.CurrentProjectile(); p != nil {
		return p
	}
	w.State.Shots++
	return w.SpawnProjectile(PayloadLabel(w.State.Shots), w.Tuning.Launch.CrateMass)
}

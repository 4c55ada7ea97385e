package game

import (
	"time"

	"github.com/lixenwraith/sunshot/core"
	"github.com/lixenwraith/sunshot/engine"
	"github.com/lixenwraith/sunshot/parameter"
	"github.com/lixenwraith/sunshot/physics"
	"github.com/lixenwraith/sunshot/status"
	"github.com/lixenwraith/sunshot/vmath"
)

// ProjectileView is a read-only copy of a crate's state
type ProjectileView struct {
	Entity   core.Entity
	Label    string
	Position vmath.Vec2
	Velocity vmath.Vec2
	Mass     float64
	Launched bool
	Carrying int
}

// DebrisView is a read-only copy of a debris piece
type DebrisView struct {
	Entity   core.Entity
	Position vmath.Vec2
	PickedUp bool
}

func (g *Game) Level() int                 { return g.world.State.Level }
func (g *Game) Score() int                 { return g.world.State.Score }
func (g *Game) Phase() engine.Phase        { return g.world.State.Phase }
func (g *Game) MenuPrompt() string         { return g.world.State.MenuPrompt }
func (g *Game) LaunchPower() time.Duration { return g.world.State.LaunchPower }
func (g *Game) Shots() int                 { return g.world.State.Shots }

// KillLog returns a copy of the log
func (g *Game) KillLog() []string {
	return g.world.State.KillLogCopy()
}

// World exposes the scene for presentation; callers must not mutate it
func (g *Game) World() *engine.World {
	return g.world
}

// Status returns the metric registry
func (g *Game) Status() *status.Registry {
	return g.world.Status
}

// Aim returns the clamped aim last applied
func (g *Game) Aim() float64 {
	return g.aim.Aim()
}

func (g *Game) Projectiles() []ProjectileView {
	w := g.world
	out := make([]ProjectileView, 0, len(w.Projectiles()))
	for _, p := range w.Projectiles() {
		out = append(out, ProjectileView{
			Entity:   p.Entity,
			Label:    p.Label,
			Position: w.PlanarPosition(p.Entity),
			Velocity: p.Velocity,
			Mass:     p.Mass,
			Launched: p.Launched,
			Carrying: len(w.CarriedBy(p.Entity)),
		})
	}
	return out
}

func (g *Game) Debris() []DebrisView {
	w := g.world
	out := make([]DebrisView, 0, len(w.Debris()))
	for _, d := range w.Debris() {
		out = append(out, DebrisView{
			Entity:   d.Entity,
			Position: w.PlanarPosition(d.Entity),
			PickedUp: d.PickedUp,
		})
	}
	return out
}

// Predict samples up to n fixed steps of the first crate in flight, or of the
// loaded crate as if fired now; nil when there is no crate
func (g *Game) Predict(n int) []vmath.Vec2 {
	w := g.world
	tr := physics.Trajectory{
		Step:    w.Tuning.FixedStep,
		Scale:   w.Tuning.Motion.VelocityScale,
		MinDist: parameter.GravityMinDistance,
	}

	var crate *engine.Projectile
	for _, p := range w.Projectiles() {
		if p.Launched && !p.Consumed {
			crate = p
			break
		}
	}
	if crate != nil {
		tr.Velocity = crate.Velocity
	} else {
		crate = w.CurrentProjectile()
		if crate == nil {
			return nil
		}
		tr.Velocity = physics.LaunchVelocity(w.PlanarPosition(w.Cannon), w.PlanarPosition(w.Planet), g.launch.Power())
	}
	tr.Start = w.PlanarPosition(crate.Entity)
	tr.Mass = crate.Mass

	return physics.Predict(tr, g.gravity.Sources(), n)
}

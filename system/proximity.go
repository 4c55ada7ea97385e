package system

import (
	"log"
	"time"

	"github.com/lixenwraith/sunshot/core"
	"github.com/lixenwraith/sunshot/engine"
	"github.com/lixenwraith/sunshot/event"
	"github.com/lixenwraith/sunshot/parameter"
	"github.com/lixenwraith/sunshot/physics"
	"github.com/lixenwraith/sunshot/vmath"
)

// ProximitySystem resolves crate contacts each frame
// Order per crate: debris pickups, home planet, secondary planet, sun, lost in space
// The first terminal contact consumes the crate; later checks skip it
type ProximitySystem struct {
	world *engine.World
}

func NewProximitySystem(world *engine.World) *ProximitySystem {
	return &ProximitySystem{world: world}
}

func (s *ProximitySystem) Name() string {
	return "proximity"
}

func (s *ProximitySystem) Priority() int {
	return parameter.PriorityProximity
}

func (s *ProximitySystem) Update(_ time.Duration) {
	w := s.world
	// Terminal contacts despawn crates; iterate a snapshot
	for _, p := range append([]*engine.Projectile(nil), w.Projectiles()...) {
		if !p.Launched || p.Consumed || !w.Alive(p.Entity) {
			continue
		}
		s.resolve(p)
	}
}

func (s *ProximitySystem) resolve(p *engine.Projectile) {
	w := s.world
	pt := w.Tuning.Proximity
	pos := w.PlanarPosition(p.Entity)

	for _, d := range append([]*engine.Debris(nil), w.Debris()...) {
		if d.PickedUp {
			continue
		}
		if physics.Within(pos, w.PlanarPosition(d.Entity), pt.DebrisRadius) {
			s.pickup(p, d)
		}
	}

	if w.Visible(w.Planet) && physics.Within(pos, w.PlanarPosition(w.Planet), pt.PlanetRadius) {
		s.planetHit(p)
		return
	}
	if w.Visible(w.Secondary) && physics.Within(pos, w.PlanarPosition(w.Secondary), pt.SecondaryRadius) {
		s.bounce(p, event.EventSecondaryHit, parameter.SecondaryName)
		return
	}
	sun := w.PlanarPosition(w.Sun)
	if physics.Within(pos, sun, pt.SunRadius) {
		s.sunHit(p)
		return
	}
	if physics.Beyond(pos, sun, w.Tuning.Motion.LostRadius) {
		s.bounce(p, event.EventProjectileLost, "")
	}
}

// pickup attaches d to p keeping d's global pose
func (s *ProximitySystem) pickup(p *engine.Projectile, d *engine.Debris) {
	w := s.world
	local := vmath.Detach(w.WorldTransform(p.Entity), w.WorldTransform(d.Entity))
	w.Reparent(d.Entity, p.Entity, local)
	d.PickedUp = true
	d.Carrier = p.Entity
	p.Mass += w.Tuning.Proximity.DebrisMass

	w.Emit(event.EventDebrisCollected, &event.DebrisCollectedPayload{
		Projectile: p.Entity,
		Debris:     d.Entity,
		Mass:       p.Mass,
	})
}

func (s *ProximitySystem) planetHit(p *engine.Projectile) {
	w := s.world
	p.Consumed = true
	planet, _ := w.Body(w.Planet)

	w.State.AddKill(p.Label, planet.Name)
	w.State.LastOutcome = engine.OutcomeCrashed
	w.Despawn(p.Entity)
	w.SetVisible(w.Planet, false)

	w.Emit(event.EventPlanetHit, &event.ImpactPayload{
		Projectile: p.Entity,
		Label:      p.Label,
		Target:     planet.Name,
	})
	log.Printf("proximity: %s destroyed %s", p.Label, planet.Name)
}

// bounce ends a crate without clearing anything: carried debris returns to the field
func (s *ProximitySystem) bounce(p *engine.Projectile, et event.EventType, target string) {
	w := s.world
	p.Consumed = true
	restored := s.restore(p)

	w.State.AddKill(p.Label)
	w.Despawn(p.Entity)

	w.Emit(et, &event.ImpactPayload{
		Projectile: p.Entity,
		Label:      p.Label,
		Target:     target,
		Restored:   restored,
	})
	log.Printf("proximity: %s lost (%s), %d debris restored", p.Label, et, restored)
}

// restore frees every debris carried by p at its recorded origin
func (s *ProximitySystem) restore(p *engine.Projectile) int {
	w := s.world
	carried := w.CarriedBy(p.Entity)
	for _, d := range carried {
		w.Reparent(d.Entity, core.Root, d.Origin)
		d.PickedUp = false
		d.Carrier = core.Root
	}
	return len(carried)
}

func (s *ProximitySystem) sunHit(p *engine.Projectile) {
	w := s.world
	p.Consumed = true

	w.State.AddKill(p.Label)
	w.State.CommitScore(p)
	w.Despawn(p.Entity)

	remaining := w.FreeDebris()
	cleared := remaining == 0
	if cleared {
		w.State.Level++
		w.State.LastOutcome = engine.OutcomeCleared
		log.Printf("proximity: level cleared, advancing to %d", w.State.Level)
	}

	w.Emit(event.EventSunHit, &event.SunHitPayload{
		Projectile:   p.Entity,
		Label:        p.Label,
		Remaining:    remaining,
		LevelCleared: cleared,
		Level:        w.State.Level,
	})
}

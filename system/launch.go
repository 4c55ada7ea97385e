package system

import (
	"log"
	"time"

	"github.com/lixenwraith/sunshot/core"
	"github.com/lixenwraith/sunshot/engine"
	"github.com/lixenwraith/sunshot/event"
	"github.com/lixenwraith/sunshot/physics"
	"github.com/lixenwraith/sunshot/status"
)

// LaunchSystem charges and fires the current crate
// Driven by phase actions rather than per-frame updates
type LaunchSystem struct {
	world *engine.World
}

func NewLaunchSystem(world *engine.World) *LaunchSystem {
	return &LaunchSystem{world: world}
}

func (s *LaunchSystem) Name() string {
	return "launch"
}

// StartCharge zeroes the launch power and announces charging
func (s *LaunchSystem) StartCharge() {
	s.world.State.LaunchPower = 0
	s.publishPower()
	s.world.Emit(event.EventChargeStarted, nil)
}

// Accumulate adds frame time to the launch power
func (s *LaunchSystem) Accumulate(dt time.Duration) {
	if dt <= 0 {
		return
	}
	s.world.State.LaunchPower += dt
	s.publishPower()
}

// ChargeExceeded reports power strictly past the maximum charge
func (s *LaunchSystem) ChargeExceeded() bool {
	return s.world.State.LaunchPower.Seconds() > s.world.Tuning.Launch.MaxCharge
}

// Power converts held time into launch speed
func (s *LaunchSystem) Power() float64 {
	return s.world.State.LaunchPower.Seconds() * s.world.Tuning.Launch.PowerScale
}

// Fire detaches the current crate from the cannon and sends it along the
// planet-to-cannon direction; no crate or no planet is a no-op
func (s *LaunchSystem) Fire() bool {
	w := s.world
	defer func() {
		w.State.LaunchPower = 0
		s.publishPower()
	}()

	p := w.CurrentProjectile()
	if p == nil {
		log.Printf("launch: fire with no crate loaded")
		return false
	}
	if !w.Alive(w.Planet) || !w.Alive(w.Cannon) {
		log.Printf("launch: fire with no planet or cannon")
		return false
	}

	power := s.Power()
	cannon := w.PlanarPosition(w.Cannon)
	planet := w.PlanarPosition(w.Planet)
	p.Velocity = physics.LaunchVelocity(cannon, planet, power)

	// The world transform already carries cannon rotation composed with the crate's own
	global := w.WorldTransform(p.Entity)
	w.Reparent(p.Entity, core.Root, global)

	p.Launched = true
	w.Current = core.Root
	w.State.CommitScore(p)
	w.Status.Strings.Get(status.MetricLastPayload).Store(p.Label)

	w.Emit(event.EventFired, &event.FiredPayload{
		Entity:   p.Entity,
		Label:    p.Label,
		Velocity: p.Velocity,
		Power:    power,
	})
	log.Printf("launch: %s fired, power %.2f", p.Label, power)
	return true
}

func (s *LaunchSystem) publishPower() {
	s.world.Status.Floats.Get(status.MetricLaunchPower).Set(s.world.State.LaunchPower.Seconds())
}

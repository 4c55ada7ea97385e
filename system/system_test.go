package system

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/sunshot/config"
	"github.com/lixenwraith/sunshot/core"
	"github.com/lixenwraith/sunshot/engine"
	"github.com/lixenwraith/sunshot/event"
	"github.com/lixenwraith/sunshot/vmath"
)

const tol = 1e-9

func newWorld() *engine.World {
	return engine.NewWorld(config.Default(), nil)
}

// launchedAt puts a freshly loaded crate in flight at pos with zero velocity
func launchedAt(w *engine.World, pos vmath.Vec2) *engine.Projectile {
	p := w.SpawnProjectile("Test #1", 1)
	w.Reparent(p.Entity, core.Root, vmath.TransformAt(vmath.V3FFromXY(pos, 0)))
	p.Launched = true
	w.Current = core.Root
	w.Events().Consume()
	return p
}

func moveTo(w *engine.World, e core.Entity, pos vmath.Vec2) {
	b, _ := w.Body(e)
	b.Local.Position = vmath.V3FFromXY(pos, b.Local.Position.Z)
}

func consumeOf(w *engine.World, et event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range w.Events().Consume() {
		if ev.Type == et {
			out = append(out, ev)
		}
	}
	return out
}

func TestPayloadLabelCycles(t *testing.T) {
	if got := PayloadLabel(1); got != "Grain #1" {
		t.Errorf("PayloadLabel(1) = %q", got)
	}
	if got := PayloadLabel(len(cargo) + 1); got != "Grain #9" {
		t.Errorf("PayloadLabel(9) = %q", got)
	}
	if PayloadLabel(2) == PayloadLabel(3) {
		t.Error("consecutive shots should differ")
	}
}

func TestAimClampsAndEases(t *testing.T) {
	w := newWorld()
	s := NewAimSystem(w)
	s.SetAim(2)
	if s.Aim() != 1 {
		t.Fatalf("Aim = %v, want clamp to 1", s.Aim())
	}
	s.SetAim(math.NaN())
	if s.Aim() != 1 {
		t.Error("NaN aim should be ignored")
	}

	// dt * rate >= 1 snaps to the target
	s.Update(time.Second)
	angle := math.Pi / 2 * w.Tuning.Launch.CannonMaxAngle
	planet := w.PlanarPosition(w.Planet)
	r := w.Tuning.Launch.CannonOrbitRadius
	want := vmath.Vec2{X: planet.X + math.Sin(angle)*r, Y: planet.Y + math.Cos(angle)*r}
	if got := w.PlanarPosition(w.Cannon); !vmath.V2ApproxEqual(got, want, tol) {
		t.Errorf("cannon at %+v, want %+v", got, want)
	}

	// Small dt moves only part of the way
	s.SetAim(0)
	before := w.PlanarPosition(w.Cannon)
	s.Update(10 * time.Millisecond)
	after := w.PlanarPosition(w.Cannon)
	if !(after.X < before.X && after.X > 0) {
		t.Errorf("cannon x %v -> %v, want partial ease toward 0", before.X, after.X)
	}
}

func TestChargeAndFire(t *testing.T) {
	w := newWorld()
	launch := NewLaunchSystem(w)
	p := NewLevelSystem(w).LoadCrate()
	start := w.PlanarPosition(p.Entity)
	w.Events().Consume()

	launch.StartCharge()
	launch.Accumulate(time.Second)
	if launch.ChargeExceeded() {
		t.Fatal("1s should not exceed the max charge")
	}
	launch.Accumulate(time.Second)
	if launch.ChargeExceeded() {
		t.Fatal("exactly max charge should not exceed")
	}

	if !launch.Fire() {
		t.Fatal("Fire should succeed with a loaded crate")
	}
	if !p.Launched || w.Current != core.Root {
		t.Error("crate should be launched and no longer current")
	}
	if !vmath.V2ApproxEqual(p.Velocity, vmath.Vec2{Y: 2}, tol) {
		t.Errorf("velocity = %+v, want (0,2)", p.Velocity)
	}
	if got := w.PlanarPosition(p.Entity); !vmath.V2ApproxEqual(got, start, tol) {
		t.Errorf("detaching moved the crate: %+v -> %+v", start, got)
	}
	if b, _ := w.Body(p.Entity); b.Parent != core.Root {
		t.Error("launched crate should be parented to the root")
	}
	if w.State.Score != 1 || !p.Scored {
		t.Errorf("Score = %d, want 1 committed at launch", w.State.Score)
	}
	if w.State.LaunchPower != 0 {
		t.Errorf("LaunchPower = %v after fire, want 0", w.State.LaunchPower)
	}

	var sawCharge, sawFired, sawReparent bool
	for _, ev := range w.Events().Consume() {
		switch ev.Type {
		case event.EventChargeStarted:
			sawCharge = true
		case event.EventFired:
			sawFired = true
		case event.EventReparent:
			sawReparent = true
		}
	}
	if !sawCharge || !sawFired || !sawReparent {
		t.Errorf("events charge=%v fired=%v reparent=%v", sawCharge, sawFired, sawReparent)
	}
}

func TestFireWithoutCrateIsNoop(t *testing.T) {
	w := newWorld()
	launch := NewLaunchSystem(w)
	w.State.LaunchPower = time.Second
	if launch.Fire() {
		t.Error("Fire without a crate should fail")
	}
	if w.State.Score != 0 || w.Events().Len() != 0 {
		t.Error("failed fire should not score or emit")
	}
}

func TestGravityOnlyMovesLaunchedCrates(t *testing.T) {
	w := newWorld()
	idle := w.SpawnProjectile("Idle #1", 1)
	flying := launchedAt(w, vmath.Vec2{X: 0, Y: -5})
	w.Current = idle.Entity

	g := NewGravitySystem(w)
	g.FixedUpdate(w.Tuning.FixedStep)

	if idle.Velocity != (vmath.Vec2{}) {
		t.Errorf("unlaunched crate gained velocity %+v", idle.Velocity)
	}
	// Sun (strength 100) 20 above, planet (strength 3) 20 below
	want := 100.0/400 - 3.0/400
	if !vmath.V2ApproxEqual(flying.Velocity, vmath.Vec2{Y: want}, tol) {
		t.Errorf("velocity = %+v, want (0,%v)", flying.Velocity, want)
	}
}

func TestMotionAdvancesAndGainsMass(t *testing.T) {
	w := newWorld()
	p := launchedAt(w, vmath.Vec2{X: 10, Y: 0})
	p.Velocity = vmath.Vec2{Y: 1}

	NewMotionSystem(w).Update(100 * time.Millisecond)

	if got := w.PlanarPosition(p.Entity); !vmath.V2ApproxEqual(got, vmath.Vec2{X: 10, Y: 5}, tol) {
		t.Errorf("position = %+v, want (10,5)", got)
	}
	if !vmath.ApproxEqual(p.Mass, 1+0.1*w.Tuning.Motion.FlightMassGain, tol) {
		t.Errorf("mass = %v", p.Mass)
	}
	if !vmath.ApproxEqual(w.Elapsed, 0.1, tol) {
		t.Errorf("Elapsed = %v", w.Elapsed)
	}
}

func TestDebrisLayout(t *testing.T) {
	w := newWorld()
	lvl := NewLevelSystem(w)
	sun := w.PlanarPosition(w.Sun)
	lt := w.Tuning.Level

	for _, level := range []int{1, 2, 5, 12} {
		a := lvl.DebrisLayout(level)
		b := lvl.DebrisLayout(level)
		if len(a) != lt.DebrisCount(level) {
			t.Errorf("level %d: %d debris, want %d", level, len(a), lt.DebrisCount(level))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("level %d layout not deterministic at %d", level, i)
			}
			d := vmath.V2Dist(vmath.V3FXY(a[i]), sun)
			if d < lt.RingRadius-lt.RadiusWobble-tol || d > lt.RingRadius+lt.RadiusWobble+tol {
				t.Errorf("level %d debris %d at radius %v", level, i, d)
			}
		}
	}
}

func TestSetupPlacesSecondaryFromLevel3(t *testing.T) {
	w := newWorld()
	lvl := NewLevelSystem(w)

	lvl.Setup()
	if w.Visible(w.Secondary) || len(w.Debris()) != 3 {
		t.Errorf("level 1: secondary=%v debris=%d", w.Visible(w.Secondary), len(w.Debris()))
	}

	w.State.Level = 3
	w.SetVisible(w.Planet, false)
	lvl.Setup()
	if !w.Visible(w.Secondary) {
		t.Error("level 3 should show the secondary planet")
	}
	if !w.Visible(w.Planet) {
		t.Error("setup should restore the home planet")
	}
	if len(w.Debris()) != 7 {
		t.Errorf("level 3 debris = %d, want 7 (old field cleared)", len(w.Debris()))
	}
	d := w.PlanarPosition(w.Secondary)
	if !vmath.ApproxEqual(vmath.V2Dist(d, w.PlanarPosition(w.Sun)), w.Tuning.Motion.SecondaryOrbitRadius, tol) {
		t.Errorf("secondary off its orbit: %+v", d)
	}
}

func TestLoadCrateOnlyWhenEmpty(t *testing.T) {
	w := newWorld()
	lvl := NewLevelSystem(w)
	a := lvl.LoadCrate()
	b := lvl.LoadCrate()
	if a != b || w.State.Shots != 1 {
		t.Errorf("second LoadCrate should reuse the crate; shots = %d", w.State.Shots)
	}
	if a.Label != "Grain #1" || a.Mass != w.Tuning.Launch.CrateMass {
		t.Errorf("crate = %+v", a)
	}
}

func TestPickupIsIdempotent(t *testing.T) {
	w := newWorld()
	d := w.SpawnDebris(vmath.TransformAt(vmath.Vec3F{X: 25, Y: 15}))
	p := launchedAt(w, vmath.Vec2{X: 25, Y: 15})
	prox := NewProximitySystem(w)

	prox.Update(0)
	prox.Update(0)

	if !d.PickedUp || d.Carrier != p.Entity {
		t.Fatal("debris should be carried by the crate")
	}
	if !vmath.ApproxEqual(p.Mass, 1+w.Tuning.Proximity.DebrisMass, tol) {
		t.Errorf("mass = %v, want one increment", p.Mass)
	}
	if n := len(consumeOf(w, event.EventDebrisCollected)); n != 1 {
		t.Errorf("DebrisCollected emitted %d times, want 1", n)
	}

	// Carried debris follows the crate
	moveTo(w, p.Entity, vmath.Vec2{X: 30, Y: 15})
	if got := w.PlanarPosition(d.Entity); !vmath.V2ApproxEqual(got, vmath.Vec2{X: 30, Y: 15}, tol) {
		t.Errorf("carried debris at %+v", got)
	}
}

func TestSecondaryHitRestoresDebris(t *testing.T) {
	w := newWorld()
	origins := []vmath.Vec2{{X: 25, Y: 15}, {X: -25, Y: 15}, {X: 0, Y: 40}}
	var debris []*engine.Debris
	for _, o := range origins {
		debris = append(debris, w.SpawnDebris(vmath.TransformAt(vmath.V3FFromXY(o, 0))))
	}
	w.SetVisible(w.Secondary, true)
	p := launchedAt(w, origins[0])
	prox := NewProximitySystem(w)

	for _, o := range origins {
		moveTo(w, p.Entity, o)
		prox.Update(0)
	}
	if w.FreeDebris() != 0 {
		t.Fatalf("FreeDebris = %d after collecting all, want 0", w.FreeDebris())
	}
	w.Events().Consume()

	moveTo(w, p.Entity, w.PlanarPosition(w.Secondary))
	prox.Update(0)

	if w.Alive(p.Entity) {
		t.Error("crate should be destroyed")
	}
	if w.FreeDebris() != 3 {
		t.Errorf("FreeDebris = %d, want 3 restored", w.FreeDebris())
	}
	for i, d := range debris {
		if !w.Alive(d.Entity) || d.PickedUp || d.Carrier != core.Root {
			t.Errorf("debris %d not restored: %+v", i, d)
		}
		if got := w.PlanarPosition(d.Entity); !vmath.V2ApproxEqual(got, origins[i], tol) {
			t.Errorf("debris %d at %+v, want origin %+v", i, got, origins[i])
		}
	}
	if len(w.State.KillLog) != 1 || w.State.KillLog[0] != "Test #1" {
		t.Errorf("KillLog = %v", w.State.KillLog)
	}
	hits := consumeOf(w, event.EventSecondaryHit)
	if len(hits) != 1 || hits[0].Payload.(*event.ImpactPayload).Restored != 3 {
		t.Errorf("SecondaryHit events = %+v", hits)
	}
}

func TestPlanetHit(t *testing.T) {
	w := newWorld()
	p := launchedAt(w, w.PlanarPosition(w.Planet))
	NewProximitySystem(w).Update(0)

	if w.Alive(p.Entity) {
		t.Error("crate should be destroyed")
	}
	if w.Visible(w.Planet) {
		t.Error("planet should be hidden")
	}
	want := []string{"Test #1", "Earth"}
	if len(w.State.KillLog) != 2 || w.State.KillLog[0] != want[0] || w.State.KillLog[1] != want[1] {
		t.Errorf("KillLog = %v, want %v", w.State.KillLog, want)
	}
	if w.State.LastOutcome != engine.OutcomeCrashed {
		t.Errorf("LastOutcome = %v", w.State.LastOutcome)
	}
	if n := len(consumeOf(w, event.EventPlanetHit)); n != 1 {
		t.Errorf("PlanetHit emitted %d times", n)
	}
}

func TestSunHitGatesLevel(t *testing.T) {
	w := newWorld()
	w.SpawnDebris(vmath.TransformAt(vmath.Vec3F{X: -25, Y: 15}))
	p := launchedAt(w, w.PlanarPosition(w.Sun))
	prox := NewProximitySystem(w)
	prox.Update(0)

	hits := consumeOf(w, event.EventSunHit)
	if len(hits) != 1 {
		t.Fatalf("SunHit emitted %d times", len(hits))
	}
	payload := hits[0].Payload.(*event.SunHitPayload)
	if payload.LevelCleared || payload.Remaining != 1 || w.State.Level != 1 {
		t.Errorf("uncleared hit: %+v level %d", payload, w.State.Level)
	}
	if !p.Scored || w.State.Score != 1 {
		t.Errorf("Score = %d, want 1", w.State.Score)
	}

	// Second crate collects the last debris on the way in
	q := launchedAt(w, vmath.Vec2{X: -25, Y: 15})
	prox.Update(0)
	moveTo(w, q.Entity, w.PlanarPosition(w.Sun))
	prox.Update(0)

	hits = consumeOf(w, event.EventSunHit)
	if len(hits) != 1 || !hits[0].Payload.(*event.SunHitPayload).LevelCleared {
		t.Fatalf("final delivery should clear: %+v", hits)
	}
	if w.State.Level != 2 || w.State.Score != 2 || len(w.Debris()) != 0 {
		t.Errorf("level %d score %d debris %d", w.State.Level, w.State.Score, len(w.Debris()))
	}
}

func TestFirstTerminalContactWins(t *testing.T) {
	tuning := config.Default()
	tuning.Proximity.SecondaryRadius = 100
	w := engine.NewWorld(tuning, nil)
	w.SetVisible(w.Secondary, true)
	launchedAt(w, w.PlanarPosition(w.Sun))

	NewProximitySystem(w).Update(0)

	var secondary, sun int
	for _, ev := range w.Events().Consume() {
		switch ev.Type {
		case event.EventSecondaryHit:
			secondary++
		case event.EventSunHit:
			sun++
		}
	}
	if secondary != 1 || sun != 0 {
		t.Errorf("secondary=%d sun=%d, want only the secondary contact", secondary, sun)
	}
	if len(w.State.KillLog) != 1 {
		t.Errorf("KillLog = %v, want one entry", w.State.KillLog)
	}
}

func TestLostInSpace(t *testing.T) {
	w := newWorld()
	d := w.SpawnDebris(vmath.TransformAt(vmath.Vec3F{X: 200, Y: 15}))
	p := launchedAt(w, vmath.Vec2{X: 200, Y: 15})
	NewProximitySystem(w).Update(0)

	if w.Alive(p.Entity) {
		t.Error("lost crate should be destroyed")
	}
	if !w.Alive(d.Entity) || d.PickedUp {
		t.Error("debris picked up on the way out should be restored")
	}
	if n := len(consumeOf(w, event.EventProjectileLost)); n != 1 {
		t.Errorf("ProjectileLost emitted %d times", n)
	}
}

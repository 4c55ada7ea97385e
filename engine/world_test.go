package engine

import (
	"testing"

	"github.com/lixenwraith/sunshot/config"
	"github.com/lixenwraith/sunshot/core"
	"github.com/lixenwraith/sunshot/event"
	"github.com/lixenwraith/sunshot/vmath"
)

func newTestWorld() *World {
	return NewWorld(config.Default(), nil)
}

func drainTypes(w *World) []event.EventType {
	var out []event.EventType
	for _, ev := range w.Events().Consume() {
		out = append(out, ev.Type)
	}
	return out
}

func TestNewWorldScene(t *testing.T) {
	w := newTestWorld()

	if w.BodyCount() != 4 {
		t.Fatalf("BodyCount = %d, want 4", w.BodyCount())
	}
	if w.Visible(w.Secondary) {
		t.Error("secondary planet should start hidden")
	}
	attractors := w.Attractors()
	if len(attractors) != 2 || attractors[0].Entity != w.Sun || attractors[1].Entity != w.Planet {
		t.Errorf("Attractors = %+v, want sun then planet", attractors)
	}

	cannon := w.PlanarPosition(w.Cannon)
	planet := w.PlanarPosition(w.Planet)
	if !vmath.ApproxEqual(vmath.V2Dist(cannon, planet), w.Tuning.Launch.CannonOrbitRadius, 1e-9) {
		t.Errorf("cannon distance from planet = %v", vmath.V2Dist(cannon, planet))
	}
	if w.Events().Len() != 0 {
		t.Error("scene construction should not emit requests")
	}
}

func TestSpawnProjectileRidesCannon(t *testing.T) {
	w := newTestWorld()
	p := w.SpawnProjectile("Grain #1", 1)

	if w.Current != p.Entity || w.CurrentProjectile() != p {
		t.Fatal("spawned crate should be current")
	}

	// Cannon rotated a quarter turn: the mount offset follows it
	cb, _ := w.Body(w.Cannon)
	cb.Local.Rotation = vmath.QRotZ(-1.5707963267948966)
	got := w.PlanarPosition(p.Entity)
	want := vmath.V2Add(w.PlanarPosition(w.Cannon), vmath.Vec2{X: w.Tuning.Launch.CrateMountY})
	if !vmath.V2ApproxEqual(got, want, 1e-9) {
		t.Errorf("crate position = %+v, want %+v", got, want)
	}

	types := drainTypes(w)
	if len(types) != 1 || types[0] != event.EventSpawnProjectile {
		t.Errorf("events = %v, want [EventSpawnProjectile]", types)
	}
}

func TestDespawnRemovesSubtree(t *testing.T) {
	w := newTestWorld()
	p := w.SpawnProjectile("Ore #1", 1)
	d := w.SpawnDebris(vmath.TransformAt(vmath.Vec3F{X: 4, Y: 4}))
	d.PickedUp = true
	d.Carrier = p.Entity
	w.Reparent(d.Entity, p.Entity, vmath.TransformAt(vmath.Vec3F{X: 1}))
	w.Events().Consume()

	w.Despawn(p.Entity)

	if w.Alive(p.Entity) || w.Alive(d.Entity) {
		t.Error("crate and carried debris should both be gone")
	}
	if len(w.Projectiles()) != 0 || len(w.Debris()) != 0 {
		t.Errorf("records left: %d projectiles, %d debris", len(w.Projectiles()), len(w.Debris()))
	}
	if w.Current != core.Root {
		t.Error("Current should clear when its crate is despawned")
	}
	if n := len(drainTypes(w)); n != 2 {
		t.Errorf("despawn requests = %d, want 2", n)
	}
}

func TestDespawnIgnoresSingletons(t *testing.T) {
	w := newTestWorld()
	w.Despawn(w.Sun)
	w.Despawn(w.Cannon)
	w.Despawn(9999)
	if !w.Alive(w.Sun) || !w.Alive(w.Cannon) {
		t.Error("singletons must survive Despawn")
	}
	if w.Events().Len() != 0 {
		t.Error("ignored despawns should not emit")
	}
}

func TestHiddenAttractorExcluded(t *testing.T) {
	w := newTestWorld()
	w.SetVisible(w.Planet, false)
	w.SetVisible(w.Secondary, true)
	attractors := w.Attractors()
	if len(attractors) != 2 || attractors[1].Entity != w.Secondary {
		t.Errorf("Attractors = %+v, want sun then secondary", attractors)
	}
	if attractors[1].Strength != w.Tuning.Gravity.Secondary {
		t.Errorf("secondary strength = %v", attractors[1].Strength)
	}
}

func TestFreeDebrisAndCarriedBy(t *testing.T) {
	w := newTestWorld()
	p := w.SpawnProjectile("Ice #1", 1)
	a := w.SpawnDebris(vmath.TransformAt(vmath.Vec3F{}))
	w.SpawnDebris(vmath.TransformAt(vmath.Vec3F{X: 1}))
	a.PickedUp = true
	a.Carrier = p.Entity

	if w.FreeDebris() != 1 {
		t.Errorf("FreeDebris = %d, want 1", w.FreeDebris())
	}
	carried := w.CarriedBy(p.Entity)
	if len(carried) != 1 || carried[0] != a {
		t.Errorf("CarriedBy = %v", carried)
	}
}

func TestEmitStampsFrame(t *testing.T) {
	w := newTestWorld()
	w.NextFrame()
	w.NextFrame()
	w.Emit(event.EventChargeStarted, nil)
	evs := w.Events().Consume()
	if len(evs) != 1 || evs[0].Frame != 2 {
		t.Errorf("events = %+v, want one at frame 2", evs)
	}
}

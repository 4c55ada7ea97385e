package engine

import (
	"math"
	"sort"

	"github.com/lixenwraith/sunshot/config"
	"github.com/lixenwraith/sunshot/core"
	"github.com/lixenwraith/sunshot/event"
	"github.com/lixenwraith/sunshot/parameter"
	"github.com/lixenwraith/sunshot/status"
	"github.com/lixenwraith/sunshot/vmath"
)

// World owns the scene graph, the gameplay records and the event queue
// Single goroutine: every method runs on the game loop
type World struct {
	Tuning *config.Tuning
	State  *GameState
	Status *status.Registry

	// Singletons, created by NewWorld and never despawned
	Sun       core.Entity
	Planet    core.Entity
	Secondary core.Entity
	Cannon    core.Entity

	// Current is the unlaunched crate on the cannon, core.Root when none
	Current core.Entity

	// Elapsed is simulated seconds since the world was created
	Elapsed float64

	// SecondaryAngle is the secondary planet's current orbit angle, radians
	SecondaryAngle float64

	bodies      map[core.Entity]*Body
	nextID      core.Entity
	projectiles []*Projectile
	debris      []*Debris

	events *event.EventQueue
	frame  int64
}

// NewWorld creates the fixed scene: sun, home planet, hidden secondary planet and cannon
func NewWorld(tuning *config.Tuning, reg *status.Registry) *World {
	if tuning == nil {
		tuning = config.Default()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	w := &World{
		Tuning: tuning,
		State:  NewGameState(),
		Status: reg,
		bodies: make(map[core.Entity]*Body),
		nextID: 1,
		events: event.NewEventQueue(),
	}

	w.Sun = w.Spawn(KindSun, parameter.SunName, core.Root,
		vmath.TransformAt(vmath.Vec3F{X: parameter.SunX, Y: parameter.SunY, Z: parameter.SunZ}))

	planet := vmath.TransformAt(vmath.Vec3F{X: parameter.PlanetX, Y: parameter.PlanetY, Z: parameter.PlanetZ})
	planet.Scale = vmath.V3FScale(vmath.One, parameter.PlanetScale)
	w.Planet = w.Spawn(KindPlanet, parameter.PlanetName, core.Root, planet)

	w.Secondary = w.Spawn(KindSecondary, parameter.SecondaryName, core.Root, w.SecondaryOrbitTransform(0))
	w.bodies[w.Secondary].Visible = false

	cannon := vmath.TransformAt(vmath.V3FAdd(planet.Position, vmath.Vec3F{Y: tuning.Launch.CannonOrbitRadius}))
	w.Cannon = w.Spawn(KindCannon, parameter.CannonName, core.Root, cannon)

	return w
}

// SecondaryOrbitTransform places the secondary planet at angle on its orbit around the sun
func (w *World) SecondaryOrbitTransform(angle float64) vmath.Transform {
	sun := vmath.Vec3F{X: parameter.SunX, Y: parameter.SunY, Z: parameter.SunZ}
	if b, ok := w.bodies[w.Sun]; ok {
		sun = b.Local.Position
	}
	r := w.Tuning.Motion.SecondaryOrbitRadius
	return vmath.TransformAt(vmath.Vec3F{
		X: sun.X + r*math.Cos(angle),
		Y: sun.Y + r*math.Sin(angle),
		Z: sun.Z,
	})
}

// Spawn adds a visible body without emitting any request
func (w *World) Spawn(kind Kind, name string, parent core.Entity, local vmath.Transform) core.Entity {
	e := w.nextID
	w.nextID++
	w.bodies[e] = &Body{
		Entity:  e,
		Name:    name,
		Kind:    kind,
		Parent:  parent,
		Local:   local,
		Visible: true,
	}
	return e
}

// SpawnProjectile loads a crate onto the cannon and makes it current
func (w *World) SpawnProjectile(label string, mass float64) *Projectile {
	local := vmath.TransformAt(vmath.Vec3F{Y: w.Tuning.Launch.CrateMountY})
	e := w.Spawn(KindProjectile, label, w.Cannon, local)
	p := &Projectile{Entity: e, Label: label, Mass: mass}
	w.projectiles = append(w.projectiles, p)
	w.Current = e
	w.Emit(event.EventSpawnProjectile, &event.SpawnPayload{
		Entity:    e,
		Parent:    w.Cannon,
		Label:     label,
		Transform: local,
	})
	return p
}

// SpawnDebris places a free collectible at origin in the world frame
func (w *World) SpawnDebris(origin vmath.Transform) *Debris {
	e := w.Spawn(KindDebris, "debris", core.Root, origin)
	d := &Debris{Entity: e, Origin: origin}
	w.debris = append(w.debris, d)
	w.Emit(event.EventSpawnDebris, &event.SpawnPayload{
		Entity:    e,
		Parent:    core.Root,
		Label:     "debris",
		Transform: origin,
	})
	return d
}

// Despawn removes e and its whole subtree, emitting a request per removed entity
// Singletons and unknown entities are ignored
func (w *World) Despawn(e core.Entity) {
	if _, ok := w.bodies[e]; !ok || w.isSingleton(e) {
		return
	}
	for _, child := range w.Children(e) {
		w.Despawn(child)
	}

	delete(w.bodies, e)
	if w.Current == e {
		w.Current = core.Root
	}
	w.projectiles = removeProjectile(w.projectiles, e)
	w.debris = removeDebris(w.debris, e)
	w.Emit(event.EventDespawn, &event.DespawnPayload{Entity: e})
}

// Reparent moves e under parent with a new local transform
func (w *World) Reparent(e, parent core.Entity, local vmath.Transform) {
	b, ok := w.bodies[e]
	if !ok {
		return
	}
	b.Parent = parent
	b.Local = local
	w.Emit(event.EventReparent, &event.ReparentPayload{Entity: e, Parent: parent, Local: local})
}

// Children returns e's direct children in entity order
func (w *World) Children(e core.Entity) []core.Entity {
	var out []core.Entity
	for id, b := range w.bodies {
		if b.Parent == e {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (w *World) isSingleton(e core.Entity) bool {
	return e == w.Sun || e == w.Planet || e == w.Secondary || e == w.Cannon
}

// Body returns the scene node for e
func (w *World) Body(e core.Entity) (*Body, bool) {
	b, ok := w.bodies[e]
	return b, ok
}

// Alive reports whether e is in the scene
func (w *World) Alive(e core.Entity) bool {
	_, ok := w.bodies[e]
	return ok
}

// BodyCount returns the number of scene nodes
func (w *World) BodyCount() int {
	return len(w.bodies)
}

// WorldTransform composes e's local transform through its parent chain
func (w *World) WorldTransform(e core.Entity) vmath.Transform {
	b, ok := w.bodies[e]
	if !ok {
		return vmath.TransformAt(vmath.Vec3F{})
	}
	if b.Parent == core.Root {
		return b.Local
	}
	return vmath.Compose(w.WorldTransform(b.Parent), b.Local)
}

// PlanarPosition returns the xy of e's global position
func (w *World) PlanarPosition(e core.Entity) vmath.Vec2 {
	return vmath.V3FXY(w.WorldTransform(e).Position)
}

// Visible reports whether e exists and is shown
func (w *World) Visible(e core.Entity) bool {
	b, ok := w.bodies[e]
	return ok && b.Visible
}

// SetVisible shows or hides a body; hidden attractors exert no gravity
func (w *World) SetVisible(e core.Entity, visible bool) {
	if b, ok := w.bodies[e]; ok {
		b.Visible = visible
	}
}

// Attractors returns the visible gravity sources in sun, planet, secondary order
func (w *World) Attractors() []Attractor {
	g, r := w.Tuning.Gravity, w.Tuning.Proximity
	candidates := [...]Attractor{
		{Entity: w.Sun, Strength: g.Sun, Radius: r.SunRadius},
		{Entity: w.Planet, Strength: g.Planet, Radius: r.PlanetRadius},
		{Entity: w.Secondary, Strength: g.Secondary, Radius: r.SecondaryRadius},
	}
	out := make([]Attractor, 0, len(candidates))
	for _, a := range candidates {
		if w.Visible(a.Entity) {
			out = append(out, a)
		}
	}
	return out
}

// Projectiles returns live crates in spawn order; the slice is owned by the world
func (w *World) Projectiles() []*Projectile {
	return w.projectiles
}

// Projectile looks up a crate by entity
func (w *World) Projectile(e core.Entity) *Projectile {
	for _, p := range w.projectiles {
		if p.Entity == e {
			return p
		}
	}
	return nil
}

// CurrentProjectile returns the crate on the cannon, nil when none
func (w *World) CurrentProjectile() *Projectile {
	if w.Current == core.Root {
		return nil
	}
	return w.Projectile(w.Current)
}

// Debris returns live debris in spawn order; the slice is owned by the world
func (w *World) Debris() []*Debris {
	return w.debris
}

// FreeDebris counts debris not yet picked up
func (w *World) FreeDebris() int {
	n := 0
	for _, d := range w.debris {
		if !d.PickedUp {
			n++
		}
	}
	return n
}

// CarriedBy returns the debris attached to a crate
func (w *World) CarriedBy(e core.Entity) []*Debris {
	var out []*Debris
	for _, d := range w.debris {
		if d.PickedUp && d.Carrier == e {
			out = append(out, d)
		}
	}
	return out
}

// Emit queues an event stamped with the current frame
func (w *World) Emit(et event.EventType, payload any) {
	w.events.Emit(et, payload, w.frame)
}

// Events exposes the queue to the dispatcher
func (w *World) Events() *event.EventQueue {
	return w.events
}

// Frame returns the frame counter
func (w *World) Frame() int64 {
	return w.frame
}

// NextFrame advances the frame counter
func (w *World) NextFrame() int64 {
	w.frame++
	return w.frame
}

func removeProjectile(s []*Projectile, e core.Entity) []*Projectile {
	for i, p := range s {
		if p.Entity == e {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

func removeDebris(s []*Debris, e core.Entity) []*Debris {
	for i, d := range s {
		if d.Entity == e {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

package engine

import (
	"github.com/lixenwraith/sunshot/core"
	"github.com/lixenwraith/sunshot/vmath"
)

// Kind classifies scene bodies
type Kind uint8

const (
	KindSun Kind = iota
	KindPlanet
	KindSecondary
	KindCannon
	KindProjectile
	KindDebris
)

var kindNames = [...]string{"Sun", "Planet", "Secondary", "Cannon", "Projectile", "Debris"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Body is a scene-graph node: a local transform relative to Parent (core.Root = world)
type Body struct {
	Entity  core.Entity
	Name    string
	Kind    Kind
	Parent  core.Entity
	Local   vmath.Transform
	Visible bool
}

// Attractor is a gravity source; strength comes from tuning
type Attractor struct {
	Entity   core.Entity
	Strength float64
	Radius   float64 // Hit radius
}

// Projectile is a crate; unlaunched crates ride the cannon
type Projectile struct {
	Entity   core.Entity
	Label    string
	Velocity vmath.Vec2
	Mass     float64
	Launched bool
	Scored   bool // Score already committed for this crate
	Consumed bool // A terminal proximity consequence already applied
}

// Debris is a collectible; Carrier is non-zero iff PickedUp
type Debris struct {
	Entity   core.Entity
	PickedUp bool
	Carrier  core.Entity
	Origin   vmath.Transform // Spawn transform, world frame
}

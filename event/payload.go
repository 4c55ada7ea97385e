package event

import (
	"github.com/lixenwraith/sunshot/vmath"
)

// SpawnPayload describes a body the presentation layer should create
type SpawnPayload struct {
	Entity    Entity
	Parent    Entity
	Label     string
	Transform vmath.Transform // In Parent's frame
}

// DespawnPayload names the body to drop
type DespawnPayload struct {
	Entity Entity
}

// ReparentPayload describes a parent change; Local is the new local transform
type ReparentPayload struct {
	Entity Entity
	Parent Entity
	Local  vmath.Transform
}

// FiredPayload carries the launch result
type FiredPayload struct {
	Entity   Entity
	Label    string
	Velocity vmath.Vec2
	Power    float64
}

// DebrisCollectedPayload carries the pickup pair and the crate's new mass
type DebrisCollectedPayload struct {
	Projectile Entity
	Debris     Entity
	Mass       float64
}

// ImpactPayload carries a crate destroyed against a body
type ImpactPayload struct {
	Projectile Entity
	Label      string
	Target     string
	Restored   int // Debris returned to the field
}

// SunHitPayload carries a delivery and the level gate result
type SunHitPayload struct {
	Projectile   Entity
	Label        string
	Remaining    int // Free debris left after delivery
	LevelCleared bool
	Level        int // Level after the hit
}

// PhaseChangedPayload reports the FSM phase change by name
type PhaseChangedPayload struct {
	From string
	To   string
}

// LevelSetupPayload reports a generated level
type LevelSetupPayload struct {
	Level     int
	Debris    int
	Secondary bool
}

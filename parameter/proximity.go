package parameter

// Collision thresholds, planar distance in world units
const (
	DebrisPickupRadius = 3.0
	PlanetHitRadius    = 5.0
	SecondaryHitRadius = 3.0
	SunHitRadius       = 13.0

	// DebrisMassIncrement is added to a crate per debris picked up
	DebrisMassIncrement = 0.22
)

package parameter

// Launch charging
const (
	// MaxChargeSeconds auto-fires a held charge
	MaxChargeSeconds = 2.0

	// LaunchPowerScale converts held seconds to launch speed
	LaunchPowerScale = 1.0

	// LatePowerScale is the stronger launcher of later revisions
	LatePowerScale = 1.5

	// CrateBaseMass is the dry mass of a freshly loaded crate
	CrateBaseMass = 1.0
)

// Cannon aiming
const (
	// CannonOrbitRadius is the cannon's distance from the planet centre
	CannonOrbitRadius = 6.0

	// CannonMaxAngleFactor limits the aim arc to ±(π/2 * factor)
	CannonMaxAngleFactor = 0.8

	// CannonFollowRate is the lerp rate toward the aimed pose, per second
	CannonFollowRate = 16.0

	// CrateMountY is the crate's offset along the cannon's local Y
	CrateMountY = 3.0
)

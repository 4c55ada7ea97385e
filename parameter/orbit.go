package parameter

// Gravity strengths per attractor; the received change is scaled by projectile mass
const (
	SunStrength       = 100.0
	PlanetStrength    = 3.0
	SecondaryStrength = 2.3

	// GravityMinDistance treats closer attractor/projectile pairs as coincident
	GravityMinDistance = 1e-9
)

// Velocity integration
const (
	// VelocityScale is K in position += velocity * dt * K
	VelocityScale = 50.0

	// CrateSpinRate is the cosmetic Z spin of every crate, rad/s
	CrateSpinRate = 2.0

	// FlightMassGain is added to a launched crate's mass per second of flight
	FlightMassGain = 0.02
)

// Scene layout, world units; the simulation plane is XY
const (
	SunX = 0.0
	SunY = 15.0
	SunZ = -50.0

	PlanetX = 0.0
	PlanetY = -25.0
	PlanetZ = -20.0

	PlanetScale = 5.0

	// SecondaryOrbitRadius is the secondary planet's distance from the sun
	SecondaryOrbitRadius = 38.0

	// SecondaryOrbitSpeed is the secondary planet's angular speed, rad/s
	SecondaryOrbitSpeed = 0.15

	// LostRadius is the planar distance from the sun past which a crate is gone
	LostRadius = 150.0
)

// Body names used in the kill log and HUD
const (
	SunName       = "Sun"
	PlanetName    = "Earth"
	SecondaryName = "Moon"
	CannonName    = "Launcher"
)

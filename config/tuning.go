package config

import (
	"github.com/lixenwraith/sunshot/parameter"
)

// Tuning holds every gameplay constant the simulation reads at runtime
// Zero values are invalid; start from Default or a profile
type Tuning struct {
	Profile   string          `yaml:"profile"`
	FixedStep float64         `yaml:"fixed_step"`
	Gravity   GravityTuning   `yaml:"gravity"`
	Motion    MotionTuning    `yaml:"motion"`
	Launch    LaunchTuning    `yaml:"launch"`
	Proximity ProximityTuning `yaml:"proximity"`
	Level     LevelTuning     `yaml:"level"`
}

// GravityTuning sets per-attractor strengths
type GravityTuning struct {
	Sun       float64 `yaml:"sun"`
	Planet    float64 `yaml:"planet"`
	Secondary float64 `yaml:"secondary"`
}

// MotionTuning covers the variable-step integrator and cosmetic motion
type MotionTuning struct {
	VelocityScale        float64 `yaml:"velocity_scale"`
	CrateSpinRate        float64 `yaml:"crate_spin_rate"`
	FlightMassGain       float64 `yaml:"flight_mass_gain"`
	SecondaryOrbitRadius float64 `yaml:"secondary_orbit_radius"`
	SecondaryOrbitSpeed  float64 `yaml:"secondary_orbit_speed"`
	LostRadius           float64 `yaml:"lost_radius"`
}

// LaunchTuning covers charging, firing and cannon aim
type LaunchTuning struct {
	MaxCharge         float64 `yaml:"max_charge"`
	PowerScale        float64 `yaml:"power_scale"`
	CrateMass         float64 `yaml:"crate_mass"`
	CannonOrbitRadius float64 `yaml:"cannon_orbit_radius"`
	CannonMaxAngle    float64 `yaml:"cannon_max_angle_factor"`
	CannonFollowRate  float64 `yaml:"cannon_follow_rate"`
	CrateMountY       float64 `yaml:"crate_mount_y"`
}

// ProximityTuning sets collision thresholds
type ProximityTuning struct {
	DebrisRadius    float64 `yaml:"debris_radius"`
	PlanetRadius    float64 `yaml:"planet_radius"`
	SecondaryRadius float64 `yaml:"secondary_radius"`
	SunRadius       float64 `yaml:"sun_radius"`
	DebrisMass      float64 `yaml:"debris_mass"`
}

// LevelTuning drives debris field generation
type LevelTuning struct {
	DebrisBase     int     `yaml:"debris_base"`
	DebrisPerLevel int     `yaml:"debris_per_level"`
	TaperLevel     int     `yaml:"taper_level"`
	DebrisMin      int     `yaml:"debris_min"`
	RingRadius     float64 `yaml:"ring_radius"`
	RadiusWobble   float64 `yaml:"radius_wobble"`
	AngleJitter    float64 `yaml:"angle_jitter"`
	SecondaryLevel int     `yaml:"secondary_level"`
}

// Default returns the classic profile
func Default() *Tuning {
	return &Tuning{
		Profile:   ProfileClassic,
		FixedStep: parameter.FixedStepSeconds,
		Gravity: GravityTuning{
			Sun:       parameter.SunStrength,
			Planet:    parameter.PlanetStrength,
			Secondary: parameter.SecondaryStrength,
		},
		Motion: MotionTuning{
			VelocityScale:        parameter.VelocityScale,
			CrateSpinRate:        parameter.CrateSpinRate,
			FlightMassGain:       parameter.FlightMassGain,
			SecondaryOrbitRadius: parameter.SecondaryOrbitRadius,
			SecondaryOrbitSpeed:  parameter.SecondaryOrbitSpeed,
			LostRadius:           parameter.LostRadius,
		},
		Launch: LaunchTuning{
			MaxCharge:         parameter.MaxChargeSeconds,
			PowerScale:        parameter.LaunchPowerScale,
			CrateMass:         parameter.CrateBaseMass,
			CannonOrbitRadius: parameter.CannonOrbitRadius,
			CannonMaxAngle:    parameter.CannonMaxAngleFactor,
			CannonFollowRate:  parameter.CannonFollowRate,
			CrateMountY:       parameter.CrateMountY,
		},
		Proximity: ProximityTuning{
			DebrisRadius:    parameter.DebrisPickupRadius,
			PlanetRadius:    parameter.PlanetHitRadius,
			SecondaryRadius: parameter.SecondaryHitRadius,
			SunRadius:       parameter.SunHitRadius,
			DebrisMass:      parameter.DebrisMassIncrement,
		},
		Level: LevelTuning{
			DebrisBase:     parameter.DebrisBase,
			DebrisPerLevel: parameter.DebrisPerLevel,
			TaperLevel:     parameter.DebrisTaperLevel,
			DebrisMin:      parameter.DebrisMin,
			RingRadius:     parameter.DebrisRingRadius,
			RadiusWobble:   parameter.DebrisRadiusWobble,
			AngleJitter:    parameter.DebrisJitter,
			SecondaryLevel: parameter.SecondaryLevel,
		},
	}
}

// Clone returns an independent copy
func (t *Tuning) Clone() *Tuning {
	c := *t
	return &c
}

// DebrisCount returns the field size for level
func (l LevelTuning) DebrisCount(level int) int {
	if level < 1 {
		level = 1
	}
	n := l.DebrisBase + l.DebrisPerLevel*(level-1)
	if l.TaperLevel > 0 && level > l.TaperLevel {
		n -= level - l.TaperLevel
	}
	if n < l.DebrisMin {
		n = l.DebrisMin
	}
	return n
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment overrides
const (
	EnvProfile = "SUNSHOT_PROFILE"
	EnvTuning  = "SUNSHOT_TUNING"
)

// profileHeader is decoded first so a file can pick its base profile
type profileHeader struct {
	Profile string `yaml:"profile"`
}

// Parse decodes YAML over the base profile the document names (classic if none)
// Fields absent from the document keep the profile value
func Parse(data []byte) (*Tuning, error) {
	var head profileHeader
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("failed to parse tuning header: %w", err)
	}
	if head.Profile == "" {
		head.Profile = ProfileClassic
	}

	t, err := Profile(head.Profile)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Load reads a tuning file from disk
func Load(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Resolve picks tuning with priority: path > SUNSHOT_TUNING > profile > SUNSHOT_PROFILE > classic
func Resolve(path, profile string) (*Tuning, error) {
	if path == "" {
		path = os.Getenv(EnvTuning)
	}
	if path != "" {
		return Load(path)
	}
	if profile == "" {
		profile = os.Getenv(EnvProfile)
	}
	if profile == "" {
		return Default(), nil
	}
	return Profile(profile)
}

// Marshal encodes tuning as YAML, used to dump a starting file
func Marshal(t *Tuning) ([]byte, error) {
	data, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tuning: %w", err)
	}
	return data, nil
}

// Validate rejects values that would stall or break the simulation
func (t *Tuning) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"fixed_step", t.FixedStep},
		{"motion.velocity_scale", t.Motion.VelocityScale},
		{"motion.lost_radius", t.Motion.LostRadius},
		{"launch.max_charge", t.Launch.MaxCharge},
		{"launch.power_scale", t.Launch.PowerScale},
		{"launch.crate_mass", t.Launch.CrateMass},
		{"proximity.debris_radius", t.Proximity.DebrisRadius},
		{"proximity.planet_radius", t.Proximity.PlanetRadius},
		{"proximity.secondary_radius", t.Proximity.SecondaryRadius},
		{"proximity.sun_radius", t.Proximity.SunRadius},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("tuning %s must be positive, got %v", p.name, p.v)
		}
	}
	if t.Gravity.Sun < 0 || t.Gravity.Planet < 0 || t.Gravity.Secondary < 0 {
		return fmt.Errorf("tuning gravity strengths must not be negative")
	}
	if t.Level.DebrisMin < 0 || t.Level.DebrisBase < 0 {
		return fmt.Errorf("tuning debris counts must not be negative")
	}
	if t.Motion.LostRadius <= t.Proximity.SunRadius {
		return fmt.Errorf("tuning motion.lost_radius (%v) must exceed proximity.sun_radius (%v)",
			t.Motion.LostRadius, t.Proximity.SunRadius)
	}
	return nil
}

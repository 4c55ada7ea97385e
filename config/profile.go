package config

import (
	"fmt"
	"sort"

	"github.com/lixenwraith/sunshot/parameter"
)

// Profile names
const (
	ProfileClassic = "classic"
	ProfileLate    = "late"
)

var profiles = map[string]func() *Tuning{
	ProfileClassic: Default,
	ProfileLate:    lateProfile,
}

// lateProfile is the later revision: stronger launcher, wider pickup, heavier planet
func lateProfile() *Tuning {
	t := Default()
	t.Profile = ProfileLate
	t.Launch.PowerScale = parameter.LatePowerScale
	t.Gravity.Planet = 2.5
	t.Proximity.DebrisRadius = 3.7
	t.Proximity.SunRadius = 13.2
	return t
}

// Profile returns a fresh copy of the named profile
func Profile(name string) (*Tuning, error) {
	fn, ok := profiles[name]
	if !ok {
		return nil, fmt.Errorf("unknown tuning profile '%s' (have %v)", name, ProfileNames())
	}
	return fn(), nil
}

// ProfileNames lists known profiles in sorted order
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package audio

import "errors"

// Cue identifies a procedural sound effect
type Cue int

const (
	CueCharge Cue = iota // Launch charge sweep
	CueFire              // Crate leaves the cannon
	CuePickup            // Debris attached to a crate
	CueCrash             // Crate destroyed on the planet or the moon
	CueSun               // Crate delivered to the sun
	CueClear             // Delivery that clears the level
	cueCount
)

var cueNames = [cueCount]string{
	CueCharge: "charge",
	CueFire:   "fire",
	CuePickup: "pickup",
	CueCrash:  "crash",
	CueSun:    "sun",
	CueClear:  "clear",
}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// ParseCue resolves a cue by its lowercase name
func ParseCue(name string) (Cue, bool) {
	for i, n := range cueNames {
		if n == name {
			return Cue(i), true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrNotStarted = errors.New("audio engine not started")
	ErrStarted    = errors.New("audio engine already running")
)

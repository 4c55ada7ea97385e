package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Charge cue: rising saw sweep over the full charge window
const (
	ChargeSoundDuration  = 2 * time.Second
	ChargeSoundStartFreq = 110.0
	ChargeSoundEndFreq   = 440.0
	ChargeSoundAttack    = 30 * time.Millisecond
	ChargeSoundRelease   = 100 * time.Millisecond
)

// Fire cue: noise burst
const (
	FireSoundDuration = 180 * time.Millisecond
	FireSoundAttack   = 5 * time.Millisecond
	FireSoundRelease  = 150 * time.Millisecond
)

// Pickup cue: bell
const (
	PickupSoundDuration           = 400 * time.Millisecond
	PickupSoundAttack             = 5 * time.Millisecond
	PickupSoundFundamentalRelease = 350 * time.Millisecond
	PickupSoundOvertoneRelease    = 200 * time.Millisecond
)

// Crash cue: low saw buzz for planet and moon impacts
const (
	CrashSoundDuration = 350 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 250 * time.Millisecond
)

// Sun cue: two-note chime, three notes on level clear
const (
	SunSoundNoteDuration = 120 * time.Millisecond
	SunSoundAttack       = 5 * time.Millisecond
	SunSoundRelease      = 100 * time.Millisecond
)

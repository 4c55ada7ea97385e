package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/sunshot/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, sweeping linearly from freq to freqEnd
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from start to end over duration
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     start,
		freqEnd:  end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.freqEnd != o.freq && o.duration > 0 {
			t := float64(o.position) / float64(o.duration)
			freq = o.freq + (o.freqEnd-o.freq)*t
		}
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
			if vol > 1 {
				vol = 1
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; math.Log2(0) is -Inf so zero goes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func cueVolume(cfg *AudioConfig, c Cue) float64 {
	return cfg.EffectVolumes[c] * cfg.MasterVolume
}

// CreateChargeSound generates a rising saw sweep across the charge window
func CreateChargeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	sweep := NewSweep(parameter.ChargeSoundStartFreq, parameter.ChargeSoundEndFreq, parameter.ChargeSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(sweep, parameter.ChargeSoundDuration, parameter.ChargeSoundAttack, parameter.ChargeSoundRelease, rate)

	return newVolume(shaped, cueVolume(cfg, CueCharge))
}

// CreateFireSound generates a short noise burst
func CreateFireSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.FireSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.FireSoundDuration, parameter.FireSoundAttack, parameter.FireSoundRelease, rate)

	return newVolume(shaped, cueVolume(cfg, CueFire))
}

// CreatePickupSound generates a bell with one octave overtone
func CreatePickupSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// A5
	fund := NewOscillator(880.0, parameter.PickupSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.PickupSoundDuration, parameter.PickupSoundAttack, parameter.PickupSoundFundamentalRelease, rate)

	over := NewOscillator(1760.0, parameter.PickupSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.PickupSoundDuration, parameter.PickupSoundAttack, parameter.PickupSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	return newVolume(mixed, cueVolume(cfg, CuePickup))
}

// CreateCrashSound generates a falling low buzz
func CreateCrashSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(140.0, 60.0, parameter.CrashSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.CrashSoundDuration, parameter.CrashSoundAttack, parameter.CrashSoundRelease, rate)

	return newVolume(shaped, cueVolume(cfg, CueCrash))
}

// CreateSunSound generates the delivery chime; cleared appends a third note
func CreateSunSound(cfg *AudioConfig, cleared bool) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5, E6, then B6 on clear
	freqs := []float64{987.77, 1318.51}
	cue := CueSun
	if cleared {
		freqs = append(freqs, 1975.53)
		cue = CueClear
	}

	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		n := NewOscillator(f, parameter.SunSoundNoteDuration, WaveSquare, rate)
		notes = append(notes, NewEnvelope(n, parameter.SunSoundNoteDuration, parameter.SunSoundAttack, parameter.SunSoundRelease, rate))
	}

	return newVolume(beep.Seq(notes...), cueVolume(cfg, cue))
}

// GetSoundEffect returns the streamer for a cue, nil for unknown cues
func GetSoundEffect(c Cue, cfg *AudioConfig) beep.Streamer {
	switch c {
	case CueCharge:
		return CreateChargeSound(cfg)
	case CueFire:
		return CreateFireSound(cfg)
	case CuePickup:
		return CreatePickupSound(cfg)
	case CueCrash:
		return CreateCrashSound(cfg)
	case CueSun:
		return CreateSunSound(cfg, false)
	case CueClear:
		return CreateSunSound(cfg, true)
	default:
		return nil
	}
}

package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	freq := 440.0

	osc := NewOscillator(freq, duration, WaveSine, rate)

	if osc == nil {
		t.Fatal("Expected non-nil oscillator")
	}

	// Stream some samples
	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}

	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}

	// Verify samples are within valid range [-1, 1]
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][1] < -1.0 || samples[i][1] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][1])
		}
	}

	// Verify oscillator has no error
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave generation
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 50 * time.Millisecond
	freq := 220.0

	osc := NewOscillator(freq, duration, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}

	if n != 50 {
		t.Errorf("Expected to stream 50 samples, got %d", n)
	}

	// Square wave should only have values of -1.0 or 1.0
	for i := 0; i < n; i++ {
		val := samples[i][0]
		if val != -1.0 && val != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, val)
		}
	}
}

// TestOscillatorSaw verifies sawtooth wave generation
func TestOscillatorSaw(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 50 * time.Millisecond
	freq := 110.0

	osc := NewOscillator(freq, duration, WaveSaw, rate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}

	if n != 50 {
		t.Errorf("Expected to stream 50 samples, got %d", n)
	}

	// Sawtooth should be within [-1, 1]
	for i := 0; i < n; i++ {
		val := samples[i][0]
		if val < -1.0 || val > 1.0 {
			t.Errorf("Sawtooth sample %d out of range: %f", i, val)
		}
	}
}

// TestOscillatorNoise verifies noise generation
func TestOscillatorNoise(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 50 * time.Millisecond

	osc := NewOscillator(0, duration, WaveNoise, rate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}

	if n != 50 {
		t.Errorf("Expected to stream 50 samples, got %d", n)
	}

	// Noise should be within [-1, 1]
	for i := 0; i < n; i++ {
		val := samples[i][0]
		if val < -1.0 || val > 1.0 {
			t.Errorf("Noise sample %d out of range: %f", i, val)
		}
	}

	// Verify samples are not all the same (randomness check)
	allSame := true
	firstVal := samples[0][0]
	for i := 1; i < n; i++ {
		if samples[i][0] != firstVal {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("Expected noise samples to vary, but all were the same")
	}
}

// TestOscillatorDuration verifies oscillator respects duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	expectedSamples := rate.N(duration)

	osc := NewOscillator(440.0, duration, WaveSine, rate)

	// Request more samples than duration
	samples := make([][2]float64, expectedSamples*2)
	n, ok := osc.Stream(samples)

	// Should only stream up to duration
	if n > expectedSamples {
		t.Errorf("Expected at most %d samples, got %d", expectedSamples, n)
	}

	// Second stream should return ok=false (finished)
	samples2 := make([][2]float64, 10)
	n2, ok2 := osc.Stream(samples2)

	if ok2 {
		t.Error("Expected second stream to return ok=false after duration exceeded")
	}

	if n2 != 0 {
		t.Errorf("Expected 0 samples after duration, got %d", n2)
	}
}

// TestEnvelopeBasic verifies envelope shaping
func TestEnvelopeBasic(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	attack := 20 * time.Millisecond
	release := 20 * time.Millisecond

	osc := NewOscillator(440.0, duration, WaveSine, rate)
	env := NewEnvelope(osc, duration, attack, release, rate)

	if env == nil {
		t.Fatal("Expected non-nil envelope")
	}

	samples := make([][2]float64, rate.N(duration))
	n, ok := env.Stream(samples)

	if !ok {
		t.Error("Expected envelope to stream successfully")
	}

	if n != len(samples) {
		t.Errorf("Expected %d samples, got %d", len(samples), n)
	}

	// Verify envelope has no error
	if env.Err() != nil {
		t.Errorf("Expected no error, got: %v", env.Err())
	}
}

// TestEnvelopeAttackPhase verifies attack ramp-up
func TestEnvelopeAttackPhase(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	attack := 50 * time.Millisecond
	release := 10 * time.Millisecond

	// Use square wave for consistent amplitude
	osc := NewOscillator(100.0, duration, WaveSquare, rate)
	env := NewEnvelope(osc, duration, attack, release, rate)

	attackSamples := rate.N(attack)
	samples := make([][2]float64, attackSamples)
	n, ok := env.Stream(samples)

	if !ok {
		t.Error("Expected envelope to stream successfully")
	}

	// First sample should have lower amplitude than last
	firstAmp := abs(samples[0][0])
	lastAmp := abs(samples[n-1][0])

	if firstAmp >= lastAmp {
		t.Errorf("Expected attack phase to ramp up, but first=%f >= last=%f", firstAmp, lastAmp)
	}
}

// TestSweepStaysInRange verifies a gliding oscillator keeps sample bounds and length
func TestSweepStaysInRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 20 * time.Millisecond

	osc := NewSweep(110, 440, duration, WaveSaw, rate)
	total := drain(t, osc, rate.N(duration)*2)

	if total != rate.N(duration) {
		t.Errorf("Expected %d samples, got %d", rate.N(duration), total)
	}
}

// TestCueSoundsTerminate verifies every cue ends and stays within [-1, 1]
func TestCueSoundsTerminate(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 1

	for c := CueCharge; c < cueCount; c++ {
		t.Run(c.String(), func(t *testing.T) {
			sound := GetSoundEffect(c, cfg)
			if sound == nil {
				t.Fatalf("Expected non-nil sound for %s", c)
			}
			// Longest cue is the charge sweep
			limit := cfg.SampleRate * 4
			if n := drain(t, sound, limit); n == 0 {
				t.Errorf("Expected %s sound to produce samples", c)
			}
		})
	}
}

// TestSunSoundClearIsLonger verifies the level-clear chime adds a note
func TestSunSoundClearIsLonger(t *testing.T) {
	cfg := DefaultAudioConfig()
	limit := cfg.SampleRate

	plain := drain(t, CreateSunSound(cfg, false), limit)
	cleared := drain(t, CreateSunSound(cfg, true), limit)

	if cleared <= plain {
		t.Errorf("Expected clear chime longer than %d samples, got %d", plain, cleared)
	}
}

// TestGetSoundEffectInvalid verifies handling of an unknown cue
func TestGetSoundEffectInvalid(t *testing.T) {
	cfg := DefaultAudioConfig()
	if sound := GetSoundEffect(Cue(999), cfg); sound != nil {
		t.Error("Expected nil for invalid cue")
	}
}

// TestSoundEffectZeroVolume verifies a muted mix produces silence
func TestSoundEffectZeroVolume(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	sound := CreateCrashSound(cfg)
	samples := make([][2]float64, 200)
	n, _ := sound.Stream(samples)
	if n == 0 {
		t.Fatal("Expected samples at zero volume")
	}
	for i := 0; i < n; i++ {
		if samples[i][0] != 0 || samples[i][1] != 0 {
			t.Fatalf("Expected silence at sample %d, got %v", i, samples[i])
		}
	}
}

// drain streams s to completion, failing if it outlives limit samples or leaves [-1, 1]
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for total <= limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				if buf[i][ch] < -1-1e-9 || buf[i][ch] > 1+1e-9 {
					t.Fatalf("Sample %d out of range: %f", total+i, buf[i][ch])
				}
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatalf("Stream did not terminate within %d samples", limit)
	return total
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

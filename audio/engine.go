package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/sunshot/parameter"
)

// Output is the playback device; speakerOutput wraps the beep speaker
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
}

type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}
func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerOutput) Lock()                   { speaker.Lock() }
func (speakerOutput) Unlock()                 { speaker.Unlock() }

// AudioEngine synthesizes cues and hands them to the output
// A failed device init leaves the engine running in silent mode
type AudioEngine struct {
	config *AudioConfig
	out    Output

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	played  atomic.Uint64
	dropped atomic.Uint64

	mu     sync.Mutex // Protects config and charge
	charge *beep.Ctrl
}

// NewAudioEngine creates an engine; nil cfg uses defaults, nil out uses the speaker
func NewAudioEngine(cfg *AudioConfig, out Output) *AudioEngine {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if out == nil {
		out = speakerOutput{}
	}
	ae := &AudioEngine{config: cfg, out: out}
	ae.muted.Store(!cfg.Enabled)
	return ae
}

// Start initializes the output device
// The returned error is informational; the engine stays usable and silent
func (ae *AudioEngine) Start() error {
	if ae.running.Load() {
		return ErrStarted
	}
	ae.running.Store(true)

	if !ae.config.Enabled {
		ae.silentMode.Store(true)
		return nil
	}

	rate := beep.SampleRate(ae.config.SampleRate)
	if err := ae.out.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		ae.silentMode.Store(true)
		return fmt.Errorf("audio: output init: %w", err)
	}
	return nil
}

// Stop silences any sustained cue and marks the engine stopped
func (ae *AudioEngine) Stop() {
	if !ae.running.CompareAndSwap(true, false) {
		return
	}
	ae.StopCharge()
}

// Play synthesizes and queues a cue, returning false when dropped
func (ae *AudioEngine) Play(c Cue) bool {
	if !ae.IsEnabled() {
		ae.dropped.Add(1)
		return false
	}

	ae.mu.Lock()
	s := GetSoundEffect(c, ae.config)
	ae.mu.Unlock()
	if s == nil {
		ae.dropped.Add(1)
		return false
	}

	if c == CueCharge {
		ctrl := &beep.Ctrl{Streamer: s}
		ae.StopCharge()
		ae.mu.Lock()
		ae.charge = ctrl
		ae.mu.Unlock()
		s = ctrl
	}

	ae.out.Play(s)
	ae.played.Add(1)
	return true
}

// StopCharge cuts the charge sweep short; the mixer drops a nil-streamer Ctrl
func (ae *AudioEngine) StopCharge() {
	ae.mu.Lock()
	ctrl := ae.charge
	ae.charge = nil
	ae.mu.Unlock()

	if ctrl == nil {
		return
	}
	ae.out.Lock()
	ctrl.Streamer = nil
	ae.out.Unlock()
}

// ToggleMute toggles mute state, returns true if now enabled
func (ae *AudioEngine) ToggleMute() bool {
	newMute := !ae.muted.Load()
	ae.muted.Store(newMute)
	if newMute {
		ae.StopCharge()
	}
	return !newMute
}

func (ae *AudioEngine) IsMuted() bool {
	return ae.muted.Load()
}

// IsEnabled returns true if running, unmuted and backed by a device
func (ae *AudioEngine) IsEnabled() bool {
	return ae.running.Load() && !ae.muted.Load() && !ae.silentMode.Load()
}

func (ae *AudioEngine) IsRunning() bool {
	return ae.running.Load()
}

// SetVolume updates master volume (0.0-1.0) for cues synthesized afterwards
func (ae *AudioEngine) SetVolume(vol float64) {
	ae.mu.Lock()
	ae.config.MasterVolume = clampVolume(vol)
	ae.mu.Unlock()
}

// GetStats returns played and dropped cue counts
func (ae *AudioEngine) GetStats() (played, dropped uint64) {
	return ae.played.Load(), ae.dropped.Load()
}

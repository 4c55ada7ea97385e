package status

import (
	"fmt"
	"sync/atomic"
)

// Metric names written by the game loop
const (
	MetricFrame        = "game.frame"
	MetricLevel        = "game.level"
	MetricScore        = "game.score"
	MetricShots        = "game.shots"
	MetricPhase        = "game.phase"
	MetricLaunchPower  = "launch.power"
	MetricProjectiles  = "world.projectiles"
	MetricDebris       = "world.debris"
	MetricFixedSteps   = "physics.fixed_steps"
	MetricEventsDrop   = "event.dropped"
	MetricLastPayload  = "launch.last_payload"
	MetricAudioEnabled = "audio.enabled"
)

// Registry groups metric maps by value type
// Writers cache cell pointers at construction; readers use Get or Snapshot
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of registered metrics of every type
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot renders every metric as a string, keyed by name
func (r *Registry) Snapshot() map[string]string {
	out := make(map[string]string, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) { out[k] = fmt.Sprint(v.Load()) })
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = fmt.Sprint(v.Load()) })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = fmt.Sprintf("%.3f", v.Get()) })
	r.Strings.Range(func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}

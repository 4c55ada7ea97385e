package audio

import (
	"sync/atomic"

	"github.com/lixenwraith/sunshot/engine"
	"github.com/lixenwraith/sunshot/event"
	"github.com/lixenwraith/sunshot/status"
)

// CueSink receives resolved cues; AudioEngine is the production sink
type CueSink interface {
	Play(c Cue) bool
	StopCharge()
	IsEnabled() bool
}

// CuePlayer maps gameplay events to audio cues
type CuePlayer struct {
	sink    CueSink
	enabled *atomic.Bool
}

func NewCuePlayer(sink CueSink, reg *status.Registry) *CuePlayer {
	p := &CuePlayer{
		sink:    sink,
		enabled: reg.Bools.Get(status.MetricAudioEnabled),
	}
	p.enabled.Store(sink.IsEnabled())
	return p
}

func (p *CuePlayer) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventChargeStarted,
		event.EventFired,
		event.EventDebrisCollected,
		event.EventPlanetHit,
		event.EventSecondaryHit,
		event.EventSunHit,
	}
}

func (p *CuePlayer) HandleEvent(_ *engine.World, ev event.GameEvent) {
	switch ev.Type {
	case event.EventChargeStarted:
		p.sink.Play(CueCharge)
	case event.EventFired:
		p.sink.StopCharge()
		p.sink.Play(CueFire)
	case event.EventDebrisCollected:
		p.sink.Play(CuePickup)
	case event.EventPlanetHit, event.EventSecondaryHit:
		p.sink.Play(CueCrash)
	case event.EventSunHit:
		cue := CueSun
		if payload, ok := ev.Payload.(*event.SunHitPayload); ok && payload.LevelCleared {
			cue = CueClear
		}
		p.sink.Play(cue)
	}
	p.enabled.Store(p.sink.IsEnabled())
}

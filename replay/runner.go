package replay

import (
	"fmt"
	"time"

	"github.com/lixenwraith/sunshot/config"
	"github.com/lixenwraith/sunshot/engine"
	"github.com/lixenwraith/sunshot/event"
	"github.com/lixenwraith/sunshot/game"
	"github.com/lixenwraith/sunshot/parameter"
)

// Report is the outcome of one script
type Report struct {
	Name     string            `yaml:"name"`
	Frames   int               `yaml:"frames"`
	Level    int               `yaml:"level"`
	Score    int               `yaml:"score"`
	Phase    string            `yaml:"phase"`
	KillLog  []string          `yaml:"kill_log"`
	Events   map[string]int    `yaml:"events"`
	Metrics  map[string]string `yaml:"metrics,omitempty"`
	Passed   bool              `yaml:"passed"`
	Failures []string          `yaml:"failures,omitempty"`
}

// counter tallies cue events by name
type counter struct {
	counts map[string]int
}

func (c *counter) HandleEvent(_ *engine.World, ev event.GameEvent) {
	c.counts[ev.Type.String()]++
}

func (c *counter) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventChargeStarted,
		event.EventFired,
		event.EventDebrisCollected,
		event.EventPlanetHit,
		event.EventSecondaryHit,
		event.EventSunHit,
		event.EventProjectileLost,
		event.EventPhaseChanged,
		event.EventLevelSetup,
	}
}

// Run plays a script against a fresh game
// A nil tuning resolves the script's profile, falling back to the default
func Run(s *Script, tuning *config.Tuning) (*Report, error) {
	if tuning == nil {
		name := s.Profile
		if name == "" {
			name = config.ProfileClassic
		}
		var err error
		if tuning, err = config.Profile(name); err != nil {
			return nil, err
		}
	}
	g, err := game.New(tuning, nil)
	if err != nil {
		return nil, err
	}
	if s.Level > 0 {
		g.World().State.Level = s.Level
	}

	c := &counter{counts: make(map[string]int)}
	g.Subscribe(c)

	frameDur := parameter.FrameUpdateInterval
	if s.FrameMS > 0 {
		frameDur = time.Duration(s.FrameMS) * time.Millisecond
	}
	mock := engine.NewMockTimeProvider(time.Time{})
	clock := engine.NewFrameClock(mock, parameter.MaxFrameDelta)
	clock.Tick()

	frames := 0
	aim := 0.0
	tick := func(in game.Input) {
		mock.Advance(frameDur)
		in.Aim = aim
		g.Update(in, clock.Tick())
		frames++
	}

	for _, st := range s.Steps {
		if st.Aim != nil {
			aim = *st.Aim
		}
		n := st.Frames
		if n == 0 {
			n = 1
		}
		in := game.Input{PressStart: st.Press == PressStart, PressEnd: st.Press == PressEnd}
		for i := 0; i < n; i++ {
			if st.Until != "" && g.Phase().String() == st.Until {
				break
			}
			tick(in)
			// Edges fire once per step
			in = game.Input{}
		}
	}

	r := &Report{
		Name:    s.Name,
		Frames:  frames,
		Level:   g.Level(),
		Score:   g.Score(),
		Phase:   g.Phase().String(),
		KillLog: g.KillLog(),
		Events:  c.counts,
		Metrics: g.Status().Snapshot(),
	}
	r.check(s.Expect)
	return r, nil
}

func (r *Report) check(e *Expect) {
	r.Passed = true
	if e == nil {
		return
	}
	fail := func(format string, args ...any) {
		r.Passed = false
		r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
	}
	if e.Level != nil && *e.Level != r.Level {
		fail("level = %d, want %d", r.Level, *e.Level)
	}
	if e.Score != nil && *e.Score != r.Score {
		fail("score = %d, want %d", r.Score, *e.Score)
	}
	if e.Phase != "" && e.Phase != r.Phase {
		fail("phase = %s, want %s", r.Phase, e.Phase)
	}
	if e.KillLog != nil {
		if len(e.KillLog) != len(r.KillLog) {
			fail("kill log = %v, want %v", r.KillLog, e.KillLog)
		} else {
			for i := range e.KillLog {
				if e.KillLog[i] != r.KillLog[i] {
					fail("kill log[%d] = %q, want %q", i, r.KillLog[i], e.KillLog[i])
				}
			}
		}
	}
	for _, name := range e.Events {
		et, ok := event.GetEventType(name)
		if !ok {
			fail("unknown event %q", name)
			continue
		}
		if r.Events[et.String()] == 0 {
			fail("event %s never fired", et)
		}
	}
}

package game

import (
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/sunshot/config"
	"github.com/lixenwraith/sunshot/engine"
	"github.com/lixenwraith/sunshot/engine/fsm"
	"github.com/lixenwraith/sunshot/event"
	"github.com/lixenwraith/sunshot/parameter"
	"github.com/lixenwraith/sunshot/status"
	"github.com/lixenwraith/sunshot/system"
)

// Game owns the world, the phase machine and the systems, and fixes the frame order
// Not safe for concurrent use; drive it from one goroutine
type Game struct {
	world   *engine.World
	machine *fsm.Machine[*Game]
	router  *event.Router[*engine.World]
	stepper *engine.Stepper

	aim     *system.AimSystem
	gravity *system.GravitySystem
	launch  *system.LaunchSystem
	level   *system.LevelSystem
	systems []engine.System // Variable-step, sorted by priority

	dt      time.Duration // Current frame delta, read by phase actions
	started bool

	metrics gameMetrics
}

// gameMetrics caches registry cells written once per frame
type gameMetrics struct {
	frame, level, score, shots  *atomic.Int64
	projectiles, debris, events *atomic.Int64
	phase                       *status.AtomicString
}

// New builds a game in the Menu phase; a nil tuning uses config.Default
func New(tuning *config.Tuning, reg *status.Registry) (*Game, error) {
	if tuning == nil {
		tuning = config.Default()
	}
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	w := engine.NewWorld(tuning, reg)
	g := &Game{
		world:   w,
		machine: fsm.NewMachine[*Game](),
		router:  event.NewRouter[*engine.World](),
		stepper: engine.NewStepper(tuning.FixedStep, parameter.MaxFixedStepsPerFrame),
		aim:     system.NewAimSystem(w),
		gravity: system.NewGravitySystem(w),
		launch:  system.NewLaunchSystem(w),
		level:   system.NewLevelSystem(w),
	}
	g.addSystem(system.NewMotionSystem(w))
	g.addSystem(system.NewProximitySystem(w))

	g.metrics = gameMetrics{
		frame:       reg.Ints.Get(status.MetricFrame),
		level:       reg.Ints.Get(status.MetricLevel),
		score:       reg.Ints.Get(status.MetricScore),
		shots:       reg.Ints.Get(status.MetricShots),
		projectiles: reg.Ints.Get(status.MetricProjectiles),
		debris:      reg.Ints.Get(status.MetricDebris),
		events:      reg.Ints.Get(status.MetricEventsDrop),
		phase:       reg.Strings.Get(status.MetricPhase),
	}

	registerPhases(g.machine)
	if err := g.machine.LoadConfig(phaseGraph); err != nil {
		return nil, fmt.Errorf("phase graph: %w", err)
	}
	if err := g.machine.Init(g); err != nil {
		return nil, fmt.Errorf("phase init: %w", err)
	}
	g.started = true
	g.dispatch()
	g.publishMetrics()
	return g, nil
}

func (g *Game) addSystem(s engine.System) {
	g.systems = append(g.systems, s)
	sort.SliceStable(g.systems, func(i, j int) bool {
		return g.systems[i].Priority() < g.systems[j].Priority()
	})
}

// Subscribe registers a presentation handler for requests and cues
func (g *Game) Subscribe(h event.Handler[*engine.World]) {
	g.router.Register(h)
}

// Update advances one variable frame
func (g *Game) Update(in Input, dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	g.dt = dt
	w := g.world

	// 1. Input edges and aim
	if in.PressStart {
		w.Emit(event.EventPressStart, nil)
	}
	if in.PressEnd {
		w.Emit(event.EventPressEnd, nil)
	}
	g.aim.SetAim(in.Aim)
	g.aim.Update(dt)

	// 2. Phase transitions from input
	g.dispatch()

	// 3. Per-phase updates and tick transitions
	g.machine.Update(g, dt)

	// 4. Fixed-step gravity
	g.stepper.Advance(dt.Seconds(), g.gravity.FixedUpdate)

	// 5-6. Motion then proximity
	for _, s := range g.systems {
		s.Update(dt)
	}

	// 7. Consequences
	g.dispatch()
	w.NextFrame()
	g.publishMetrics()
}

// dispatch drains the queue into the phase machine then the handlers
// Handlers may emit further events; rounds are bounded
func (g *Game) dispatch() {
	w := g.world
	for round := 0; round < parameter.EventDispatchRounds; round++ {
		events := w.Events().Consume()
		if len(events) == 0 {
			return
		}
		for _, ev := range events {
			g.machine.HandleEvent(g, ev)
			g.router.Dispatch(w, ev)
		}
	}
}

func (g *Game) publishMetrics() {
	w := g.world
	g.metrics.frame.Store(w.Frame())
	g.metrics.level.Store(int64(w.State.Level))
	g.metrics.score.Store(int64(w.State.Score))
	g.metrics.shots.Store(int64(w.State.Shots))
	g.metrics.projectiles.Store(int64(len(w.Projectiles())))
	g.metrics.debris.Store(int64(w.FreeDebris()))
	g.metrics.events.Store(int64(w.Events().Dropped()))
	g.metrics.phase.Store(w.State.Phase.String())
}

package game

import (
	_ "embed"
	"log"

	"github.com/lixenwraith/sunshot/engine"
	"github.com/lixenwraith/sunshot/engine/fsm"
	"github.com/lixenwraith/sunshot/event"
)

//go:embed phases.yaml
var phaseGraph []byte

// registerPhases binds the names used in phases.yaml to game behaviour
func registerPhases(m *fsm.Machine[*Game]) {
	m.RegisterAction("EnterPhase", func(g *Game, args any) {
		name, _ := args.(string)
		phase, ok := engine.ParsePhase(name)
		if !ok {
			log.Printf("game: unknown phase %q", name)
			return
		}
		from := ""
		if g.started {
			from = g.world.State.Phase.String()
		}
		g.world.State.Phase = phase
		g.world.Emit(event.EventPhaseChanged, &event.PhaseChangedPayload{From: from, To: name})
		if from == "" {
			log.Printf("game: phase %s", name)
		} else {
			log.Printf("game: phase %s -> %s", from, name)
		}
	})
	m.RegisterAction("PromptMenu", func(g *Game, _ any) {
		g.world.State.MenuPrompt = g.world.State.Prompt()
	})
	m.RegisterAction("SetupLevel", func(g *Game, _ any) {
		g.stepper.Reset()
		g.level.Setup()
	})
	m.RegisterAction("LoadCrate", func(g *Game, _ any) {
		g.level.LoadCrate()
	})
	m.RegisterAction("StartCharge", func(g *Game, _ any) {
		g.launch.StartCharge()
	})
	m.RegisterAction("AccumulateCharge", func(g *Game, _ any) {
		g.launch.Accumulate(g.dt)
	})
	m.RegisterAction("Fire", func(g *Game, _ any) {
		g.launch.Fire()
	})

	m.RegisterGuard("HasCurrentProjectile", func(g *Game, _ event.GameEvent) bool {
		return g.world.CurrentProjectile() != nil
	})
	m.RegisterGuard("ChargeExceeded", func(g *Game, _ event.GameEvent) bool {
		return g.launch.ChargeExceeded()
	})
	m.RegisterGuard("LevelCleared", func(_ *Game, ev event.GameEvent) bool {
		p, ok := ev.Payload.(*event.SunHitPayload)
		return ok && p.LevelCleared
	})
}

package event

import (
	"github.com/lixenwraith/sunshot/core"
)

// EventType represents the type of game event
type EventType int

const (
	// EventTick is reserved: FSM transitions with this trigger are evaluated every update
	EventTick EventType = iota

	// === Input Event ===

	// EventPressStart signals the launch input went down this frame
	// Trigger: game.Update from Input.PressStart
	// Consumer: FSM (Menu -> ReadyToLaunch, ReadyToLaunch -> ChargingLaunch) | Payload: nil
	EventPressStart

	// EventPressEnd signals the launch input was released this frame
	// Trigger: game.Update from Input.PressEnd
	// Consumer: FSM (ChargingLaunch -> Launched) | Payload: nil
	EventPressEnd

	// === Scene Requests ===

	// EventSpawnProjectile asks presentation to create a crate visual
	// Trigger: LevelSystem.LoadCrate
	// Consumer: renderers | Payload: *SpawnPayload
	EventSpawnProjectile

	// EventSpawnDebris asks presentation to create a debris visual at a transform
	// Trigger: LevelSystem.Setup
	// Consumer: renderers | Payload: *SpawnPayload
	EventSpawnDebris

	// EventDespawn asks presentation to drop an entity's visual
	// Trigger: World.Despawn
	// Consumer: renderers | Payload: *DespawnPayload
	EventDespawn

	// EventReparent tells presentation an entity moved under a new parent
	// Trigger: launch (crate -> root), pickup (debris -> crate), restore (debris -> root)
	// Consumer: renderers | Payload: *ReparentPayload
	EventReparent

	// === Cue Event ===

	// EventChargeStarted marks entry into ChargingLaunch
	// Trigger: FSM ChargingLaunch OnEnter
	// Consumer: CuePlayer | Payload: nil
	EventChargeStarted

	// EventFired marks a crate leaving the cannon
	// Trigger: LaunchSystem.Fire
	// Consumer: CuePlayer, HUD | Payload: *FiredPayload
	EventFired

	// EventDebrisCollected marks a pickup
	// Trigger: ProximitySystem
	// Consumer: CuePlayer | Payload: *DebrisCollectedPayload
	EventDebrisCollected

	// EventPlanetHit marks a crate striking the home planet
	// Trigger: ProximitySystem
	// Consumer: FSM (Launched -> Menu), CuePlayer | Payload: *ImpactPayload
	EventPlanetHit

	// EventSecondaryHit marks a crate striking the secondary planet
	// Trigger: ProximitySystem
	// Consumer: FSM (Launched -> ReadyToLaunch), CuePlayer | Payload: *ImpactPayload
	EventSecondaryHit

	// EventSunHit marks a crate delivered into the sun
	// Trigger: ProximitySystem
	// Consumer: FSM (Launched -> Menu | ReadyToLaunch), CuePlayer | Payload: *SunHitPayload
	EventSunHit

	// EventProjectileLost marks a crate drifting past the lost radius
	// Trigger: ProximitySystem
	// Consumer: FSM (Launched -> ReadyToLaunch) | Payload: *ImpactPayload
	EventProjectileLost

	// === State Event ===

	// EventPhaseChanged reports every FSM phase change
	// Trigger: FSM OnEnter actions
	// Consumer: HUD, logging | Payload: *PhaseChangedPayload
	EventPhaseChanged

	// EventLevelSetup reports a freshly generated level
	// Trigger: LevelSystem.Setup
	// Consumer: HUD | Payload: *LevelSetupPayload
	EventLevelSetup
)

// GameEvent is a single queued event stamped with the frame that produced it
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

// Entity is re-exported for payload readability
type Entity = core.Entity

package engine

import (
	"time"

	"github.com/lixenwraith/sunshot/parameter"
)

// Phase is the progression state, mirrored from the FSM leaf
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseReadyToLaunch
	PhaseChargingLaunch
	PhaseLaunched
)

var phaseNames = [...]string{"Menu", "ReadyToLaunch", "ChargingLaunch", "Launched"}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "Unknown"
}

// ParsePhase resolves a phase by its String form
func ParsePhase(name string) (Phase, bool) {
	for i, n := range phaseNames {
		if n == name {
			return Phase(i), true
		}
	}
	return PhaseMenu, false
}

// Outcome records how the last attempt ended, used for the menu prompt
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCleared
	OutcomeCrashed
)

// GameState is the progression record
// Level >= 1, Score >= 0, KillLog append-only
type GameState struct {
	Phase       Phase
	Level       int
	Score       int
	KillLog     []string
	LaunchPower time.Duration
	Shots       int
	MenuPrompt  string
	LastOutcome Outcome
}

func NewGameState() *GameState {
	return &GameState{
		Phase:      PhaseMenu,
		Level:      1,
		MenuPrompt: parameter.PromptPlay,
	}
}

// AddKill appends entries to the kill log
func (s *GameState) AddKill(entries ...string) {
	s.KillLog = append(s.KillLog, entries...)
}

// CommitScore adds one point for p unless it already scored
func (s *GameState) CommitScore(p *Projectile) bool {
	if p == nil || p.Scored {
		return false
	}
	p.Scored = true
	s.Score++
	return true
}

// Prompt returns the menu text for the last outcome
func (s *GameState) Prompt() string {
	switch s.LastOutcome {
	case OutcomeCleared:
		return parameter.PromptNextLevel
	case OutcomeCrashed:
		return parameter.PromptRetry
	default:
		return parameter.PromptPlay
	}
}

// KillLogCopy returns a snapshot safe to hand out
func (s *GameState) KillLogCopy() []string {
	out := make([]string, len(s.KillLog))
	copy(out, s.KillLog)
	return out
}

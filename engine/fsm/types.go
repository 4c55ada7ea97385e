package fsm

import (
	"time"

	"github.com/lixenwraith/sunshot/event"
)

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// Machine is a hierarchical finite state machine with a single active leaf
// T is the context passed to actions and guards (the game orchestrator)
type Machine[T any] struct {
	// Graph data, immutable after load
	nodes          map[StateID]*Node[T]
	InitialStateID StateID

	// Runtime state
	activeStateID StateID
	timeInState   time.Duration
	activePath    []StateID // Root -> ... -> Leaf

	// Named functions resolved by the loader
	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Pre-calculated path from Root to this node for LCA lookup
	Path []StateID

	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Evaluated in declaration order, first passing guard wins
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType // EventTick = evaluated every Update
	Guard    GuardFunc[T]    // nil = always true
}

// Action is a side effect with pre-compiled arguments
type Action[T any] struct {
	Func ActionFunc[T]
	Args any
}

// GuardFunc returns true if the transition should occur
// Tick transitions receive a zero event with Type EventTick
type GuardFunc[T any] func(ctx T, ev event.GameEvent) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args any)

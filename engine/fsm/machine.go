package fsm

import (
	"fmt"
	"time"

	"github.com/lixenwraith/sunshot/event"
)

// NewMachine creates an empty FSM
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:      make(map[StateID]*Node[T]),
		activePath: make([]StateID, 0, 4),
		guardReg:   make(map[string]GuardFunc[T]),
		actionReg:  make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a named predicate for LoadConfig
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a named side effect for LoadConfig
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running OnEnter from Root down
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}

	m.activeStateID = m.InitialStateID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], node.Path...)

	for _, id := range m.activePath {
		runActions(ctx, m.nodes[id].OnEnter)
	}
	return nil
}

// Update runs the leaf's OnUpdate actions, then evaluates tick transitions bubbling up
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone {
		return
	}
	m.timeInState += dt

	runActions(ctx, m.nodes[m.activeStateID].OnUpdate)

	m.fire(ctx, event.GameEvent{Type: event.EventTick})
}

// HandleEvent routes an event through the active path, leaf first
// Returns true if the event caused a transition
func (m *Machine[T]) HandleEvent(ctx T, ev event.GameEvent) bool {
	if m.activeStateID == StateNone || ev.Type == event.EventTick {
		return false
	}
	return m.fire(ctx, ev)
}

func (m *Machine[T]) fire(ctx T, ev event.GameEvent) bool {
	currID := m.activeStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Event != ev.Type {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx, ev) {
				m.transition(ctx, trans.TargetID)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// transition exits up to the lowest common ancestor and enters down to the target
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	targetNode, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: transition to unknown state ID %d", targetID))
	}

	currentPath := m.activePath
	targetPath := targetNode.Path

	// Self-transition re-enters the leaf
	lcaIndex := -1
	minLen := min(len(currentPath), len(targetPath))
	for i := 0; i < minLen; i++ {
		if currentPath[i] != targetPath[i] {
			break
		}
		lcaIndex = i
	}
	if targetID == m.activeStateID {
		lcaIndex = len(targetPath) - 2
	}

	for i := len(currentPath) - 1; i > lcaIndex; i-- {
		runActions(ctx, m.nodes[currentPath[i]].OnExit)
	}

	// Commit before entering so OnEnter actions observe the new state
	m.activeStateID = targetID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], targetPath...)

	for i := lcaIndex + 1; i < len(targetPath); i++ {
		runActions(ctx, m.nodes[targetPath[i]].OnEnter)
	}
}

func runActions[T any](ctx T, actions []Action[T]) {
	for _, action := range actions {
		action.Func(ctx, action.Args)
	}
}

// StateName returns the current leaf's name, empty before Init
func (m *Machine[T]) StateName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns time accumulated by Update since the last transition
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

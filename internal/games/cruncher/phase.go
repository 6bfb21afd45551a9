package cruncher

import (
	"fmt"

	"github.com/vovakirdan/term-cruncher/internal/core"
)

// Phase is the top-level game phase.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
	PhaseGameWin
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseGameWin:
		return "game_win"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// allowedTransitions lists every legal phase edge. Self-transitions are absent.
var allowedTransitions = map[Phase][]Phase{
	PhasePlaying:  {PhaseGameOver, PhaseGameWin},
	PhaseGameOver: {PhasePlaying},
	PhaseGameWin:  {PhasePlaying},
}

// CanTransition reports whether from → to is a legal edge.
func CanTransition(from, to Phase) bool {
	for _, p := range allowedTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// PhaseHooks are the callbacks a phase contributes. Nil hooks are skipped.
type PhaseHooks struct {
	Enter  func()
	Update func(in core.InputFrame) Transition
	Exit   func()
}

// Machine dispatches ticks to the hooks of the active phase.
type Machine struct {
	current Phase
	started bool
	hooks   map[Phase]PhaseHooks
}

// NewMachine creates a machine over a hook table. Call Start before Update.
func NewMachine(hooks map[Phase]PhaseHooks) *Machine {
	return &Machine{hooks: hooks}
}

// Start enters the initial phase without running any exit hook.
func (m *Machine) Start(p Phase) {
	m.current = p
	m.started = true
	if h := m.hooks[p]; h.Enter != nil {
		h.Enter()
	}
}

// Current returns the active phase.
func (m *Machine) Current() Phase {
	return m.current
}

// Update runs the active phase's update hook and performs any transition
// it requests. Returns true when the phase changed.
func (m *Machine) Update(in core.InputFrame) bool {
	if !m.started {
		panic("cruncher: phase machine updated before Start")
	}
	h := m.hooks[m.current]
	if h.Update == nil {
		return false
	}
	tr := h.Update(in)
	if !tr.OK {
		return false
	}
	m.Transition(tr.To)
	return true
}

// Transition leaves the current phase and enters to. The exit hook runs
// before the enter hook. Illegal edges panic.
func (m *Machine) Transition(to Phase) {
	if !CanTransition(m.current, to) {
		panic(fmt.Sprintf("cruncher: illegal phase transition %s -> %s", m.current, to))
	}
	if h := m.hooks[m.current]; h.Exit != nil {
		h.Exit()
	}
	m.current = to
	if h := m.hooks[to]; h.Enter != nil {
		h.Enter()
	}
}

package cruncher

import "github.com/vovakirdan/term-cruncher/internal/core"

// Command is the player's intent for one tick.
type Command struct {
	Move   Direction
	Crunch bool
}

// CommandFromInput derives a command from the tick's key edges.
// When several directions fire in one tick only the first in the order
// Up, Down, Right, Left is applied.
func CommandFromInput(in core.InputFrame) Command {
	var cmd Command
	switch {
	case in.Has(core.ActionUp):
		cmd.Move = DirUp
	case in.Has(core.ActionDown):
		cmd.Move = DirDown
	case in.Has(core.ActionRight):
		cmd.Move = DirRight
	case in.Has(core.ActionLeft):
		cmd.Move = DirLeft
	}
	cmd.Crunch = in.Has(core.ActionCrunch)
	return cmd
}

// Transition is a requested phase change. OK is false when none is requested.
type Transition struct {
	To Phase
	OK bool
}

// ResolvePlayerCommand applies one tick of player intent to the session in
// a fixed order: movement, crunch and win check, then collision check.
// A win detaches the adversary, so a winning tick never also reports a loss.
func ResolvePlayerCommand(s *Session, cmd Command) Transition {
	var tr Transition

	if cmd.Move != DirNone {
		// Facing changes even when the edge blocks the step.
		s.player.Step(cmd.Move, s.rules.Rows, s.rules.Cols)
		s.player.Facing = cmd.Move.Facing()
	}

	if cmd.Crunch && s.crunch() {
		s.adversary = nil
		tr = Transition{To: PhaseGameWin, OK: true}
	}

	if s.adversary != nil && s.adversary.SameCell(s.player) {
		s.adversary = nil
		tr = Transition{To: PhaseGameOver, OK: true}
	}

	return tr
}

// crunch resolves a crunch on the player's tile and reports whether the
// streak reached the win threshold.
func (s *Session) crunch() bool {
	col, row := s.player.BoardCoord(s.rules.Rows)
	label := s.board.LabelAt(col, row)
	if label == "" {
		s.lastCrunch = CrunchEmpty
		return false
	}

	if !s.rules.Category.IsValid(label) {
		// Wrong terms stay on the board.
		s.streak = 0
		s.lastCrunch = CrunchInvalid
		return false
	}

	s.score++
	s.streak++
	s.lastCrunch = CrunchValid
	s.board.Clear(col, row)
	return s.streak >= s.rules.RequiredCrunches
}

package cruncher

import "github.com/vovakirdan/term-cruncher/internal/config"

// Rules are the fixed parameters of a session.
type Rules struct {
	Rows             int
	Cols             int
	RequiredCrunches int
	Category         Category
}

// RulesFromConfig combines a loaded config with a category.
func RulesFromConfig(cfg config.CruncherConfig, cat Category) Rules {
	return Rules{
		Rows:             cfg.Board.Rows,
		Cols:             cfg.Board.Cols,
		RequiredCrunches: cfg.Gameplay.RequiredCrunches,
		Category:         cat,
	}
}

// CrunchResult describes what the last crunch attempt did.
type CrunchResult int

const (
	CrunchNone    CrunchResult = iota // no crunch this session yet
	CrunchEmpty                       // tile already consumed, nothing happened
	CrunchValid                       // matching term, tile consumed
	CrunchInvalid                     // wrong term, streak reset
)

// String returns a short name for the result.
func (r CrunchResult) String() string {
	switch r {
	case CrunchEmpty:
		return "empty"
	case CrunchValid:
		return "valid"
	case CrunchInvalid:
		return "invalid"
	default:
		return "none"
	}
}

// Session is the single source of truth for one play-through.
// The board and both actors are owned here; other components only see
// copies through Snapshot.
type Session struct {
	rules     Rules
	board     *Board
	player    Actor
	adversary *Actor // nil until spawned
	score     int
	streak    int

	lastCrunch CrunchResult
}

// NewSession creates an empty session. Call Reset before use.
func NewSession(rules Rules) *Session {
	return &Session{rules: rules}
}

// Reset performs the Playing-entry initialization: zero score and streak,
// centre the player facing up, regenerate the board and drop the adversary.
func (s *Session) Reset(rng Rand) {
	s.score = 0
	s.streak = 0
	s.lastCrunch = CrunchNone
	s.player = Actor{
		Row:    s.rules.Rows / 2,
		Col:    s.rules.Cols / 2,
		Facing: FacingUp,
	}
	s.adversary = nil
	s.board = Populate(s.rules.Rows, s.rules.Cols, s.rules.Category.Terms, rng)
}

// Rules returns the session's fixed parameters.
func (s *Session) Rules() Rules {
	return s.rules
}

// Score returns the number of valid crunches this session.
func (s *Session) Score() int {
	return s.score
}

// Streak returns consecutive valid crunches since the last miss.
func (s *Session) Streak() int {
	return s.streak
}

package cruncher

// ActorView is a read-only projection of an actor for presenters.
type ActorView struct {
	Row    int
	Col    int
	Facing Facing
	X      float64
	Y      float64
	Z      float64
}

func viewOf(a Actor) ActorView {
	x, y, z := a.WorldPosition()
	return ActorView{Row: a.Row, Col: a.Col, Facing: a.Facing, X: x, Y: y, Z: z}
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Category  string
	Phase     Phase
	Score     int
	Streak    int
	Required  int
	Player    ActorView
	Adversary *ActorView // nil while absent
	Labels    [][]string // [col][row], empty string = consumed
	Remaining int
	Paused    bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

func (g *Game) snapshot() Snapshot {
	s := g.session
	snap := Snapshot{
		Tick:      g.tick,
		Category:  g.category.ID,
		Phase:     g.machine.Current(),
		Score:     s.score,
		Streak:    s.streak,
		Required:  s.rules.RequiredCrunches,
		Player:    viewOf(s.player),
		Labels:    s.board.Labels(),
		Remaining: s.board.Remaining(),
		Paused:    g.paused,
	}
	if s.adversary != nil {
		v := viewOf(*s.adversary)
		snap.Adversary = &v
	}
	return snap
}

package cruncher

// AdversaryEvent reports what one adversary evaluation did.
type AdversaryEvent int

const (
	AdversaryIdle    AdversaryEvent = iota // period has not elapsed
	AdversarySpawned                       // appeared at column 0
	AdversaryMoved                         // stepped and trampled a tile
	AdversaryBlocked                       // drew a direction into an edge
)

// adversaryDraws maps the uniform 4-way draw to directions.
var adversaryDraws = [4]Direction{DirUp, DirDown, DirRight, DirLeft}

// AdversaryPolicy drives the roaming adversary on a fixed tick period.
type AdversaryPolicy struct {
	period  int
	elapsed int
}

// NewAdversaryPolicy creates a policy that acts every periodTicks ticks.
func NewAdversaryPolicy(periodTicks int) *AdversaryPolicy {
	if periodTicks < 1 {
		periodTicks = 1
	}
	return &AdversaryPolicy{period: periodTicks}
}

// Period returns the number of ticks between evaluations.
func (p *AdversaryPolicy) Period() int {
	return p.period
}

// Reset restarts the period timer.
func (p *AdversaryPolicy) Reset() {
	p.elapsed = 0
}

// Tick advances the timer by one tick and acts when a full period elapsed.
func (p *AdversaryPolicy) Tick(s *Session, rng Rand) AdversaryEvent {
	p.elapsed++
	if p.elapsed < p.period {
		return AdversaryIdle
	}
	p.elapsed = 0
	return ActAdversary(s, rng)
}

// ActAdversary performs one adversary evaluation: spawn when absent,
// otherwise a uniform draw over four directions. A successful step turns
// the adversary and clears the tile it lands on; a blocked draw does nothing.
func ActAdversary(s *Session, rng Rand) AdversaryEvent {
	if s.adversary == nil {
		s.adversary = &Actor{Row: rng.Intn(s.rules.Rows), Col: 0}
		return AdversarySpawned
	}

	dir := adversaryDraws[rng.Intn(len(adversaryDraws))]
	if !s.adversary.Step(dir, s.rules.Rows, s.rules.Cols) {
		return AdversaryBlocked
	}

	s.adversary.Facing = dir.Facing()
	s.board.Clear(s.adversary.BoardCoord(s.rules.Rows))
	return AdversaryMoved
}

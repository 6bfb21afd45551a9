package cruncher

import "math"

// Direction is a one-cell movement request.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirRight
	DirLeft
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirRight:
		return "Right"
	case DirLeft:
		return "Left"
	default:
		return "None"
	}
}

// Facing is a rotation about the vertical axis, in degrees.
type Facing float64

const (
	FacingUp    Facing = -90
	FacingDown  Facing = 90
	FacingRight Facing = 180
	FacingLeft  Facing = 0
)

// Radians converts the facing to radians.
func (f Facing) Radians() float64 {
	return float64(f) * math.Pi / 180
}

// Facing returns the angle an actor turns to when moving in d.
// DirNone keeps the left-facing identity rotation.
func (d Direction) Facing() Facing {
	switch d {
	case DirUp:
		return FacingUp
	case DirDown:
		return FacingDown
	case DirRight:
		return FacingRight
	default:
		return FacingLeft
	}
}

// Actor is a board-bound character: the cruncher or the adversary.
// Row grows upward in actor space, the opposite of board storage.
type Actor struct {
	Row    int
	Col    int
	Facing Facing
}

// Step moves the actor one cell in dir, clamped to [0,rows)×[0,cols).
// Returns false when the move was blocked by an edge.
func (a *Actor) Step(dir Direction, rows, cols int) bool {
	switch dir {
	case DirUp:
		if a.Row < rows-1 {
			a.Row++
			return true
		}
	case DirDown:
		if a.Row > 0 {
			a.Row--
			return true
		}
	case DirRight:
		if a.Col < cols-1 {
			a.Col++
			return true
		}
	case DirLeft:
		if a.Col > 0 {
			a.Col--
			return true
		}
	}
	return false
}

// BoardCoord maps the actor's position to board storage (col, row).
// The vertical axis is inverted between the two spaces.
func (a Actor) BoardCoord(rows int) (col, row int) {
	return a.Col, rows - 1 - a.Row
}

// SameCell reports whether two actors occupy the same cell.
func (a Actor) SameCell(b Actor) bool {
	return a.Row == b.Row && a.Col == b.Col
}

// WorldPosition returns the translation a 3D presenter applies: (row, 0, col).
func (a Actor) WorldPosition() (x, y, z float64) {
	return float64(a.Row), 0, float64(a.Col)
}

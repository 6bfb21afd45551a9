package cruncher

// DefaultLabel is used when a board is populated from an empty vocabulary.
const DefaultLabel = "frog"

// Rand is the subset of *rand.Rand the simulation draws from.
// Tests substitute scripted sources.
type Rand interface {
	Intn(n int) int
}

// Cell is one board tile. An empty label means the tile has been consumed.
type Cell struct {
	Label string
}

// Consumed reports whether the tile was crunched or trampled.
func (c Cell) Consumed() bool {
	return c.Label == ""
}

// Board is a fixed-size grid of labeled cells addressed by (col, row).
// Column is the outer storage axis. Coordinates outside the board are a
// caller bug and panic with an index error.
type Board struct {
	rows  int
	cols  int
	cells [][]Cell // cells[col][row]
}

// Populate creates a rows×cols board, drawing every label uniformly with
// replacement from vocabulary. Cells are filled column by column.
func Populate(rows, cols int, vocabulary []string, rng Rand) *Board {
	b := &Board{
		rows:  rows,
		cols:  cols,
		cells: make([][]Cell, cols),
	}
	for col := range cols {
		b.cells[col] = make([]Cell, rows)
		for row := range rows {
			label := DefaultLabel
			if len(vocabulary) > 0 {
				label = vocabulary[rng.Intn(len(vocabulary))]
			}
			b.cells[col][row] = Cell{Label: label}
		}
	}
	return b
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// LabelAt returns the current label at (col, row).
func (b *Board) LabelAt(col, row int) string {
	return b.cells[col][row].Label
}

// Clear consumes the tile at (col, row).
func (b *Board) Clear(col, row int) {
	b.cells[col][row].Label = ""
}

// Remaining counts tiles that still carry a label.
func (b *Board) Remaining() int {
	n := 0
	for _, column := range b.cells {
		for _, c := range column {
			if !c.Consumed() {
				n++
			}
		}
	}
	return n
}

// Labels returns a copy of all labels indexed [col][row].
func (b *Board) Labels() [][]string {
	out := make([][]string, b.cols)
	for col, column := range b.cells {
		out[col] = make([]string, b.rows)
		for row, c := range column {
			out[col][row] = c.Label
		}
	}
	return out
}

package cruncher

import (
	"slices"
	"testing"
)

// scriptedRand replays a fixed sequence of draws, wrapping around.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func TestPopulate(t *testing.T) {
	vocab := []string{"a", "b", "c"}
	b := Populate(6, 9, vocab, &scriptedRand{vals: []int{0, 1, 2}})

	if b.Rows() != 6 || b.Cols() != 9 {
		t.Fatalf("board is %dx%d, want 6x9", b.Rows(), b.Cols())
	}
	if b.Remaining() != 54 {
		t.Errorf("Remaining() = %d, want 54", b.Remaining())
	}

	// Column-major fill: the draw sequence walks down column 0 first.
	want := []string{"a", "b", "c", "a", "b", "c"}
	for row, w := range want {
		if got := b.LabelAt(0, row); got != w {
			t.Errorf("LabelAt(0, %d) = %q, want %q", row, got, w)
		}
	}
	if got := b.LabelAt(1, 0); got != "a" {
		t.Errorf("LabelAt(1, 0) = %q, want a", got)
	}
}

func TestPopulateEmptyVocabulary(t *testing.T) {
	b := Populate(2, 3, nil, &scriptedRand{vals: []int{0}})
	for col := range 3 {
		for row := range 2 {
			if got := b.LabelAt(col, row); got != DefaultLabel {
				t.Errorf("LabelAt(%d, %d) = %q, want %q", col, row, got, DefaultLabel)
			}
		}
	}
}

func TestBoardClear(t *testing.T) {
	b := Populate(6, 9, []string{"pug"}, &scriptedRand{vals: []int{0}})
	b.Clear(8, 5)

	if got := b.LabelAt(8, 5); got != "" {
		t.Errorf("cleared tile label = %q, want empty", got)
	}
	if b.Remaining() != 53 {
		t.Errorf("Remaining() = %d, want 53", b.Remaining())
	}

	// Clearing twice is harmless.
	b.Clear(8, 5)
	if b.Remaining() != 53 {
		t.Errorf("Remaining() after double clear = %d, want 53", b.Remaining())
	}
}

func TestBoardLabelsIsCopy(t *testing.T) {
	b := Populate(2, 2, []string{"pug"}, &scriptedRand{vals: []int{0}})
	labels := b.Labels()
	labels[0][0] = "mutated"

	if b.LabelAt(0, 0) != "pug" {
		t.Error("Labels() must not alias board storage")
	}
	if !slices.Equal(labels[1], []string{"pug", "pug"}) {
		t.Errorf("Labels()[1] = %v", labels[1])
	}
}

func TestBoardOutOfRangePanics(t *testing.T) {
	b := Populate(6, 9, []string{"pug"}, &scriptedRand{vals: []int{0}})

	defer func() {
		if recover() == nil {
			t.Error("LabelAt outside the board should panic")
		}
	}()
	b.LabelAt(9, 0)
}

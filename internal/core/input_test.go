package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionUp) {
		t.Error("zero frame should not report any action")
	}
	if !f.Empty() {
		t.Error("zero frame should be empty")
	}

	f.Set(ActionUp)
	f.Set(ActionCrunch)

	if !f.Has(ActionUp) || !f.Has(ActionCrunch) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionDown) {
		t.Error("unset action reported by Has")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
}

func TestInputFrameListOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionCrunch)
	f.Set(ActionRight)
	f.Set(ActionUp)

	got := f.List()
	want := []Action{ActionUp, ActionRight, ActionCrunch}
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseAction(t *testing.T) {
	for a := ActionNone; a <= ActionQuit; a++ {
		parsed, ok := ParseAction(a.String())
		if !ok || parsed != a {
			t.Errorf("ParseAction(%q) = %v, %v; want %v, true", a.String(), parsed, ok, a)
		}
	}

	if _, ok := ParseAction("Jump"); ok {
		t.Error("ParseAction should reject unknown names")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionLeft) {
		t.Error("clone should not share storage with the original")
	}
}

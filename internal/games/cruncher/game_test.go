package cruncher

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/term-cruncher/internal/config"
	"github.com/vovakirdan/term-cruncher/internal/core"
	"github.com/vovakirdan/term-cruncher/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	cat, _ := CategoryByID("cruncher")
	g := NewWithConfig(cat, config.DefaultCruncherConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// catch puts the adversary on the player so the next tick ends the game.
func catch(g *Game) core.StepResult {
	p := g.session.player
	g.session.adversary = &Actor{Row: p.Row, Col: p.Col}
	return g.Step(frame())
}

func TestRegistered(t *testing.T) {
	for _, cat := range Categories {
		g, err := registry.Create(cat.ID)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", cat.ID, err)
		}
		if g.Title() != cat.Title {
			t.Errorf("Title() = %q, want %q", g.Title(), cat.Title)
		}
	}
}

func TestCategoriesWellFormed(t *testing.T) {
	for _, cat := range Categories {
		if len(cat.Terms) != 12 || len(cat.Valid) != 6 {
			t.Errorf("%s: %d terms, %d valid", cat.ID, len(cat.Terms), len(cat.Valid))
		}
		for _, v := range cat.Valid {
			found := false
			for _, term := range cat.Terms {
				found = found || term == v
			}
			if !found {
				t.Errorf("%s: valid term %q is not in the vocabulary", cat.ID, v)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	script := []core.Action{core.ActionUp, core.ActionCrunch, core.ActionLeft, core.ActionCrunch, core.ActionDown, core.ActionRight}
	for i := range 2000 {
		in := core.NewInputFrame()
		if i%7 == 0 {
			in.Set(script[(i/7)%len(script)])
		}
		if i%500 == 499 {
			in.Set(core.ActionConfirm)
		}
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots diverged:\n%s\n---\n%s", s1, s2)
	}
}

func TestInitialSnapshot(t *testing.T) {
	snap := newTestGame(t, 1).Snapshot()

	if snap.Phase != PhasePlaying {
		t.Errorf("Phase = %s, want playing", snap.Phase)
	}
	if snap.Player.Row != 3 || snap.Player.Col != 4 || snap.Player.Facing != FacingUp {
		t.Errorf("Player = %+v", snap.Player)
	}
	if snap.Adversary != nil {
		t.Error("adversary should start absent")
	}
	if len(snap.Labels) != 9 || len(snap.Labels[0]) != 6 || snap.Remaining != 54 {
		t.Errorf("board is %dx%d with %d tiles", len(snap.Labels), len(snap.Labels[0]), snap.Remaining)
	}
	if snap.Required != 15 {
		t.Errorf("Required = %d, want 15", snap.Required)
	}
}

func TestAdversaryFirstActsAfterOnePeriod(t *testing.T) {
	g := newTestGame(t, 7)
	period := g.policy.Period()
	if period != 240 {
		t.Fatalf("period = %d ticks, want 240", period)
	}

	for range period - 1 {
		g.Step(frame())
	}
	if g.Snapshot().Adversary != nil {
		t.Fatal("adversary spawned early")
	}

	g.Step(frame())
	adv := g.Snapshot().Adversary
	if adv == nil || adv.Col != 0 {
		t.Fatalf("adversary = %+v, want spawned at column 0", adv)
	}
}

func TestCaughtAndRestart(t *testing.T) {
	g := newTestGame(t, 3)
	g.Step(frame(core.ActionRight))

	res := catch(g)
	if !res.Ended || !res.State.GameOver || res.State.Won {
		t.Fatalf("StepResult = %+v, want ended game over", res)
	}
	if g.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %s, want game_over", g.Phase())
	}
	if g.Snapshot().Adversary != nil {
		t.Error("adversary should be removed on catch")
	}

	// Ended fires once; the session is frozen until Confirm.
	before := g.Snapshot()
	for _, a := range []core.Action{core.ActionUp, core.ActionCrunch, core.ActionPause, core.ActionBack} {
		res = g.Step(frame(a))
		if res.Ended {
			t.Error("Ended should only be reported on the transition tick")
		}
	}
	after := g.Snapshot()
	if after.Player != before.Player || after.Score != before.Score || after.Paused {
		t.Error("game over must freeze the session")
	}
	if g.Phase() != PhaseGameOver {
		t.Fatal("only Confirm may restart")
	}

	g.Step(frame(core.ActionConfirm))
	snap := g.Snapshot()
	if snap.Phase != PhasePlaying {
		t.Fatalf("Phase = %s after Confirm, want playing", snap.Phase)
	}
	if snap.Player.Row != 3 || snap.Player.Col != 4 || snap.Score != 0 || snap.Streak != 0 {
		t.Errorf("restart did not reset the session: %+v", snap)
	}
	if snap.Adversary != nil || snap.Remaining != 54 {
		t.Error("restart should clear the adversary and regenerate the board")
	}

	// The adversary timer restarts with the new session.
	for range g.policy.Period() - 1 {
		g.Step(frame())
	}
	if g.Snapshot().Adversary != nil {
		t.Error("adversary timer should restart on Playing entry")
	}
}

func TestWinEndsGame(t *testing.T) {
	g := newTestGame(t, 5)
	g.session.streak = 14
	p := g.session.player
	col, row := p.BoardCoord(6)
	g.session.board.cells[col][row].Label = "koala"

	res := g.Step(frame(core.ActionCrunch))
	if !res.Ended || !res.State.Won || !res.State.GameOver {
		t.Fatalf("StepResult = %+v, want won", res)
	}
	if res.State.Score != 1 || res.State.Streak != 15 {
		t.Errorf("score/streak = %d/%d, want 1/15", res.State.Score, res.State.Streak)
	}
	if g.Phase() != PhaseGameWin {
		t.Fatalf("Phase() = %s, want game_win", g.Phase())
	}

	g.Step(frame(core.ActionConfirm))
	if g.Phase() != PhasePlaying {
		t.Error("Confirm should restart after a win")
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, 9)
	col, row := g.session.player.BoardCoord(6)
	g.session.board.cells[col][row].Label = "pug"

	if !g.Step(frame(core.ActionPause)).State.Paused {
		t.Fatal("pause should toggle on")
	}
	g.Step(frame(core.ActionCrunch))
	if g.State().Score != 0 {
		t.Error("paused game must not resolve commands")
	}

	g.Step(frame(core.ActionPause))
	g.Step(frame(core.ActionCrunch))
	if g.State().Score != 1 {
		t.Error("unpaused game should resolve commands")
	}
}

func TestTooSmallScreenFreezes(t *testing.T) {
	cat, _ := CategoryByID("cruncher")
	g := NewWithConfig(cat, config.DefaultCruncherConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1})

	g.Step(frame(core.ActionUp))
	if g.Snapshot().Player.Row != 3 {
		t.Error("too-small screen should pause the simulation")
	}

	scr := core.NewScreen(40, 10)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("expected resize hint")
	}

	g.Resize(80, 24)
	g.Step(frame(core.ActionUp))
	if g.Snapshot().Player.Row != 4 {
		t.Error("resize should resume the simulation")
	}
}

func TestRenderPhases(t *testing.T) {
	g := newTestGame(t, 11)
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	out := scr.String()
	for _, want := range []string{"Animals with fur", "Score: 0", "Crunch Meter: 0/15", "@^"} {
		if !strings.Contains(out, want) {
			t.Errorf("playing screen missing %q", want)
		}
	}

	catch(g)
	g.Render(scr)
	out = scr.String()
	for _, want := range []string{"Final Score: 0", "Press Enter to Try Again"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
	if strings.Contains(out, "Crunch Meter") || strings.Contains(out, "@") {
		t.Error("playing display objects should be torn down on exit")
	}
}

func TestConfigOverride(t *testing.T) {
	cfg := config.DefaultCruncherConfig()
	cfg.Board.Rows, cfg.Board.Cols = 4, 5
	cfg.Gameplay.RequiredCrunches = 2
	cfg.Gameplay.AdversaryPeriod = 0.5

	cat, _ := CategoryByID("cruncher_sea")
	g := NewWithConfig(cat, cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 2})

	snap := g.Snapshot()
	if len(snap.Labels) != 5 || len(snap.Labels[0]) != 4 {
		t.Errorf("board = %dx%d cols×rows, want 5x4", len(snap.Labels), len(snap.Labels[0]))
	}
	if snap.Player.Row != 2 || snap.Player.Col != 2 {
		t.Errorf("player = (%d,%d), want (2,2)", snap.Player.Row, snap.Player.Col)
	}
	if g.policy.Period() != 5 {
		t.Errorf("period = %d ticks, want 5", g.policy.Period())
	}
	if snap.Category != "cruncher_sea" || g.ID() != "cruncher_sea" {
		t.Errorf("category = %q", snap.Category)
	}
}

package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term-cruncher/internal/config"
	"github.com/vovakirdan/term-cruncher/internal/core"
	"github.com/vovakirdan/term-cruncher/internal/games/cruncher"
	"github.com/vovakirdan/term-cruncher/internal/storage"
)

// endingGame reports Ended on a chosen tick and records what it was given.
type endingGame struct {
	tick    int
	endAt   int
	won     bool
	inputs  []core.InputFrame
	resizes int
}

func (g *endingGame) ID() string               { return "cruncher" }
func (g *endingGame) Title() string            { return "Ending" }
func (g *endingGame) Reset(core.RuntimeConfig) {}
func (g *endingGame) Render(*core.Screen)      {}
func (g *endingGame) Resize(w, h int)          { g.resizes++ }

func (g *endingGame) State() core.GameState {
	return core.GameState{Score: 7, Streak: 2, GameOver: g.tick >= g.endAt, Won: g.won}
}

func (g *endingGame) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.State(), Ended: g.tick == g.endAt}
}

type memRecorder struct {
	frames  int
	resizes int
}

func (r *memRecorder) Record(core.InputFrame) error { r.frames++; return nil }
func (r *memRecorder) Resize(w, h int) error        { r.resizes++; return nil }

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		key  string
		want core.Action
	}{
		{"up", core.ActionUp},
		{"w", core.ActionUp},
		{"s", core.ActionDown},
		{"a", core.ActionLeft},
		{"d", core.ActionRight},
		{" ", core.ActionCrunch},
		{"enter", core.ActionConfirm},
		{"p", core.ActionPause},
		{"esc", core.ActionBack},
		{"q", core.ActionQuit},
		{"z", core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := keys.Action(keyMsg(tt.key)); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestModelSavesResultOnce(t *testing.T) {
	store := openTestStore(t)
	game := &endingGame{endAt: 3, won: true}
	rec := &memRecorder{}
	var m tea.Model = NewModel(game, store, testConfig(), WithRecorder(rec))

	m, _ = m.Update(keyMsg(" "))
	for range 6 {
		m, _ = m.Update(TickMsg{})
	}

	if !game.inputs[0].Has(core.ActionCrunch) {
		t.Error("first tick should carry the crunch key")
	}
	if !game.inputs[1].Empty() {
		t.Error("input frame should be cleared after each tick")
	}
	if rec.frames != 6 {
		t.Errorf("recorder got %d frames, want 6", rec.frames)
	}

	scores, err := store.TopScores("cruncher", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d results, want 1", len(scores))
	}
	if scores[0].Score != 7 || scores[0].Outcome != storage.OutcomeWin {
		t.Errorf("saved %+v, want score 7 win", scores[0])
	}
}

func TestModelBackOnlyWhenFinished(t *testing.T) {
	game := &endingGame{endAt: 2}
	var m tea.Model = NewModel(game, nil, testConfig())

	m, _ = m.Update(keyMsg("esc"))
	if m.(Model).BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	m, _ = m.Update(TickMsg{})
	m, _ = m.Update(TickMsg{})
	m, _ = m.Update(keyMsg("esc"))
	if !m.(Model).BackToMenu() {
		t.Error("back should be honored after the game ended")
	}
}

func TestModelResizeUsesResizer(t *testing.T) {
	game := &endingGame{endAt: 100}
	rec := &memRecorder{}
	var m tea.Model = NewModel(game, nil, testConfig(), WithRecorder(rec))

	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if game.resizes != 1 || rec.resizes != 1 {
		t.Errorf("resizes game=%d recorder=%d, want 1 and 1", game.resizes, rec.resizes)
	}
	if got := m.(Model).config.ScreenH; got != 40-helpHeight {
		t.Errorf("game height = %d, want %d", got, 40-helpHeight)
	}
}

func TestMenuDifficultyCycle(t *testing.T) {
	var m tea.Model = NewMenuModel(nil, testConfig())

	if got := m.(MenuModel).Preset(); got != "" {
		t.Fatalf("initial preset = %q, want default", got)
	}
	m, _ = m.Update(keyMsg("l"))
	m, _ = m.Update(keyMsg("l"))
	if got := m.(MenuModel).Preset(); got != config.DifficultyNormal {
		t.Errorf("preset after two steps = %q, want normal", got)
	}
	m, _ = m.Update(keyMsg("h"))
	m, _ = m.Update(keyMsg("h"))
	m, _ = m.Update(keyMsg("h"))
	if got := m.(MenuModel).Preset(); got != config.DifficultyHard {
		t.Errorf("preset should wrap to hard, got %q", got)
	}

	m, _ = m.Update(keyMsg("enter"))
	res := m.(MenuModel).Result()
	if res.Quit || res.GameID == "" || res.Preset != config.DifficultyHard {
		t.Errorf("Result() = %+v, want a selection with hard preset", res)
	}
}

func TestNewGame(t *testing.T) {
	g, err := NewGame("cruncher_sea", config.DifficultyHard)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	cg, ok := g.(*cruncher.Game)
	if !ok {
		t.Fatalf("NewGame() returned %T, want *cruncher.Game", g)
	}
	cg.Reset(testConfig())
	if cg.Config().Gameplay.AdversaryPeriod != 2.0 {
		t.Errorf("hard preset not applied, period = %v", cg.Config().Gameplay.AdversaryPeriod)
	}

	if _, err := NewGame("nope", ""); err == nil {
		t.Error("unknown game should fail")
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	var m tea.Model = NewSessionModel(nil, testConfig())

	m, _ = m.Update(keyMsg("enter"))
	s := m.(SessionModel)
	if s.screen != screenGame {
		t.Fatalf("screen = %v, want game", s.screen)
	}

	m, _ = m.Update(keyMsg("p"))
	m, _ = m.Update(TickMsg{})
	m, _ = m.Update(keyMsg("esc"))
	if got := m.(SessionModel).screen; got != screenMenu {
		t.Errorf("back from a paused game should return to menu, screen = %v", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.(SessionModel).screen; got != screenScores {
		t.Errorf("tab should open the scoreboard, screen = %v", got)
	}
}

func TestScoreboardFilterAndCategories(t *testing.T) {
	store := openTestStore(t)
	results := []storage.Result{
		{GameID: "cruncher", Score: 15, Streak: 15, Outcome: storage.OutcomeWin},
		{GameID: "cruncher", Score: 4, Streak: 2, Outcome: storage.OutcomeCaught},
		{GameID: "cruncher", Score: 9, Streak: 0, Outcome: storage.OutcomeCaught},
		{GameID: "cruncher_sea", Score: 1, Streak: 1, Outcome: storage.OutcomeCaught},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	var m tea.Model = NewScoreboardModel(store, 100, 40)
	sb := m.(ScoreboardModel)
	if got := sb.categories[sb.current].ID; got != "cruncher" {
		t.Fatalf("first category = %q, want cruncher", got)
	}
	if got := len(sb.table.Rows()); got != 3 {
		t.Errorf("all filter shows %d rows, want 3", got)
	}

	m, _ = m.Update(keyMsg("f"))
	if got := len(m.(ScoreboardModel).table.Rows()); got != 1 {
		t.Errorf("wins filter shows %d rows, want 1", got)
	}
	m, _ = m.Update(keyMsg("f"))
	rows := m.(ScoreboardModel).table.Rows()
	if len(rows) != 2 || rows[0][0] != "2" {
		t.Errorf("caught filter rows = %v, want 2 rows keeping overall rank", rows)
	}

	m, _ = m.Update(keyMsg("l"))
	sb = m.(ScoreboardModel)
	if got := sb.categories[sb.current].ID; got != "cruncher_sea" {
		t.Errorf("next category = %q, want cruncher_sea", got)
	}
	if got := sb.currentStats(); got == nil || got.GamesCount != 1 {
		t.Errorf("stats for cruncher_sea = %+v, want one game", got)
	}
}

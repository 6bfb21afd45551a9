package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveResultAndTopScores(t *testing.T) {
	store := openTestStore(t)

	results := []Result{
		{GameID: "cruncher", Score: 4, Streak: 2, Outcome: OutcomeCaught},
		{GameID: "cruncher", Score: 15, Streak: 15, Outcome: OutcomeWin},
		{GameID: "cruncher", Score: 9, Streak: 0, Outcome: OutcomeCaught},
		{GameID: "cruncher_sea", Score: 20, Streak: 15, Outcome: OutcomeWin},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult(%+v) failed: %v", r, err)
		}
	}

	scores, err := store.TopScores("cruncher", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []struct {
		score   int
		streak  int
		outcome Outcome
	}{
		{15, 15, OutcomeWin},
		{9, 0, OutcomeCaught},
		{4, 2, OutcomeCaught},
	}
	for i, w := range want {
		got := scores[i]
		if got.Score != w.score || got.Streak != w.streak || got.Outcome != w.outcome {
			t.Errorf("scores[%d] = %+v, want %+v", i, got, w)
		}
		if got.GameID != "cruncher" {
			t.Errorf("scores[%d].GameID = %q", i, got.GameID)
		}
	}
}

func TestStoreSaveScoreDefaultsToCaught(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("cruncher", 3); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	scores, err := store.TopScores("cruncher", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Outcome != OutcomeCaught {
		t.Errorf("scores = %+v, want one caught entry", scores)
	}
}

func TestStoreSaveResultRejectsUnknownOutcome(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveResult(Result{GameID: "cruncher", Score: 1, Outcome: "draw"})
	if !errors.Is(err, ErrInvalidOutcome) {
		t.Errorf("SaveResult() error = %v, want ErrInvalidOutcome", err)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("cruncher", i+1)
	}

	scores, err := store.TopScores("cruncher", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 5 || scores[1].Score != 4 || scores[2].Score != 3 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("cruncher")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("cruncher", 10)
	store.SaveScore("cruncher", 30)
	store.SaveScore("cruncher", 20)

	high, err = store.HighScore("cruncher")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("cruncher", 1)
	store.SaveScore("cruncher", 2)
	store.SaveScore("cruncher_wings", 3)

	if err := store.ClearScores("cruncher"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("cruncher", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("cruncher_wings", 10); len(scores) != 1 {
		t.Error("Other categories should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("cruncher")
	if err != nil {
		t.Fatalf("GetGameStats() on empty table failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.Wins != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveResult(Result{GameID: "cruncher", Score: 15, Streak: 15, Outcome: OutcomeWin})
	store.SaveResult(Result{GameID: "cruncher", Score: 5, Streak: 3, Outcome: OutcomeCaught})
	store.SaveResult(Result{GameID: "cruncher_sea", Score: 1, Streak: 1, Outcome: OutcomeCaught})

	stats, err := store.GetGameStats("cruncher")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.Wins != 1 {
		t.Errorf("games/wins = %d/%d, want 2/1", stats.GamesCount, stats.Wins)
	}
	if stats.HighScore != 15 || stats.BestStreak != 15 {
		t.Errorf("high/streak = %d/%d, want 15/15", stats.HighScore, stats.BestStreak)
	}
	if stats.AvgScore != 10 {
		t.Errorf("AvgScore = %v, want 10", stats.AvgScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["cruncher_sea"].GamesCount != 1 {
		t.Errorf("GetAllGamesStats() = %v", all)
	}
}

package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 300, 200} {
		if _, err := store.SaveScore("marble", score); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}
	if _, err := store.SaveScore("marble_endless", 999); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	scores, err := store.TopScores("marble", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("got %d scores, want 3", len(scores))
	}
	want := []int{300, 200, 100}
	for i, e := range scores {
		if e.Score != want[i] {
			t.Errorf("rank %d score %d, want %d", i+1, e.Score, want[i])
		}
		if e.GameID != "marble" {
			t.Errorf("rank %d game %q, want marble", i+1, e.GameID)
		}
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore("marble", i*10); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}
	scores, err := store.TopScores("marble", 5)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("got %d scores, want 5", len(scores))
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	if hs, err := store.HighScore("marble"); err != nil || hs != 0 {
		t.Errorf("empty high score = %d, %v; want 0, nil", hs, err)
	}

	_, _ = store.SaveScore("marble", 150)
	_, _ = store.SaveScore("marble", 450)

	hs, err := store.HighScore("marble")
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if hs != 450 {
		t.Errorf("high score = %d, want 450", hs)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)
	_, _ = store.SaveScore("marble", 100)
	_, _ = store.SaveScore("marble_endless", 200)

	if err := store.ClearScores("marble"); err != nil {
		t.Fatalf("ClearScores: %v", err)
	}

	scores, _ := store.TopScores("marble", 10)
	if len(scores) != 0 {
		t.Errorf("marble scores not cleared: %d left", len(scores))
	}
	other, _ := store.TopScores("marble_endless", 10)
	if len(other) != 1 {
		t.Errorf("unrelated scores were cleared: %d left", len(other))
	}
}

func TestWallet(t *testing.T) {
	store := openTestStore(t)

	if balance, err := store.Credits(); err != nil || balance != 0 {
		t.Errorf("empty wallet = %d, %v; want 0, nil", balance, err)
	}

	if err := store.AddCredits(25, "level clear"); err != nil {
		t.Fatalf("AddCredits: %v", err)
	}
	if err := store.AddCredits(10, "coins"); err != nil {
		t.Fatalf("AddCredits: %v", err)
	}
	if err := store.AddCredits(-5, "spent"); err != nil {
		t.Fatalf("AddCredits: %v", err)
	}

	balance, err := store.Credits()
	if err != nil {
		t.Fatalf("Credits: %v", err)
	}
	if balance != 30 {
		t.Errorf("balance = %d, want 30", balance)
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("marble")
	if err != nil {
		t.Fatalf("GetGameStats: %v", err)
	}
	if stats.Plays != 0 || stats.BestScore != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	_, _ = store.SaveScore("marble", 100)
	_, _ = store.SaveScore("marble", 300)

	stats, err = store.GetGameStats("marble")
	if err != nil {
		t.Fatalf("GetGameStats: %v", err)
	}
	if stats.Plays != 2 || stats.BestScore != 300 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v, want 2 plays, best 300, avg 200", stats)
	}
}

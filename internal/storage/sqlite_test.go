package storage

import (
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Difficulty: "normal", Orientation: "landscape", Seed: 1, Score: 1000, Ticks: 600},
		{Difficulty: "normal", Orientation: "portrait", Seed: 2, Score: 500, Ticks: 300},
		{Difficulty: "normal", Seed: 3, Score: 2000, Ticks: 900},
		{Difficulty: "hard", Seed: 4, Score: 5000, Ticks: 1200},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("normal", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 normal runs, got %d", len(top))
	}

	// Should be sorted descending
	if top[0].Score != 2000 || top[1].Score != 1000 || top[2].Score != 500 {
		t.Errorf("Runs not in expected order: %+v", top)
	}
	if top[0].Orientation != "landscape" {
		t.Errorf("missing orientation should default to landscape, got %q", top[0].Orientation)
	}
	if top[2].Orientation != "portrait" || top[2].Seed != 2 || top[2].Ticks != 300 {
		t.Errorf("run fields not stored: %+v", top[2])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}

	all, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns(all) failed: %v", err)
	}
	if len(all) != 4 || all[0].Difficulty != "hard" {
		t.Errorf("all-preset ranking wrong: %+v", all)
	}
}

func TestStoreSaveRunNeedsDifficulty(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{Score: 10}); err == nil {
		t.Error("expected an error for a run without difficulty")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Difficulty: "easy", Score: (i + 1) * 100})
	}

	top, err := store.TopRuns("easy", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %+v", top)
	}

	// Non-positive limits fall back to 10.
	top, _ = store.TopRuns("easy", 0)
	if len(top) != 5 {
		t.Errorf("Expected 5 runs with default limit, got %d", len(top))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 with no runs, got %d", high)
	}

	store.SaveRun(Run{Difficulty: "normal", Score: 100})
	store.SaveRun(Run{Difficulty: "normal", Score: 300})
	store.SaveRun(Run{Difficulty: "easy", Score: 900})

	if high, _ = store.HighScore("normal"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
	if high, _ = store.HighScore(""); high != 900 {
		t.Errorf("Expected overall high score of 900, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Difficulty: "normal", Score: 100})
	store.SaveRun(Run{Difficulty: "normal", Score: 200})
	store.SaveRun(Run{Difficulty: "hard", Score: 300})

	if err := store.ClearRuns("normal"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if normal, _ := store.TopRuns("normal", 10); len(normal) != 0 {
		t.Errorf("Expected 0 normal runs after clear, got %d", len(normal))
	}
	if hard, _ := store.TopRuns("hard", 10); len(hard) != 1 {
		t.Error("Hard runs should not be affected by clearing normal")
	}

	if err := store.ClearRuns(""); err != nil {
		t.Fatalf("ClearRuns(all) failed: %v", err)
	}
	if all, _ := store.TopRuns("", 10); len(all) != 0 {
		t.Errorf("Expected no runs after clearing all, got %d", len(all))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 30; i++ {
		store.SaveRun(Run{Difficulty: "fixed", Score: i})
	}

	recent, err := store.RecentRuns(5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 5 || recent[0].Score != 29 {
		t.Errorf("Expected the 5 latest runs newest first, got %+v", recent)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Difficulty: "normal", Score: 100, Ticks: 60})
	store.SaveRun(Run{Difficulty: "normal", Score: 300, Ticks: 120})
	store.SaveRun(Run{Difficulty: "hard", Score: 50, Ticks: 30})

	st, err := store.Stats("normal")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.RunsCount != 2 || st.HighScore != 300 || st.AvgScore != 200 || st.TotalTicks != 180 {
		t.Errorf("unexpected stats: %+v", st)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.Stats("easy")
	if err != nil {
		t.Fatalf("Stats() on an unplayed preset failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for unplayed preset: %+v", empty)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 || all["hard"].HighScore != 50 {
		t.Errorf("unexpected AllStats: %v", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

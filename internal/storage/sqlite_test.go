package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runs := []RunRecord{
		{Score: 100, Coins: 3, DurationMs: 18000, Jumps: 12, DrawTimeMs: 2400},
		{Score: 50, Coins: 1, DurationMs: 9000, Jumps: 5, DrawTimeMs: 800},
		{Score: 200, Coins: 8, DurationMs: 42000, Jumps: 30, DrawTimeMs: 7100},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted by score descending
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not sorted correctly: %d, %d, %d",
			top[0].Score, top[1].Score, top[2].Score)
	}

	if top[0].Coins != 8 || top[0].Jumps != 30 {
		t.Errorf("Run fields not round-tripped: coins=%d jumps=%d", top[0].Coins, top[0].Jumps)
	}
}

func TestTopRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 20; i++ {
		if _, err := store.SaveRun(RunRecord{Score: i * 10}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(top) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(top))
	}

	if top[0].Score != 190 {
		t.Errorf("Expected top score 190, got %d", top[0].Score)
	}
}

func TestHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty database should return 0
	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for empty database, got %d", score)
	}

	store.SaveRun(RunRecord{Score: 150})
	store.SaveRun(RunRecord{Score: 300})
	store.SaveRun(RunRecord{Score: 75})

	score, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 300 {
		t.Errorf("Expected high score 300, got %d", score)
	}
}

func TestStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(RunRecord{Score: 100, Coins: 2, DurationMs: 10000})
	store.SaveRun(RunRecord{Score: 200, Coins: 6, DurationMs: 30000})
	store.SaveRun(RunRecord{Score: 300, Coins: 4, DurationMs: 20000})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.RunCount != 3 {
		t.Errorf("Expected 3 runs, got %d", stats.RunCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %f", stats.AvgScore)
	}
	if stats.TotalCoins != 12 {
		t.Errorf("Expected 12 total coins, got %d", stats.TotalCoins)
	}
	if stats.TotalPlayedMs != 60000 {
		t.Errorf("Expected 60000ms total, got %d", stats.TotalPlayedMs)
	}
}

func TestClearRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(RunRecord{Score: 100})
	store.SaveRun(RunRecord{Score: 200})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(top) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(top))
	}
}

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

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore(score); err != nil {
			t.Fatalf("SaveScore(%d) failed: %v", score, err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveScore((i + 1) * 100)
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() with empty table = %d, expected 0", high)
	}

	store.SaveScore(42)
	store.SaveScore(17)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("HighScore() = %d, expected 42", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore(10)
	store.SaveScore(20)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
}

func TestStoreStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore(10)
	store.SaveScore(20)
	store.SaveScore(30)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}

	if stats.Runs != 3 {
		t.Errorf("Runs = %d, expected 3", stats.Runs)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, expected 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
}

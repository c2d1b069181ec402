package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/HC-Build/Hustle-Trail/internal/session"
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

	runs := []RunEntry{
		{GameID: "trail", Company: "Pied Piper", Outcome: "won", Traction: 100, Distance: 2000, Survivors: 3},
		{GameID: "trail", Company: "Hooli", Outcome: "lost", Traction: 50, Distance: 830.5},
		{GameID: "trail", Company: "Aviato", Outcome: "won", Traction: 200, Distance: 2000, Survivors: 1},
		{GameID: "trail_classic", Company: "Bachmanity", Outcome: "lost", Traction: 500, Distance: 120},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("trail", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(top) != 3 {
		t.Errorf("Expected 3 trail runs, got %d", len(top))
	}

	// Should be sorted by traction descending
	if top[0].Traction != 200 {
		t.Errorf("Expected best traction to be 200, got %d", top[0].Traction)
	}
	if top[1].Traction != 100 {
		t.Errorf("Expected second traction to be 100, got %d", top[1].Traction)
	}
	if top[2].Traction != 50 {
		t.Errorf("Expected third traction to be 50, got %d", top[2].Traction)
	}
	if top[0].Company != "Aviato" || top[0].Outcome != "won" {
		t.Errorf("Best run fields mismatch: %+v", top[0])
	}
	if top[2].Distance != 830.5 {
		t.Errorf("Expected lost run distance 830.5, got %f", top[2].Distance)
	}

	classic, err := store.TopRuns("trail_classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(classic) != 1 {
		t.Errorf("Expected 1 classic run, got %d", len(classic))
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveRun(RunEntry{GameID: "trail", Outcome: "lost", Traction: (i + 1) * 100})
	}

	recent, err := store.RecentRuns("trail", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}

	if len(recent) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(recent))
	}

	// Newest first: the last insert wins the tie on created_at via id
	if recent[0].Traction != 500 {
		t.Errorf("Expected newest run first (traction 500), got %d", recent[0].Traction)
	}
}

func TestStoreBestTraction(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No runs yet
	best, err := store.BestTraction("trail")
	if err != nil {
		t.Fatalf("BestTraction() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best traction of 0 for empty game, got %d", best)
	}

	store.SaveRun(RunEntry{GameID: "trail", Outcome: "lost", Traction: 100})
	store.SaveRun(RunEntry{GameID: "trail", Outcome: "won", Traction: 300})
	store.SaveRun(RunEntry{GameID: "trail", Outcome: "lost", Traction: 200})

	best, err = store.BestTraction("trail")
	if err != nil {
		t.Fatalf("BestTraction() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best traction of 300, got %d", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(RunEntry{GameID: "trail", Outcome: "lost", Traction: 100})
	store.SaveRun(RunEntry{GameID: "trail", Outcome: "won", Traction: 200})
	store.SaveRun(RunEntry{GameID: "trail_classic", Outcome: "lost", Traction: 300})

	// Clear only the full variant
	if err := store.ClearRuns("trail"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	trailRuns, _ := store.TopRuns("trail", 10)
	if len(trailRuns) != 0 {
		t.Errorf("Expected 0 trail runs after clear, got %d", len(trailRuns))
	}

	classicRuns, _ := store.TopRuns("trail_classic", 10)
	if len(classicRuns) != 1 {
		t.Errorf("Classic runs should not be affected by clearing trail")
	}
}

func TestStoreSessionRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(RunEntry{GameID: "trail", SessionID: "abc", Outcome: "won", Traction: 100})
	store.SaveRun(RunEntry{GameID: "trail", SessionID: "abc", Outcome: "lost", Traction: 50})
	store.SaveRun(RunEntry{GameID: "trail", SessionID: "xyz", Outcome: "lost", Traction: 75})

	runs, err := store.SessionRuns("abc", 10)
	if err != nil {
		t.Fatalf("SessionRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("Expected 2 runs for session abc, got %d", len(runs))
	}
}

func TestStoreRunSaverAdapter(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var saver session.RunSaver = store
	err = saver.SaveRunRecord(session.RunRecord{
		GameID:       "trail",
		SessionID:    session.ID("deadbeef"),
		Company:      "Pied Piper",
		Outcome:      session.OutcomeSecret,
		Traction:     42,
		Distance:     0,
		Runway:       100,
		Equity:       100,
		Survivors:    3,
		DurationSecs: 9,
	})
	if err != nil {
		t.Fatalf("SaveRunRecord() failed: %v", err)
	}

	runs, err := store.RecentRuns("trail", 1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	if runs[0].Outcome != "secret" || runs[0].SessionID != "deadbeef" {
		t.Errorf("Adapter fields mismatch: %+v", runs[0])
	}
}

func TestStoreGameStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(RunEntry{GameID: "trail", Outcome: "won", Traction: 100, Distance: 2000})
	store.SaveRun(RunEntry{GameID: "trail", Outcome: "lost", Traction: 300, Distance: 900})
	store.SaveRun(RunEntry{GameID: "trail", Outcome: "won", Traction: 200, Distance: 2000})

	stats, err := store.GetGameStats("trail")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 3 {
		t.Errorf("RunsCount = %d, want 3", stats.RunsCount)
	}
	if stats.Wins != 2 {
		t.Errorf("Wins = %d, want 2", stats.Wins)
	}
	if stats.BestTraction != 300 {
		t.Errorf("BestTraction = %d, want 300", stats.BestTraction)
	}
	if stats.AvgTraction != 200 {
		t.Errorf("AvgTraction = %f, want 200", stats.AvgTraction)
	}
	if stats.Farthest != 2000 {
		t.Errorf("Farthest = %f, want 2000", stats.Farthest)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["trail"] == nil {
		t.Errorf("GetAllGamesStats() = %v, want just trail", all)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Verify nested directories get created on open
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

package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func session(rule string, start time.Time, ticks uint64) SessionRecord {
	return SessionRecord{
		Rule:        rule,
		Seed:        42,
		StartedAt:   start,
		EndedAt:     start.Add(2 * time.Second),
		Iterations:  ticks + 10,
		Ticks:       ticks,
		Events:      7,
		Overruns:    3,
		Generations: ticks / 50,
		Population:  int(ticks % 1000),
		EndReason:   EndQuit,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its parent directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	want := session("life", base, 2000)
	id, err := store.SaveSession(want)
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if id == 0 {
		t.Error("SaveSession() should return a non-zero ID")
	}

	got, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Expected 1 session, got %d", len(got))
	}

	r := got[0]
	if r.ID != id || r.Rule != "life" || r.Seed != 42 || r.EndReason != EndQuit {
		t.Errorf("identity fields mismatch: %+v", r)
	}
	if r.Ticks != 2000 || r.Iterations != 2010 || r.Events != 7 || r.Overruns != 3 {
		t.Errorf("counter fields mismatch: %+v", r)
	}
	if r.Generations != 40 || r.Population != 0 {
		t.Errorf("map fields mismatch: %+v", r)
	}
	if !r.StartedAt.Equal(want.StartedAt) || r.Duration() != 2*time.Second {
		t.Errorf("timestamps mismatch: %v -> %v", r.StartedAt, r.EndedAt)
	}
}

func TestStoreRecentOrderAndLimit(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveSession(session("life", base.Add(time.Duration(i)*time.Minute), uint64(i))); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	got, err := store.RecentSessions(3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 sessions with limit, got %d", len(got))
	}

	// Newest first: ticks 4, 3, 2
	if got[0].Ticks != 4 || got[1].Ticks != 3 || got[2].Ticks != 2 {
		t.Errorf("Sessions not newest-first: %d %d %d", got[0].Ticks, got[1].Ticks, got[2].Ticks)
	}
}

func TestStoreByRuleAndStats(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	store.SaveSession(session("life", base, 1000))
	store.SaveSession(session("life", base.Add(time.Minute), 5000))
	store.SaveSession(session("seeds", base, 300))

	lifeSessions, err := store.SessionsByRule("life", 10)
	if err != nil {
		t.Fatalf("SessionsByRule() failed: %v", err)
	}
	if len(lifeSessions) != 2 {
		t.Errorf("Expected 2 life sessions, got %d", len(lifeSessions))
	}

	rules, err := store.Rules()
	if err != nil {
		t.Fatalf("Rules() failed: %v", err)
	}
	if len(rules) != 2 || rules[0] != "life" || rules[1] != "seeds" {
		t.Errorf("Rules() = %v", rules)
	}

	stats, err := store.StatsForRule("life")
	if err != nil {
		t.Fatalf("StatsForRule() failed: %v", err)
	}
	if stats.Sessions != 2 || stats.TotalTicks != 6000 || stats.MaxGenerations != 100 {
		t.Errorf("StatsForRule() = %+v", stats)
	}

	empty, err := store.StatsForRule("maze")
	if err != nil {
		t.Fatalf("StatsForRule() on empty rule failed: %v", err)
	}
	if empty.Sessions != 0 || empty.TotalTicks != 0 {
		t.Errorf("Expected zero stats, got %+v", empty)
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)
	base := time.Now()

	store.SaveSession(session("life", base, 100))
	store.SaveSession(session("seeds", base, 200))

	if err := store.ClearSessions("life"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}
	if got, _ := store.SessionsByRule("life", 10); len(got) != 0 {
		t.Errorf("Expected 0 life sessions after clear, got %d", len(got))
	}
	if got, _ := store.SessionsByRule("seeds", 10); len(got) != 1 {
		t.Errorf("seeds sessions should survive, got %d", len(got))
	}

	if err := store.ClearSessions(""); err != nil {
		t.Fatalf("ClearSessions(\"\") failed: %v", err)
	}
	if got, _ := store.RecentSessions(10); len(got) != 0 {
		t.Errorf("Expected empty history, got %d", len(got))
	}
}

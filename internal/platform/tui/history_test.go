package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-grid/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, rule := range []string{"life", "highlife", "life"} {
		start := base.Add(time.Duration(i) * time.Minute)
		_, err := store.SaveSession(storage.SessionRecord{
			Rule:        rule,
			StartedAt:   start,
			EndedAt:     start.Add(1500 * time.Millisecond),
			Ticks:       1500,
			Generations: 30,
			Population:  100 + i,
			EndReason:   storage.EndQuit,
		})
		if err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}
	return store
}

func TestHistoryRow(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)
	row := HistoryRow(storage.SessionRecord{
		Rule:        "seeds",
		StartedAt:   start,
		EndedAt:     start.Add(2500 * time.Millisecond),
		Ticks:       2500,
		Generations: 50,
		Population:  12,
		Overruns:    3,
		EndReason:   storage.EndSignal,
	})

	expected := []string{"Mar 01 12:00", "seeds", "2.5s", "2500", "50", "12", "3", "signal"}
	if len(row) != len(HistoryColumns) {
		t.Fatalf("row has %d cells, expected %d", len(row), len(HistoryColumns))
	}
	for i := range expected {
		if row[i] != expected[i] {
			t.Errorf("cell %d (%s) = %q, expected %q", i, HistoryColumns[i], row[i], expected[i])
		}
	}
}

func TestHistoryModelTabs(t *testing.T) {
	m := NewHistoryModel(seededStore(t), 100, 30)

	if m.CurrentRule() != "" {
		t.Errorf("first tab = %q, expected all rules", m.CurrentRule())
	}
	if len(m.Sessions()) != 3 {
		t.Errorf("all tab shows %d sessions, expected 3", len(m.Sessions()))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if m.CurrentRule() != "highlife" || len(m.Sessions()) != 1 {
		t.Errorf("tab 1 = %q with %d sessions, expected highlife with 1", m.CurrentRule(), len(m.Sessions()))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if m.CurrentRule() != "life" || len(m.Sessions()) != 2 {
		t.Errorf("tab 2 = %q with %d sessions, expected life with 2", m.CurrentRule(), len(m.Sessions()))
	}
	if !strings.Contains(m.View(), "2 sessions") {
		t.Error("rule tab should show aggregate stats")
	}

	// Wraps back to the first tab.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if m.CurrentRule() != "" {
		t.Errorf("tab after last = %q, expected all rules", m.CurrentRule())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(HistoryModel)
	if m.CurrentRule() != "life" {
		t.Errorf("shift+tab from first = %q, expected life", m.CurrentRule())
	}
}

func TestHistoryModelQuit(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)

	if !strings.Contains(m.View(), "No sessions recorded yet") {
		t.Error("empty history should say so")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if next.(HistoryModel).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

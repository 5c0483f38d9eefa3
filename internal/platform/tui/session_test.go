package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-grid/internal/core"
)

func openSimulation(t *testing.T) (*Session, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := OpenScreen(sim, nil)
	if err != nil {
		t.Fatalf("OpenScreen() error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	sim.SetSize(80, 24)
	drain(t, s)
	return s, sim
}

// drain discards startup events such as the initial resize.
func drain(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < 100; i++ {
		ev, err := s.PollEvent(20 * time.Millisecond)
		if err != nil {
			t.Fatalf("PollEvent() error: %v", err)
		}
		if ev == nil {
			return
		}
	}
	t.Fatal("terminal never went quiet")
}

func TestSessionHideCursorIdempotent(t *testing.T) {
	s, sim := openSimulation(t)

	sim.ShowCursor(3, 3)
	s.HideCursor()
	s.HideCursor()
	sim.Show()

	if _, _, visible := sim.GetCursor(); visible {
		t.Error("cursor visible after HideCursor")
	}
}

func TestSessionPollReturnsEventsInOrder(t *testing.T) {
	s, sim := openSimulation(t)

	sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'b', tcell.ModNone)
	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)

	expected := []struct {
		key tcell.Key
		r   rune
	}{{tcell.KeyRune, 'a'}, {tcell.KeyRune, 'b'}, {tcell.KeyUp, 0}}

	for i, want := range expected {
		ev, err := s.PollEvent(100 * time.Millisecond)
		if err != nil {
			t.Fatalf("PollEvent() error: %v", err)
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			t.Fatalf("PollEvent() = %T, expected *tcell.EventKey", ev)
		}
		if key.Key() != want.key || (want.key == tcell.KeyRune && key.Rune() != want.r) {
			t.Errorf("event %d = %s, expected key %v rune %q", i, key.Name(), want.key, want.r)
		}
	}
}

func TestSessionPollTimesOut(t *testing.T) {
	s, _ := openSimulation(t)

	start := time.Now()
	ev, err := s.PollEvent(5 * time.Millisecond)
	if err != nil || ev != nil {
		t.Fatalf("PollEvent() = (%v, %v), expected nothing", ev, err)
	}
	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Errorf("PollEvent returned after %v, before its deadline", elapsed)
	}
}

func TestSessionFlushWritesFrame(t *testing.T) {
	s, sim := openSimulation(t)

	frame := core.NewScreen(80, 24)
	frame.DrawText(0, 0, "gen", core.ColorStatus)
	frame.SetCell(5, 3, '█', core.ColorBrightGreen)

	if err := s.Flush(frame); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}

	r, _, style, _ := sim.GetContent(1, 0)
	if r != 'e' {
		t.Errorf("cell (1,0) = %q, expected 'e'", r)
	}
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrReverse == 0 {
		t.Error("status cell not drawn in reverse video")
	}
	if r, _, _, _ := sim.GetContent(5, 3); r != '█' {
		t.Errorf("cell (5,3) = %q, expected '█'", r)
	}
}

func TestSessionCloseIdempotent(t *testing.T) {
	s, _ := openSimulation(t)

	if err := s.Close(); err != nil {
		t.Fatalf("first Close() error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close() error: %v", err)
	}

	if err := s.Flush(core.NewScreen(1, 1)); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("Flush() after Close = %v, expected ErrSessionClosed", err)
	}
	if _, err := s.PollEvent(time.Millisecond); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("PollEvent() after Close = %v, expected ErrSessionClosed", err)
	}
	s.HideCursor()
}

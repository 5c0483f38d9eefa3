package world

import (
	"testing"

	"github.com/vovakirdan/tui-grid/internal/core"
	"github.com/vovakirdan/tui-grid/internal/registry"
)

var conway = core.MustParseRule("B3/S23")

func place(m *Map, cells ...[2]int) {
	for _, c := range cells {
		m.Set(c[0], c[1], true)
	}
}

func TestBlinkerOscillates(t *testing.T) {
	m := New(5, 5, conway, false)
	place(m, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

	m.Step()
	for _, c := range [][2]int{{2, 1}, {2, 2}, {2, 3}} {
		if !m.Alive(c[0], c[1]) {
			t.Errorf("after 1 step expected (%d, %d) alive", c[0], c[1])
		}
	}
	if m.Alive(1, 2) || m.Alive(3, 2) {
		t.Error("after 1 step horizontal ends should be dead")
	}

	m.Step()
	if !m.Alive(1, 2) || !m.Alive(3, 2) || m.Alive(2, 1) {
		t.Error("blinker should return to horizontal after 2 steps")
	}
	if m.Generation() != 2 {
		t.Errorf("Generation() = %d, expected 2", m.Generation())
	}
	if m.Population() != 3 {
		t.Errorf("Population() = %d, expected 3", m.Population())
	}
}

func TestBlockIsStill(t *testing.T) {
	m := New(4, 4, conway, false)
	place(m, [2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2})
	before := m.Snapshot()

	m.Step()
	after := m.Snapshot()

	if before.Checksum != after.Checksum || after.Population != 4 {
		t.Errorf("block should be a still life: before %+v after %+v", before, after)
	}
}

func TestWrapJoinsEdges(t *testing.T) {
	// Vertical blinker straddling the top/bottom edge.
	wrapped := New(5, 5, conway, true)
	place(wrapped, [2]int{2, 4}, [2]int{2, 0}, [2]int{2, 1})
	wrapped.Step()
	if !wrapped.Alive(1, 0) || !wrapped.Alive(3, 0) {
		t.Error("wrapped blinker should flip around row 0")
	}

	flat := New(5, 5, conway, false)
	place(flat, [2]int{2, 4}, [2]int{2, 0}, [2]int{2, 1})
	flat.Step()
	if flat.Population() != 0 {
		t.Errorf("unwrapped edge cells should die, population = %d", flat.Population())
	}
}

func TestGliderTravelsAcrossWrappedMap(t *testing.T) {
	m := New(8, 8, conway, true)
	place(m, [2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})
	start := m.Snapshot()

	// A glider returns to its starting cells after 4 * width generations on a square torus.
	for i := 0; i < 32; i++ {
		m.Step()
	}

	end := m.Snapshot()
	if end.Checksum != start.Checksum || end.Population != 5 {
		t.Errorf("glider should return home: start %+v end %+v", start, end)
	}
}

func TestSetTracksPopulation(t *testing.T) {
	m := New(10, 10, conway, false)
	m.Set(3, 3, true)
	m.Set(3, 3, true) // no double count
	m.Set(4, 4, true)
	m.Set(-1, 4, true) // ignored
	m.Set(4, 4, false)

	if m.Population() != 1 {
		t.Errorf("Population() = %d, expected 1", m.Population())
	}
	if m.Alive(100, 100) {
		t.Error("out-of-bounds cell should be dead")
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a := New(50, 50, conway, true)
	b := New(50, 50, conway, true)
	a.Randomize(42, 0.3)
	b.Randomize(42, 0.3)

	if a.Snapshot() != b.Snapshot() {
		t.Error("same seed should produce identical maps")
	}
	if a.Population() == 0 || a.Population() == 2500 {
		t.Errorf("density 0.3 produced population %d", a.Population())
	}

	a.Clear()
	if a.Population() != 0 || a.Generation() != 0 {
		t.Error("Clear() should reset population and generation")
	}
}

func TestBuiltinRulesRegistered(t *testing.T) {
	for _, id := range []string{DefaultRule, "highlife", "seeds", "daynight", "maze", "replicator"} {
		if !registry.Exists(id) {
			t.Errorf("rule %q not registered", id)
		}
	}
}

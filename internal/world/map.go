// Package world implements the simulated grid: a fixed-size map of cells
// stepped one generation at a time by a life-like birth/survival rule.
package world

import (
	"math/rand"

	"github.com/vovakirdan/tui-grid/internal/core"
)

// Map is a 2D grid of cells with fixed dimensions.
// Cells outside the map are dead unless wrapping is enabled, in which case
// the edges join into a torus.
type Map struct {
	width      int
	height     int
	cells      []bool
	next       []bool
	rule       core.Rule
	wrap       bool
	generation uint64
	population int
}

// New creates an empty map.
func New(width, height int, rule core.Rule, wrap bool) *Map {
	width, height = core.Max(1, width), core.Max(1, height)
	return &Map{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
		next:   make([]bool, width*height),
		rule:   rule,
		wrap:   wrap,
	}
}

// Width returns the map width in cells.
func (m *Map) Width() int { return m.width }

// Height returns the map height in cells.
func (m *Map) Height() int { return m.height }

// Rule returns the active rule.
func (m *Map) Rule() core.Rule { return m.rule }

// SetRule replaces the active rule. Cells are left untouched.
func (m *Map) SetRule(r core.Rule) { m.rule = r }

// Generation returns the number of generations stepped since the last reset.
func (m *Map) Generation() uint64 { return m.generation }

// Population returns the number of live cells.
func (m *Map) Population() int { return m.population }

// Bounds returns the map as a rectangle at the origin.
func (m *Map) Bounds() core.Rect {
	return core.NewRect(0, 0, m.width, m.height)
}

// Alive reports whether the cell at (x, y) is alive.
// Out-of-bounds coordinates are dead.
func (m *Map) Alive(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.cells[y*m.width+x]
}

// Set changes the state of the cell at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (m *Map) Set(x, y int, alive bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	i := y*m.width + x
	if m.cells[i] == alive {
		return
	}
	m.cells[i] = alive
	if alive {
		m.population++
	} else {
		m.population--
	}
}

// Clear kills every cell and resets the generation counter.
func (m *Map) Clear() {
	clear(m.cells)
	m.population = 0
	m.generation = 0
}

// Randomize fills the map so that roughly density of the cells are alive.
// The same seed always produces the same map.
func (m *Map) Randomize(seed int64, density float64) {
	rng := rand.New(rand.NewSource(seed))
	m.population = 0
	m.generation = 0
	for i := range m.cells {
		alive := rng.Float64() < density
		m.cells[i] = alive
		if alive {
			m.population++
		}
	}
}

// Step advances the map by one generation.
func (m *Map) Step() {
	w, h := m.width, m.height
	pop := 0

	for y := 0; y < h; y++ {
		up, down := y-1, y+1
		if m.wrap {
			up = (up + h) % h
			down = down % h
		}
		for x := 0; x < w; x++ {
			left, right := x-1, x+1
			if m.wrap {
				left = (left + w) % w
				right = right % w
			}

			n := m.count(left, up) + m.count(x, up) + m.count(right, up) +
				m.count(left, y) + m.count(right, y) +
				m.count(left, down) + m.count(x, down) + m.count(right, down)

			i := y*w + x
			alive := m.rule.Next(m.cells[i], n)
			m.next[i] = alive
			if alive {
				pop++
			}
		}
	}

	m.cells, m.next = m.next, m.cells
	m.population = pop
	m.generation++
}

// count returns 1 for a live in-bounds cell. Coordinates are already wrapped
// when wrapping is enabled.
func (m *Map) count(x, y int) int {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	if m.cells[y*m.width+x] {
		return 1
	}
	return 0
}

package world

import "hash/fnv"

// Snapshot captures the observable state of a map for comparison in tests
// and for the session history.
type Snapshot struct {
	Width      int
	Height     int
	Rule       string
	Generation uint64
	Population int
	Checksum   uint64
}

// Snapshot returns a compact summary of the map, including an FNV-1a
// checksum over the cell states.
func (m *Map) Snapshot() Snapshot {
	h := fnv.New64a()
	row := make([]byte, m.width)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			row[x] = 0
			if m.cells[y*m.width+x] {
				row[x] = 1
			}
		}
		h.Write(row)
	}

	return Snapshot{
		Width:      m.width,
		Height:     m.height,
		Rule:       m.rule.String(),
		Generation: m.generation,
		Population: m.population,
		Checksum:   h.Sum64(),
	}
}

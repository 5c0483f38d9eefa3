package world

import "github.com/vovakirdan/tui-grid/internal/registry"

// DefaultRule is the rule used when no configuration names one.
const DefaultRule = "life"

func init() {
	registry.Register("life", "Conway's Game of Life", "B3/S23")
	registry.Register("highlife", "HighLife", "B36/S23")
	registry.Register("seeds", "Seeds", "B2/S")
	registry.Register("daynight", "Day & Night", "B3678/S34678")
	registry.Register("maze", "Maze", "B3/S12345")
	registry.Register("replicator", "Replicator", "B1357/S1357")
}

// Package game owns the simulation state driven by the main loop: the map,
// the running and paused flags, and the viewport onto the map.
package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-grid/internal/config"
	"github.com/vovakirdan/tui-grid/internal/core"
	"github.com/vovakirdan/tui-grid/internal/world"
)

// Glyphs used when drawing the map.
const (
	glyphAlive = '█'
	glyphDead  = ' '
	glyphEdge  = '·'
)

// Bounds for the generation cadence adjusted with +/-.
const (
	minGenerationTicks = 1
	maxGenerationTicks = 10 * core.TicksPerSecond
)

// Game is the simulation state. It is not safe for concurrent use; the loop
// owns it exclusively.
type Game struct {
	world   *world.Map
	ruleID  string
	palette config.Palette
	cfg     core.RuntimeConfig

	running bool
	paused  bool

	// view is the visible region in map coordinates.
	view core.Rect

	ticks           uint64
	generationTicks int
	seed            int64

	// avgDelta is a moving average of the loop's iteration interval.
	avgDelta time.Duration
}

// New creates a running game over m. The map is randomized from cfg.Seed
// and cfg.Density; cfg.Seed must already be resolved (non-zero means fixed).
func New(m *world.Map, ruleID string, cfg core.RuntimeConfig, palette config.Palette) *Game {
	g := &Game{
		world:           m,
		ruleID:          ruleID,
		palette:         palette,
		cfg:             cfg,
		running:         true,
		generationTicks: core.Clamp(cfg.GenerationTicks, minGenerationTicks, maxGenerationTicks),
		seed:            cfg.Seed,
	}
	if cfg.Density > 0 {
		m.Randomize(g.seed, cfg.Density)
	}
	g.ResizeViewport(cfg.ScreenW, cfg.ScreenH)
	g.center()
	return g
}

// Running reports whether the loop should keep iterating.
func (g *Game) Running() bool { return g.running }

// Paused reports whether Update is currently skipped.
func (g *Game) Paused() bool { return g.paused }

// Ticks returns the number of Update calls so far.
func (g *Game) Ticks() uint64 { return g.ticks }

// World returns the simulated map.
func (g *Game) World() *world.Map { return g.world }

// RuleID returns the rule name recorded for this session.
func (g *Game) RuleID() string { return g.ruleID }

// Seed returns the seed of the most recent randomization.
func (g *Game) Seed() int64 { return g.seed }

// Viewport returns the visible map region.
func (g *Game) Viewport() core.Rect { return g.view }

// GenerationTicks returns the number of ticks between map generations.
func (g *Game) GenerationTicks() int { return g.generationTicks }

// Stop clears the running flag.
func (g *Game) Stop() { g.running = false }

// ProcessKeyInput applies one key action.
func (g *Game) ProcessKeyInput(a core.Action) {
	switch a {
	case core.ActionQuit:
		g.running = false
	case core.ActionPause:
		g.paused = !g.paused
	case core.ActionUp:
		g.scroll(0, -1)
	case core.ActionDown:
		g.scroll(0, 1)
	case core.ActionLeft:
		g.scroll(-1, 0)
	case core.ActionRight:
		g.scroll(1, 0)
	case core.ActionPageUp:
		g.scroll(0, -core.Max(1, g.view.H))
	case core.ActionPageDown:
		g.scroll(0, core.Max(1, g.view.H))
	case core.ActionPageLeft:
		g.scroll(-core.Max(1, g.view.W), 0)
	case core.ActionPageRight:
		g.scroll(core.Max(1, g.view.W), 0)
	case core.ActionCenter:
		g.center()
	case core.ActionStep:
		if g.paused {
			g.world.Step()
		}
	case core.ActionRandomize:
		g.seed++
		g.world.Randomize(g.seed, randomizeDensity(g.cfg.Density))
	case core.ActionClear:
		g.world.Clear()
	case core.ActionFaster:
		g.generationTicks = core.Max(minGenerationTicks, g.generationTicks/2)
	case core.ActionSlower:
		g.generationTicks = core.Min(maxGenerationTicks, g.generationTicks*2)
	}
}

// randomizeDensity keeps the randomize key useful on maps started empty.
func randomizeDensity(d float64) float64 {
	if d <= 0 {
		return 0.25
	}
	return d
}

// ProcessMouseInput paints cells under the pointer: the primary button sets
// cells alive, the secondary button kills them. Dragging paints continuously.
func (g *Game) ProcessMouseInput(ev core.MouseEvent) {
	if ev.Y < core.StatusLines {
		return
	}
	sx, sy := ev.X, ev.Y-core.StatusLines
	if sx < 0 || sx >= g.view.W || sy >= g.view.H {
		return
	}
	mx, my := g.view.X+sx, g.view.Y+sy

	switch {
	case ev.Buttons&core.MousePrimary != 0:
		g.world.Set(mx, my, true)
	case ev.Buttons&core.MouseSecondary != 0:
		g.world.Set(mx, my, false)
	}
}

// ResizeViewport adapts the viewport to a terminal of width x height cells.
// The status line takes the top row; the map gets the rest.
func (g *Game) ResizeViewport(width, height int) {
	g.cfg.ScreenW = core.Max(0, width)
	g.cfg.ScreenH = core.Max(0, height)
	g.view.W = g.cfg.ScreenW
	g.view.H = core.Max(0, g.cfg.ScreenH-core.StatusLines)
	g.view = g.view.ClampWithin(g.world.Width(), g.world.Height())
}

// ObserveDelta receives the loop's measured iteration interval.
func (g *Game) ObserveDelta(d time.Duration) {
	if g.avgDelta == 0 {
		g.avgDelta = d
		return
	}
	g.avgDelta = (g.avgDelta*15 + d) / 16
}

// Rate returns the observed loop frequency in iterations per second.
func (g *Game) Rate() float64 {
	if g.avgDelta <= 0 {
		return 0
	}
	return float64(time.Second) / float64(g.avgDelta)
}

// Update advances the simulation by exactly one tick. Every
// GenerationTicks ticks the map steps one generation.
func (g *Game) Update() {
	g.ticks++
	if g.ticks%uint64(g.generationTicks) == 0 {
		g.world.Step()
	}
}

// RenderStatus draws the status line into the top row of dst.
func (g *Game) RenderStatus(dst *core.Screen) {
	dst.FillRow(0, ' ', g.palette.Status)

	state := ""
	if g.paused {
		state = " │ PAUSED"
	}
	text := fmt.Sprintf(" %s %s │ gen %d │ pop %d │ view %d,%d │ %.0f Hz │ 1 gen/%d ticks%s",
		g.ruleID, g.world.Rule(),
		g.world.Generation(), g.world.Population(),
		g.view.X, g.view.Y,
		g.Rate(), g.generationTicks,
		state,
	)
	dst.DrawText(0, 0, text, g.palette.Status)
}

// RenderMap draws the visible part of the map below the status line.
// Cells beyond the map edge are drawn with an edge marker.
func (g *Game) RenderMap(dst *core.Screen) {
	bounds := g.world.Bounds()
	for sy := 0; sy < g.view.H; sy++ {
		my := g.view.Y + sy
		y := sy + core.StatusLines
		for sx := 0; sx < g.view.W; sx++ {
			mx := g.view.X + sx
			switch {
			case !bounds.Contains(mx, my):
				dst.SetCell(sx, y, glyphEdge, g.palette.Edge)
			case g.world.Alive(mx, my):
				dst.SetCell(sx, y, glyphAlive, g.palette.Alive)
			default:
				dst.SetCell(sx, y, glyphDead, g.palette.Dead)
			}
		}
	}
}

func (g *Game) scroll(dx, dy int) {
	g.view = g.view.Translate(dx, dy).ClampWithin(g.world.Width(), g.world.Height())
}

func (g *Game) center() {
	cx, cy := g.world.Bounds().Center()
	g.view.X = cx - g.view.W/2
	g.view.Y = cy - g.view.H/2
	g.view = g.view.ClampWithin(g.world.Width(), g.world.Height())
}

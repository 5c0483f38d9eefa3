package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-grid/internal/core"
)

// colorStyles maps core.Color to tcell styles.
var colorStyles = map[core.Color]tcell.Style{
	core.ColorDefault:     tcell.StyleDefault,
	core.ColorRed:         tcell.StyleDefault.Foreground(tcell.ColorMaroon),
	core.ColorGreen:       tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:      tcell.StyleDefault.Foreground(tcell.ColorOlive),
	core.ColorBlue:        tcell.StyleDefault.Foreground(tcell.ColorNavy),
	core.ColorMagenta:     tcell.StyleDefault.Foreground(tcell.ColorPurple),
	core.ColorCyan:        tcell.StyleDefault.Foreground(tcell.ColorTeal),
	core.ColorWhite:       tcell.StyleDefault.Foreground(tcell.ColorSilver),
	core.ColorBrightGreen: tcell.StyleDefault.Foreground(tcell.ColorLime),
	core.ColorBrightCyan:  tcell.StyleDefault.Foreground(tcell.ColorAqua),
	core.ColorOrange:      tcell.StyleDefault.Foreground(tcell.PaletteColor(208)),
	core.ColorGray:        tcell.StyleDefault.Foreground(tcell.PaletteColor(245)),
	core.ColorStatus:      tcell.StyleDefault.Reverse(true),
}

// styleFor returns the tcell style for c, falling back to the default style.
func styleFor(c core.Color) tcell.Style {
	if st, ok := colorStyles[c]; ok {
		return st
	}
	return tcell.StyleDefault
}

// cellWriter is the subset of tcell.Screen that blit needs.
type cellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// blit queues every cell of frame on dst. Nothing reaches the terminal until
// the caller shows the screen.
func blit(dst cellWriter, frame *core.Screen) {
	for y := 0; y < frame.Height(); y++ {
		for x := 0; x < frame.Width(); x++ {
			cell := frame.GetCell(x, y)
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			dst.SetContent(x, y, r, nil, styleFor(cell.Color))
		}
	}
}

package core

import (
	"fmt"
	"strings"
)

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for grid elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightCyan
	ColorOrange
	ColorGray
	ColorStatus // Reverse-video status line
)

var colorNames = map[string]Color{
	"default":      ColorDefault,
	"red":          ColorRed,
	"green":        ColorGreen,
	"yellow":       ColorYellow,
	"blue":         ColorBlue,
	"magenta":      ColorMagenta,
	"cyan":         ColorCyan,
	"white":        ColorWhite,
	"bright_green": ColorBrightGreen,
	"bright_cyan":  ColorBrightCyan,
	"orange":       ColorOrange,
	"gray":         ColorGray,
	"status":       ColorStatus,
}

// ParseColor resolves a color name as used in config files.
func ParseColor(name string) (Color, error) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ColorDefault, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}

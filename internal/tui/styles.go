package tui

import (
	"strings"

	"github.com/amterp/swatch/internal/colorinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	colorAccent = lipgloss.Color("#7950f2")
	colorMuted  = lipgloss.Color("#868e96")
	colorError  = lipgloss.Color("#fa5252")
	colorBlack  = lipgloss.Color("#000000")
	colorWhite  = lipgloss.Color("#ffffff")
)

// Styles groups the lipgloss styles the picker renders with.
type Styles struct {
	Label          lipgloss.Style
	Trigger        lipgloss.Style
	TriggerFocused lipgloss.Style
	Popover        lipgloss.Style
	Cell           lipgloss.Style
	Transparent    lipgloss.Style
	Muted          lipgloss.Style
	Error          lipgloss.Style
}

// DefaultStyles returns the standard look.
func DefaultStyles() Styles {
	return Styles{
		Label: lipgloss.NewStyle().Bold(true),
		Trigger: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1),
		TriggerFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1),
		Popover: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1),
		Cell:        lipgloss.NewStyle().Width(5).Align(lipgloss.Center),
		Transparent: lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Foreground(colorMuted),
		Muted:       lipgloss.NewStyle().Foreground(colorMuted),
		Error:       lipgloss.NewStyle().Foreground(colorError),
	}
}

// parseColor converts a canonical color to a colorful.Color. Alpha is
// dropped; transparent and malformed values return false.
func parseColor(color string) (colorful.Color, bool) {
	if color == colorinput.Transparent {
		return colorful.Color{}, false
	}
	hex := strings.TrimPrefix(color, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 8:
		hex = hex[:6]
	case 6:
	default:
		return colorful.Color{}, false
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// labelColor picks black or white text for a swatch background using
// relative luminance.
func labelColor(c colorful.Color) lipgloss.Color {
	r, g, b := c.LinearRgb()
	if 0.2126*r+0.7152*g+0.0722*b > 0.179 {
		return colorBlack
	}
	return colorWhite
}

// swatchStyle renders a cell filled with color.
func (s Styles) swatchStyle(color string) lipgloss.Style {
	c, ok := parseColor(color)
	if !ok {
		return s.Transparent
	}
	return s.Cell.
		Background(lipgloss.Color(c.Hex())).
		Foreground(labelColor(c))
}

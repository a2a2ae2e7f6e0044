package picker

import (
	"fmt"
	"strings"

	"github.com/amterp/swatch/internal/colorinput"
	"github.com/amterp/swatch/internal/grid"
	"github.com/amterp/swatch/internal/keybind"
	"github.com/amterp/swatch/internal/keys"
)

// GridOptions configures a Grid.
type GridOptions struct {
	Colors []string // palette in display order, read-only
	Color  string   // active color, "" for none
	Label  string
	// ShowInput renders a hex field after the swatches. The field and the
	// first swatch then form a closed tab loop.
	ShowInput bool
	RTL       bool
	OnChange  func(color string)
	OnClose   func()
}

// SwatchInfo is per-swatch data a host renders as labels.
type SwatchInfo struct {
	Index       int    `json:"index"`
	Color       string `json:"color"`
	Key         string `json:"key,omitempty"`
	Title       string `json:"title"`
	Transparent bool   `json:"transparent,omitempty"`
	Active      bool   `json:"active,omitempty"`
}

// Grid is the popover body: swatches plus an optional hex field.
type Grid struct {
	focus    Focuser
	colors   []string
	color    string
	label    string
	rtl      bool
	input    *colorinput.Validator
	onChange func(string)
	onClose  func()
}

// NewGrid creates a grid. Nothing is focused until Mount.
func NewGrid(focus Focuser, opts GridOptions) *Grid {
	g := &Grid{
		focus:    focus,
		colors:   opts.Colors,
		color:    opts.Color,
		label:    opts.Label,
		rtl:      opts.RTL,
		onChange: opts.OnChange,
		onClose:  opts.OnClose,
	}
	if opts.ShowInput {
		g.input = colorinput.NewValidator(opts.Color, g.emit)
	}
	return g
}

// Mount sets initial focus: the active swatch, else the hex field, else the
// first swatch.
func (g *Grid) Mount() {
	if i := g.ActiveIndex(); i >= 0 {
		g.focusSwatch(i)
		return
	}
	if g.input != nil {
		g.focus.Focus(GridInput)
		return
	}
	if len(g.colors) > 0 {
		g.focusSwatch(0)
	}
}

// HandleKey dispatches a keydown that happened inside the grid.
func (g *Grid) HandleKey(ev KeyEvent) Result {
	target := ev.Target
	if target == None {
		target = g.focus.Focused()
	}

	switch {
	case ev.Key == keys.Tab:
		return g.handleTab(target, ev.Shift)

	case ev.Key.IsArrow():
		if i, ok := target.SwatchIndex(); ok {
			if next, ok := grid.NextFocusIndex(i, ev.Key, len(g.colors), g.rtl); ok {
				g.focusSwatch(next)
			}
		}
		// Claimed even when focus is elsewhere so the host doesn't scroll.
		return Consumed

	case ev.Key == keys.Escape || ev.Key == keys.Enter:
		if g.onClose != nil {
			g.onClose()
		}
		return Consumed

	case ev.Key.IsPrintable() && !target.Writable():
		i, ok := keybind.IndexForKey(string(ev.Key))
		if !ok || i >= len(g.colors) {
			return Pass
		}
		g.focusSwatch(i)
		return Consumed
	}

	return Pass
}

func (g *Grid) handleTab(target Target, shift bool) Result {
	if shift {
		if target == Swatch(0) {
			if g.input != nil {
				g.focus.Focus(GridInput)
			}
			return Consumed
		}
		return Pass
	}
	if target == GridInput && g.input != nil && len(g.colors) > 0 {
		g.focusSwatch(0)
		return Consumed
	}
	return Pass
}

// SwatchFocused is called by the host when a swatch gains focus through
// the host itself (pointer, default tab traversal). Focus doubles as
// selection, so the swatch color is emitted.
func (g *Grid) SwatchFocused(i int) {
	if i < 0 || i >= len(g.colors) {
		return
	}
	g.emit(g.colors[i])
}

// ClickSwatch handles pointer activation of swatch i.
func (g *Grid) ClickSwatch(i int) {
	if i < 0 || i >= len(g.colors) {
		return
	}
	g.focusSwatch(i)
}

// Input returns the grid's hex field, or nil when ShowInput is false.
func (g *Grid) Input() *colorinput.Validator {
	return g.input
}

// SetColor reflects a new active color from the caller.
func (g *Grid) SetColor(color string) {
	g.color = color
	if g.input != nil {
		g.input.SetColor(color)
	}
}

// SetColors swaps the palette. Focus is not moved.
func (g *Grid) SetColors(colors []string) {
	g.colors = colors
}

// Len returns the number of swatches.
func (g *Grid) Len() int {
	return len(g.colors)
}

// ActiveIndex returns the position of the swatch equal to the active color,
// or -1. Matching is exact.
func (g *Grid) ActiveIndex() int {
	if g.color == "" {
		return -1
	}
	for i, c := range g.colors {
		if c == g.color {
			return i
		}
	}
	return -1
}

// Swatches returns render metadata for every swatch.
func (g *Grid) Swatches() []SwatchInfo {
	active := g.ActiveIndex()
	out := make([]SwatchInfo, len(g.colors))
	for i, c := range g.colors {
		key, _ := keybind.KeyForIndex(i)
		out[i] = SwatchInfo{
			Index:       i,
			Color:       c,
			Key:         key,
			Title:       swatchTitle(c, key),
			Transparent: c == colorinput.Transparent,
			Active:      i == active,
		}
	}
	return out
}

// Label returns the accessible label of the grid's field.
func (g *Grid) Label() string {
	return g.label
}

func (g *Grid) focusSwatch(i int) {
	g.focus.Focus(Swatch(i))
	g.emit(g.colors[i])
}

func (g *Grid) emit(color string) {
	if g.onChange != nil {
		g.onChange(color)
	}
}

func swatchTitle(color, key string) string {
	if key == "" {
		return color
	}
	return fmt.Sprintf("%s — %s", color, strings.ToUpper(key))
}

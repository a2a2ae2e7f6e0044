package picker

import "github.com/amterp/swatch/internal/colorinput"

// ControlOptions configures a Control.
type ControlOptions struct {
	Colors []string
	Color  string
	Label  string
	RTL    bool
	// GridInput adds a hex field inside the popover, closing the tab loop
	// between it and the first swatch.
	GridInput bool
	OnChange  func(color string)
}

// Control is the full picker: a trigger, an always-visible hex field, and
// a popover grid that exists only while open.
//
// Control is not safe for concurrent use. Hosts deliver events one at a
// time, each running to completion before the next.
type Control struct {
	host     Host
	colors   []string
	color    string
	label    string
	rtl      bool
	onChange func(string)

	gridInput bool
	input     *colorinput.Validator
	grid      *Grid
}

// NewControl creates a closed control.
func NewControl(host Host, opts ControlOptions) *Control {
	c := &Control{
		host:     host,
		colors:   opts.Colors,
		color:    opts.Color,
		label:    opts.Label,
		rtl:      opts.RTL,
		onChange: opts.OnChange,

		gridInput: opts.GridInput,
	}
	c.input = colorinput.NewValidator(opts.Color, c.emit)
	return c
}

// IsOpen reports whether the popover is showing.
func (c *Control) IsOpen() bool {
	return c.grid != nil
}

// Toggle handles activation of the trigger.
func (c *Control) Toggle() {
	if c.IsOpen() {
		c.Close(false)
		return
	}
	c.Open()
}

// Open shows the popover and focuses the active swatch, or the first one.
// Opening an open control does nothing.
func (c *Control) Open() {
	if c.IsOpen() {
		return
	}
	c.grid = NewGrid(c.host, GridOptions{
		Colors:    c.colors,
		Color:     c.color,
		Label:     c.label,
		ShowInput: c.gridInput,
		RTL:       c.rtl,
		OnChange:  c.emit,
		OnClose:   func() { c.Close(true) },
	})
	c.host.ShowPopover()
	c.grid.Mount()
}

// Close hides the popover. With returnFocus the trigger is refocused, which
// keyboard-initiated closes use so focus never stays on a removed swatch.
// Closing a closed control does nothing.
func (c *Control) Close(returnFocus bool) {
	if !c.IsOpen() {
		return
	}
	c.grid = nil
	c.host.HidePopover()
	if returnFocus {
		c.host.Focus(Trigger)
	}
}

// RequestClose handles a dismissal request from the popover layer, such as
// a click outside it. Requests originating from the trigger are ignored: the
// trigger's own activation toggles the popover, and honoring both would
// close and immediately reopen it. Returns whether the control closed.
func (c *Control) RequestClose(origin Target) bool {
	if !c.IsOpen() || origin == Trigger {
		return false
	}
	c.Close(false)
	return true
}

// HandleKey dispatches a keydown. Only events from inside the popover are
// handled; everything else passes through.
func (c *Control) HandleKey(ev KeyEvent) Result {
	if !c.IsOpen() {
		return Pass
	}
	target := ev.Target
	if target == None {
		target = c.host.Focused()
	}
	if !c.inPopover(target) {
		return Pass
	}
	ev.Target = target
	return c.grid.HandleKey(ev)
}

// SwatchFocused forwards a host-originated swatch focus to the grid.
func (c *Control) SwatchFocused(i int) {
	if c.grid != nil {
		c.grid.SwatchFocused(i)
	}
}

// ClickSwatch forwards pointer activation of a swatch to the grid.
func (c *Control) ClickSwatch(i int) {
	if c.grid != nil {
		c.grid.ClickSwatch(i)
	}
}

// SetColor reflects a committed color coming from the caller.
func (c *Control) SetColor(color string) {
	c.color = color
	c.input.SetColor(color)
	if c.grid != nil {
		c.grid.SetColor(color)
	}
}

// SetColors swaps the palette, including for an open popover.
func (c *Control) SetColors(colors []string) {
	c.colors = colors
	if c.grid != nil {
		c.grid.SetColors(colors)
	}
}

// SetRTL updates the text direction, including for an open popover.
func (c *Control) SetRTL(rtl bool) {
	c.rtl = rtl
	if c.grid != nil {
		c.grid.rtl = rtl
	}
}

// RTL reports whether the control lays out right-to-left.
func (c *Control) RTL() bool {
	return c.rtl
}

// Color returns the color the control currently shows.
func (c *Control) Color() string {
	return c.color
}

// Colors returns the palette.
func (c *Control) Colors() []string {
	return c.colors
}

// Label returns the control's accessible label.
func (c *Control) Label() string {
	return c.label
}

// Input returns the always-visible hex field.
func (c *Control) Input() *colorinput.Validator {
	return c.input
}

// InputFor returns the hex field behind t: the popover's field for
// GridInput while it is showing, otherwise the always-visible one.
func (c *Control) InputFor(t Target) *colorinput.Validator {
	if t.Kind == KindGridInput && c.grid != nil && c.grid.Input() != nil {
		return c.grid.Input()
	}
	return c.input
}

// Grid returns the popover grid, or nil while closed.
func (c *Control) Grid() *Grid {
	return c.grid
}

func (c *Control) inPopover(t Target) bool {
	if t.Kind == KindGridInput {
		return true
	}
	i, ok := t.SwatchIndex()
	return ok && i < len(c.colors)
}

func (c *Control) emit(color string) {
	if c.onChange != nil {
		c.onChange(color)
	}
}

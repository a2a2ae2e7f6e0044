// Package tui hosts the color picker in a terminal using bubbletea.
package tui

import (
	"fmt"
	"strings"

	"github.com/amterp/swatch/internal/colorinput"
	"github.com/amterp/swatch/internal/keys"
	"github.com/amterp/swatch/internal/picker"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the terminal picker.
type Options struct {
	Palette string // palette name shown in the popover header
	Colors  []string
	Color   string
	Label   string
	RTL     bool
}

// Outcome is what the user chose.
type Outcome struct {
	Color    string
	Accepted bool
}

type pasteMsg struct {
	text string
	err  error
}

// Model is the bubbletea model. It is also the picker's Host: focus and
// popover visibility live here and the picker drives them.
type Model struct {
	control *picker.Control
	palette string

	focused picker.Target
	popover bool

	input  textinput.Model
	help   help.Model
	keymap KeyMap
	styles Styles

	status   string
	accepted bool
	quitting bool

	readClipboard func() (string, error)
}

var _ picker.Host = (*Model)(nil)

// New creates a picker model with focus on the trigger.
func New(opts Options) *Model {
	ti := textinput.New()
	ti.Prompt = "# "
	ti.Placeholder = "rrggbb"
	ti.CharLimit = len(colorinput.Transparent)

	m := &Model{
		palette:       opts.Palette,
		focused:       picker.Trigger,
		input:         ti,
		help:          help.New(),
		keymap:        DefaultKeyMap(),
		styles:        DefaultStyles(),
		readClipboard: clipboard.ReadAll,
	}
	m.control = picker.NewControl(m, picker.ControlOptions{
		Colors:   opts.Colors,
		Color:    opts.Color,
		Label:    opts.Label,
		RTL:      opts.RTL,
		OnChange: m.onChange,
	})
	m.syncInput()
	return m
}

// Run shows the picker until the user accepts or cancels.
func Run(opts Options) (Outcome, error) {
	m := New(opts)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return Outcome{}, err
	}
	return m.Outcome(), nil
}

// Outcome returns the current color and whether it was accepted.
func (m *Model) Outcome() Outcome {
	return Outcome{Color: m.control.Color(), Accepted: m.accepted}
}

// Control exposes the underlying picker.
func (m *Model) Control() *picker.Control {
	return m.control
}

// Focus implements picker.Focuser.
func (m *Model) Focus(t picker.Target) bool {
	if !m.exists(t) {
		return false
	}
	if m.focused == picker.ControlInput && t != picker.ControlInput {
		m.input.Blur()
		m.control.Input().Blur()
	}
	if t == picker.ControlInput {
		m.input.Focus()
	}
	m.focused = t
	return true
}

// Focused implements picker.Focuser.
func (m *Model) Focused() picker.Target {
	return m.focused
}

// ShowPopover implements picker.Host.
func (m *Model) ShowPopover() {
	m.popover = true
}

// HidePopover implements picker.Host.
func (m *Model) HidePopover() {
	m.popover = false
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case pasteMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("clipboard: %v", msg.err)
		} else {
			m.control.Input().Paste(msg.text)
		}
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}
	m.syncInput()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keymap.Quit) {
		return m.quit(false)
	}
	if key.Matches(msg, m.keymap.Accept) {
		return m.quit(true)
	}
	if msg.Paste {
		if m.focused == picker.ControlInput {
			m.control.Input().Paste(string(msg.Runes))
		}
		return nil
	}
	if key.Matches(msg, m.keymap.Paste) && m.focused == picker.ControlInput {
		return m.pasteClipboard
	}

	if ev, ok := keyEvent(msg, m.focused); ok {
		if m.control.HandleKey(ev).Handled() {
			return nil
		}
		if ev.Key == keys.Tab {
			m.traverse(ev.Shift)
			return nil
		}
	}

	switch m.focused.Kind {
	case picker.KindTrigger:
		switch {
		case key.Matches(msg, m.keymap.Toggle):
			m.control.Toggle()
		case key.Matches(msg, m.keymap.Cancel):
			return m.quit(false)
		}
	case picker.KindSwatch:
		if key.Matches(msg, m.keymap.Select) {
			i, _ := m.focused.SwatchIndex()
			m.control.ClickSwatch(i)
		}
	case picker.KindControlInput:
		switch {
		case key.Matches(msg, m.keymap.Submit):
			return m.quit(true)
		case key.Matches(msg, m.keymap.Cancel):
			return m.quit(false)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != m.control.Input().Display() {
			m.control.Input().Type(m.input.Value())
		}
		return cmd
	}
	return nil
}

// traverse is the host's default tab order: trigger, swatches while the
// popover is open, then the hex field.
func (m *Model) traverse(backward bool) {
	ring := []picker.Target{picker.Trigger}
	if m.popover {
		for i := range m.control.Colors() {
			ring = append(ring, picker.Swatch(i))
		}
	}
	ring = append(ring, picker.ControlInput)

	at := 0
	for i, t := range ring {
		if t == m.focused {
			at = i
			break
		}
	}
	step := 1
	if backward {
		step = -1
	}
	next := ring[(at+step+len(ring))%len(ring)]

	m.Focus(next)
	if i, ok := next.SwatchIndex(); ok {
		m.control.SwatchFocused(i)
		return
	}
	// Focus left the popover.
	m.control.RequestClose(next)
}

func (m *Model) onChange(color string) {
	c, ok := colorinput.Normalize(strings.TrimSpace(color))
	if !ok {
		m.status = fmt.Sprintf("ignored %q: not a color", color)
		return
	}
	m.status = ""
	m.control.SetColor(c)
}

func (m *Model) pasteClipboard() tea.Msg {
	text, err := m.readClipboard()
	return pasteMsg{text: text, err: err}
}

func (m *Model) quit(accept bool) tea.Cmd {
	m.accepted = accept
	m.quitting = true
	return tea.Quit
}

// syncInput mirrors the validator's draft into the text field.
func (m *Model) syncInput() {
	if d := m.control.Input().Display(); m.input.Value() != d {
		m.input.SetValue(d)
	}
}

func (m *Model) exists(t picker.Target) bool {
	switch t.Kind {
	case picker.KindTrigger, picker.KindControlInput:
		return true
	case picker.KindSwatch:
		i, _ := t.SwatchIndex()
		return m.popover && i < len(m.control.Colors())
	}
	return false
}

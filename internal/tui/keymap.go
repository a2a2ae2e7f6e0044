package tui

import (
	"unicode"

	"github.com/amterp/swatch/internal/keys"
	"github.com/amterp/swatch/internal/picker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the terminal host's own bindings. Picker keys (arrows, tab,
// quick-select, escape/enter inside the popover) are routed through the
// picker first and only reach these when it passes.
type KeyMap struct {
	Toggle key.Binding
	Select key.Binding
	Accept key.Binding
	Submit key.Binding
	Cancel key.Binding
	Paste  key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "open palette"),
		),
		Select: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pick swatch"),
		),
		Accept: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "accept"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Accept, k.Paste, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Select, k.Submit},
		{k.Accept, k.Paste, k.Cancel, k.Quit},
	}
}

// keyEvent translates a terminal key into the picker's logical key event.
// Keys the picker has no name for return false.
func keyEvent(msg tea.KeyMsg, target picker.Target) (picker.KeyEvent, bool) {
	ev := picker.KeyEvent{Target: target}
	switch msg.Type {
	case tea.KeyTab:
		ev.Key = keys.Tab
	case tea.KeyShiftTab:
		ev.Key, ev.Shift = keys.Tab, true
	case tea.KeyEsc:
		ev.Key = keys.Escape
	case tea.KeyEnter:
		ev.Key = keys.Enter
	case tea.KeyUp:
		ev.Key = keys.ArrowUp
	case tea.KeyDown:
		ev.Key = keys.ArrowDown
	case tea.KeyLeft:
		ev.Key = keys.ArrowLeft
	case tea.KeyRight:
		ev.Key = keys.ArrowRight
	case tea.KeyRunes:
		if len(msg.Runes) != 1 || msg.Alt || msg.Paste {
			return ev, false
		}
		r := msg.Runes[0]
		ev.Key = keys.Normalize(string(r))
		ev.Shift = unicode.IsUpper(r)
	default:
		return ev, false
	}
	return ev, true
}

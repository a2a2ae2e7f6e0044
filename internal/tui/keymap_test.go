package tui

import (
	"testing"

	"github.com/amterp/swatch/internal/keys"
	"github.com/amterp/swatch/internal/picker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		name  string
		msg   tea.KeyMsg
		key   keys.Key
		shift bool
		ok    bool
	}{
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, keys.Tab, false, true},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, keys.Tab, true, true},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, keys.Escape, false, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, keys.Enter, false, true},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, keys.ArrowUp, false, true},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, keys.ArrowLeft, false, true},
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, "q", false, true},
		{"upper rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Q")}, "q", true, true},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q"), Alt: true}, "", false, false},
		{"multi rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("qw")}, "", false, false},
		{"ctrl", tea.KeyMsg{Type: tea.KeyCtrlA}, "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := keyEvent(tt.msg, picker.Trigger)
			assert.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.key, ev.Key)
			assert.Equal(t, tt.shift, ev.Shift)
			assert.Equal(t, picker.Trigger, ev.Target)
		})
	}
}

func TestParseColor(t *testing.T) {
	c, ok := parseColor("#fff")
	assert.True(t, ok)
	assert.Equal(t, "#ffffff", c.Hex())

	c, ok = parseColor("#11223380")
	assert.True(t, ok)
	assert.Equal(t, "#112233", c.Hex())

	_, ok = parseColor("transparent")
	assert.False(t, ok)
	_, ok = parseColor("")
	assert.False(t, ok)
}

func TestLabelColorContrast(t *testing.T) {
	white, _ := parseColor("#ffffff")
	black, _ := parseColor("#000000")
	yellow, _ := parseColor("#fab005")
	navy, _ := parseColor("#1864ab")

	assert.Equal(t, colorBlack, labelColor(white))
	assert.Equal(t, colorWhite, labelColor(black))
	assert.Equal(t, colorBlack, labelColor(yellow))
	assert.Equal(t, colorWhite, labelColor(navy))
}

package tui

import (
	"strings"

	"github.com/amterp/swatch/internal/keybind"
	"github.com/amterp/swatch/internal/picker"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.viewTrigger())
	if m.popover {
		sections = append(sections, m.viewPopover())
	}
	sections = append(sections, m.input.View())
	if m.status != "" {
		sections = append(sections, m.styles.Error.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keymap))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) viewTrigger() string {
	color := m.control.Color()
	chip := m.styles.swatchStyle(color).Width(4).Render("")
	if color == "" {
		color = "none"
	}
	style := m.styles.Trigger
	if m.focused == picker.Trigger {
		style = m.styles.TriggerFocused
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Label.Render(m.control.Label()+" "),
		style.Render(chip+" "+color),
	)
}

func (m *Model) viewPopover() string {
	grid := m.control.Grid()
	if grid == nil {
		return ""
	}
	swatches := grid.Swatches()

	var rows []string
	for start := 0; start < len(swatches); start += keybind.RowWidth {
		end := min(start+keybind.RowWidth, len(swatches))
		cells := make([]string, 0, end-start)
		for _, s := range swatches[start:end] {
			cells = append(cells, m.viewSwatch(s))
		}
		if m.control.RTL() {
			for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
				cells[i], cells[j] = cells[j], cells[i]
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	header := m.styles.Muted.Render(m.palette)
	footer := ""
	if i, ok := m.focused.SwatchIndex(); ok && i < len(swatches) {
		footer = m.styles.Muted.Render(swatches[i].Title)
	}
	body := lipgloss.JoinVertical(lipgloss.Left, append(append([]string{header}, rows...), footer)...)
	return m.styles.Popover.Render(body)
}

func (m *Model) viewSwatch(s picker.SwatchInfo) string {
	label := strings.ToUpper(s.Key)
	if s.Transparent {
		label = "░" + label + "░"
	}
	switch {
	case m.focused == picker.Swatch(s.Index):
		label = "[" + label + "]"
	case s.Active:
		label = "•" + label + "•"
	}
	return m.styles.swatchStyle(s.Color).Render(label)
}

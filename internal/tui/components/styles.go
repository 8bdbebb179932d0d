package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	ui "github.com/alexisbeaulieu97/genform/internal/ui/components"
)

// sectionPanel is the bordered card each component is drawn in. The border
// picks up the secondary colour while the section has focus.
func sectionPanel(title string, focused bool) *ui.Panel {
	accent := ui.PaletteNeutral
	if focused {
		accent = ui.PaletteSecondary
	}
	return ui.NewPanel().WithHeader(ui.TitleText(title)).WithAccent(accent)
}

// sectionHeader puts a muted suffix after a section title.
func sectionHeader(title, suffix string) ui.Renderable {
	return ui.NewText(title+" "+suffix).WithAppliers(ui.Foreground(ui.PalettePrimary), ui.Bold())
}

// rendered adapts an already drawn string to ui.Renderable.
type rendered string

func (r rendered) View() string { return string(r) }

// alignRight pads every line of s on the left to width. Narrow or
// unconstrained widths leave s unchanged.
func alignRight(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) >= width {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, s)
}

// flow joins items left to right, starting a new row whenever the next item
// would overflow width.
func flow(items []string, width, gap int) string {
	if len(items) == 0 {
		return ""
	}
	spacer := strings.Repeat(" ", gap)

	var rows []string
	var row []string
	rowWidth := 0
	for _, item := range items {
		w := lipgloss.Width(item)
		if len(row) > 0 && width > 0 && rowWidth+gap+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			row = append(row, spacer)
			rowWidth += gap
		}
		row = append(row, item)
		rowWidth += w
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

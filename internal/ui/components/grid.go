package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Grid lays cells out left to right in a fixed number of equal columns.
type Grid struct {
	columns int
	gap     int
	cells   []Renderable
}

// NewGrid creates a grid. Columns below one are treated as one.
func NewGrid(columns int, cells ...Renderable) *Grid {
	if columns < 1 {
		columns = 1
	}
	return &Grid{columns: columns, gap: 1, cells: cells}
}

// WithGap sets the number of blank cells between columns.
func (g *Grid) WithGap(gap int) *Grid {
	if gap >= 0 {
		g.gap = gap
	}
	return g
}

// View renders the grid.
func (g *Grid) View() string {
	return g.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the grid, giving each cell an equal share of ctx.Width.
func (g *Grid) ViewWithContext(ctx RenderContext) string {
	if len(g.cells) == 0 {
		return ""
	}

	cellCtx := ctx
	if ctx.Width > 0 {
		cellCtx = ctx.WithWidth(g.CellWidth(ctx.Width))
	}
	spacer := strings.Repeat(" ", g.gap)

	var rows []string
	for start := 0; start < len(g.cells); start += g.columns {
		end := start + g.columns
		if end > len(g.cells) {
			end = len(g.cells)
		}

		row := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start && g.gap > 0 {
				row = append(row, spacer)
			}
			row = append(row, render(g.cells[i], cellCtx))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// CellWidth returns the width each cell receives out of total.
func (g *Grid) CellWidth(total int) int {
	width := (total - g.gap*(g.columns-1)) / g.columns
	if width < 1 {
		return 1
	}
	return width
}

// Columns returns the column count.
func (g *Grid) Columns() int {
	return g.columns
}

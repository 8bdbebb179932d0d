package components

import (
	"strings"
)

const defaultDividerWidth = 40

// Divider renders a horizontal separator line.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a divider that fills the context width.
func NewDivider() *Divider {
	return &Divider{BaseComponent: NewBaseComponent(), char: "─"}
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider. An explicit width wins over ctx.Width.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.Width
	}
	if width <= 0 {
		width = defaultDividerWidth
	}
	style := MutedForeground(PaletteNeutral)(d.ComputeStyle(ctx.Theme), ctx.Theme)
	return style.Render(strings.Repeat(d.char, width))
}

// WithChar sets the character used for the divider.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit width for the divider.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Panel groups content under an optional title inside a rounded border.
type Panel struct {
	BaseComponent
	title    Renderable
	children []Renderable
	accent   PaletteSlot
}

// NewPanel creates a panel around children.
func NewPanel(children ...Renderable) *Panel {
	return &Panel{
		BaseComponent: NewBaseComponent(),
		children:      children,
		accent:        PaletteNeutral,
	}
}

// View renders the panel.
func (p *Panel) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the panel at ctx.Width including its border.
func (p *Panel) ViewWithContext(ctx RenderContext) string {
	style := p.ComputeStyle(ctx.Theme).
		Border(ctx.Theme.Borders.Rounded).
		BorderForeground(p.accent(ctx.Theme.Palette).Base).
		Padding(0, 1)

	inner := ctx
	if ctx.Width > 4 {
		style = style.Width(ctx.Width - 2)
		inner = ctx.WithWidth(ctx.Width - 4)
	}

	var rows []string
	if p.title != nil {
		rows = append(rows, render(p.title, inner))
	}
	for _, child := range p.children {
		rows = append(rows, render(child, inner))
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// WithTitle sets a plain title line.
func (p *Panel) WithTitle(title string) *Panel {
	p.title = LabelText(title)
	return p
}

// WithHeader sets an arbitrary title component.
func (p *Panel) WithHeader(header Renderable) *Panel {
	p.title = header
	return p
}

// WithAccent tints the border.
func (p *Panel) WithAccent(slot PaletteSlot) *Panel {
	if slot != nil {
		p.accent = slot
	}
	return p
}

// Append adds children after the existing ones.
func (p *Panel) Append(children ...Renderable) *Panel {
	p.children = append(p.children, children...)
	return p
}

// Children returns the panel body.
func (p *Panel) Children() []Renderable {
	return p.children
}

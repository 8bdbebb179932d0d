package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Text renders styled content, word-wrapped to the context width.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{BaseComponent: NewBaseComponent(), content: content}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text, wrapping at ctx.Width when set.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	content := t.content
	if ctx.Width > 0 {
		content = wordwrap.String(content, ctx.Width)
	}
	return t.ComputeStyle(ctx.Theme).Render(content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// TitleText is bold primary-coloured text.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Foreground(PalettePrimary), Bold())
}

// LabelText is bold text on the surface colour.
func LabelText(content string) *Text {
	return NewText(content).WithAppliers(Bold())
}

// MutedText is secondary information.
func MutedText(content string) *Text {
	return NewText(content).WithAppliers(Foreground(PaletteNeutral))
}

// HintText is the accent-coloured explanatory line under a field.
func HintText(content string) *Text {
	return NewText(content).WithAppliers(Foreground(PaletteAccent), Italic())
}

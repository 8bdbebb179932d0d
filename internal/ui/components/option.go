package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SelectedMark is drawn on the selected option of a single-select group.
const SelectedMark = "✓"

// Option is a bordered card in a single-select group.
type Option struct {
	BaseComponent
	label    string
	detail   string
	badge    *Badge
	selected bool
	focused  bool
}

// NewOption creates an unselected option with the given label.
func NewOption(label string) *Option {
	return &Option{BaseComponent: NewBaseComponent(), label: label}
}

// View renders the option.
func (o *Option) View() string {
	return o.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the option filling ctx.Width including its border.
func (o *Option) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	style := o.ComputeStyle(theme).
		Border(theme.Borders.Rounded).
		Padding(0, 1)

	switch {
	case o.selected:
		style = BorderColour(PalettePrimary)(style, theme).Bold(true)
	case o.focused:
		style = BorderColour(PaletteSecondary)(style, theme)
	default:
		style = MutedForeground(PaletteNeutral)(style.UnsetForeground(), theme).
			BorderForeground(theme.Palette.Neutral.Muted)
	}
	if o.focused && o.selected {
		style = style.BorderStyle(theme.Borders.Thick)
	}
	if ctx.Width > 2 {
		style = style.Width(ctx.Width - 2)
	}

	title := []string{o.label}
	if o.badge != nil {
		title = append(title, o.badge.ViewWithContext(ctx))
	}
	if o.selected {
		title = append(title, Foreground(PaletteAccent)(lipgloss.NewStyle(), theme).Render(SelectedMark))
	}

	lines := []string{strings.Join(title, " ")}
	if o.detail != "" {
		lines = append(lines, MutedText(o.detail).ViewWithContext(ctx.WithWidth(0)))
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// WithDetail sets the secondary line under the label.
func (o *Option) WithDetail(detail string) *Option {
	o.detail = detail
	return o
}

// WithBadge attaches a badge after the label.
func (o *Option) WithBadge(badge *Badge) *Option {
	o.badge = badge
	return o
}

// WithSelected sets the selected state.
func (o *Option) WithSelected(selected bool) *Option {
	o.selected = selected
	return o
}

// WithFocused sets the keyboard cursor state.
func (o *Option) WithFocused(focused bool) *Option {
	o.focused = focused
	return o
}

// WithAppliers applies theme-based style modifiers.
func (o *Option) WithAppliers(appliers ...StyleFunc) *Option {
	o.AddAppliers(appliers...)
	return o
}

// Label returns the option label.
func (o *Option) Label() string {
	return o.label
}

// IsSelected reports whether the option is selected.
func (o *Option) IsSelected() bool {
	return o.selected
}

// Badge returns the attached badge, if any.
func (o *Option) Badge() *Badge {
	return o.badge
}

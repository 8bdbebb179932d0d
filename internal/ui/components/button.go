package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant specifies the visual style of a button.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantOutline
	ButtonVariantDanger
)

// Button is a one-line action label.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	focused  bool
	disabled bool
}

// NewButton creates a new button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantOutline,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.label)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}
	if b.disabled {
		style = style.Faint(true)
	}
	if b.focused {
		style = style.Bold(true).Underline(true)
	}
	return style
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithFocused marks the button as the keyboard target.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// IsFocused reports whether the button is focused.
func (b *Button) IsFocused() bool {
	return b.focused
}

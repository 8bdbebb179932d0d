package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Renderable is anything that can draw itself to a string.
type Renderable interface {
	View() string
}

// ContextualRenderable is a Renderable that can also draw against a context.
type ContextualRenderable interface {
	Renderable
	ViewWithContext(ctx RenderContext) string
}

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc applies a styling transformation using data from a Theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// BaseComponent carries the raw style and modifiers shared by every component.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent creates a base component with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle returns the raw style with every modifier applied for theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	return CompositeStrategy{funcs: b.appliers}.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// AddAppliers appends modifiers. The existing slice is never shared.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	next := make([]StyleFunc, 0, len(b.appliers)+len(appliers))
	next = append(next, b.appliers...)
	b.appliers = append(next, appliers...)
}

// RenderContext provides the theme and available width during rendering.
// A Width of zero means unconstrained.
type RenderContext struct {
	Theme Theme
	Width int
}

// DefaultContext returns a render context with the dark theme and no width.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DarkTheme()}
}

// WithTheme returns a copy of the context using theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithWidth returns a copy of the context constrained to width cells.
func (r RenderContext) WithWidth(width int) RenderContext {
	if width < 0 {
		width = 0
	}
	r.Width = width
	return r
}

// render draws c against ctx when it supports contexts.
func render(c Renderable, ctx RenderContext) string {
	if c == nil {
		return ""
	}
	if cr, ok := c.(ContextualRenderable); ok {
		return cr.ViewWithContext(ctx)
	}
	return c.View()
}

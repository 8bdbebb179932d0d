// Package components provides the small theme-aware building blocks the form
// is drawn with: option cards, buttons, badges, text, panels, dividers and a
// column grid.
//
// Themes are immutable and passed explicitly through RenderContext:
//
//	ctx := components.DefaultContext().WithWidth(36)
//	out := components.NewOption("Landscape").WithDetail("16:9").WithSelected(true).ViewWithContext(ctx)
//
// View() renders with the dark theme and no width constraint.
//
// Styling is composed from StyleFunc modifiers that read the theme:
//
//	text := components.NewText("Selected").WithAppliers(components.Foreground(components.PaletteAccent))
package components

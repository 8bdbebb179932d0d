package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet describes one semantic colour slot.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Accent    ColourSet
	Surface   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Neutral   ColourSet
}

// PaletteSlot selects one ColourSet from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteAccent    PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// BorderVariant names one of the theme's borders.
type BorderVariant int

const (
	BorderVariantNormal BorderVariant = iota
	BorderVariantRounded
	BorderVariantThick
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable set of colours, borders and variant styles.
type Theme struct {
	Name     string
	Palette  Palette
	Borders  BorderSet
	Variants *VariantRegistry
}

// Theme names accepted by ThemeByName.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DarkTheme returns the brand theme on a dark surface.
func DarkTheme() Theme {
	palette := Palette{
		Primary:   ColourSet{Base: ac("#9c40ff", "#9c40ff"), OnBase: ac("#ffffff", "#ffffff"), Muted: ac("#7a2fd0", "#5b2399")},
		Secondary: ColourSet{Base: ac("#4079ff", "#4079ff"), OnBase: ac("#ffffff", "#ffffff"), Muted: ac("#2f5fd0", "#23459a")},
		Accent:    ColourSet{Base: ac("#0f9f66", "#40ffaa"), OnBase: ac("#ffffff", "#0b0b12"), Muted: ac("#0c7a4f", "#2bb378")},
		Surface:   ColourSet{Base: ac("#1a1a24", "#0b0b12"), OnBase: ac("#f4f4f8", "#e5e5ef"), Muted: ac("#2a2a38", "#1a1a24")},
		Warning:   ColourSet{Base: ac("#b45309", "#facc15"), OnBase: ac("#ffffff", "#1a1300"), Muted: ac("#92400e", "#ca8a04")},
		Danger:    ColourSet{Base: ac("#dc2626", "#f87171"), OnBase: ac("#ffffff", "#1a0505"), Muted: ac("#b91c1c", "#b91c1c")},
		Neutral:   ColourSet{Base: ac("#6b7280", "#9ca3af"), OnBase: ac("#ffffff", "#0b0b12"), Muted: ac("#4b5563", "#4b5563")},
	}
	return newTheme(ThemeDark, palette)
}

// LightTheme keeps the brand colours on a light surface.
func LightTheme() Theme {
	theme := DarkTheme()
	theme.Palette.Surface = ColourSet{Base: ac("#ffffff", "#f4f4f8"), OnBase: ac("#111827", "#111827"), Muted: ac("#e5e7eb", "#d1d5db")}
	theme.Palette.Accent = ColourSet{Base: ac("#0f9f66", "#0f9f66"), OnBase: ac("#ffffff", "#ffffff"), Muted: ac("#0c7a4f", "#0c7a4f")}
	theme.Palette.Neutral = ColourSet{Base: ac("#4b5563", "#4b5563"), OnBase: ac("#ffffff", "#ffffff"), Muted: ac("#9ca3af", "#9ca3af")}
	return newTheme(ThemeLight, theme.Palette)
}

// ThemeByName resolves a configured theme name.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ThemeDark:
		return DarkTheme(), nil
	case ThemeLight:
		return LightTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

func newTheme(name string, palette Palette) Theme {
	variants := NewVariantRegistry()
	registerButtonVariants(variants)
	registerBadgeVariants(variants)

	return Theme{
		Name:    name,
		Palette: palette,
		Borders: BorderSet{
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
		},
		Variants: variants,
	}
}

func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonVariantPrimary, NewCompositeStrategy(Background(PalettePrimary), PaddingXY(0, 1)))
	registry.Register(ButtonVariantOutline, NewCompositeStrategy(Foreground(PaletteSecondary), PaddingXY(0, 1)))
	registry.Register(ButtonVariantDanger, NewCompositeStrategy(Foreground(PaletteDanger), PaddingXY(0, 1)))
}

func registerBadgeVariants(registry *VariantRegistry) {
	registry.Register(BadgeVariantPremium, NewCompositeStrategy(Foreground(PaletteWarning), Bold()))
	registry.Register(BadgeVariantRecommended, NewCompositeStrategy(Foreground(PaletteAccent), Bold()))
	registry.Register(BadgeVariantNeutral, NewCompositeStrategy(Foreground(PaletteNeutral)))
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	default:
		return theme.Borders.Rounded
	}
}

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// MutedForeground applies the muted shade of a slot.
func MutedForeground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Muted)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// BorderColour tints every border edge with a slot's base colour.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

func PaddingXY(vertical, horizontal int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Padding(vertical, horizontal)
	}
}

func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(true)
	}
}

func Italic() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Italic(true)
	}
}

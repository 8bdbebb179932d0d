package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeByName(t *testing.T) {
	t.Parallel()

	dark, err := ThemeByName("")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, dark.Name)

	light, err := ThemeByName(" Light ")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, light.Name)

	_, err = ThemeByName("solarized")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "solarized")
}

func TestThemesShareBrandColours(t *testing.T) {
	t.Parallel()

	dark := DarkTheme()
	light := LightTheme()

	assert.Equal(t, "#9c40ff", dark.Palette.Primary.Base.Dark)
	assert.Equal(t, "#4079ff", dark.Palette.Secondary.Base.Dark)
	assert.Equal(t, "#40ffaa", dark.Palette.Accent.Base.Dark)
	assert.Equal(t, dark.Palette.Primary, light.Palette.Primary)
	assert.NotEqual(t, dark.Palette.Surface, light.Palette.Surface)
	assert.NotNil(t, light.Variants.Get(BadgeVariantPremium))
}

func TestVariantRegistryNilSafe(t *testing.T) {
	t.Parallel()

	var registry *VariantRegistry
	assert.Nil(t, registry.Get(ButtonVariantPrimary))
}

func TestAddAppliersDoesNotShareSlices(t *testing.T) {
	t.Parallel()

	base := NewBaseComponent()
	base.AddAppliers(Bold())

	first := base
	second := base
	first.AddAppliers(Italic())
	second.AddAppliers(Foreground(PaletteDanger))

	assert.Len(t, first.appliers, 2)
	assert.Len(t, second.appliers, 2)
}

func TestOptionMarksOnlyWhenSelected(t *testing.T) {
	t.Parallel()

	selected := NewOption("Landscape").WithDetail("16:9").WithSelected(true).View()
	plain := NewOption("Portrait").WithDetail("9:16").View()

	assert.Contains(t, selected, "Landscape")
	assert.Contains(t, selected, "16:9")
	assert.Contains(t, selected, SelectedMark)
	assert.NotContains(t, plain, SelectedMark)
}

func TestOptionFillsContextWidth(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext().WithWidth(24)
	out := NewOption("4K").WithBadge(PremiumBadge()).WithFocused(true).ViewWithContext(ctx)

	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 24, lipgloss.Width(line))
	}
	assert.Contains(t, out, "⚡")
}

func TestBadges(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "⚡", PremiumBadge().Text())
	assert.Equal(t, BadgeVariantPremium, PremiumBadge().Variant())
	assert.Equal(t, "✨", RecommendedBadge().Text())
	assert.Contains(t, NewBadge("new").View(), "new")
}

func TestButtonStates(t *testing.T) {
	t.Parallel()

	button := NewButton("✕ Clear").WithVariant(ButtonVariantDanger).WithFocused(true)
	assert.True(t, button.IsFocused())
	assert.Equal(t, "✕ Clear", button.Label())
	assert.Contains(t, button.View(), "✕ Clear")
}

func TestTextWrapsToWidth(t *testing.T) {
	t.Parallel()

	text := NewText("one two three four five six")
	out := text.ViewWithContext(DefaultContext().WithWidth(10))

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 10)
	}
	assert.Greater(t, strings.Count(out, "\n"), 0)
	assert.Equal(t, "one two three four five six", text.Content())
}

func TestPanelRendersTitleAndChildren(t *testing.T) {
	t.Parallel()

	panel := NewPanel(NewText("Dimensions: 1920 × 1080")).
		WithTitle("Selected: Full HD").
		WithAccent(PaletteAccent)

	out := panel.ViewWithContext(DefaultContext().WithWidth(40))
	assert.Contains(t, out, "Selected: Full HD")
	assert.Contains(t, out, "Dimensions: 1920 × 1080")
	assert.Less(t, strings.Index(out, "Selected"), strings.Index(out, "Dimensions"))
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 40, lipgloss.Width(line))
	}
}

func TestDividerWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, defaultDividerWidth, lipgloss.Width(NewDivider().View()))
	assert.Equal(t, 12, lipgloss.Width(NewDivider().ViewWithContext(DefaultContext().WithWidth(12))))
	assert.Equal(t, 5, lipgloss.Width(NewDivider().WithWidth(5).WithChar("═").View()))
}

func TestGridPlacesCellsInRows(t *testing.T) {
	t.Parallel()

	grid := NewGrid(2, NewText("a"), NewText("b"), NewText("c"))
	out := grid.View()

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "a")
	assert.Contains(t, lines[0], "b")
	assert.Contains(t, lines[1], "c")
	assert.Equal(t, "", NewGrid(2).View())
}

func TestGridCellWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 19, NewGrid(2).CellWidth(39))
	assert.Equal(t, 20, NewGrid(2).WithGap(0).CellWidth(40))
	assert.Equal(t, 1, NewGrid(3).CellWidth(2))
	assert.Equal(t, 1, NewGrid(0).Columns())
}

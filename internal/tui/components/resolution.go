package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/alexisbeaulieu97/genform/internal/catalog"
	ui "github.com/alexisbeaulieu97/genform/internal/ui/components"
)

const (
	PremiumHint     = "⚡ Ultra HD quality - May take longer to generate"
	RecommendedHint = "✨ Recommended - Perfect balance of quality and speed"
	DefaultHint     = "⚡ Fast generation with good quality"
)

// ResolutionHint returns the hint for id: premium tier, the recommended
// option, or the default message for anything else including unknown ids.
func ResolutionHint(id string) string {
	switch {
	case catalog.IsPremium(id):
		return PremiumHint
	case catalog.IsRecommended(id):
		return RecommendedHint
	default:
		return DefaultHint
	}
}

// ResolutionSelector is a single-select group over output resolutions.
type ResolutionSelector struct {
	optionGroup
	options []catalog.Resolution
	theme   ui.Theme
}

// NewResolutionSelector builds a selector over options, kept in the given order.
func NewResolutionSelector(options []catalog.Resolution) ResolutionSelector {
	ids := make([]string, len(options))
	for i, o := range options {
		ids[i] = o.ID
	}
	return ResolutionSelector{
		optionGroup: newOptionGroup(FieldResolution, ids),
		options:     options,
		theme:       ui.DarkTheme(),
	}
}

// SetValue supplies the caller's current identifier.
func (s *ResolutionSelector) SetValue(id string) { s.setValue(id) }

func (s ResolutionSelector) Value() string { return s.value }

func (s *ResolutionSelector) SetWidth(width int) { s.width = width }

func (s *ResolutionSelector) SetTheme(theme ui.Theme) { s.theme = theme }

func (s *ResolutionSelector) SetZones(zones *zone.Manager) { s.zones = zones }

func (s *ResolutionSelector) Focus() { s.focused = true }

func (s *ResolutionSelector) Blur() { s.focused = false }

func (s ResolutionSelector) Focused() bool { return s.focused }

func (s ResolutionSelector) KeyMap() SelectorKeyMap { return s.keys }

// Selected returns the option matching the current value.
func (s ResolutionSelector) Selected() (catalog.Resolution, bool) {
	for _, o := range s.options {
		if o.ID == s.value {
			return o, true
		}
	}
	return catalog.Resolution{}, false
}

func (s ResolutionSelector) Hint() string {
	return ResolutionHint(s.value)
}

// Items projects the options with their selection state and tier.
func (s ResolutionSelector) Items() []Item {
	items := make([]Item, len(s.options))
	for i, o := range s.options {
		items[i] = Item{
			ID:       o.ID,
			Label:    o.Name,
			Detail:   fmt.Sprintf("%d×%d", o.Width, o.Height),
			Premium:  catalog.IsPremium(o.ID),
			Selected: o.ID == s.value,
			Cursor:   s.focused && i == s.cursor,
		}
	}
	return items
}

// Summary returns the summary panel lines, or nil when the current value
// matches no option.
func (s ResolutionSelector) Summary() []string {
	selected, ok := s.Selected()
	if !ok {
		return nil
	}
	return []string{
		"Selected: " + selected.Name,
		fmt.Sprintf("Dimensions: %d × %d", selected.Width, selected.Height),
	}
}

func (s ResolutionSelector) Click(id string) tea.Cmd {
	return s.click(id)
}

func (s ResolutionSelector) Update(msg tea.Msg) (ResolutionSelector, tea.Cmd) {
	cmd := s.update(msg)
	return s, cmd
}

// View renders the titled grid, the summary when a known option is
// selected, and the hint.
func (s ResolutionSelector) View() string {
	ctx := s.context(s.theme)
	grid := s.grid(s.Items(), func(item Item) *ui.Option {
		opt := ui.NewOption(item.Label).
			WithDetail(item.Detail).
			WithSelected(item.Selected).
			WithFocused(item.Cursor)
		if item.Premium {
			opt = opt.WithBadge(ui.PremiumBadge())
		}
		return opt
	})

	panel := sectionPanel("Resolution", s.focused).Append(grid)
	if lines := s.Summary(); lines != nil {
		summary := ui.NewPanel(ui.MutedText(lines[1])).
			WithHeader(ui.LabelText(lines[0]).WithAppliers(ui.Foreground(ui.PaletteAccent))).
			WithAccent(ui.PaletteAccent)
		panel = panel.Append(summary)
	}
	return panel.Append(ui.HintText(s.Hint())).ViewWithContext(ctx)
}

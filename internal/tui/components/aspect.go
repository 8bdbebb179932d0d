package components

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/alexisbeaulieu97/genform/internal/catalog"
	ui "github.com/alexisbeaulieu97/genform/internal/ui/components"
)

const (
	PortraitHint  = "📱 Perfect for mobile wallpapers and social media stories"
	LandscapeHint = "🖥️ Ideal for desktop wallpapers and wide displays"
)

// AspectHint returns the hint shown under the aspect-ratio options.
func AspectHint(id string) string {
	if catalog.IsPortrait(id) {
		return PortraitHint
	}
	return LandscapeHint
}

// AspectRatioSelector is a single-select group over aspect ratios.
type AspectRatioSelector struct {
	optionGroup
	options []catalog.AspectRatio
	theme   ui.Theme
}

// NewAspectRatioSelector builds a selector over options, kept in the given order.
func NewAspectRatioSelector(options []catalog.AspectRatio) AspectRatioSelector {
	ids := make([]string, len(options))
	for i, o := range options {
		ids[i] = o.ID
	}
	return AspectRatioSelector{
		optionGroup: newOptionGroup(FieldAspectRatio, ids),
		options:     options,
		theme:       ui.DarkTheme(),
	}
}

// SetValue supplies the caller's current identifier. Unknown identifiers are
// kept as-is and simply select nothing.
func (s *AspectRatioSelector) SetValue(id string) { s.setValue(id) }

// Value returns the identifier last supplied by the caller.
func (s AspectRatioSelector) Value() string { return s.value }

// SetWidth sets the outer width the selector renders at.
func (s *AspectRatioSelector) SetWidth(width int) { s.width = width }

func (s *AspectRatioSelector) SetTheme(theme ui.Theme) { s.theme = theme }

// SetZones enables mouse routing through zones.
func (s *AspectRatioSelector) SetZones(zones *zone.Manager) { s.zones = zones }

func (s *AspectRatioSelector) Focus() { s.focused = true }

func (s *AspectRatioSelector) Blur() { s.focused = false }

func (s AspectRatioSelector) Focused() bool { return s.focused }

func (s AspectRatioSelector) KeyMap() SelectorKeyMap { return s.keys }

// Selected returns the option matching the current value.
func (s AspectRatioSelector) Selected() (catalog.AspectRatio, bool) {
	for _, o := range s.options {
		if o.ID == s.value {
			return o, true
		}
	}
	return catalog.AspectRatio{}, false
}

// Hint returns the hint for the current value.
func (s AspectRatioSelector) Hint() string {
	return AspectHint(s.value)
}

// Items projects the options with their selection state.
func (s AspectRatioSelector) Items() []Item {
	items := make([]Item, len(s.options))
	for i, o := range s.options {
		items[i] = Item{
			ID:       o.ID,
			Label:    o.Name,
			Detail:   o.Ratio(),
			Selected: o.ID == s.value,
			Cursor:   s.focused && i == s.cursor,
		}
	}
	return items
}

// Click reports a click on the option with the given identifier.
func (s AspectRatioSelector) Click(id string) tea.Cmd {
	return s.click(id)
}

// Update handles navigation keys and clicks. The returned command, when
// non-nil, yields a ChangeMsg.
func (s AspectRatioSelector) Update(msg tea.Msg) (AspectRatioSelector, tea.Cmd) {
	cmd := s.update(msg)
	return s, cmd
}

// View renders the titled option grid and hint.
func (s AspectRatioSelector) View() string {
	ctx := s.context(s.theme)
	grid := s.grid(s.Items(), func(item Item) *ui.Option {
		return ui.NewOption(item.Label).
			WithDetail(item.Detail).
			WithSelected(item.Selected).
			WithFocused(item.Cursor)
	})

	return sectionPanel("Aspect Ratio", s.focused).
		Append(grid, ui.HintText(s.Hint())).
		ViewWithContext(ctx)
}

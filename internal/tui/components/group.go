package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	ui "github.com/alexisbeaulieu97/genform/internal/ui/components"
)

const gridColumns = 2

// Item is the render-independent projection of one selector option.
type Item struct {
	ID       string
	Label    string
	Detail   string
	Premium  bool
	Selected bool
	Cursor   bool
}

// optionGroup is the single-select machinery both selectors share. It holds
// only transient display state: the value is whatever the caller last set.
type optionGroup struct {
	field   Field
	ids     []string
	value   string
	cursor  int
	focused bool
	width   int
	zones   *zone.Manager
	prefix  string
	keys    SelectorKeyMap
}

func newOptionGroup(field Field, ids []string) optionGroup {
	return optionGroup{
		field:  field,
		ids:    ids,
		prefix: field.String() + ":",
		keys:   DefaultSelectorKeyMap(),
	}
}

func (g *optionGroup) setValue(id string) {
	g.value = id
	if idx := g.index(id); idx >= 0 {
		g.cursor = idx
	}
}

func (g optionGroup) index(id string) int {
	for i, candidate := range g.ids {
		if candidate == id {
			return i
		}
	}
	return -1
}

// click emits id when it names a known option. Re-clicking the selected
// option emits it again; there is no way to emit an empty id.
func (g optionGroup) click(id string) tea.Cmd {
	if g.index(id) < 0 {
		return nil
	}
	return emit(g.field, id)
}

func (g optionGroup) zoneID(id string) string {
	return g.prefix + id
}

func (g *optionGroup) move(delta int) {
	if len(g.ids) == 0 {
		return
	}
	next := g.cursor + delta
	if next < 0 || next >= len(g.ids) {
		return
	}
	g.cursor = next
}

func (g *optionGroup) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !g.focused {
			return nil
		}
		switch {
		case key.Matches(msg, g.keys.Prev):
			g.move(-1)
		case key.Matches(msg, g.keys.Next):
			g.move(1)
		case key.Matches(msg, g.keys.Up):
			g.move(-gridColumns)
		case key.Matches(msg, g.keys.Down):
			g.move(gridColumns)
		case key.Matches(msg, g.keys.Select):
			if g.cursor < len(g.ids) {
				return g.click(g.ids[g.cursor])
			}
		}
	case tea.MouseMsg:
		if g.zones == nil || !isLeftClick(msg) {
			return nil
		}
		for i, id := range g.ids {
			if inZone(g.zones, g.zoneID(id), msg) {
				g.cursor = i
				return g.click(id)
			}
		}
	}
	return nil
}

// grid lays the option cards out in two columns and marks their click zones.
func (g optionGroup) grid(items []Item, card func(Item) *ui.Option) *ui.Grid {
	cells := make([]ui.Renderable, 0, len(items))
	for _, item := range items {
		cells = append(cells, zoned{zones: g.zones, id: g.zoneID(item.ID), inner: card(item)})
	}
	return ui.NewGrid(gridColumns, cells...)
}

func (g optionGroup) context(theme ui.Theme) ui.RenderContext {
	return ui.DefaultContext().WithTheme(theme).WithWidth(g.width)
}

func inZone(zones *zone.Manager, id string, msg tea.MouseMsg) bool {
	if zones == nil {
		return false
	}
	info := zones.Get(id)
	return info != nil && info.InBounds(msg)
}

func isLeftClick(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft
}

// zoned wraps a renderable in a bubblezone marker.
type zoned struct {
	zones *zone.Manager
	id    string
	inner ui.ContextualRenderable
}

func (z zoned) View() string {
	return z.ViewWithContext(ui.DefaultContext())
}

func (z zoned) ViewWithContext(ctx ui.RenderContext) string {
	out := z.inner.ViewWithContext(ctx)
	if z.zones == nil {
		return out
	}
	return z.zones.Mark(z.id, out)
}

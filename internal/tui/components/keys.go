package components

import (
	"github.com/charmbracelet/bubbles/key"
)

// SelectorKeyMap holds the bindings shared by both option selectors.
type SelectorKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

// DefaultSelectorKeyMap returns the arrow/vim bindings used by selectors.
func DefaultSelectorKeyMap() SelectorKeyMap {
	return SelectorKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "row up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "row down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "select"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k SelectorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Select}
}

// FullHelp implements help.KeyMap.
func (k SelectorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next, k.Up, k.Down, k.Select}}
}

// NegativePromptKeyMap holds the shortcuts layered over the text field.
type NegativePromptKeyMap struct {
	Presets       [PresetCount]key.Binding
	QualityPreset key.Binding
	Clear         key.Binding
}

// DefaultNegativePromptKeyMap returns alt+1..alt+4, alt+q and ctrl+x.
func DefaultNegativePromptKeyMap() NegativePromptKeyMap {
	var km NegativePromptKeyMap
	for i := range km.Presets {
		digit := string(rune('1' + i))
		km.Presets[i] = key.NewBinding(
			key.WithKeys("alt+"+digit),
			key.WithHelp("alt+"+digit, "preset "+digit),
		)
	}
	km.QualityPreset = key.NewBinding(
		key.WithKeys("alt+q"),
		key.WithHelp("alt+q", "quality preset"),
	)
	km.Clear = key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "clear"),
	)
	return km
}

// ShortHelp implements help.KeyMap.
func (k NegativePromptKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.QualityPreset, k.Clear}
}

// FullHelp implements help.KeyMap.
func (k NegativePromptKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.Presets[:], {k.QualityPreset, k.Clear}}
}

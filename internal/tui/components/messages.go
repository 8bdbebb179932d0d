package components

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Field identifies which form value a component reports on.
type Field int

const (
	FieldAspectRatio Field = iota
	FieldResolution
	FieldNegativePrompt
)

func (f Field) String() string {
	switch f {
	case FieldAspectRatio:
		return "aspect_ratio"
	case FieldResolution:
		return "resolution"
	case FieldNegativePrompt:
		return "negative_prompt"
	default:
		return "unknown"
	}
}

// ChangeMsg is the only output of every component: the value the caller
// should now hold for Field. Components never apply it to themselves; the
// caller feeds it back through SetValue.
type ChangeMsg struct {
	Field Field
	Value string
	// Seq grows with every edit the negative prompt reports and is zero for
	// selectors. Commands run concurrently, so a caller should drop a message
	// whose Seq is not above the last one it applied.
	Seq uint64
}

func emit(field Field, value string) tea.Cmd {
	return emitSeq(field, value, 0)
}

func emitSeq(field Field, value string, seq uint64) tea.Cmd {
	return func() tea.Msg {
		return ChangeMsg{Field: field, Value: value, Seq: seq}
	}
}

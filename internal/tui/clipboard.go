package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Clipboard receives the copied request.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// SystemClipboard returns the clipboard of the host OS.
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

// copiedMsg reports the outcome of a copy.
type copiedMsg struct {
	err error
}

func copyCmd(clip Clipboard, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clip.WriteAll(text)}
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

const title = "🎨 genform • New generation request"

// View renders the current state of the model.
func (m Model) View() string {
	if m.TooSmall() {
		return tooSmallStyle.Render(fmt.Sprintf(
			"Terminal too small (%dx%d). Minimum size: %dx%d",
			m.width, m.height, minWidth, minHeight,
		))
	}

	// Render from the request, not from whatever the components last held.
	m.sync()

	sections := []string{titleStyle.Render(title)}
	if m.errMsg != "" {
		sections = append(sections, errorBannerStyle.Render("✗ "+m.errMsg))
	}
	if m.notice != "" {
		sections = append(sections, noticeStyle.Render("✓ "+m.notice))
	}

	sections = append(sections,
		m.aspect.View(),
		m.resolution.View(),
		m.prompt.View(),
		footerStyle.Render(m.help.View(footerKeys{form: m.keys, section: m.sectionKeys()})),
	)

	out := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.zones != nil {
		out = m.zones.Scan(out)
	}
	return strings.TrimRight(out, "\n")
}

func (m Model) sectionKeys() help.KeyMap {
	switch m.focus {
	case SectionNegativePrompt:
		return m.prompt.KeyMap()
	case SectionResolution:
		return m.resolution.KeyMap()
	default:
		return m.aspect.KeyMap()
	}
}

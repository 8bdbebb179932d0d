package tui

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/genform/internal/tui/components"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case components.ChangeMsg:
		m.apply(msg)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.log.Error(msg.err, "copy request to clipboard")
			m.errMsg = fmt.Sprintf("Copy failed: %s", msg.err)
			m.notice = ""
			return m, nil
		}
		m.notice = "Request copied to clipboard"
		return m, nil
	}

	if m.focus == SectionNegativePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.cancelled = true
		m.log.Debug("form cancelled")
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Copy):
		var buf bytes.Buffer
		if err := m.req.Encode(&buf, m.format); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		return m, copyCmd(m.clipboard, buf.String())

	case key.Matches(msg, m.keys.Next):
		return m, m.cycleFocus(1)

	case key.Matches(msg, m.keys.Prev):
		return m, m.cycleFocus(-1)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case SectionAspectRatio:
		m.aspect, cmd = m.aspect.Update(msg)
	case SectionResolution:
		m.resolution, cmd = m.resolution.Update(msg)
	case SectionNegativePrompt:
		m.prompt, cmd = m.prompt.Update(msg)
	}
	return m, cmd
}

// handleMouse offers the event to every section; each one only reacts to
// clicks inside its own zones.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.zones == nil {
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.aspect, cmd = m.aspect.Update(msg)
	cmds = append(cmds, cmd)
	m.resolution, cmd = m.resolution.Update(msg)
	cmds = append(cmds, cmd)
	m.prompt, cmd = m.prompt.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if err := m.req.Validate(m.catalog); err != nil {
		m.errMsg = err.Error()
		m.notice = ""
		m.log.Warn("submit rejected: " + err.Error())
		return m, nil
	}

	m.submitted = true
	m.errMsg = ""
	m.log.WithFields(map[string]any{
		"aspect_ratio": m.req.AspectRatio,
		"resolution":   m.req.Resolution,
	}).Info("request submitted")
	return m, tea.Quit
}

// apply stores a component's reported value and feeds it back.
func (m *Model) apply(msg components.ChangeMsg) {
	switch msg.Field {
	case components.FieldAspectRatio:
		m.req.AspectRatio = msg.Value
	case components.FieldResolution:
		m.req = m.req.WithResolution(m.catalog, msg.Value)
	case components.FieldNegativePrompt:
		if msg.Seq != 0 {
			if msg.Seq <= m.promptSeq {
				m.log.Debugw("stale negative prompt change dropped", map[string]any{
					"seq":     msg.Seq,
					"applied": m.promptSeq,
				})
				return
			}
			m.promptSeq = msg.Seq
		}
		m.req.NegativePrompt = msg.Value
	default:
		return
	}

	m.sync()
	m.errMsg = ""
	m.notice = ""

	fields := map[string]any{"field": msg.Field.String()}
	if msg.Field == components.FieldNegativePrompt {
		fields["chars"] = components.CharCount(msg.Value)
	} else {
		fields["value"] = msg.Value
	}
	m.log.Debugw("form field changed", fields)
}

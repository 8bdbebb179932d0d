package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/alexisbeaulieu97/genform/internal/catalog"
	"github.com/alexisbeaulieu97/genform/internal/logger"
	"github.com/alexisbeaulieu97/genform/internal/request"
	"github.com/alexisbeaulieu97/genform/internal/tui/components"
	ui "github.com/alexisbeaulieu97/genform/internal/ui/components"
)

const (
	minWidth  = 60
	minHeight = 20

	defaultWidth    = 80
	defaultHeight   = 24
	maxContentWidth = 100
)

// Section identifies one focusable part of the form.
type Section int

const (
	SectionAspectRatio Section = iota
	SectionResolution
	SectionNegativePrompt

	sectionCount
)

func (s Section) String() string {
	switch s {
	case SectionAspectRatio:
		return "aspect_ratio"
	case SectionResolution:
		return "resolution"
	case SectionNegativePrompt:
		return "negative_prompt"
	default:
		return "unknown"
	}
}

// Options configures a new form.
type Options struct {
	Catalog     catalog.Catalog
	Request     request.GenerationRequest
	Placeholder string
	Theme       ui.Theme
	// Format is the encoding used when copying the request.
	Format    string
	Clipboard Clipboard
	Logger    *logger.Logger
	// Zones enables mouse support. Nil disables click routing.
	Zones *zone.Manager
}

// Model is the Bubbletea model hosting the three request inputs. It owns the
// request; the components only ever see the values it hands them.
type Model struct {
	catalog catalog.Catalog
	req     request.GenerationRequest
	format  string
	theme   ui.Theme

	aspect     components.AspectRatioSelector
	resolution components.ResolutionSelector
	prompt     components.NegativePromptInput
	promptSeq  uint64
	focus      Section

	keys      KeyMap
	help      help.Model
	zones     *zone.Manager
	clipboard Clipboard
	log       *logger.Logger

	errMsg string
	notice string

	width  int
	height int

	submitted bool
	cancelled bool
}

// NewModel builds a form seeded with opts.Request.
func NewModel(opts Options) Model {
	theme := opts.Theme
	if theme.Name == "" {
		theme = ui.DarkTheme()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = SystemClipboard()
	}

	m := Model{
		catalog:    opts.Catalog,
		req:        opts.Request,
		format:     opts.Format,
		theme:      theme,
		aspect:     components.NewAspectRatioSelector(opts.Catalog.AspectRatios),
		resolution: components.NewResolutionSelector(opts.Catalog.Resolutions),
		prompt:     components.NewNegativePromptInput(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		zones:      opts.Zones,
		clipboard:  clip,
		log:        opts.Logger,
		width:      defaultWidth,
		height:     defaultHeight,
	}

	m.aspect.SetTheme(theme)
	m.aspect.SetZones(opts.Zones)
	m.resolution.SetTheme(theme)
	m.resolution.SetZones(opts.Zones)
	m.prompt.SetTheme(theme)
	m.prompt.SetZones(opts.Zones)
	m.prompt.SetLogger(opts.Logger)
	m.prompt.SetPlaceholder(opts.Placeholder)

	m.sync()
	m.layout()
	m.setFocus(SectionAspectRatio)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Request returns the form's current request.
func (m Model) Request() request.GenerationRequest {
	return m.req
}

// Submitted reports whether the user submitted a valid request.
func (m Model) Submitted() bool {
	return m.submitted
}

// Cancelled reports whether the user left without submitting.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Focused returns the section receiving keystrokes.
func (m Model) Focused() Section {
	return m.focus
}

// Err returns the message shown in the error banner, if any.
func (m Model) Err() string {
	return m.errMsg
}

// TooSmall reports whether the terminal is below the minimum size.
func (m Model) TooSmall() bool {
	return m.width < minWidth || m.height < minHeight
}

// sync hands every component the value the form currently holds.
func (m *Model) sync() {
	m.aspect.SetValue(m.req.AspectRatio)
	m.resolution.SetValue(m.req.Resolution)
	m.prompt.SetValue(m.req.NegativePrompt)
}

func (m *Model) layout() {
	w := m.width
	if w > maxContentWidth {
		w = maxContentWidth
	}
	m.aspect.SetWidth(w)
	m.resolution.SetWidth(w)
	m.prompt.SetWidth(w)
	m.help.Width = w
}

func (m *Model) setFocus(s Section) tea.Cmd {
	m.focus = s
	m.aspect.Blur()
	m.resolution.Blur()
	m.prompt.Blur()

	switch s {
	case SectionAspectRatio:
		m.aspect.Focus()
	case SectionResolution:
		m.resolution.Focus()
	case SectionNegativePrompt:
		return m.prompt.Focus()
	}
	return nil
}

func (m *Model) cycleFocus(delta int) tea.Cmd {
	next := (int(m.focus) + delta + int(sectionCount)) % int(sectionCount)
	return m.setFocus(Section(next))
}

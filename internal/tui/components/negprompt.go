package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/alexisbeaulieu97/genform/internal/logger"
	ui "github.com/alexisbeaulieu97/genform/internal/ui/components"
)

const (
	// MaxNegativePromptLength is the hard ceiling on the field, in characters.
	// A character is a Unicode code point, the same unit validator's max uses.
	MaxNegativePromptLength = 1000

	// PresetCount is the number of quick-fill presets.
	PresetCount = 4

	DefaultPlaceholder = "What to avoid in your image... (e.g., 'blurry, low quality, distorted')"
	TipText            = "💡 Tip: Specify elements you want to exclude from the generated image for more precise control."
	HelperText         = "✓ Negative prompts will help refine your generation"
	PresetPanelTitle   = "Quick add common exclusions:"
	ClearLabel         = "✕ Clear negative prompt"

	warningThreshold  = 7 // tenths of the maximum
	criticalThreshold = 9

	textareaHeight = 4
)

var presets = [PresetCount]string{
	"blurry, low quality, distorted, watermark, text, signature",
	"ugly, deformed, noisy, bad anatomy, mutation",
	"oversaturated, grainy, pixelated, artifacts",
	"duplicate, cropped, out of frame, poorly drawn",
}

// Presets returns the quick-fill texts in display order.
func Presets() []string {
	out := make([]string, PresetCount)
	copy(out, presets[:])
	return out
}

// QualityPreset is the preset offered by the "use quality preset" action.
func QualityPreset() string {
	return presets[0]
}

// PresetLabel is the button text for a preset: its first comma-separated
// segment followed by an ellipsis.
func PresetLabel(preset string) string {
	first, _, _ := strings.Cut(preset, ",")
	return first + "..."
}

// QualityPresetLabel is the text of the quality preset action.
func QualityPresetLabel() string {
	return fmt.Sprintf("+ Use quality preset: %q", QualityPreset())
}

// CharCount is the character count shown by the counter.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// EditNegativePrompt decides whether proposed may replace current. Any
// result longer than MaxNegativePromptLength is refused and current is kept.
func EditNegativePrompt(current, proposed string) (string, bool) {
	if CharCount(proposed) > MaxNegativePromptLength {
		return current, false
	}
	return proposed, true
}

// ShowPresets reports whether the preset panel is visible for value.
func ShowPresets(value string) bool {
	return strings.TrimSpace(value) == ""
}

// Band classifies the counter colour.
type Band int

const (
	BandNormal Band = iota
	BandWarning
	BandCritical
)

func (b Band) String() string {
	switch b {
	case BandWarning:
		return "warning"
	case BandCritical:
		return "critical"
	default:
		return "normal"
	}
}

// CounterBand classifies count against the maximum. A band only escalates
// once count is strictly above its threshold.
func CounterBand(count int) Band {
	switch {
	case count*10 > MaxNegativePromptLength*criticalThreshold:
		return BandCritical
	case count*10 > MaxNegativePromptLength*warningThreshold:
		return BandWarning
	default:
		return BandNormal
	}
}

// CounterText renders "count/max".
func CounterText(count int) string {
	return fmt.Sprintf("%d/%d", count, MaxNegativePromptLength)
}

// NegativePromptInput is a bounded multi-line text field with presets.
type NegativePromptInput struct {
	value       string
	placeholder string
	textarea    textarea.Model
	focused     bool
	width       int
	theme       ui.Theme
	zones       *zone.Manager
	keys        NegativePromptKeyMap
	log         *logger.Logger

	// seq numbers reported edits; pending holds the reported values the
	// caller has not handed back yet, oldest first.
	seq     uint64
	pending []string
}

// NewNegativePromptInput creates an empty, blurred field.
func NewNegativePromptInput() NegativePromptInput {
	ta := textarea.New()
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.SetHeight(textareaHeight)
	ta.Cursor.SetMode(cursor.CursorStatic)

	n := NegativePromptInput{
		textarea: ta,
		theme:    ui.DarkTheme(),
		keys:     DefaultNegativePromptKeyMap(),
	}
	n.SetPlaceholder("")
	n.applyTheme()
	return n
}

// SetValue supplies the caller's current text. A value this field reported
// itself only acknowledges that edit: the textarea may already hold later
// keystrokes, so it keeps its text and cursor. Any other value replaces the
// text.
func (n *NegativePromptInput) SetValue(value string) {
	if value == n.value {
		return
	}
	n.value = value

	for i, reported := range n.pending {
		if reported == value {
			n.pending = append([]string(nil), n.pending[i+1:]...)
			return
		}
	}

	n.pending = nil
	if n.textarea.Value() != value {
		n.textarea.SetValue(value)
	}
}

// Value returns the text last supplied by the caller.
func (n NegativePromptInput) Value() string { return n.value }

// SetPlaceholder sets the placeholder; empty restores the default.
func (n *NegativePromptInput) SetPlaceholder(placeholder string) {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	n.placeholder = placeholder
	n.textarea.Placeholder = placeholder
}

func (n NegativePromptInput) Placeholder() string { return n.placeholder }

// SetWidth sets the outer width and resizes the textarea to fit inside it.
func (n *NegativePromptInput) SetWidth(width int) {
	n.width = width
	// panel border+padding and the textarea's own border
	if inner := width - 6; inner > 0 {
		n.textarea.SetWidth(inner)
	}
}

func (n *NegativePromptInput) SetTheme(theme ui.Theme) {
	n.theme = theme
	n.applyTheme()
}

func (n *NegativePromptInput) SetZones(zones *zone.Manager) { n.zones = zones }

// SetLogger receives rejected-edit diagnostics. The caller is never told.
func (n *NegativePromptInput) SetLogger(log *logger.Logger) { n.log = log }

// Focus only changes styling and lets keystrokes reach the textarea.
func (n *NegativePromptInput) Focus() tea.Cmd {
	n.focused = true
	return n.textarea.Focus()
}

func (n *NegativePromptInput) Blur() {
	n.focused = false
	n.textarea.Blur()
}

func (n NegativePromptInput) Focused() bool { return n.focused }

func (n NegativePromptInput) KeyMap() NegativePromptKeyMap { return n.keys }

// Count is the character count of the current value.
func (n NegativePromptInput) Count() int { return CharCount(n.value) }

func (n NegativePromptInput) Band() Band { return CounterBand(n.Count()) }

// ApplyPreset replaces the whole value with preset i.
func (n *NegativePromptInput) ApplyPreset(i int) tea.Cmd {
	if i < 0 || i >= PresetCount {
		return nil
	}
	return n.replace(presets[i])
}

// ApplyQualityPreset replaces the whole value with the quality preset.
func (n *NegativePromptInput) ApplyQualityPreset() tea.Cmd {
	return n.replace(QualityPreset())
}

// Clear replaces the value with the empty string.
func (n *NegativePromptInput) Clear() tea.Cmd {
	return n.replace("")
}

func (n *NegativePromptInput) replace(value string) tea.Cmd {
	n.textarea.SetValue(value)
	return n.report(value)
}

// report records value as an edit in flight and returns the command that
// announces it.
func (n *NegativePromptInput) report(value string) tea.Cmd {
	n.seq++
	n.pending = append(n.pending[:len(n.pending):len(n.pending)], value)
	return emitSeq(FieldNegativePrompt, value, n.seq)
}

// Update routes shortcuts, clicks and edits. Edits that would exceed the
// ceiling are dropped without a ChangeMsg.
func (n NegativePromptInput) Update(msg tea.Msg) (NegativePromptInput, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		cmd := n.handleClick(msg)
		return n, cmd
	case tea.KeyMsg:
		if !n.focused {
			return n, nil
		}
		for i, binding := range n.keys.Presets {
			if key.Matches(msg, binding) {
				if ShowPresets(n.value) {
					cmd := n.ApplyPreset(i)
					return n, cmd
				}
				return n, nil
			}
		}
		if key.Matches(msg, n.keys.QualityPreset) {
			if ShowPresets(n.value) {
				cmd := n.ApplyQualityPreset()
				return n, cmd
			}
			return n, nil
		}
		if key.Matches(msg, n.keys.Clear) {
			if !ShowPresets(n.value) {
				cmd := n.Clear()
				return n, cmd
			}
			return n, nil
		}
	}
	return n.edit(msg)
}

func (n *NegativePromptInput) handleClick(msg tea.MouseMsg) tea.Cmd {
	if n.zones == nil || !isLeftClick(msg) {
		return nil
	}
	if !ShowPresets(n.value) {
		if inZone(n.zones, n.zoneID("clear"), msg) {
			return n.Clear()
		}
		return nil
	}
	for i := range presets {
		if inZone(n.zones, n.zoneID(fmt.Sprintf("preset:%d", i)), msg) {
			return n.ApplyPreset(i)
		}
	}
	if inZone(n.zones, n.zoneID("quality"), msg) {
		return n.ApplyQualityPreset()
	}
	return nil
}

func (n NegativePromptInput) edit(msg tea.Msg) (NegativePromptInput, tea.Cmd) {
	prev := n.textarea.Value()
	if km, ok := msg.(tea.KeyMsg); ok && n.focused && !km.Paste {
		if attempted := CharCount(prev) + insertedRunes(km); attempted > MaxNegativePromptLength {
			n.rejected(attempted)
			return n, nil
		}
	}

	row, col := n.cursor()
	var cmd tea.Cmd
	n.textarea, cmd = n.textarea.Update(msg)
	proposed := n.textarea.Value()
	if proposed == prev {
		return n, cmd
	}

	next, ok := EditNegativePrompt(prev, proposed)
	if !ok {
		n.restore(prev, row, col)
		n.rejected(CharCount(proposed))
		return n, cmd
	}
	report := n.report(next)
	return n, tea.Batch(cmd, report)
}

// cursor returns the logical row and column of the textarea cursor.
func (n NegativePromptInput) cursor() (int, int) {
	info := n.textarea.LineInfo()
	return n.textarea.Line(), info.StartColumn + info.ColumnOffset
}

// restore puts text back and returns the cursor to row and col.
func (n *NegativePromptInput) restore(text string, row, col int) {
	n.textarea.SetValue(text)
	// SetValue leaves the cursor on the last row; CursorUp steps over wrapped
	// lines, so walk until the logical row matches.
	for steps := len(text); n.textarea.Line() > row && steps > 0; steps-- {
		n.textarea.CursorUp()
	}
	n.textarea.SetCursor(col)
}

func (n NegativePromptInput) rejected(attempted int) {
	n.log.Debugw("negative prompt edit rejected", map[string]any{
		"attempted": attempted,
		"max":       MaxNegativePromptLength,
	})
}

// insertedRunes is how many characters a key press adds to the textarea.
func insertedRunes(msg tea.KeyMsg) int {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return 0
		}
		return len(msg.Runes)
	case tea.KeySpace, tea.KeyEnter:
		return 1
	default:
		return 0
	}
}

func (n NegativePromptInput) zoneID(suffix string) string {
	return FieldNegativePrompt.String() + ":" + suffix
}

func (n NegativePromptInput) mark(suffix, content string) string {
	if n.zones == nil {
		return content
	}
	return n.zones.Mark(n.zoneID(suffix), content)
}

func (n *NegativePromptInput) applyTheme() {
	theme := n.theme
	base := lipgloss.NewStyle().Border(theme.Borders.Rounded).Padding(0, 1)

	focused := n.textarea.FocusedStyle
	focused.Base = ui.BorderColour(ui.PaletteSecondary)(base, theme)
	focused.Placeholder = ui.Foreground(ui.PaletteNeutral)(lipgloss.NewStyle(), theme)
	n.textarea.FocusedStyle = focused

	blurred := n.textarea.BlurredStyle
	blurred.Base = ui.MutedForeground(ui.PaletteNeutral)(base.BorderForeground(theme.Palette.Neutral.Muted), theme)
	blurred.Placeholder = focused.Placeholder
	n.textarea.BlurredStyle = blurred
}

// View renders the header, field, counter, helper line and either the
// preset panel or the clear action.
func (n NegativePromptInput) View() string {
	ctx := ui.DefaultContext().WithTheme(n.theme).WithWidth(n.width)
	inner := ctx
	if n.width > 4 {
		inner = ctx.WithWidth(n.width - 4)
	}

	panel := sectionPanel("", n.focused).
		WithHeader(sectionHeader("Negative Prompt", "(Optional)")).
		Append(rendered(n.textarea.View()), n.counter(inner))

	if ShowPresets(n.value) {
		panel = panel.Append(
			ui.MutedText(TipText),
			ui.NewDivider(),
			ui.MutedText(PresetPanelTitle).WithAppliers(ui.Bold()),
			rendered(n.presetButtons(inner)),
			rendered(n.mark("quality", ui.NewText(QualityPresetLabel()).
				WithAppliers(ui.Foreground(ui.PaletteSecondary)).
				ViewWithContext(inner))),
		)
	} else {
		clearAction := n.mark("clear", ui.NewButton(ClearLabel).WithVariant(ui.ButtonVariantDanger).ViewWithContext(inner))
		panel = panel.Append(
			ui.NewText(HelperText).WithAppliers(ui.Foreground(ui.PaletteSecondary)),
			rendered(alignRight(clearAction, inner.Width)),
		)
	}
	return panel.ViewWithContext(ctx)
}

func (n NegativePromptInput) counter(ctx ui.RenderContext) ui.Renderable {
	count := n.Count()
	slot := ui.PaletteNeutral
	switch CounterBand(count) {
	case BandWarning:
		slot = ui.PaletteWarning
	case BandCritical:
		slot = ui.PaletteDanger
	}
	text := ui.NewText(CounterText(count)).WithAppliers(ui.Foreground(slot)).ViewWithContext(ctx.WithWidth(0))
	return rendered(alignRight(text, ctx.Width))
}

func (n NegativePromptInput) presetButtons(ctx ui.RenderContext) string {
	buttons := make([]string, 0, PresetCount)
	for i, preset := range presets {
		label := ui.NewButton(PresetLabel(preset)).ViewWithContext(ctx.WithWidth(0))
		buttons = append(buttons, n.mark(fmt.Sprintf("preset:%d", i), label))
	}
	return flow(buttons, ctx.Width, 1)
}

package components

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/genform/internal/logger"
)

func runeKey(r rune) tea.KeyMsg {
	if r == '\n' {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func altKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

// typeText feeds s one key at a time and hands every ChangeMsg back to the
// field, the way the form does.
func typeText(t *testing.T, n NegativePromptInput, s string) (NegativePromptInput, []string) {
	t.Helper()
	var reported []string
	for _, r := range s {
		var cmd tea.Cmd
		n, cmd = n.Update(runeKey(r))
		for _, msg := range changes(t, cmd) {
			require.Equal(t, FieldNegativePrompt, msg.Field)
			reported = append(reported, msg.Value)
			n.SetValue(msg.Value)
		}
	}
	return n, reported
}

func focusedInput() NegativePromptInput {
	n := NewNegativePromptInput()
	n.Focus()
	return n
}

func TestEditNegativePrompt(t *testing.T) {
	t.Parallel()

	atLimit := strings.Repeat("a", MaxNegativePromptLength)
	tests := []struct {
		name     string
		current  string
		proposed string
		want     string
		ok       bool
	}{
		{"empty to short", "", "blurry", "blurry", true},
		{"grow to limit", atLimit[:999], atLimit, atLimit, true},
		{"beyond limit", atLimit, atLimit + "b", atLimit, false},
		{"shrink", "abc", "ab", "ab", true},
		{"clear", "abc", "", "", true},
		{"multibyte at limit", "", strings.Repeat("é", MaxNegativePromptLength), strings.Repeat("é", MaxNegativePromptLength), true},
		{"multibyte beyond limit", "x", strings.Repeat("é", MaxNegativePromptLength+1), "x", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := EditNegativePrompt(tt.current, tt.proposed)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCounterBandBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		count int
		want  Band
	}{
		{0, BandNormal},
		{700, BandNormal},
		{701, BandWarning},
		{900, BandWarning},
		{901, BandCritical},
		{1000, BandCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CounterBand(tt.count), "count %d", tt.count)
	}
	assert.Equal(t, "warning", BandWarning.String())
	assert.Equal(t, "701/1000", CounterText(701))
}

func TestPresetHelpers(t *testing.T) {
	t.Parallel()

	got := Presets()
	require.Len(t, got, PresetCount)
	assert.Equal(t, "ugly, deformed, noisy, bad anatomy, mutation", got[1])

	got[0] = "mutated"
	assert.Equal(t, "blurry, low quality, distorted, watermark, text, signature", QualityPreset())

	labels := make([]string, 0, PresetCount)
	for _, p := range Presets() {
		labels = append(labels, PresetLabel(p))
	}
	assert.Equal(t, []string{"blurry...", "ugly...", "oversaturated...", "duplicate..."}, labels)
	assert.Equal(t, "plain...", PresetLabel("plain"))
	assert.Equal(t, `+ Use quality preset: "blurry, low quality, distorted, watermark, text, signature"`, QualityPresetLabel())
}

func TestTypingReportsEveryKeystroke(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"blurry",
		"no text, no watermark",
		"línea uno\nlínea dos",
		strings.Repeat("ab ", 333) + "x",
	}
	for _, s := range inputs {
		n, reported := typeText(t, focusedInput(), s)
		require.Len(t, reported, len([]rune(s)))
		assert.Equal(t, s, reported[len(reported)-1])
		assert.Equal(t, s, n.Value())
	}
}

func TestTypingPastLimitIsRejectedSilently(t *testing.T) {
	t.Parallel()

	logs := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: logs})
	require.NoError(t, err)

	n := focusedInput()
	n.SetLogger(log)
	n.SetValue(strings.Repeat("a", MaxNegativePromptLength-2))

	n, reported := typeText(t, n, "bcdef")
	require.Len(t, reported, 2)
	assert.Equal(t, MaxNegativePromptLength, CharCount(n.Value()))
	assert.True(t, strings.HasSuffix(n.Value(), "bc"))
	assert.Equal(t, BandCritical, n.Band())
	assert.Contains(t, logs.String(), "negative prompt edit rejected")

	var cmd tea.Cmd
	n, cmd = n.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, changes(t, cmd), "newline would exceed the limit")
	assert.Equal(t, MaxNegativePromptLength, n.Count())
}

func TestPasteBeyondLimitIsRejected(t *testing.T) {
	t.Parallel()

	n := focusedInput()
	start := strings.Repeat("a", MaxNegativePromptLength-3)
	n.SetValue(start)

	n, cmd := n.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("12345"), Paste: true})
	assert.Empty(t, changes(t, cmd))
	assert.Equal(t, start, n.Value())

	_, cmd = n.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("123"), Paste: true})
	assert.Equal(t, start+"123", singleChange(t, cmd).Value)
}

func TestRejectedPasteKeepsCursor(t *testing.T) {
	t.Parallel()

	n := focusedInput()
	head := strings.Repeat("a", MaxNegativePromptLength-10)
	n.SetValue(head + "xz")
	n, _ = n.Update(tea.KeyMsg{Type: tea.KeyLeft})

	n, cmd := n.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(strings.Repeat("9", 20)), Paste: true})
	assert.Empty(t, changes(t, cmd))

	_, cmd = n.Update(runeKey('y'))
	assert.Equal(t, head+"xyz", singleChange(t, cmd).Value)
}

func TestRejectedPasteKeepsCursorRow(t *testing.T) {
	t.Parallel()

	n := focusedInput()
	tail := strings.Repeat("a", MaxNegativePromptLength-5)
	n.SetValue("ab\n" + tail)
	n, _ = n.Update(tea.KeyMsg{Type: tea.KeyCtrlHome})
	n, _ = n.Update(tea.KeyMsg{Type: tea.KeyRight})

	n, cmd := n.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("12345"), Paste: true})
	assert.Empty(t, changes(t, cmd))

	_, cmd = n.Update(runeKey('X'))
	assert.Equal(t, "aXb\n"+tail, singleChange(t, cmd).Value)
}

func TestLateFeedbackKeepsNewerKeystrokes(t *testing.T) {
	t.Parallel()

	n := focusedInput()
	var held []ChangeMsg
	for _, r := range "ab" {
		var cmd tea.Cmd
		n, cmd = n.Update(runeKey(r))
		held = append(held, singleChange(t, cmd))
	}
	assert.Less(t, held[0].Seq, held[1].Seq)

	n.SetValue(held[0].Value)
	assert.Equal(t, "a", n.Value())

	n, cmd := n.Update(runeKey('c'))
	latest := singleChange(t, cmd)
	assert.Equal(t, "abc", latest.Value)
	assert.Less(t, held[1].Seq, latest.Seq)

	n.SetValue(held[1].Value)
	n.SetValue(latest.Value)
	n, reported := typeText(t, n, "d")
	assert.Equal(t, []string{"abcd"}, reported)
	assert.Equal(t, "abcd", n.Value())
}

func TestCursorSurvivesFeedback(t *testing.T) {
	t.Parallel()

	n, _ := typeText(t, focusedInput(), "ac")
	n, _ = n.Update(tea.KeyMsg{Type: tea.KeyLeft})

	n, reported := typeText(t, n, "b")
	assert.Equal(t, []string{"abc"}, reported)

	_, reported = typeText(t, n, "x")
	assert.Equal(t, []string{"abxc"}, reported)
}

func TestOutsideValueReplacesText(t *testing.T) {
	t.Parallel()

	n, _ := typeText(t, focusedInput(), "draft")
	n, cmd := n.Update(runeKey('!'))
	require.Len(t, changes(t, cmd), 1)

	n.SetValue("reset")
	_, reported := typeText(t, n, "s")
	assert.Equal(t, []string{"resets"}, reported)
}

func TestDeletingAtLimitIsAccepted(t *testing.T) {
	t.Parallel()

	n := focusedInput()
	full := strings.Repeat("a", MaxNegativePromptLength)
	n.SetValue(full)

	_, cmd := n.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, full[:MaxNegativePromptLength-1], singleChange(t, cmd).Value)
}

func TestBlurredFieldIgnoresKeys(t *testing.T) {
	t.Parallel()

	n := NewNegativePromptInput()
	n, cmd := n.Update(runeKey('a'))
	assert.Nil(t, cmd)
	assert.Equal(t, "", n.Value())
	assert.False(t, n.Focused())
}

func TestPresetShortcutReplacesWholeValue(t *testing.T) {
	t.Parallel()

	n := focusedInput()
	_, cmd := n.Update(altKey('2'))
	got := singleChange(t, cmd)
	assert.Equal(t, FieldNegativePrompt, got.Field)
	assert.Equal(t, "ugly, deformed, noisy, bad anatomy, mutation", got.Value)

	n.SetValue("   ")
	_, cmd = n.Update(altKey('q'))
	assert.Equal(t, QualityPreset(), singleChange(t, cmd).Value, "whitespace counts as empty")

	n.SetValue("keep me")
	n, cmd = n.Update(altKey('3'))
	assert.Nil(t, cmd, "presets are hidden once the field has content")
	assert.Equal(t, "keep me", n.Value())
}

func TestPresetActions(t *testing.T) {
	t.Parallel()

	n := NewNegativePromptInput()
	for i, preset := range Presets() {
		assert.Equal(t, preset, singleChange(t, n.ApplyPreset(i)).Value)
		assert.Equal(t, preset, n.textarea.Value())
	}
	assert.Nil(t, n.ApplyPreset(-1))
	assert.Nil(t, n.ApplyPreset(PresetCount))
	assert.Equal(t, QualityPreset(), singleChange(t, n.ApplyQualityPreset()).Value)
}

func TestClear(t *testing.T) {
	t.Parallel()

	n := focusedInput()
	_, cmd := n.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Nil(t, cmd, "nothing to clear")

	n.SetValue("blurry")
	_, cmd = n.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Equal(t, "", singleChange(t, cmd).Value)
	assert.Equal(t, "", singleChange(t, n.Clear()).Value)
}

func TestNegativePromptViewWhenEmpty(t *testing.T) {
	t.Parallel()

	n := NewNegativePromptInput()
	view := n.View()

	assert.Contains(t, view, "Negative Prompt (Optional)")
	assert.Contains(t, view, "0/1000")
	assert.Contains(t, view, TipText)
	assert.Contains(t, view, PresetPanelTitle)
	for _, p := range Presets() {
		assert.Contains(t, view, PresetLabel(p))
	}
	assert.Contains(t, view, QualityPresetLabel())
	assert.NotContains(t, view, HelperText)
	assert.NotContains(t, view, ClearLabel)
}

func TestNegativePromptViewWithContent(t *testing.T) {
	t.Parallel()

	n := NewNegativePromptInput()
	n.SetValue("blurry")
	view := n.View()

	assert.Contains(t, view, "6/1000")
	assert.Contains(t, view, HelperText)
	assert.Contains(t, view, ClearLabel)
	assert.NotContains(t, view, TipText)
	assert.NotContains(t, view, PresetPanelTitle)
}

func TestPlaceholder(t *testing.T) {
	t.Parallel()

	n := NewNegativePromptInput()
	assert.Equal(t, DefaultPlaceholder, n.Placeholder())

	n.SetPlaceholder("nothing red")
	assert.Equal(t, "nothing red", n.Placeholder())

	n.SetPlaceholder("")
	assert.Equal(t, DefaultPlaceholder, n.Placeholder())
}

func TestNegativePromptMouseWithoutZones(t *testing.T) {
	t.Parallel()

	n := NewNegativePromptInput()
	_, cmd := n.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)
}

package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.AdaptiveColor{Light: "#7a1fd6", Dark: "#9c40ff"}
	successColor = lipgloss.Color("42")
	errorColor   = lipgloss.Color("196")
	mutedColor   = lipgloss.Color("245")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(successColor)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	tooSmallStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true).
			Padding(1, 2)
)

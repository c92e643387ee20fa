package ui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor   = lipgloss.Color("#E50914")
	secondaryColor = lipgloss.Color("#F5F5F1")
	accentColor    = lipgloss.Color("#564D4D")
	mutedColor     = lipgloss.Color("#A9A9A9")

	headerTitleStyle = lipgloss.NewStyle().
				Foreground(secondaryColor).
				Bold(true)

	headerAccentStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			MarginBottom(1)

	searchStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)

	searchFocusedStyle = searchStyle.
				BorderForeground(primaryColor)

	cardStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(primaryColor).
				PaddingLeft(1)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	metaStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	overviewStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	loadingStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true).
				MarginBottom(1)

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#45B7D1")).
			Underline(true)

	noticeStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FFA726")).
			Foreground(lipgloss.Color("#FFA726")).
			Bold(true).
			Padding(1, 3)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF7F"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(2)
)

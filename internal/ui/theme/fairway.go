package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#0f1f17")
	Mantle   = lipgloss.Color("#0b1711")
	Surface0 = lipgloss.Color("#1d3a2b")
	Surface1 = lipgloss.Color("#2b5640")
	Text     = lipgloss.Color("#e3efe6")
	Subtext0 = lipgloss.Color("#9db8a6")
	Fairway  = lipgloss.Color("#4caf50")
	Sky      = lipgloss.Color("#7cc4e8")
	Sand     = lipgloss.Color("#e8d8a8")
	Flag     = lipgloss.Color("#f2994a")
	Hazard   = lipgloss.Color("#e5534b")

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Fairway)

	Title  = lipgloss.NewStyle().Foreground(Fairway).Bold(true)
	Muted  = lipgloss.NewStyle().Foreground(Subtext0)
	Hot    = lipgloss.NewStyle().Foreground(Flag).Bold(true)
	Danger = lipgloss.NewStyle().Foreground(Hazard).Bold(true)
	Badge  = lipgloss.NewStyle().Foreground(Base).Background(Fairway).Bold(true).Padding(0, 1)
	Banner = lipgloss.NewStyle().Foreground(Base).Background(Sand).Padding(0, 1)
)

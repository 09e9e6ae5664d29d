package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	descriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	cachedBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("51"))

	rowsBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	kpiValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4f8fff"))

	kpiLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	axisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("60"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("248"))

	sqlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Padding(0, 1)

	userMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true)

	errorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Foreground(lipgloss.Color("203")).
			Padding(0, 1)

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)
)

// DisableColor strips color and text attributes from all output
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func colored(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

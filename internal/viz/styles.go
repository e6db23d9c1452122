package viz

import "github.com/charmbracelet/lipgloss"

var (
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			Width(38)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(10)

	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	activeMemoryStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("213")).
				Bold(true)

	visitedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("109"))

	unvisitedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	zoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	graphStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("49")).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)

package tui

import "github.com/charmbracelet/lipgloss"

const cellWidth = 4

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Width(cellWidth * 5).Align(lipgloss.Center)
	arrowStyle    = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	disabledStyle = arrowStyle.Faint(true)

	headerStyle   = lipgloss.NewStyle().Faint(true).Width(cellWidth).Align(lipgloss.Right)
	dayStyle      = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Right)
	todayStyle    = dayStyle.Underline(true)
	selectedStyle = dayStyle.Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#22863a", Dark: "#97e023"})
	cursorStyle   = dayStyle.Reverse(true)

	footerStyle = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

package report

import "github.com/charmbracelet/lipgloss"

var (
	branchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	hotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	warmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	coolStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// colorizeInfo picks the info column color from the node's share of its
// parent: hot above 75%, warm above 25%, muted below.
func colorizeInfo(pct float64, info string) string {
	switch {
	case pct > 75:
		return hotStyle.Render(info)
	case pct > 25:
		return warmStyle.Render(info)
	default:
		return coolStyle.Render(info)
	}
}

package dashboard

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lanwatch/lanwatch/internal/ui"
)

// Layout breakpoints for responsive rendering.
const (
	// BreakpointCompact is the width below which the name column is dropped.
	BreakpointCompact = 80
	// HeightMinimal is the height below which the footer is hidden.
	HeightMinimal = 20
)

// Styles for the dashboard.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorPrimary)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	upStyle = lipgloss.NewStyle().
		Foreground(ui.ColorSuccess)

	unstableStyle = lipgloss.NewStyle().
			Foreground(ui.ColorWarning)

	downStyle = lipgloss.NewStyle().
			Foreground(ui.ColorError).
			Bold(true)

	accentStyle = lipgloss.NewStyle().
			Foreground(ui.ColorAccent)

	alertStyle = lipgloss.NewStyle().
			Foreground(ui.ColorWarning)

	footerStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	flashStyle = lipgloss.NewStyle().
			Bold(true)
)

// ShowFooter reports whether the terminal is tall enough for the footer.
func ShowFooter(height int) bool {
	return height >= HeightMinimal
}

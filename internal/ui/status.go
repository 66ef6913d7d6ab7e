package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lanwatch/lanwatch/internal/registry"
)

// StatusColor maps a host status to its palette color.
func StatusColor(s registry.Status) lipgloss.Color {
	switch s {
	case registry.StatusUp:
		return ColorSuccess
	case registry.StatusUnstable:
		return ColorWarning
	case registry.StatusDown:
		return ColorError
	default:
		// Scanning and anything unexpected render muted.
		return ColorMuted
	}
}

// StatusSymbol maps a host status to its indicator symbol.
func StatusSymbol(s registry.Status) string {
	switch s {
	case registry.StatusUp:
		return SymbolUp
	case registry.StatusUnstable:
		return SymbolUnstable
	case registry.StatusDown:
		return SymbolDown
	default:
		return SymbolPending
	}
}

// StatusIcon renders the colored indicator for a host status.
func StatusIcon(s registry.Status) string {
	return lipgloss.NewStyle().Foreground(StatusColor(s)).Render(StatusSymbol(s))
}

// StatusLabel renders the colored status word ("Up", "Unstable", "Down").
func StatusLabel(s registry.Status) string {
	return lipgloss.NewStyle().Foreground(StatusColor(s)).Render(s.String())
}

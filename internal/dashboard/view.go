package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lanwatch/lanwatch/internal/registry"
	"github.com/lanwatch/lanwatch/internal/ui"
)

// Column widths for the host table.
const (
	colIPWidth    = 17
	colNameWidth  = 28
	colFailWidth  = 4
	rowSparkWidth = 12
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.phase == phaseMonitoring {
		b.WriteString(m.renderSummary())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderTable())

	if m.phase == phaseMonitoring {
		if avail := m.renderAvailability(); avail != "" {
			b.WriteString("\n")
			b.WriteString(avail)
			b.WriteString("\n")
		}
	}

	if len(m.alerts) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderAlerts())
	}

	if ShowFooter(m.height) {
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
	}

	return b.String()
}

// renderHeader renders the title line with phase-specific stats.
func (m Model) renderHeader() string {
	title := titleStyle.Render("lanwatch")
	sep := mutedStyle.Render(" | ")
	network := mutedStyle.Render(m.prefix + "0/24")

	if m.phase == phaseScanning {
		progress := mutedStyle.Render(fmt.Sprintf("%d/%d probed", m.scanned, m.total))
		found := upStyle.Render(fmt.Sprintf("%d found", len(m.rows)))
		return title + sep + m.spin.View() + sep + progress + sep + found
	}

	return title + sep + network + sep + mutedStyle.Render("last sweep "+m.sweepAge())
}

// renderSummary renders the one-line status rollup.
func (m Model) renderSummary() string {
	dot := mutedStyle.Render(" · ")
	return upStyle.Render(fmt.Sprintf("Online %d", m.counts.Up)) + dot +
		unstableStyle.Render(fmt.Sprintf("Unstable %d", m.counts.Unstable)) + dot +
		downStyle.Render(fmt.Sprintf("Down %d", m.counts.Down))
}

// sweepAge describes how long ago the last sweep finished.
func (m Model) sweepAge() string {
	if m.lastSweep.IsZero() {
		return "pending"
	}
	secs := int(time.Since(m.lastSweep).Seconds())
	switch secs {
	case 0:
		return "just now"
	case 1:
		return "1s ago"
	default:
		return fmt.Sprintf("%ds ago", secs)
	}
}

// renderTable renders one line per known host.
func (m Model) renderTable() string {
	if len(m.rows) == 0 {
		return mutedStyle.Render("No hosts yet")
	}

	var b strings.Builder
	for _, h := range m.rows {
		b.WriteString(m.renderRow(h))
		b.WriteString("\n")
	}
	return b.String()
}

// renderRow renders a single host line: status glyph, IP, name, failure
// streak, and the reachability sparkline over recent sweeps. Rows whose
// status changed within the flash window are emphasized so a transition
// stands out mid-sweep.
func (m Model) renderRow(h registry.Host) string {
	compact := m.width > 0 && m.width < BreakpointCompact

	line := ui.StatusIcon(h.Status) + " " + padRight(h.IP, colIPWidth)

	if !compact {
		nameStyle := mutedStyle
		if h.Sentinel {
			nameStyle = accentStyle
		}
		line += nameStyle.Render(padRight(h.Name, colNameWidth))
	}

	failStyle := mutedStyle
	if h.FailCount > 0 {
		failStyle = lipgloss.NewStyle().Foreground(ui.StatusColor(h.Status))
	}
	line += failStyle.Render(padRight(fmt.Sprintf("%d", h.FailCount), colFailWidth))

	if !compact {
		if series := m.history.HostSeries(h.IP, rowSparkWidth); len(series) > 0 {
			line += " " + ui.RenderSparkline(series, rowSparkWidth)
		}
	}

	if flashing(h) {
		return flashStyle.Render(line)
	}
	return line
}

// flashing reports whether a host changed status recently enough to
// deserve emphasis. Insertion counts as a change, so rows flash briefly
// when discovery first lists them.
func flashing(h registry.Host) bool {
	return !h.LastChange.IsZero() && time.Since(h.LastChange) < flashWindow
}

// renderAvailability renders the sparkline of up-percentage per sweep.
func (m Model) renderAvailability() string {
	data := m.history.OverallSeries(sparkWidth(m.width))
	if len(data) == 0 {
		return ""
	}
	current := data[len(data)-1]

	return mutedStyle.Render("availability ") +
		ui.RenderSparkline(data, len(data)) +
		mutedStyle.Render(fmt.Sprintf(" %3.0f%%", current))
}

// renderAlerts renders the recent down transitions, newest last.
func (m Model) renderAlerts() string {
	var b strings.Builder
	for _, a := range m.alerts {
		b.WriteString(alertStyle.Render(ui.SymbolAlert + " " + a))
		b.WriteString("\n")
	}
	return b.String()
}

// renderFooter renders the keyboard hints.
func (m Model) renderFooter() string {
	return footerStyle.Render("q: quit")
}

// sparkWidth bounds the availability sparkline to the terminal, leaving
// room for the label and the percentage readout.
func sparkWidth(termWidth int) int {
	w := termWidth - 24
	if w < 10 {
		w = 10
	}
	if w > DefaultHistorySize {
		w = DefaultHistorySize
	}
	return w
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

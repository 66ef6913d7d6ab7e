package dashboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lanwatch/lanwatch/internal/registry"
	"github.com/lanwatch/lanwatch/internal/ui"
)

// phase tracks which stage of the engine the dashboard is reflecting.
type phase int

const (
	phaseScanning phase = iota
	phaseMonitoring
)

// refreshInterval drives the redraw tick. It has to outpace the flash
// window comfortably so a highlight fades the moment it expires.
const refreshInterval = 100 * time.Millisecond

// flashWindow is how long a row stays highlighted after its status changed.
const flashWindow = 3 * time.Second

// maxAlerts is the number of recent alert lines kept on screen.
const maxAlerts = 5

// Model is the Bubble Tea model for the live dashboard. It owns no engine
// state of its own: rows are snapshots of the registry taken whenever the
// bridge reports that something happened.
type Model struct {
	reg    *registry.Registry
	prefix string

	phase   phase
	rows    []registry.Host
	counts  registry.Counts
	scanned int
	total   int

	history   *History
	alerts    []string
	lastSweep time.Time
	sweeps    int

	spin ui.SpinnerComponent

	width    int
	height   int
	quitting bool
	bell     bool
	err      error

	cancelFunc context.CancelFunc
}

// NewModel creates a dashboard model over the given registry. The cancel
// function is invoked when the user quits so the engine shuts down with
// the TUI.
func NewModel(reg *registry.Registry, prefix string, bell bool, cancel context.CancelFunc) Model {
	spin := ui.NewSpinnerComponent("Scanning " + prefix + "0/24")
	spin.Start()

	return Model{
		reg:        reg,
		prefix:     prefix,
		history:    NewHistory(DefaultHistorySize),
		spin:       spin,
		bell:       bell,
		cancelFunc: cancel,
	}
}

// Init returns the initial commands for the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Init(),
		m.tickCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, m.tickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case HostFoundMsg:
		// The scanner registers a host before announcing it, so a fresh
		// snapshot already contains the new row.
		m.rows = m.reg.Snapshot()
		return m, nil

	case ScanProgressMsg:
		m.scanned = msg.Scanned
		m.total = msg.Total
		return m, nil

	case ScanDoneMsg:
		if msg.Err != nil {
			if !errors.Is(msg.Err, context.Canceled) {
				m.err = msg.Err
			}
			m.quitting = true
			return m, tea.Quit
		}
		m.phase = phaseMonitoring
		m.spin.Success()
		m.rows = m.reg.Snapshot()
		m.counts = m.reg.Counts()
		return m, nil

	case SweepDoneMsg:
		m.sweeps++
		m.lastSweep = time.Now()
		m.rows = m.reg.Snapshot()
		m.counts = m.reg.Counts()
		m.history.Record(m.rows, m.counts)
		return m, nil

	case AlertMsg:
		line := fmt.Sprintf("%s  %s (%s) went down",
			time.Now().Format("15:04:05"), msg.Host.Name, msg.Host.IP)
		m.alerts = append(m.alerts, line)
		if len(m.alerts) > maxAlerts {
			m.alerts = m.alerts[len(m.alerts)-maxAlerts:]
		}
		if m.bell {
			// BEL is non-printing, so it cannot disturb the alt screen.
			fmt.Fprint(os.Stderr, "\a")
		}
		return m, nil

	case MonitorDoneMsg:
		// A canceled context is the normal way the engine stops; anything
		// else is a real failure worth surfacing.
		if msg.Err != nil && !errors.Is(msg.Err, context.Canceled) {
			m.err = msg.Err
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.cancelFunc != nil {
			m.cancelFunc()
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// upPercent converts registry counts into an availability percentage.
func upPercent(c registry.Counts) float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Up) / float64(c.Total) * 100
}

package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lanwatch/lanwatch/internal/registry"
)

// Bridge forwards engine callbacks to the Bubble Tea program as typed
// messages. The scanner and monitor run in their own goroutine; Send is
// the only safe way to hand their events to the TUI loop.
type Bridge struct {
	program *tea.Program
}

// NewBridge creates a bridge for the given program.
func NewBridge(program *tea.Program) *Bridge {
	return &Bridge{program: program}
}

// HostFound forwards a discovery hit. Matches discovery.Scanner's OnFound hook.
func (b *Bridge) HostFound(ip string) {
	b.program.Send(HostFoundMsg{IP: ip})
}

// Progress forwards scan progress. Matches discovery.Scanner's OnProgress hook.
func (b *Bridge) Progress(scanned, total int) {
	b.program.Send(ScanProgressMsg{Scanned: scanned, Total: total})
}

// ScanDone signals that discovery has finished.
func (b *Bridge) ScanDone(err error) {
	b.program.Send(ScanDoneMsg{Err: err})
}

// SweepDone forwards a completed sweep. Matches monitor.Monitor's OnSweep hook.
func (b *Bridge) SweepDone() {
	b.program.Send(SweepDoneMsg{})
}

// Alert forwards a down transition. Matches monitor.Monitor's OnAlert hook.
func (b *Bridge) Alert(h registry.Host) {
	b.program.Send(AlertMsg{Host: h})
}

// MonitorDone signals that the monitoring loop has stopped.
func (b *Bridge) MonitorDone(err error) {
	b.program.Send(MonitorDoneMsg{Err: err})
}

// Package dashboard provides the interactive Bubble Tea TUI for watch mode.
// It shows discovery progress, the live host table with status flashes, an
// availability sparkline, and the most recent down alerts.
//
// The engine (scanner, then monitor) runs in a background goroutine and
// reports through a Bridge; the TUI owns the terminal until the user quits
// or the engine dies.
package dashboard

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lanwatch/lanwatch/internal/discovery"
	lwerrors "github.com/lanwatch/lanwatch/internal/errors"
	"github.com/lanwatch/lanwatch/internal/monitor"
	"github.com/lanwatch/lanwatch/internal/registry"
)

// Run starts the dashboard TUI and the engine behind it. It blocks until
// the user quits or the engine fails. Quitting cancels the engine context;
// a canceled engine is a clean exit, not an error.
func Run(ctx context.Context, scanner *discovery.Scanner, mon *monitor.Monitor, reg *registry.Registry, prefix string, bell bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewModel(reg, prefix, bell, cancel)

	program := tea.NewProgram(model, tea.WithAltScreen())

	bridge := NewBridge(program)
	scanner.OnFound = bridge.HostFound
	scanner.OnProgress = bridge.Progress
	mon.OnSweep = bridge.SweepDone
	mon.OnAlert = bridge.Alert

	// Engine goroutine: discover first, then monitor until canceled.
	errChan := make(chan error, 1)
	go func() {
		if err := scanner.Run(ctx, prefix); err != nil {
			errChan <- err
			bridge.ScanDone(err)
			return
		}
		bridge.ScanDone(nil)

		err := mon.Run(ctx)
		errChan <- err
		bridge.MonitorDone(err)
	}()

	if _, err := program.Run(); err != nil {
		cancel()
		return lwerrors.WrapWithCode(err, lwerrors.ErrStartup,
			"The dashboard could not start",
			"Run with --plain for line output.")
	}

	// The TUI is gone. Either the user quit, in which case cancel unblocks
	// the engine, or the engine already died and quit the TUI itself.
	cancel()
	if err := <-errChan; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

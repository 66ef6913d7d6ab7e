package dashboard

import (
	"time"

	"github.com/lanwatch/lanwatch/internal/registry"
)

// HostFoundMsg signals that the discovery scan found a live host.
type HostFoundMsg struct {
	IP string
}

// ScanProgressMsg reports how far the discovery scan has gotten.
type ScanProgressMsg struct {
	Scanned int
	Total   int
}

// ScanDoneMsg signals that discovery has finished and the table is sorted.
type ScanDoneMsg struct {
	Err error
}

// SweepDoneMsg signals that a monitoring sweep has completed.
type SweepDoneMsg struct{}

// AlertMsg signals that a host has just transitioned to down.
type AlertMsg struct {
	Host registry.Host
}

// MonitorDoneMsg signals that the monitoring loop has stopped.
type MonitorDoneMsg struct {
	Err error
}

// tickMsg signals a periodic refresh so relative timestamps stay current.
type tickMsg time.Time

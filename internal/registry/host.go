package registry

import "time"

// Status is the reachability state of a host.
type Status int

const (
	// StatusScanning is the zero value: a row that has not been inserted
	// yet. Insert always assigns a real status, so no registered host
	// carries it once discovery completes.
	StatusScanning Status = iota
	// StatusUp means the last probe reached the host.
	StatusUp
	// StatusUnstable means recent probes failed but the host is not yet
	// written off.
	StatusUnstable
	// StatusDown means consecutive failures reached the threshold.
	StatusDown
)

// String returns the display name for the status.
func (s Status) String() string {
	switch s {
	case StatusScanning:
		return "Scanning"
	case StatusUp:
		return "Up"
	case StatusUnstable:
		return "Unstable"
	case StatusDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Host is one row in the registry. Sentinel marks the synthetic
// internet-reachability row that always sorts last.
type Host struct {
	IP         string
	Name       string
	Status     Status
	FailCount  int
	Sentinel   bool
	FirstSeen  time.Time
	LastChange time.Time
}

// RecordSuccess applies one successful probe. Any success wipes the
// failure streak. Returns true if the status changed.
func (h *Host) RecordSuccess() bool {
	h.FailCount = 0
	if h.Status == StatusUp {
		return false
	}
	h.Status = StatusUp
	h.LastChange = time.Now()
	return true
}

// RecordFailure applies one failed probe against the given threshold.
// Failures below the threshold mark the host Unstable; reaching it marks
// the host Down. Returns true only on the transition into Down, which is
// the one moment an alert should fire.
func (h *Host) RecordFailure(threshold int) bool {
	h.FailCount++

	if h.FailCount >= threshold {
		if h.Status == StatusDown {
			return false
		}
		h.Status = StatusDown
		h.LastChange = time.Now()
		return true
	}

	if h.Status != StatusUnstable {
		h.Status = StatusUnstable
		h.LastChange = time.Now()
	}
	return false
}

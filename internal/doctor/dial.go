package doctor

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/lanwatch/lanwatch/internal/config"
	"github.com/lanwatch/lanwatch/internal/probe"
)

// internetPorts are tried in order against the sentinel address. 443 first
// since some networks filter plain DNS to third-party resolvers.
var internetPorts = []int{443, 53}

// DialCheck verifies raw TCP dialing works at all by connecting to a
// loopback listener this process owns. If this fails, every probe will.
type DialCheck struct {
	Timeout time.Duration
}

func (c *DialCheck) Name() string     { return "tcp_dial" }
func (c *DialCheck) Category() string { return "PROBE" }

func (c *DialCheck) Run(ctx context.Context) CheckResult {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Cannot open a loopback listener: %v", err),
			Suggestion: "Check sandboxing or firewall rules for this process",
		}
	}
	defer ln.Close()

	result := probe.CheckDetail(ctx, ln.Addr().String(), c.Timeout)
	if !result.Open {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Loopback dial failed (%s)", result.Reason),
			Suggestion: "Outbound TCP seems blocked for this process",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Loopback dial in %s", result.Latency.Round(time.Microsecond)),
	}
}

// InternetCheck probes the sentinel address the way the engine does.
// Unreachable is a warning: LAN-only monitoring still works offline.
type InternetCheck struct {
	Probe   probe.Func
	Timeout time.Duration
}

func (c *InternetCheck) Name() string     { return "internet" }
func (c *InternetCheck) Category() string { return "PROBE" }

func (c *InternetCheck) Run(ctx context.Context) CheckResult {
	if probe.FirstOpen(ctx, c.Probe, config.SentinelIP, internetPorts, c.Timeout) {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: fmt.Sprintf("Internet reachable via %s", config.SentinelIP),
		}
	}

	return CheckResult{
		Name:       c.Name(),
		Status:     StatusWarn,
		Message:    fmt.Sprintf("%s (%s) not reachable", config.SentinelName, config.SentinelIP),
		Suggestion: "The internet row will read as down; LAN monitoring is unaffected",
	}
}

// NewProbeChecks creates the dial checks from the effective config.
func NewProbeChecks(cfg *config.Config) []Check {
	return []Check{
		&DialCheck{Timeout: cfg.Timeout},
		&InternetCheck{Probe: probe.Check, Timeout: cfg.Timeout},
	}
}

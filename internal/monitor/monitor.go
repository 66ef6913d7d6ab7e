// Package monitor re-probes the registry forever and tracks which hosts
// fall off the network.
//
// Each sweep runs under the registry lock from first row to last, so
// anyone taking a snapshot sees either the previous pass or the whole
// new one. A host only counts as down after enough consecutive misses;
// one good probe wipes the slate.
package monitor

import (
	"context"
	"time"

	"github.com/lanwatch/lanwatch/internal/config"
	"github.com/lanwatch/lanwatch/internal/logger"
	"github.com/lanwatch/lanwatch/internal/probe"
	"github.com/lanwatch/lanwatch/internal/registry"
)

// Monitor owns the sweep loop.
type Monitor struct {
	reg   *registry.Registry
	cfg   *config.Config
	probe probe.Func
	log   logger.Logger

	// OnAlert fires once per host transition into Down, after the sweep
	// releases the lock, in table order. OnSweep fires after every pass.
	OnAlert func(h registry.Host)
	OnSweep func()
}

// New builds a monitor over reg using the real TCP prober.
func New(reg *registry.Registry, cfg *config.Config, log logger.Logger) *Monitor {
	return &Monitor{
		reg:   reg,
		cfg:   cfg,
		probe: probe.Check,
		log:   log,
	}
}

// Run sweeps immediately and then every interval until ctx is done.
func (m *Monitor) Run(ctx context.Context) error {
	m.log.Debug("monitoring every %v (timeout %v, threshold %d)",
		m.cfg.Interval, m.cfg.Timeout, m.cfg.Threshold)

	for {
		m.sweep(ctx)
		if m.OnSweep != nil {
			m.OnSweep()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(m.cfg.Interval):
		}
	}
}

// sweep probes every row once. Transitions into Down are collected
// during the pass and reported only after the lock is released, so a
// slow alert handler never stalls readers.
func (m *Monitor) sweep(ctx context.Context) {
	var downed []registry.Host

	m.reg.Sweep(func(h *registry.Host) {
		// On shutdown, leave the remaining rows untouched
		if ctx.Err() != nil {
			return
		}

		if probe.FirstOpen(ctx, m.probe, h.IP, config.Ports, m.cfg.Timeout) {
			if h.RecordSuccess() {
				m.log.Info("%s (%s) is back up", h.IP, h.Name)
			}
			return
		}

		if h.RecordFailure(m.cfg.Threshold) {
			downed = append(downed, *h)
		}
	})

	for _, h := range downed {
		m.log.Warn("%s (%s) went down", h.IP, h.Name)
		if m.OnAlert != nil {
			m.OnAlert(h)
		}
	}
}

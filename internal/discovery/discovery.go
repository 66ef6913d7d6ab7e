// Package discovery sweeps a /24 for hosts that accept TCP connections.
//
// A fixed pool of workers splits the address range into contiguous
// chunks and probes the well-known ports on each address. Workers never
// touch the registry themselves; they report over a channel to the one
// goroutine that owns inserts, so registry writes stay single-sourced.
package discovery

import (
	"context"
	"fmt"
	"sync"

	"github.com/lanwatch/lanwatch/internal/config"
	"github.com/lanwatch/lanwatch/internal/logger"
	"github.com/lanwatch/lanwatch/internal/probe"
	"github.com/lanwatch/lanwatch/internal/registry"
	"golang.org/x/time/rate"
)

// Scanner runs one discovery pass over a subnet.
type Scanner struct {
	reg     *registry.Registry
	cfg     *config.Config
	probe   probe.Func
	limiter *rate.Limiter
	log     logger.Logger

	// OnFound fires from the insert goroutine after a host lands in the
	// registry. OnProgress fires once per probed address.
	OnFound    func(ip string)
	OnProgress func(scanned, total int)
}

// hostRange is one worker's slice of the address space, inclusive on
// both ends.
type hostRange struct {
	Start int
	End   int
}

// event is what a worker reports back for a single address.
type event struct {
	ip    string
	found bool
}

// New builds a scanner over reg using the real TCP prober.
func New(reg *registry.Registry, cfg *config.Config, log logger.Logger) *Scanner {
	s := &Scanner{
		reg:   reg,
		cfg:   cfg,
		probe: probe.Check,
		log:   log,
	}
	if cfg.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}
	return s
}

// Run probes every address on the subnet, inserts what answers, then
// appends the sentinel row and sorts the table. The sentinel goes in
// unconditionally so the internet row exists even on a silent network.
// Returns ctx.Err() if the sweep was cut short.
func (s *Scanner) Run(ctx context.Context, prefix string) error {
	total := config.LastHost - config.FirstHost + 1
	ranges := splitRange(config.FirstHost, config.LastHost, s.cfg.Workers)

	s.log.Debug("scanning %s0/24 with %d workers", prefix, len(ranges))

	events := make(chan event, total)

	var wg sync.WaitGroup
	for _, rg := range ranges {
		wg.Add(1)
		go s.worker(ctx, rg, prefix, events, &wg)
	}
	go func() {
		wg.Wait()
		close(events)
	}()

	scanned := 0
	found := 0
	for ev := range events {
		scanned++
		if ev.found {
			found++
			s.reg.Add(ctx, ev.ip)
			if s.OnFound != nil {
				s.OnFound(ev.ip)
			}
		}
		if s.OnProgress != nil {
			s.OnProgress(scanned, total)
		}
	}

	// Workers have joined. Check the internet for the log, but the
	// sentinel row goes in either way.
	online := probe.FirstOpen(ctx, s.probe, config.SentinelIP, config.Ports, s.cfg.Timeout)
	s.log.Debug("scan complete: %d hosts up, internet reachable: %v", found, online)

	s.reg.AddSentinel()
	s.reg.Sort()

	return ctx.Err()
}

// worker probes every address in its range, reporting each one exactly
// once. It bails between addresses when ctx is done.
func (s *Scanner) worker(ctx context.Context, rg hostRange, prefix string, events chan<- event, wg *sync.WaitGroup) {
	defer wg.Done()

	for n := rg.Start; n <= rg.End; n++ {
		if ctx.Err() != nil {
			return
		}
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return
			}
		}

		ip := fmt.Sprintf("%s%d", prefix, n)
		found := probe.FirstOpen(ctx, s.probe, ip, config.Ports, s.cfg.Timeout)

		select {
		case events <- event{ip: ip, found: found}:
		case <-ctx.Done():
			return
		}
	}
}

// splitRange carves [first, last] into n contiguous chunks. Every chunk
// gets total/n addresses and the final one absorbs the remainder, so
// worker counts that do not divide 254 still cover every address exactly
// once.
func splitRange(first, last, n int) []hostRange {
	total := last - first + 1
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}

	size := total / n
	ranges := make([]hostRange, n)
	for i := 0; i < n; i++ {
		ranges[i] = hostRange{
			Start: first + i*size,
			End:   first + (i+1)*size - 1,
		}
	}
	ranges[n-1].End = last

	return ranges
}

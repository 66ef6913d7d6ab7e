// Package registry holds the table of discovered hosts. All access goes
// through one mutex; the monitor keeps it for a whole sweep so readers
// never observe a half-updated pass.
package registry

import (
	"context"
	"encoding/binary"
	"math"
	"net"
	"sort"
	"sync"
	"time"

	"github.com/lanwatch/lanwatch/internal/config"
	"github.com/lanwatch/lanwatch/internal/logger"
	"github.com/lanwatch/lanwatch/internal/resolve"
)

// Registry is the shared host table. Hosts are only ever added, never
// removed; a host that disappears from the network stays listed as Down.
type Registry struct {
	mu       sync.Mutex
	hosts    []*Host
	index    map[string]*Host
	resolver resolve.Resolver
	log      logger.Logger
}

// Counts summarizes the table by status.
type Counts struct {
	Up       int
	Unstable int
	Down     int
	Total    int
}

// New returns an empty registry that names hosts through resolver.
func New(resolver resolve.Resolver, log logger.Logger) *Registry {
	return &Registry{
		index:    make(map[string]*Host),
		resolver: resolver,
		log:      log,
	}
}

// Add inserts ip with a freshly resolved name and Status Up. Duplicate
// adds are no-ops. The DNS lookup runs without holding the lock, so a
// slow resolver never stalls readers.
func (r *Registry) Add(ctx context.Context, ip string) bool {
	r.mu.Lock()
	_, exists := r.index[ip]
	r.mu.Unlock()
	if exists {
		return false
	}

	name := r.resolver.Lookup(ctx, ip)

	r.mu.Lock()
	defer r.mu.Unlock()
	// Re-check: another add may have won while we were resolving
	if _, exists := r.index[ip]; exists {
		return false
	}

	r.insert(&Host{IP: ip, Name: name})
	r.log.Debug("added %s (%s)", ip, name)
	return true
}

// AddSentinel inserts the fixed internet-reachability row. It goes
// through the same insert path as every other host, so the monitor
// drives its status like any other row.
func (r *Registry) AddSentinel() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.index[config.SentinelIP]; exists {
		return false
	}

	r.insert(&Host{IP: config.SentinelIP, Name: config.SentinelName, Sentinel: true})
	return true
}

// insert appends a host row. Caller holds the lock.
func (r *Registry) insert(h *Host) {
	now := time.Now()
	h.Status = StatusUp
	h.FailCount = 0
	h.FirstSeen = now
	h.LastChange = now

	r.hosts = append(r.hosts, h)
	r.index[h.IP] = h
}

// Sort orders the table by numeric IP with the sentinel pinned last.
func (r *Registry) Sort() {
	r.mu.Lock()
	defer r.mu.Unlock()

	sort.Slice(r.hosts, func(i, j int) bool {
		a, b := r.hosts[i], r.hosts[j]
		if a.Sentinel != b.Sentinel {
			return b.Sentinel
		}
		return ipToUint32(a.IP) < ipToUint32(b.IP)
	})
}

// Snapshot returns a copy of every row in table order. Callers can hold
// onto it as long as they like without blocking the monitor.
func (r *Registry) Snapshot() []Host {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Host, len(r.hosts))
	for i, h := range r.hosts {
		out[i] = *h
	}
	return out
}

// Get returns a copy of the row for ip.
func (r *Registry) Get(ip string) (Host, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.index[ip]
	if !ok {
		return Host{}, false
	}
	return *h, true
}

// Len returns the number of rows.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.hosts)
}

// Counts tallies rows by status.
func (r *Registry) Counts() Counts {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := Counts{Total: len(r.hosts)}
	for _, h := range r.hosts {
		switch h.Status {
		case StatusUp:
			c.Up++
		case StatusUnstable:
			c.Unstable++
		case StatusDown:
			c.Down++
		}
	}
	return c
}

// Sweep runs fn over every row while holding the lock for the entire
// pass. The monitor uses this so a sweep is atomic from the point of
// view of Snapshot and Add.
func (r *Registry) Sweep(fn func(h *Host)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range r.hosts {
		fn(h)
	}
}

// ipToUint32 maps a dotted-quad IP to its 32-bit big-endian value, so
// 192.168.1.9 sorts before 192.168.1.10. Unparseable addresses sort
// after every real one.
func ipToUint32(ip string) uint32 {
	v4 := net.ParseIP(ip).To4()
	if v4 == nil {
		return math.MaxUint32
	}
	return binary.BigEndian.Uint32(v4)
}

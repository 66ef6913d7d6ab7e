package monitor

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/lanwatch/lanwatch/internal/config"
	"github.com/lanwatch/lanwatch/internal/logger"
	"github.com/lanwatch/lanwatch/internal/registry"
	"github.com/lanwatch/lanwatch/internal/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProbe reports open for any address whose IP is in the set. The
// set can change between sweeps to simulate hosts dropping off.
type fakeProbe struct {
	mu    sync.Mutex
	open  map[string]bool
	calls int
}

func newFakeProbe(openIPs ...string) *fakeProbe {
	f := &fakeProbe{open: make(map[string]bool)}
	for _, ip := range openIPs {
		f.open[ip] = true
	}
	return f
}

func (f *fakeProbe) fn(ctx context.Context, addr string, timeout time.Duration) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	for ip, isOpen := range f.open {
		if isOpen && addrHasIP(addr, ip) {
			return true
		}
	}
	return false
}

func addrHasIP(addr, ip string) bool {
	return len(addr) > len(ip) && addr[:len(ip)] == ip && addr[len(ip)] == ':'
}

func (f *fakeProbe) set(ip string, isOpen bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open[ip] = isOpen
}

func (f *fakeProbe) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestMonitor(fp *fakeProbe, ips ...string) (*Monitor, *registry.Registry) {
	reg := registry.New(resolve.Disabled(), logger.Noop())
	for _, ip := range ips {
		reg.Add(context.Background(), ip)
	}
	reg.AddSentinel()
	reg.Sort()

	cfg := config.DefaultConfig()
	m := New(reg, cfg, logger.Noop())
	m.probe = fp.fn
	return m, reg
}

func TestSweep_AllUp(t *testing.T) {
	fp := newFakeProbe("10.0.0.1", "10.0.0.2", config.SentinelIP)
	m, reg := newTestMonitor(fp, "10.0.0.1", "10.0.0.2")

	var alerts []registry.Host
	m.OnAlert = func(h registry.Host) { alerts = append(alerts, h) }

	m.sweep(context.Background())

	for _, h := range reg.Snapshot() {
		assert.Equal(t, registry.StatusUp, h.Status)
		assert.Equal(t, 0, h.FailCount)
	}
	assert.Empty(t, alerts)
}

func TestSweep_AlertFiresOnceOnThreshold(t *testing.T) {
	// Sentinel stays reachable; 10.0.0.1 never answers
	fp := newFakeProbe(config.SentinelIP)
	m, reg := newTestMonitor(fp, "10.0.0.1")

	var alerts []registry.Host
	m.OnAlert = func(h registry.Host) { alerts = append(alerts, h) }
	ctx := context.Background()

	m.sweep(ctx)
	h, _ := reg.Get("10.0.0.1")
	assert.Equal(t, registry.StatusUnstable, h.Status)
	assert.Empty(t, alerts)

	m.sweep(ctx)
	h, _ = reg.Get("10.0.0.1")
	assert.Equal(t, registry.StatusUnstable, h.Status)
	assert.Empty(t, alerts)

	m.sweep(ctx)
	h, _ = reg.Get("10.0.0.1")
	assert.Equal(t, registry.StatusDown, h.Status)
	require.Len(t, alerts, 1)
	assert.Equal(t, "10.0.0.1", alerts[0].IP)
	assert.Equal(t, registry.StatusDown, alerts[0].Status)

	// Staying down must not re-alert
	m.sweep(ctx)
	m.sweep(ctx)
	assert.Len(t, alerts, 1)
}

func TestSweep_RecoveryRearmsAlert(t *testing.T) {
	fp := newFakeProbe(config.SentinelIP)
	m, reg := newTestMonitor(fp, "10.0.0.1")

	alerts := 0
	m.OnAlert = func(registry.Host) { alerts++ }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		m.sweep(ctx)
	}
	assert.Equal(t, 1, alerts)

	// Host comes back, then dies again
	fp.set("10.0.0.1", true)
	m.sweep(ctx)
	h, _ := reg.Get("10.0.0.1")
	assert.Equal(t, registry.StatusUp, h.Status)
	assert.Equal(t, 0, h.FailCount)

	fp.set("10.0.0.1", false)
	for i := 0; i < 3; i++ {
		m.sweep(ctx)
	}
	assert.Equal(t, 2, alerts, "a fresh outage after recovery alerts again")
}

func TestSweep_AlertsFollowTableOrder(t *testing.T) {
	// Nothing answers, so every row including the sentinel goes down
	fp := newFakeProbe()
	m, _ := newTestMonitor(fp, "10.0.0.9", "10.0.0.1", "10.0.0.30")
	m.cfg.Threshold = 1

	var order []string
	m.OnAlert = func(h registry.Host) { order = append(order, h.IP) }

	m.sweep(context.Background())

	assert.Equal(t, []string{"10.0.0.1", "10.0.0.9", "10.0.0.30", config.SentinelIP}, order)
}

func TestSweep_SentinelGoesDownLikeAnyRow(t *testing.T) {
	// LAN host answers, the internet does not
	fp := newFakeProbe("10.0.0.1")
	m, reg := newTestMonitor(fp, "10.0.0.1")

	var alerts []registry.Host
	m.OnAlert = func(h registry.Host) { alerts = append(alerts, h) }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		m.sweep(ctx)
	}

	sentinel, ok := reg.Get(config.SentinelIP)
	require.True(t, ok)
	assert.Equal(t, registry.StatusDown, sentinel.Status)

	require.Len(t, alerts, 1)
	assert.True(t, alerts[0].Sentinel)
	assert.Equal(t, config.SentinelName, alerts[0].Name)
}

func TestSweep_CanceledLeavesRowsAlone(t *testing.T) {
	fp := newFakeProbe()
	m, reg := newTestMonitor(fp, "10.0.0.1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m.sweep(ctx)

	assert.Equal(t, 0, fp.callCount(), "no probes after cancellation")
	for _, h := range reg.Snapshot() {
		assert.Equal(t, registry.StatusUp, h.Status)
		assert.Equal(t, 0, h.FailCount)
	}
}

func TestRun_SweepsUntilCanceled(t *testing.T) {
	fp := newFakeProbe("10.0.0.1", config.SentinelIP)
	m, _ := newTestMonitor(fp, "10.0.0.1")
	m.cfg.Interval = 10 * time.Millisecond

	sweeps := make(chan struct{}, 64)
	m.OnSweep = func() { sweeps <- struct{}{} }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	// Wait for a few full passes before pulling the plug
	for i := 0; i < 3; i++ {
		select {
		case <-sweeps:
		case <-time.After(2 * time.Second):
			t.Fatal("monitor stopped sweeping")
		}
	}
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not stop after cancel")
	}
}

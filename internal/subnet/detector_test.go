package subnet

import (
	"errors"
	"net"
	"testing"

	"github.com/lanwatch/lanwatch/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	ifaces []Interface
	err    error
}

func (f fakeSource) List() ([]Interface, error) {
	return f.ifaces, f.err
}

func ipv4Net(t *testing.T, addr string, bits int) *net.IPNet {
	t.Helper()
	ip := net.ParseIP(addr)
	require.NotNil(t, ip)
	return &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, 32)}
}

func newTestDetector(src Source, gw net.IP, gwErr error) *Detector {
	return &Detector{
		source: src,
		gateway: func() (net.IP, error) {
			return gw, gwErr
		},
		log: logger.Noop(),
	}
}

func TestDetect_GatewayContainmentWins(t *testing.T) {
	// The virtual bridge comes first, but the gateway lives on eth0's
	// network, so eth0 should win regardless of enumeration order.
	src := fakeSource{ifaces: []Interface{
		{Name: "virbr0", Nets: []*net.IPNet{ipv4Net(t, "10.0.99.1", 24)}},
		{Name: "eth0", Nets: []*net.IPNet{ipv4Net(t, "192.168.7.42", 24)}},
	}}

	d := newTestDetector(src, net.ParseIP("192.168.7.1"), nil)

	prefix, ok := d.Detect()
	require.True(t, ok)
	assert.Equal(t, "192.168.7.", prefix)
}

func TestDetect_LoopbackNeverSelected(t *testing.T) {
	src := fakeSource{ifaces: []Interface{
		{Name: "lo", Loopback: true, Nets: []*net.IPNet{ipv4Net(t, "127.0.0.1", 8)}},
		{Name: "en0", Nets: []*net.IPNet{ipv4Net(t, "192.168.4.20", 24)}},
	}}

	d := newTestDetector(src, net.ParseIP("127.0.0.1"), nil)

	prefix, ok := d.Detect()
	require.True(t, ok)
	assert.Equal(t, "192.168.4.", prefix, "loopback contains the gateway but must be skipped")
}

func TestDetect_NamePrefixFallback(t *testing.T) {
	tests := []struct {
		name   string
		ifaces []Interface
		want   string
	}{
		{
			name: "wireless adapter",
			ifaces: []Interface{
				{Name: "docker0", Nets: []*net.IPNet{ipv4Net(t, "172.17.0.1", 16)}},
				{Name: "wlan0", Nets: []*net.IPNet{ipv4Net(t, "192.168.1.50", 24)}},
			},
			want: "192.168.1.",
		},
		{
			name: "macOS style adapter",
			ifaces: []Interface{
				{Name: "utun3", Nets: []*net.IPNet{ipv4Net(t, "100.64.0.2", 32)}},
				{Name: "en0", Nets: []*net.IPNet{ipv4Net(t, "10.1.2.3", 24)}},
			},
			want: "10.1.2.",
		},
		{
			name: "link-local address skipped",
			ifaces: []Interface{
				{Name: "wlan0", Nets: []*net.IPNet{ipv4Net(t, "169.254.10.10", 16)}},
				{Name: "eth1", Nets: []*net.IPNet{ipv4Net(t, "172.16.5.9", 24)}},
			},
			want: "172.16.5.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No gateway available, forcing the name heuristic
			d := newTestDetector(fakeSource{ifaces: tt.ifaces}, nil, errors.New("no route"))

			prefix, ok := d.Detect()
			require.True(t, ok)
			assert.Equal(t, tt.want, prefix)
		})
	}
}

func TestDetect_NothingQualifies(t *testing.T) {
	src := fakeSource{ifaces: []Interface{
		{Name: "lo", Loopback: true, Nets: []*net.IPNet{ipv4Net(t, "127.0.0.1", 8)}},
		{Name: "docker0", Nets: []*net.IPNet{ipv4Net(t, "172.17.0.1", 16)}},
	}}

	d := newTestDetector(src, nil, errors.New("no route"))

	prefix, ok := d.Detect()
	assert.False(t, ok)
	assert.Empty(t, prefix)
}

func TestDetect_SourceError(t *testing.T) {
	buf := &logger.BufferLogger{}
	d := &Detector{
		source:  fakeSource{err: errors.New("enumeration failed")},
		gateway: func() (net.IP, error) { return nil, errors.New("no route") },
		log:     buf,
	}

	prefix, ok := d.Detect()
	assert.False(t, ok)
	assert.Empty(t, prefix)
	assert.True(t, buf.HasLevel("warn"))
}

func TestPhysicalName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "eth0", want: true},
		{name: "en0", want: true},
		{name: "wlan0", want: true},
		{name: "wlp3s0", want: true},
		{name: "docker0", want: false},
		{name: "virbr0", want: false},
		{name: "lo", want: false},
		{name: "utun3", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, physicalName(tt.name))
		})
	}
}

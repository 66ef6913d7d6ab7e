package subnet

import (
	"net"
	"strings"

	"github.com/jackpal/gateway"
	"github.com/lanwatch/lanwatch/internal/logger"
)

// physicalPrefixes marks interface names that usually belong to real
// adapters: macOS en0, classic Linux eth0/wlan0, systemd wl* naming.
var physicalPrefixes = []string{"en", "eth", "wl"}

// Detector finds the local /24 prefix from the machine's interfaces.
type Detector struct {
	source  Source
	gateway func() (net.IP, error)
	log     logger.Logger
}

// NewDetector creates a Detector backed by the OS interface table and the
// system routing table.
func NewDetector(log logger.Logger) *Detector {
	return &Detector{
		source:  SystemSource(),
		gateway: gateway.DiscoverGateway,
		log:     log,
	}
}

// Detect returns the dotted /24 prefix of the best local IPv4 address and
// true, or "" and false when no interface qualifies. When several addresses
// qualify under the same rule the first one enumerated wins; enumeration
// order is whatever the OS reports.
func (d *Detector) Detect() (string, bool) {
	ifaces, err := d.source.List()
	if err != nil {
		d.log.Warn("cannot enumerate network interfaces: %v", err)
		return "", false
	}

	// Best signal: the interface whose network contains the default
	// gateway is the one actually carrying LAN traffic.
	if gw, err := d.gateway(); err == nil && gw != nil {
		for _, ifc := range ifaces {
			if ifc.Loopback {
				continue
			}
			for _, n := range ifc.Nets {
				if n.Contains(gw) {
					d.log.Debug("subnet from %s: %s contains gateway %s", ifc.Name, n, gw)
					return Prefix(n.IP), true
				}
			}
		}
	} else if err != nil {
		d.log.Debug("no default gateway found: %v", err)
	}

	// Fallback: adapters whose name looks wired or wireless.
	for _, ifc := range ifaces {
		if ifc.Loopback || !physicalName(ifc.Name) {
			continue
		}
		for _, n := range ifc.Nets {
			ip := n.IP.To4()
			if ip == nil || ip.IsLinkLocalUnicast() {
				continue
			}
			d.log.Debug("subnet from %s: %s", ifc.Name, n)
			return Prefix(ip), true
		}
	}

	return "", false
}

// physicalName reports whether an interface name carries one of the
// physical-adapter prefixes.
func physicalName(name string) bool {
	for _, p := range physicalPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

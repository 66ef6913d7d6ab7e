// Package subnet determines the local /24 prefix to scan. Interface
// enumeration sits behind a small capability interface so the selection
// heuristic stays platform-independent and testable.
package subnet

import (
	"fmt"
	"net"
	"strings"

	"github.com/lanwatch/lanwatch/internal/errors"
)

// MaxPrefixLen bounds a user-supplied prefix argument. A /24 prefix is at
// most 12 characters ("255.255.255."), so 16 already means garbage input.
const MaxPrefixLen = 16

// Interface is one network interface with its IPv4 networks.
type Interface struct {
	Name     string
	Loopback bool
	Nets     []*net.IPNet
}

// Source enumerates the machine's network interfaces.
type Source interface {
	List() ([]Interface, error)
}

// systemSource reads interfaces from the OS.
type systemSource struct{}

// SystemSource returns the Source backed by the operating system.
func SystemSource() Source {
	return systemSource{}
}

func (systemSource) List() ([]Interface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	out := make([]Interface, 0, len(ifaces))
	for _, ifc := range ifaces {
		if ifc.Flags&net.FlagUp == 0 {
			continue
		}

		addrs, err := ifc.Addrs()
		if err != nil {
			// One broken interface shouldn't hide the rest
			continue
		}

		var nets []*net.IPNet
		for _, a := range addrs {
			ipnet, ok := a.(*net.IPNet)
			if !ok || ipnet.IP.To4() == nil {
				continue
			}
			nets = append(nets, ipnet)
		}

		if len(nets) > 0 {
			out = append(out, Interface{
				Name:     ifc.Name,
				Loopback: ifc.Flags&net.FlagLoopback != 0,
				Nets:     nets,
			})
		}
	}

	return out, nil
}

// Prefix renders the first three octets of an IPv4 address as a dotted
// prefix with a trailing dot, e.g. "192.168.1.".
func Prefix(ip net.IP) string {
	v4 := ip.To4()
	if v4 == nil {
		return ""
	}
	return fmt.Sprintf("%d.%d.%d.", v4[0], v4[1], v4[2])
}

// ValidatePrefix checks a user-supplied subnet prefix: it must be non-empty,
// shorter than MaxPrefixLen characters, and end in a literal dot.
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return errors.New(errors.ErrSubnet,
			"Subnet prefix is empty",
			`Pass a dotted /24 prefix like "192.168.1."`)
	}

	if len(prefix) >= MaxPrefixLen {
		return errors.New(errors.ErrSubnet,
			fmt.Sprintf("Subnet prefix %q is too long", prefix),
			`A /24 prefix is the first three octets with a trailing dot, like "192.168.1."`)
	}

	if !strings.HasSuffix(prefix, ".") {
		return errors.New(errors.ErrSubnet,
			fmt.Sprintf("Subnet prefix %q must end with a dot", prefix),
			`Write the first three octets with a trailing dot, like "192.168.1."`)
	}

	return nil
}

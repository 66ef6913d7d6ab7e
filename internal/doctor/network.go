package doctor

import (
	"context"
	"fmt"
	"net"

	"github.com/jackpal/gateway"
	"github.com/lanwatch/lanwatch/internal/config"
	"github.com/lanwatch/lanwatch/internal/logger"
	"github.com/lanwatch/lanwatch/internal/subnet"
)

// InterfacesCheck verifies that interfaces can be enumerated and at least
// one usable IPv4 network exists.
type InterfacesCheck struct {
	Source subnet.Source
}

func (c *InterfacesCheck) Name() string     { return "interfaces" }
func (c *InterfacesCheck) Category() string { return "NETWORK" }

func (c *InterfacesCheck) Run(ctx context.Context) CheckResult {
	ifaces, err := c.Source.List()
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Cannot enumerate interfaces: %v", err),
			Suggestion: "Check that the process is allowed to read the interface table",
		}
	}

	usable := 0
	for _, ifc := range ifaces {
		if !ifc.Loopback && len(ifc.Nets) > 0 {
			usable++
		}
	}

	if usable == 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "No non-loopback IPv4 interface is up",
			Suggestion: "Connect to a network, or pass the subnet prefix explicitly",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%d usable interface%s", usable, pluralize(usable)),
	}
}

// GatewayCheck verifies the default gateway is discoverable from the
// routing table.
type GatewayCheck struct {
	Discover func() (net.IP, error)
}

func (c *GatewayCheck) Name() string     { return "gateway" }
func (c *GatewayCheck) Category() string { return "NETWORK" }

func (c *GatewayCheck) Run(ctx context.Context) CheckResult {
	gw, err := c.Discover()
	if err != nil || gw == nil {
		// Detection still works through name heuristics, so this is not fatal.
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Default gateway not discoverable",
			Suggestion: "Subnet detection falls back to interface-name heuristics",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Default gateway %s", gw),
	}
}

// Detector is the capability SubnetCheck needs from the subnet package.
type Detector interface {
	Detect() (string, bool)
}

// SubnetCheck reports which /24 prefix subnet detection would pick.
type SubnetCheck struct {
	Detector Detector
}

func (c *SubnetCheck) Name() string     { return "subnet" }
func (c *SubnetCheck) Category() string { return "NETWORK" }

func (c *SubnetCheck) Run(ctx context.Context) CheckResult {
	prefix, ok := c.Detector.Detect()
	if !ok {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("No subnet detected, would fall back to %s0/24", config.DefaultSubnet),
			Suggestion: "Pass the subnet prefix explicitly if the fallback is wrong",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Would scan %s0/24", prefix),
	}
}

// NewNetworkChecks creates all network-related checks.
func NewNetworkChecks(log logger.Logger) []Check {
	return []Check{
		&InterfacesCheck{Source: subnet.SystemSource()},
		&GatewayCheck{Discover: gateway.DiscoverGateway},
		&SubnetCheck{Detector: subnet.NewDetector(log)},
	}
}

package doctor

import (
	"context"
	"fmt"

	"github.com/lanwatch/lanwatch/internal/config"
	"github.com/lanwatch/lanwatch/internal/logger"
	"github.com/lanwatch/lanwatch/internal/resolve"
)

// ReverseDNSCheck verifies that reverse DNS answers for a well-known
// address, so the host table will show names instead of placeholders.
type ReverseDNSCheck struct {
	Resolver resolve.Resolver
	Disabled bool
}

func (c *ReverseDNSCheck) Name() string     { return "reverse_dns" }
func (c *ReverseDNSCheck) Category() string { return "DNS" }

func (c *ReverseDNSCheck) Run(ctx context.Context) CheckResult {
	if c.Disabled {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "Reverse DNS disabled by config",
		}
	}

	name := c.Resolver.Lookup(ctx, config.SentinelIP)
	if name == resolve.Unknown {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("No PTR answer for %s", config.SentinelIP),
			Suggestion: "Host names will show as " + resolve.Unknown + "; set dns.server or use --no-dns to silence lookups",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%s resolves to %s", config.SentinelIP, name),
	}
}

// NewDNSChecks creates the DNS checks from the effective config.
func NewDNSChecks(cfg *config.Config, log logger.Logger) []Check {
	if cfg.DNS.Disabled {
		return []Check{&ReverseDNSCheck{Resolver: resolve.Disabled(), Disabled: true}}
	}
	return []Check{
		&ReverseDNSCheck{Resolver: resolve.New(cfg.DNS.Server, cfg.DNS.Timeout, log)},
	}
}

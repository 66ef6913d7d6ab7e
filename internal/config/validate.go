package config

import (
	"fmt"
	"time"

	"github.com/lanwatch/lanwatch/internal/errors"
	"github.com/lanwatch/lanwatch/internal/subnet"
)

// MinInterval is the smallest accepted sweep interval. A full sweep already
// spends up to timeout per unreachable host, so anything shorter just stacks
// sweeps on top of each other.
const MinInterval = 500 * time.Millisecond

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Subnet != "" {
		if err := subnet.ValidatePrefix(cfg.Subnet); err != nil {
			return err
		}
	}

	if err := validateEngine(cfg); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check your .lanwatch.yaml.")
	}

	if err := validateDNS(cfg.DNS); err != nil {
		return errors.WrapWithCode(err, errors.ErrDNS, err.Error(),
			"Check the 'dns' section in your .lanwatch.yaml.")
	}

	return nil
}

// validateEngine checks the probe and sweep tunables.
func validateEngine(cfg *Config) error {
	if cfg.Interval < MinInterval {
		return fmt.Errorf("interval %v is below the %v minimum - you'd be probing nonstop", cfg.Interval, MinInterval)
	}

	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive (got %v)", cfg.Timeout)
	}

	if cfg.Timeout >= cfg.Interval {
		return fmt.Errorf("timeout (%v) is longer than the sweep interval (%v) - a single dead host would eat the whole interval", cfg.Timeout, cfg.Interval)
	}

	if cfg.Workers < 1 || cfg.Workers > LastHost {
		return fmt.Errorf("workers needs to be 1-%d (got %d)", LastHost, cfg.Workers)
	}

	if cfg.Threshold < 1 {
		return fmt.Errorf("threshold needs to be at least 1 (got %d)", cfg.Threshold)
	}

	if cfg.RateLimit < 0 {
		return fmt.Errorf("rate_limit can't be negative (got %d)", cfg.RateLimit)
	}

	return nil
}

// validateDNS checks the resolver settings.
func validateDNS(dns DNSConfig) error {
	if dns.Disabled {
		return nil
	}

	if dns.Timeout <= 0 {
		return fmt.Errorf("dns.timeout must be positive when resolution is enabled (got %v)", dns.Timeout)
	}

	return nil
}

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/lanwatch/lanwatch/internal/config"
	"github.com/lanwatch/lanwatch/internal/errors"
	"github.com/lanwatch/lanwatch/internal/logger"
	"github.com/lanwatch/lanwatch/internal/resolve"
	"github.com/lanwatch/lanwatch/internal/subnet"
)

// overrides holds the per-command flag values layered over the config file.
// Zero fields mean "keep the config value".
type overrides struct {
	interval string
	timeout  string
	workers  int
	noDNS    bool
}

// effectiveConfig loads the config file (or defaults when none exists),
// applies flag overrides, and validates the result.
func effectiveConfig(ov overrides) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(ConfigPath())
	if err != nil {
		return nil, err
	}

	if ov.interval != "" {
		d, err := parseDurationFlag("--interval", ov.interval)
		if err != nil {
			return nil, err
		}
		cfg.Interval = d
	}
	if ov.timeout != "" {
		d, err := parseDurationFlag("--timeout", ov.timeout)
		if err != nil {
			return nil, err
		}
		cfg.Timeout = d
	}
	if ov.workers > 0 {
		cfg.Workers = ov.workers
	}
	if ov.noDNS {
		cfg.DNS.Disabled = true
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseDurationFlag parses a duration flag value into a duration.
func parseDurationFlag(name, flag string) (time.Duration, error) {
	duration, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid %s value", flag, name),
			"Try something like 5s, 2m, or 500ms.")
	}
	return duration, nil
}

// resolvePrefix decides which /24 prefix to scan: an explicit argument wins,
// then the config file, then interface autodetection, then the stock
// fallback. An explicit argument is validated before anything touches the
// network.
func resolvePrefix(args []string, cfg *config.Config, log logger.Logger) (string, error) {
	if len(args) > 0 {
		prefix := args[0]
		if err := subnet.ValidatePrefix(prefix); err != nil {
			return "", err
		}
		return prefix, nil
	}

	if cfg.Subnet != "" {
		return cfg.Subnet, nil
	}

	if prefix, ok := subnet.NewDetector(log).Detect(); ok {
		return prefix, nil
	}

	log.Warn("subnet detection failed, falling back to %s0/24", config.DefaultSubnet)
	return config.DefaultSubnet, nil
}

// newResolver builds the reverse-DNS resolver the registry uses for new rows.
func newResolver(cfg *config.Config, log logger.Logger) resolve.Resolver {
	if cfg.DNS.Disabled {
		return resolve.Disabled()
	}
	return resolve.New(cfg.DNS.Server, cfg.DNS.Timeout, log)
}

// newLogger builds a stderr logger. Debug output is enabled by the --debug
// flag or the LANWATCH_DEBUG environment variable.
func newLogger(component string) logger.Logger {
	return logger.New(os.Stderr, component, debugFlag || os.Getenv("LANWATCH_DEBUG") != "")
}

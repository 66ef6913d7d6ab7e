package doctor

import (
	"github.com/lanwatch/lanwatch/internal/config"
	"github.com/lanwatch/lanwatch/internal/logger"
)

// Suite assembles the full diagnostic run in display order: network first,
// since everything downstream depends on it.
func Suite(cfg *config.Config, configPath string, log logger.Logger) []Check {
	checks := NewNetworkChecks(log)
	checks = append(checks, NewDNSChecks(cfg, log)...)
	checks = append(checks, NewProbeChecks(cfg)...)
	checks = append(checks, NewConfigChecks(configPath)...)
	return checks
}

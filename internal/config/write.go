package config

import (
	"fmt"
	"os"

	"github.com/lanwatch/lanwatch/internal/errors"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config with duration strings so the YAML written by
// 'lanwatch init' stays human-readable ("5s" instead of nanosecond counts).
type fileConfig struct {
	Subnet    string `yaml:"subnet,omitempty"`
	Interval  string `yaml:"interval"`
	Timeout   string `yaml:"timeout"`
	Workers   int    `yaml:"workers"`
	Threshold int    `yaml:"threshold"`
	RateLimit int    `yaml:"rate_limit"`
	DNS       struct {
		Disabled bool   `yaml:"disabled"`
		Server   string `yaml:"server,omitempty"`
		Timeout  string `yaml:"timeout"`
	} `yaml:"dns"`
	Alert struct {
		Bell bool `yaml:"bell"`
	} `yaml:"alert"`
}

// Write serializes cfg to YAML with a commented header and writes it to path.
func Write(cfg *Config, path string) error {
	fc := fileConfig{
		Subnet:    cfg.Subnet,
		Interval:  cfg.Interval.String(),
		Timeout:   cfg.Timeout.String(),
		Workers:   cfg.Workers,
		Threshold: cfg.Threshold,
		RateLimit: cfg.RateLimit,
	}
	fc.DNS.Disabled = cfg.DNS.Disabled
	fc.DNS.Server = cfg.DNS.Server
	fc.DNS.Timeout = cfg.DNS.Timeout.String()
	fc.Alert.Bell = cfg.Alert.Bell

	data, err := yaml.Marshal(fc)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# lanwatch configuration
# Run 'lanwatch watch' to scan and monitor your subnet
# See: https://github.com/lanwatch/lanwatch for documentation

`
	content := header + string(data)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", path),
			"Check directory permissions")
	}

	return nil
}

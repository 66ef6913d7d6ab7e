package config

import "time"

// Engine constants that are not tunable through the config file. The probe
// port list and host-number range define what "a host responds" means and
// changing them would change the meaning of every recorded status.
const (
	// FirstHost and LastHost bound the host-number range appended to the
	// subnet prefix during discovery.
	FirstHost = 1
	LastHost  = 254

	// SentinelIP is the fixed public address inserted after discovery as a
	// persistent internet-reachability row.
	SentinelIP = "8.8.8.8"
	// SentinelName is the hostname override for the sentinel entry.
	SentinelName = "INTERNET"

	// DefaultSubnet is the fallback prefix when detection finds nothing and
	// no prefix was supplied.
	DefaultSubnet = "192.168.1."
)

// Ports lists the well-known TCP ports probed on each candidate host, in
// order. The first successful connect marks the host reachable and the rest
// are skipped.
var Ports = []int{21, 22, 23, 80, 443, 445, 3389, 8080}

// Config represents the complete .lanwatch.yaml configuration file.
// Values are chosen at startup only; nothing mutates a running engine.
type Config struct {
	// Subnet is the dotted /24 prefix to scan (e.g. "192.168.1.").
	// Empty means autodetect from local interfaces.
	Subnet string `yaml:"subnet" mapstructure:"subnet"`

	// Interval between monitoring sweeps.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Timeout for a single TCP connect probe.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Workers is the discovery pool size.
	Workers int `yaml:"workers" mapstructure:"workers"`

	// Threshold is the consecutive-failure count that marks a host down.
	Threshold int `yaml:"threshold" mapstructure:"threshold"`

	// RateLimit caps discovery probes per second. 0 disables pacing.
	RateLimit int `yaml:"rate_limit" mapstructure:"rate_limit"`

	DNS   DNSConfig   `yaml:"dns" mapstructure:"dns"`
	Alert AlertConfig `yaml:"alert" mapstructure:"alert"`
}

// DNSConfig controls reverse hostname resolution during discovery.
type DNSConfig struct {
	// Disabled skips reverse lookups entirely; hosts show the placeholder name.
	Disabled bool `yaml:"disabled" mapstructure:"disabled"`

	// Server is the resolver address as "ip:port". Empty uses the system
	// resolver configuration.
	Server string `yaml:"server" mapstructure:"server"`

	// Timeout bounds a single PTR query.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// AlertConfig controls how down-transitions are surfaced.
type AlertConfig struct {
	// Bell rings the terminal bell when a host transitions to down.
	Bell bool `yaml:"bell" mapstructure:"bell"`
}

// DefaultConfig returns a Config carrying the engine's stock values.
func DefaultConfig() *Config {
	return &Config{
		Subnet:    "",
		Interval:  5 * time.Second,
		Timeout:   200 * time.Millisecond,
		Workers:   50,
		Threshold: 3,
		RateLimit: 0,
		DNS: DNSConfig{
			Disabled: false,
			Server:   "",
			Timeout:  2 * time.Second,
		},
		Alert: AlertConfig{
			Bell: true,
		},
	}
}

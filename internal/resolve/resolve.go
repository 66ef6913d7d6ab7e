// Package resolve turns LAN addresses back into names via reverse DNS.
package resolve

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/lanwatch/lanwatch/internal/logger"
	"github.com/miekg/dns"
)

// Unknown is the display name for an address with no PTR record. A
// failed lookup is an ordinary answer here, never an error.
const Unknown = "N/A"

// Resolver maps an IP to a display name.
type Resolver interface {
	Lookup(ctx context.Context, ip string) string
}

// Client resolves PTR records against a single DNS server.
type Client struct {
	client *dns.Client
	server string
	log    logger.Logger
}

// New builds a PTR resolver against server ("host" or "host:port").
// An empty server means the first nameserver in /etc/resolv.conf, which
// on a typical LAN is the router that actually knows local names. If no
// server can be found at all, the resolver is disabled and every lookup
// answers Unknown.
func New(server string, timeout time.Duration, log logger.Logger) Resolver {
	if server == "" {
		server = systemServer()
	}
	if server == "" {
		log.Warn("no DNS server found, hostnames will show as %s", Unknown)
		return Disabled()
	}
	if _, _, err := net.SplitHostPort(server); err != nil {
		server = net.JoinHostPort(server, "53")
	}

	log.Debug("resolving names via %s", server)
	return &Client{
		client: &dns.Client{Timeout: timeout},
		server: server,
		log:    log,
	}
}

// Lookup returns the PTR name for ip, or Unknown.
func (c *Client) Lookup(ctx context.Context, ip string) string {
	name, err := dns.ReverseAddr(ip)
	if err != nil {
		return Unknown
	}

	msg := new(dns.Msg)
	msg.SetQuestion(name, dns.TypePTR)

	result, _, err := c.client.ExchangeContext(ctx, msg, c.server)
	if err != nil {
		c.log.Debug("ptr %s: %v", ip, err)
		return Unknown
	}

	for _, answer := range result.Answer {
		if ptr, ok := answer.(*dns.PTR); ok {
			return strings.TrimRight(ptr.Ptr, ".")
		}
	}

	return Unknown
}

// Disabled returns a resolver that never looks anything up.
func Disabled() Resolver {
	return disabled{}
}

type disabled struct{}

func (disabled) Lookup(context.Context, string) string {
	return Unknown
}

// systemServer returns the first nameserver from resolv.conf, or "".
func systemServer() string {
	conf, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil || len(conf.Servers) == 0 {
		return ""
	}
	return net.JoinHostPort(conf.Servers[0], conf.Port)
}

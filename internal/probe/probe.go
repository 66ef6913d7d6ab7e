// Package probe answers one question: does an address accept a TCP
// connection right now? Nothing is written to the connection; it is
// closed the moment the handshake succeeds.
package probe

import (
	"context"
	"net"
	"strconv"
	"strings"
	"time"
)

// Func is the connectivity test the scanner and monitor are built on.
// A false result is an ordinary answer, not an error: on a LAN sweep
// most addresses are silent and that is the expected case.
type Func func(ctx context.Context, addr string, timeout time.Duration) bool

// FailReason categorizes why a connection attempt failed.
type FailReason int

const (
	FailNone FailReason = iota
	FailTimeout
	FailRefused
	FailUnreachable
	FailCanceled
	FailUnknown
)

// String returns a human-readable description of the failure reason.
func (r FailReason) String() string {
	switch r {
	case FailNone:
		return "ok"
	case FailTimeout:
		return "connection timed out"
	case FailRefused:
		return "connection refused"
	case FailUnreachable:
		return "host unreachable"
	case FailCanceled:
		return "canceled"
	default:
		return "unknown error"
	}
}

// Result carries the detail behind a single connection attempt. The
// scanner only needs Open; the doctor command shows the rest.
type Result struct {
	Addr    string
	Open    bool
	Latency time.Duration
	Reason  FailReason
}

// Check dials addr over TCP and reports whether the connection was
// accepted within timeout. Cancelling ctx aborts a dial in flight.
func Check(ctx context.Context, addr string, timeout time.Duration) bool {
	return CheckDetail(ctx, addr, timeout).Open
}

// CheckDetail is Check with latency and a categorized failure reason.
func CheckDetail(ctx context.Context, addr string, timeout time.Duration) Result {
	start := time.Now()

	d := net.Dialer{Timeout: timeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return Result{Addr: addr, Reason: categorize(ctx, err)}
	}
	conn.Close()

	return Result{Addr: addr, Open: true, Latency: time.Since(start)}
}

// FirstOpen probes ip on each port in order and reports whether any of
// them accepted a connection. It stops at the first success, and between
// attempts when ctx is done.
func FirstOpen(ctx context.Context, fn Func, ip string, ports []int, timeout time.Duration) bool {
	for _, port := range ports {
		if ctx.Err() != nil {
			return false
		}
		if fn(ctx, Addr(ip, port), timeout) {
			return true
		}
	}
	return false
}

// Addr joins an IP and port into a dialable address.
func Addr(ip string, port int) string {
	return net.JoinHostPort(ip, strconv.Itoa(port))
}

// categorize converts a dial error into a FailReason.
func categorize(ctx context.Context, err error) FailReason {
	if err == nil {
		return FailNone
	}

	if ctx.Err() == context.Canceled {
		return FailCanceled
	}

	errStr := strings.ToLower(err.Error())

	if strings.Contains(errStr, "timeout") || strings.Contains(errStr, "i/o timeout") {
		return FailTimeout
	}

	if strings.Contains(errStr, "connection refused") {
		return FailRefused
	}

	if strings.Contains(errStr, "no route to host") ||
		strings.Contains(errStr, "network is unreachable") ||
		strings.Contains(errStr, "host is down") {
		return FailUnreachable
	}

	return FailUnknown
}

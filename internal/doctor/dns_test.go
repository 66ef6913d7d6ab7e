package doctor

import (
	"context"
	"strings"
	"testing"

	"github.com/lanwatch/lanwatch/internal/config"
	"github.com/lanwatch/lanwatch/internal/logger"
	"github.com/lanwatch/lanwatch/internal/resolve"
)

// fakeResolver answers every lookup with the same name.
type fakeResolver struct {
	name string
}

func (f fakeResolver) Lookup(ctx context.Context, ip string) string { return f.name }

func TestReverseDNSCheck_Pass(t *testing.T) {
	check := &ReverseDNSCheck{Resolver: fakeResolver{name: "dns.google"}}

	result := check.Run(context.Background())

	if result.Status != StatusPass {
		t.Fatalf("expected pass, got %s", result.Status)
	}
	if !strings.Contains(result.Message, "dns.google") {
		t.Errorf("expected the resolved name, got %q", result.Message)
	}
}

func TestReverseDNSCheck_NoAnswer(t *testing.T) {
	check := &ReverseDNSCheck{Resolver: fakeResolver{name: resolve.Unknown}}

	result := check.Run(context.Background())

	if result.Status != StatusWarn {
		t.Fatalf("expected warn, got %s", result.Status)
	}
	if result.Suggestion == "" {
		t.Errorf("expected a suggestion")
	}
}

func TestReverseDNSCheck_Disabled(t *testing.T) {
	check := &ReverseDNSCheck{Resolver: resolve.Disabled(), Disabled: true}

	result := check.Run(context.Background())

	if result.Status != StatusPass {
		t.Fatalf("expected pass, got %s", result.Status)
	}
	if !strings.Contains(result.Message, "disabled") {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestNewDNSChecks_HonorsDisabledConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DNS.Disabled = true

	checks := NewDNSChecks(cfg, logger.Noop())

	if len(checks) != 1 {
		t.Fatalf("expected 1 check, got %d", len(checks))
	}
	result := checks[0].Run(context.Background())
	if result.Status != StatusPass {
		t.Errorf("disabled DNS should pass, got %s", result.Status)
	}
}

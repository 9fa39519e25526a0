package monitoring

import (
	"testing"

	"github.com/kilianp07/transport/config"
	coremon "github.com/kilianp07/transport/core/monitoring"
)

func TestNewSentryMonitorDisabled(t *testing.T) {
	m, err := NewSentryMonitor(config.SentryConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := m.(coremon.NopMonitor); !ok {
		t.Fatalf("expected NopMonitor without DSN, got %T", m)
	}
}

func TestNewSentryMonitorInvalidDSN(t *testing.T) {
	if _, err := NewSentryMonitor(config.SentryConfig{DSN: "not-a-dsn"}); err == nil {
		t.Fatalf("expected error for invalid DSN")
	}
}

func TestNewSentryMonitorCapture(t *testing.T) {
	m, err := NewSentryMonitor(config.SentryConfig{
		DSN:         "https://public@example.invalid/1",
		Environment: "test",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := m.(*sentryMonitor); !ok {
		t.Fatalf("expected sentry monitor, got %T", m)
	}
	m.CaptureException(nil, nil)
}

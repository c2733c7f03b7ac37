package trimble

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/tntx/fleetport/internal/config"
)

func TestNewClientUsesConfig(t *testing.T) {
	cfg := &config.Config{
		TrimbleAPIURL:   "https://example.com/toolkit",
		TrimbleUsername: "u",
		TrimblePassword: "p",
		RequestTimeout:  10 * time.Second,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	client, err := newClient(clientParams{Config: cfg, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("expected client instance")
	}
}

func TestNewClientRejectsBadURL(t *testing.T) {
	cfg := &config.Config{TrimbleAPIURL: "/relative", TrimbleUsername: "u", TrimblePassword: "p"}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if _, err := newClient(clientParams{Config: cfg, Logger: logger}); err == nil {
		t.Fatal("expected error for relative url")
	}
}

package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/artfolio/portfolio-api/internal/config"
)

func TestOpenWithoutConfigReturnsErrNotConfigured(t *testing.T) {
	cases := []config.DatabaseConfig{
		{},
		{URL: "mongodb://localhost:27017"},
		{Name: "portfolio"},
	}
	for _, cfg := range cases {
		db, err := Open(context.Background(), cfg)
		if !errors.Is(err, ErrNotConfigured) {
			t.Fatalf("expected ErrNotConfigured for %+v, got %v", cfg, err)
		}
		if db != nil {
			t.Fatalf("expected nil handle for %+v", cfg)
		}
	}
}

func TestOpenWithInvalidURIFails(t *testing.T) {
	cfg := config.DatabaseConfig{URL: "not-a-mongo-uri", Name: "portfolio", Timeout: time.Second}
	db, err := Open(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected error for invalid uri")
	}
	if errors.Is(err, ErrNotConfigured) {
		t.Fatalf("connect failure must be distinct from missing config: %v", err)
	}
	if db != nil {
		t.Fatal("expected nil handle on connect failure")
	}
}

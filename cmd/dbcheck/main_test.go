package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/artfolio/portfolio-api/internal/config"
	"github.com/artfolio/portfolio-api/internal/diagnostics"
)

func decode(t *testing.T, out *bytes.Buffer) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &body))
	for _, k := range []string{"backend", "database", "database_url", "database_name", "connection_status", "collections"} {
		require.Contains(t, body, k)
	}
	return body
}

func TestRunWithoutDatabase(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{Driver: config.DriverMongo, Timeout: time.Second}}
	var out bytes.Buffer

	report, err := run(context.Background(), cfg, &out)
	require.NoError(t, err)
	require.Equal(t, diagnostics.OutcomeUnconfigured, report.Outcome)

	body := decode(t, &out)
	require.Equal(t, "Not Connected", body["connection_status"])
	require.Equal(t, "❌ Not Set", body["database_url"])
	require.Contains(t, out.String(), "\n  \"backend\"")
}

func TestRunMemoryDriver(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{Driver: config.DriverMemory, Timeout: time.Second}}
	var out bytes.Buffer

	report, err := run(context.Background(), cfg, &out)
	require.NoError(t, err)
	require.Equal(t, diagnostics.OutcomeConnected, report.Outcome)

	body := decode(t, &out)
	require.Equal(t, "Connected", body["connection_status"])
	require.Equal(t, "✅ Connected & Working", body["database"])
	require.Empty(t, body["collections"])
}

package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/artfolio/portfolio-api/internal/app"
	"github.com/artfolio/portfolio-api/internal/config"
	"github.com/artfolio/portfolio-api/internal/diagnostics"
	"github.com/artfolio/portfolio-api/pkg/logger"
)

// dbcheck runs the GET /test probe once against the configured database
// and prints the report. It exits 0 whatever the database state is.
func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))
	// stdout carries the JSON report
	logger.SetOutput(os.Stderr)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	if _, err := run(context.Background(), cfg, os.Stdout); err != nil {
		logger.Errorf("dbcheck: encode report: %v", err)
	}
}

// run connects with cfg, probes the database and writes the report to out
// as indented JSON.
func run(ctx context.Context, cfg *config.Config, out io.Writer) (diagnostics.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Database.Timeout+5*time.Second)
	defer cancel()

	deps, closeDeps := app.Connect(ctx, cfg)
	defer closeDeps()

	report := diagnostics.Run(ctx, deps.DB, deps.DiagEnv)
	logger.Infof("dbcheck: outcome=%s", report.Outcome)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return report, enc.Encode(report)
}

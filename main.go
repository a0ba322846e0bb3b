package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/artfolio/portfolio-api/internal/app"
	"github.com/artfolio/portfolio-api/internal/config"
	"github.com/artfolio/portfolio-api/pkg/logger"
	"github.com/artfolio/portfolio-api/pkg/metrics"
)

func main() {
	// LOG_LEVEL is read before config so config loading itself can log
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Infof("config loaded: env=%s database=%v driver=%s redis=%v rate_limit=%v",
		cfg.Server.Environment, cfg.Database.Configured(), cfg.Database.Driver, cfg.Redis.Host != "", cfg.RateLimit.Enabled)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	deps, closeDeps := app.Connect(ctx, cfg)
	defer closeDeps()

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r := app.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("Artist Portfolio API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infof("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}

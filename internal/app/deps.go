package app

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/artfolio/portfolio-api/internal/config"
	"github.com/artfolio/portfolio-api/internal/contact/repository"
	"github.com/artfolio/portfolio-api/internal/database"
	"github.com/artfolio/portfolio-api/internal/diagnostics"
	"github.com/artfolio/portfolio-api/pkg/logger"
)

// Connect resolves the database handle and the optional Redis client from
// cfg. It never fails: a missing or unreachable database leaves Deps.DB nil
// and Deps.Store returning the startup error. The returned func releases
// whatever was opened.
func Connect(ctx context.Context, cfg *config.Config) (Deps, func()) {
	d := Deps{DiagEnv: diagnostics.Env{
		URLSet:  cfg.Database.URL != "",
		NameSet: cfg.Database.Name != "",
	}}
	var closers []func()

	switch cfg.Database.Driver {
	case config.DriverMemory:
		repo := repository.NewMemoryRepo()
		d.DB = repo
		d.Store = repo
		logger.Warnf("database: using in-memory store; submissions are lost on restart")
	default:
		db, err := database.Open(ctx, cfg.Database)
		if err != nil {
			if errors.Is(err, database.ErrNotConfigured) {
				logger.Warnf("database: DATABASE_URL/DATABASE_NAME not set; contact submissions will fail")
			} else {
				logger.Warnf("database: connection failed, continuing without a handle: %v", err)
			}
			d.DiagEnv.StartupErr = err
			d.Store = repository.NewUnavailableStore(err)
		} else {
			logger.Infof("database: connected to %s", db.Name())
			d.DB = db
			d.Store = repository.NewMongoStore(db)
			closers = append(closers, func() {
				cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = db.Close(cctx)
			})
		}
	}

	if cfg.Redis.Host != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warnf("redis: ping %s:%s failed: %v", cfg.Redis.Host, cfg.Redis.Port, err)
			_ = client.Close()
		} else {
			logger.Infof("redis: connected to %s:%s", cfg.Redis.Host, cfg.Redis.Port)
			d.Redis = client
			closers = append(closers, func() { _ = client.Close() })
		}
	}

	return d, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
}

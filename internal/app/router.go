package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/artfolio/portfolio-api/handlers"
	"github.com/artfolio/portfolio-api/internal/config"
	contacthandler "github.com/artfolio/portfolio-api/internal/contact/handler"
	"github.com/artfolio/portfolio-api/internal/contact/repository"
	"github.com/artfolio/portfolio-api/internal/contact/service"
	"github.com/artfolio/portfolio-api/internal/diagnostics"
	"github.com/artfolio/portfolio-api/pkg/logger"
	"github.com/artfolio/portfolio-api/pkg/middleware"
)

// Deps are the runtime dependencies shared by the route handlers. They are
// built once at startup and never reassigned.
type Deps struct {
	// DB is nil when no database handle could be obtained.
	DB      diagnostics.Inspector
	Store   repository.DocumentStore
	DiagEnv diagnostics.Env
	// Redis is optional; only the contact rate limiter uses it.
	Redis *redis.Client
}

// NewRouter builds the gin engine serving the whole API.
func NewRouter(cfg *config.Config, d Deps) *gin.Engine {
	r := gin.New()
	var proxies []string
	if cfg != nil {
		proxies = cfg.Server.TrustedProxies
	}
	if err := r.SetTrustedProxies(proxies); err != nil {
		logger.Errorf("invalid TRUSTED_PROXIES %v: %v; trusting none", proxies, err)
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(middleware.RequestID(), middleware.CORS(), gin.Logger(), gin.Recovery())

	handlers.RegisterRoot(r)
	handlers.RegisterDiagnostics(r, d.DB, d.DiagEnv)
	handlers.RegisterProjects(r)
	handlers.RegisterSwagger(r)

	store := d.Store
	if store == nil {
		store = repository.NewUnavailableStore(d.DiagEnv.StartupErr)
	}
	contacthandler.RegisterContactRoutes(r, service.New(store), contactLimiter(cfg, d.Redis)...)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

func contactLimiter(cfg *config.Config, client *redis.Client) []gin.HandlerFunc {
	if cfg == nil || !cfg.RateLimit.Enabled {
		return nil
	}
	rl := cfg.RateLimit
	if rl.UseRedis && client != nil {
		win := time.Duration(rl.WindowSeconds) * time.Second
		return []gin.HandlerFunc{middleware.RedisRateLimitMiddleware(client, rl.RPS, rl.Burst, win)}
	}
	return []gin.HandlerFunc{middleware.RateLimitMiddleware(rl.RPS, rl.Burst)}
}

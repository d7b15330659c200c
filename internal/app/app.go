package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"github.com/Guilhermegg-06/ELDEPARFUM/internal/config"
	"github.com/Guilhermegg-06/ELDEPARFUM/internal/domain"
	handler "github.com/Guilhermegg-06/ELDEPARFUM/internal/handler/http"
	"github.com/Guilhermegg-06/ELDEPARFUM/internal/repository"
	"github.com/Guilhermegg-06/ELDEPARFUM/internal/repository/file"
	"github.com/Guilhermegg-06/ELDEPARFUM/internal/repository/memory"
	redisrepo "github.com/Guilhermegg-06/ELDEPARFUM/internal/repository/redis"
	"github.com/Guilhermegg-06/ELDEPARFUM/internal/service"
	"github.com/Guilhermegg-06/ELDEPARFUM/pkg/health"
	"github.com/Guilhermegg-06/ELDEPARFUM/pkg/tracing"
)

var cartItemsGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "storefront_cart_items",
	Help: "Number of units currently in the cart.",
})

// App wires together all dependencies and runs the storefront service.
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	rdb             *redis.Client
	httpServer      *http.Server
	tracingShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Tracing.
	tracingCfg := tracing.DefaultConfig("storefront")
	tracingCfg.Environment = cfg.Environment
	tracingCfg.OTLPEndpoint = cfg.OTLPEndpoint
	tracingCfg.SampleRate = cfg.TraceSampleRate
	tracingCfg.Enabled = cfg.TracingEnabled

	tracingShutdown, err := tracing.InitTracer(ctx, tracingCfg)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	healthHandler := health.NewHandler()

	// Cart persistence backend.
	var (
		kv  repository.KV
		rdb *redis.Client
	)
	switch cfg.CartBackend {
	case config.CartBackendRedis:
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		logger.Info("connected to Redis",
			slog.String("addr", cfg.RedisAddr),
			slog.Int("db", cfg.RedisDB),
		)
		healthHandler.Register("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
		kv = redisrepo.NewStore(rdb)
	case config.CartBackendMemory:
		logger.Info("using in-memory cart store")
		kv = memory.NewStore()
	default:
		return nil, fmt.Errorf("unknown cart backend: %q", cfg.CartBackend)
	}

	// Build the dependency graph.
	productRepo := file.NewProductRepository(cfg.ProductsDir, logger)
	catalogService := service.NewCatalogService(productRepo, logger)
	cartService := service.NewCartService(kv, cfg.CartStorageKey, logger)
	orderService := service.NewOrderService(cfg.WhatsAppPhone)

	cartService.OnChange(func(cart domain.Cart) {
		totals := cart.Totals()
		cartItemsGauge.Set(float64(totals.TotalItems))
		logger.Debug("cart changed",
			slog.Int("items", totals.TotalItems),
			slog.Int64("total", totals.Total),
		)
	})

	healthHandler.Register("catalog", func(ctx context.Context) error {
		_, err := productRepo.All(ctx)
		return err
	})

	// HTTP router.
	router := handler.NewRouter(catalogService, cartService, orderService, healthHandler, logger, handler.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		PprofCIDRs:         cfg.PprofAllowedCIDRs,
		CatalogCacheMaxAge: cfg.CatalogCacheMaxAge,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:             cfg,
		logger:          logger,
		rdb:             rdb,
		httpServer:      httpServer,
		tracingShutdown: tracingShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if a.tracingShutdown != nil {
		if err := a.tracingShutdown(shutdownCtx); err != nil {
			a.logger.Error("tracing shutdown error", slog.String("error", err.Error()))
		}
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
		}
	}

	a.logger.Info("application shutdown complete")
	return nil
}

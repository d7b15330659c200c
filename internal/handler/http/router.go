package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Guilhermegg-06/ELDEPARFUM/internal/service"
	"github.com/Guilhermegg-06/ELDEPARFUM/pkg/health"
	"github.com/Guilhermegg-06/ELDEPARFUM/pkg/middleware"
)

// RouterConfig carries the wiring a router needs beyond the services.
type RouterConfig struct {
	CORSAllowedOrigins []string
	PprofCIDRs         []string
	// CatalogCacheMaxAge is the Cache-Control max-age (seconds) on catalog
	// GET responses. The catalog changes rarely; the cart never gets cached.
	CatalogCacheMaxAge int
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(
	catalogService *service.CatalogService,
	cartService *service.CartService,
	orderService *service.OrderService,
	healthHandler *health.Handler,
	logger *slog.Logger,
	cfg RouterConfig,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(logger))

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsCfg.AllowedOrigins = cfg.CORSAllowedOrigins
	}
	r.Use(middleware.CORS(corsCfg))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Pprof debug endpoints with IP allowlist.
	middleware.RegisterPprof(r, cfg.PprofCIDRs, logger)

	productHandler := NewProductHandler(catalogService, logger)
	cartHandler := NewCartHandler(cartService, logger)
	checkoutHandler := NewCheckoutHandler(cartService, orderService, logger)

	r.Route("/api/v1/products", func(r chi.Router) {
		if cfg.CatalogCacheMaxAge > 0 {
			r.Use(middleware.CacheControl(cfg.CatalogCacheMaxAge))
		}

		r.Get("/", productHandler.List)
		r.Get("/facets", productHandler.Facets)
		r.Get("/{slug}", productHandler.GetBySlug)
	})

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/", cartHandler.GetCart)
		r.Delete("/", cartHandler.ClearCart)

		r.Post("/items", cartHandler.AddItem)
		r.Put("/items/{slug}", cartHandler.UpdateItemQuantity)
		r.Delete("/items/{slug}", cartHandler.RemoveItem)
	})

	r.Route("/api/v1/checkout", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/whatsapp", checkoutHandler.Checkout)
	})

	return r
}

package config

import (
	"fmt"

	pkgconfig "github.com/Guilhermegg-06/ELDEPARFUM/pkg/config"
)

// Cart storage backends.
const (
	CartBackendRedis  = "redis"
	CartBackendMemory = "memory"
)

// Config holds all configuration for the storefront service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// Catalog: directory of per-product JSON files.
	ProductsDir string `env:"PRODUCTS_DIR" envDefault:"./data/products"`

	// Cart persistence. "memory" suits local development; production uses
	// Redis so the cart survives restarts.
	CartBackend    string `env:"CART_BACKEND" envDefault:"redis"`
	CartStorageKey string `env:"CART_STORAGE_KEY" envDefault:"eldeparfum_cart"`

	// Redis (used when CartBackend is "redis")
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// WhatsApp number orders are sent to, international format, digits only.
	WhatsAppPhone string `env:"WHATSAPP_PHONE" envDefault:"5511999999999"`

	// CORS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Cache-Control max-age in seconds for catalog GET responses.
	CatalogCacheMaxAge int `env:"CATALOG_CACHE_MAX_AGE" envDefault:"300"`

	// Tracing
	TracingEnabled  bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTLPEndpoint    string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	TraceSampleRate float64 `env:"OTEL_TRACE_SAMPLE_RATE" envDefault:"1.0"`

	// Pprof access, CIDR allowlist.
	PprofAllowedCIDRs []string `env:"PPROF_ALLOWED_CIDRS" envDefault:"10.0.0.0/8,172.16.0.0/12,192.168.0.0/16,127.0.0.0/8,::1/128" envSeparator:","`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.CartBackend != CartBackendRedis && c.CartBackend != CartBackendMemory {
		return fmt.Errorf("invalid cart backend: %q (must be %q or %q)", c.CartBackend, CartBackendRedis, CartBackendMemory)
	}
	if c.ProductsDir == "" {
		return fmt.Errorf("products directory must not be empty")
	}
	if c.CartStorageKey == "" {
		return fmt.Errorf("cart storage key must not be empty")
	}
	if c.WhatsAppPhone == "" {
		return fmt.Errorf("whatsapp phone must not be empty")
	}
	if c.TraceSampleRate < 0 || c.TraceSampleRate > 1 {
		return fmt.Errorf("invalid trace sample rate: %f", c.TraceSampleRate)
	}
	return nil
}

package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Load parses environment variables into the provided struct.
// The struct should use `env` tags to define mappings.
//
// Example:
//
//	type Config struct {
//	    ProductsDir string `env:"PRODUCTS_DIR" envDefault:"./data/products"`
//	    CartBackend string `env:"CART_BACKEND" envDefault:"redis"`
//	}
//
// Defaults come from envDefault tags, so a bare environment boots the
// storefront with the file catalog and a local Redis.
func Load(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

package repository

import (
	"context"

	"github.com/Guilhermegg-06/ELDEPARFUM/internal/domain"
)

// ProductRepository defines the read operations the catalog collaborator must
// supply. The catalog is read-only; there are no write operations.
type ProductRepository interface {
	// All returns every product in the catalog.
	All(ctx context.Context) ([]domain.Product, error)

	// BySlug returns the product with the given slug, or an error wrapping
	// apperrors.ErrNotFound if no product has that slug.
	BySlug(ctx context.Context, slug string) (*domain.Product, error)
}

// KV is the coarse-grained durable key-value store backing the cart. The
// whole cart is read and written as one opaque payload under a single key;
// the store never inspects or partially updates it.
type KV interface {
	// Get returns the value stored under key, or an error wrapping
	// apperrors.ErrNotFound if the key has never been written.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
}

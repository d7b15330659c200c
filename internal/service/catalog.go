package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Guilhermegg-06/ELDEPARFUM/internal/domain"
	"github.com/Guilhermegg-06/ELDEPARFUM/internal/repository"
	apperrors "github.com/Guilhermegg-06/ELDEPARFUM/pkg/errors"
)

// CatalogService implements the business logic for product listing, lookup,
// and facet aggregation.
type CatalogService struct {
	repo   repository.ProductRepository
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.ProductRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:   repo,
		logger: logger,
	}
}

// List returns the products matching the criteria, sorted per its sort mode.
// A failure to load the catalog degrades to an empty listing rather than an
// error: the storefront keeps rendering with nothing to show.
func (s *CatalogService) List(ctx context.Context, criteria domain.Criteria) []domain.Product {
	products, err := s.repo.All(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load catalog",
			slog.String("error", err.Error()),
		)
		return []domain.Product{}
	}

	return domain.FilterProducts(products, criteria)
}

// GetBySlug returns the product with the given slug.
func (s *CatalogService) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	if slug == "" {
		return nil, apperrors.InvalidInput("slug is required")
	}

	product, err := s.repo.BySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get product by slug: %w", err)
	}

	return product, nil
}

// Facets aggregates filter metadata over the complete catalog, independent of
// any active filters. An unreadable catalog yields the empty-catalog facets.
func (s *CatalogService) Facets(ctx context.Context) domain.Facets {
	products, err := s.repo.All(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load catalog for facets",
			slog.String("error", err.Error()),
		)
		products = nil
	}

	return domain.ComputeFacets(products)
}

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guilhermegg-06/ELDEPARFUM/internal/domain"
	"github.com/Guilhermegg-06/ELDEPARFUM/internal/repository/memory"
	"github.com/Guilhermegg-06/ELDEPARFUM/internal/service"
	apperrors "github.com/Guilhermegg-06/ELDEPARFUM/pkg/errors"
	"github.com/Guilhermegg-06/ELDEPARFUM/pkg/health"
	"github.com/Guilhermegg-06/ELDEPARFUM/pkg/httputil"
)

// ============================================================================
// Stub ProductRepository
// ============================================================================

type stubProductRepository struct {
	products []domain.Product
}

func (s *stubProductRepository) All(context.Context) ([]domain.Product, error) {
	return s.products, nil
}

func (s *stubProductRepository) BySlug(_ context.Context, slug string) (*domain.Product, error) {
	for i := range s.products {
		if s.products[i].Slug == slug {
			return &s.products[i], nil
		}
	}
	return nil, apperrors.NotFound("product", slug)
}

// ============================================================================
// Test helpers
// ============================================================================

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func fixtureProducts() []domain.Product {
	return []domain.Product{
		{Slug: "sauvage", Name: "Sauvage", Brand: "Dior", Family: "amadeirado", Price: 28000, Featured: true},
		{Slug: "bleu", Name: "Bleu de Chanel", Brand: "Chanel", Family: "amadeirado", Price: 26000},
		{Slug: "la-vie", Name: "La Vie Est Belle", Brand: "Lancôme", Family: "floral", Price: 31000, RatingCount: 900},
	}
}

// setupRouter builds the production router over in-memory backends.
func setupRouter(t *testing.T, products []domain.Product) http.Handler {
	t.Helper()
	logger := testLogger()

	catalogSvc := service.NewCatalogService(&stubProductRepository{products: products}, logger)
	cartSvc := service.NewCartService(memory.NewStore(), "eldeparfum_cart", logger)
	orderSvc := service.NewOrderService("5511999999999")

	return NewRouter(catalogSvc, cartSvc, orderSvc, health.NewHandler(), logger, RouterConfig{})
}

func doRequest(t *testing.T, h http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) httputil.Response {
	t.Helper()
	var resp httputil.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

// listPayload mirrors the httputil.ListResponse layout for decoding.
type listPayload struct {
	Data  []domain.Product `json:"data"`
	Total int              `json:"total"`
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) listPayload {
	t.Helper()
	var resp struct {
		Data listPayload `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Data
}

// ============================================================================
// Tests
// ============================================================================

func TestListProducts_All(t *testing.T) {
	router := setupRouter(t, fixtureProducts())

	rec := doRequest(t, router, http.MethodGet, "/api/v1/products", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeList(t, rec)
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, "sauvage", list.Data[0].Slug)
}

func TestListProducts_SearchAndSort(t *testing.T) {
	router := setupRouter(t, fixtureProducts())

	rec := doRequest(t, router, http.MethodGet, "/api/v1/products?q=chanel&sort=price-asc", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeList(t, rec)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "bleu", list.Data[0].Slug)
}

func TestListProducts_PriceBounds(t *testing.T) {
	router := setupRouter(t, fixtureProducts())

	rec := doRequest(t, router, http.MethodGet, "/api/v1/products?minPrice=26000&maxPrice=29000&sort=price-desc", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeList(t, rec)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "sauvage", list.Data[0].Slug)
	assert.Equal(t, "bleu", list.Data[1].Slug)
}

func TestListProducts_EmptyResultKeepsArray(t *testing.T) {
	router := setupRouter(t, fixtureProducts())

	rec := doRequest(t, router, http.MethodGet, "/api/v1/products?q=nonexistent", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestListProducts_InvalidParams(t *testing.T) {
	router := setupRouter(t, fixtureProducts())

	cases := []struct {
		name   string
		target string
	}{
		{"non-numeric minPrice", "/api/v1/products?minPrice=abc"},
		{"negative maxPrice", "/api/v1/products?maxPrice=-1"},
		{"unknown sort", "/api/v1/products?sort=alphabetical"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodGet, tc.target, nil)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeResponse(t, rec)
			require.NotNil(t, resp.Error)
			assert.Equal(t, "INVALID_PARAMETER", resp.Error.Code)
		})
	}
}

func TestProductFacets(t *testing.T) {
	router := setupRouter(t, fixtureProducts())

	rec := doRequest(t, router, http.MethodGet, "/api/v1/products/facets", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data domain.Facets `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []string{"Chanel", "Dior", "Lancôme"}, resp.Data.Brands)
	assert.Equal(t, int64(26000), resp.Data.PriceRange.Min)
	assert.Equal(t, int64(31000), resp.Data.PriceRange.Max)
}

func TestGetProductBySlug(t *testing.T) {
	router := setupRouter(t, fixtureProducts())

	rec := doRequest(t, router, http.MethodGet, "/api/v1/products/sauvage", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data domain.Product `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Sauvage", resp.Data.Name)
}

func TestGetProductBySlug_NotFound(t *testing.T) {
	router := setupRouter(t, fixtureProducts())

	rec := doRequest(t, router, http.MethodGet, "/api/v1/products/nonexistent", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

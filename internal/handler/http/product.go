package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Guilhermegg-06/ELDEPARFUM/internal/domain"
	"github.com/Guilhermegg-06/ELDEPARFUM/internal/service"
	"github.com/Guilhermegg-06/ELDEPARFUM/pkg/httputil"
)

// ProductHandler handles HTTP requests for catalog endpoints.
type ProductHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewProductHandler creates a new catalog HTTP handler.
func NewProductHandler(svc *service.CatalogService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: svc,
		logger:  logger,
	}
}

// List handles GET /api/v1/products
//
// Query parameters: q, brand, family, minPrice, maxPrice (centavos), sort.
// Malformed parameters are rejected before the query reaches the catalog.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	criteria, ok := parseCriteria(w, r)
	if !ok {
		return
	}

	products := h.service.List(r.Context(), criteria)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: httputil.NewListResponse(products),
	})
}

// Facets handles GET /api/v1/products/facets
func (h *ProductHandler) Facets(w http.ResponseWriter, r *http.Request) {
	facets := h.service.Facets(r.Context())

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: facets})
}

// GetBySlug handles GET /api/v1/products/{slug}
func (h *ProductHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}

// parseCriteria extracts the filter and sort parameters from the query
// string. On a malformed parameter it writes a 400 response and returns
// ok=false.
func parseCriteria(w http.ResponseWriter, r *http.Request) (domain.Criteria, bool) {
	q := r.URL.Query()

	criteria := domain.Criteria{
		Search: q.Get("q"),
	}

	if v := q.Get("brand"); v != "" {
		criteria.Brand = &v
	}
	if v := q.Get("family"); v != "" {
		criteria.Family = &v
	}

	if v := q.Get("minPrice"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			writeInvalidParameter(w, "minPrice must be a non-negative integer in centavos")
			return domain.Criteria{}, false
		}
		criteria.MinPrice = &n
	}
	if v := q.Get("maxPrice"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			writeInvalidParameter(w, "maxPrice must be a non-negative integer in centavos")
			return domain.Criteria{}, false
		}
		criteria.MaxPrice = &n
	}

	if v := q.Get("sort"); v != "" {
		if !domain.IsValidSort(v) {
			writeInvalidParameter(w, "sort must be one of: featured, best-seller, price-asc, price-desc")
			return domain.Criteria{}, false
		}
		criteria.Sort = v
	}

	return criteria, true
}

func writeInvalidParameter(w http.ResponseWriter, message string) {
	httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
		Error: &httputil.ErrorResponse{Code: "INVALID_PARAMETER", Message: message},
	})
}

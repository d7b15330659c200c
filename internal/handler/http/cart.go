package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Guilhermegg-06/ELDEPARFUM/internal/domain"
	"github.com/Guilhermegg-06/ELDEPARFUM/internal/service"
	"github.com/Guilhermegg-06/ELDEPARFUM/pkg/httputil"
	"github.com/Guilhermegg-06/ELDEPARFUM/pkg/validator"
)

// CartHandler handles HTTP requests for cart endpoints.
type CartHandler struct {
	service *service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler.
func NewCartHandler(svc *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		service: svc,
		logger:  logger,
	}
}

// --- Request DTOs ---

// AddItemRequest is the JSON request body for adding an item to the cart.
type AddItemRequest struct {
	Slug      string `json:"slug" validate:"required"`
	Name      string `json:"name" validate:"required,min=1,max=500"`
	ML        int    `json:"ml" validate:"gte=0"`
	Quantity  int    `json:"qty" validate:"required,gte=1,lte=99"`
	UnitPrice int64  `json:"unitPrice" validate:"gte=0"`
}

// UpdateQuantityRequest is the JSON request body for setting an item's
// quantity. Zero removes the item.
type UpdateQuantityRequest struct {
	Quantity int `json:"qty" validate:"gte=0,lte=99"`
}

// cartPayload is the response body for cart endpoints: the line items plus
// the derived money summary.
type cartPayload struct {
	Items  []domain.CartItem `json:"items"`
	Totals domain.Totals     `json:"totals"`
}

func newCartPayload(cart domain.Cart) cartPayload {
	items := cart.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	return cartPayload{Items: items, Totals: cart.Totals()}
}

// --- Handlers ---

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.Get(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: newCartPayload(cart)})
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := validator.DecodeAndValidate(w, r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	cart, err := h.service.AddItem(r.Context(), service.AddItemInput{
		Slug:      req.Slug,
		Name:      req.Name,
		ML:        req.ML,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: newCartPayload(cart)})
}

// UpdateItemQuantity handles PUT /api/v1/cart/items/{slug}
func (h *CartHandler) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var req UpdateQuantityRequest
	if err := validator.DecodeAndValidate(w, r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	cart, err := h.service.UpdateQuantity(r.Context(), slug, req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: newCartPayload(cart)})
}

// RemoveItem handles DELETE /api/v1/cart/items/{slug}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	cart, err := h.service.RemoveItem(r.Context(), slug)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: newCartPayload(cart)})
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.Clear(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: newCartPayload(cart)})
}

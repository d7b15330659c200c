package http

import (
	"log/slog"
	"net/http"

	"github.com/Guilhermegg-06/ELDEPARFUM/internal/domain"
	"github.com/Guilhermegg-06/ELDEPARFUM/internal/service"
	"github.com/Guilhermegg-06/ELDEPARFUM/pkg/httputil"
	"github.com/Guilhermegg-06/ELDEPARFUM/pkg/validator"
)

// CheckoutHandler handles the WhatsApp checkout endpoint.
type CheckoutHandler struct {
	cart   *service.CartService
	orders *service.OrderService
	logger *slog.Logger
}

// NewCheckoutHandler creates a new checkout HTTP handler.
func NewCheckoutHandler(cart *service.CartService, orders *service.OrderService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		cart:   cart,
		orders: orders,
		logger: logger,
	}
}

// CheckoutRequest is the JSON request body for WhatsApp checkout. Every
// contact field is optional; when present the enum fields are validated.
type CheckoutRequest struct {
	Name     string `json:"name" validate:"omitempty,max=200"`
	City     string `json:"city" validate:"omitempty,max=200"`
	Delivery string `json:"delivery" validate:"omitempty,oneof=entrega retirada"`
	Payment  string `json:"payment" validate:"omitempty,oneof=combinado credito debito pix"`
}

// CheckoutResponse carries the composed order message and the wa.me link the
// storefront opens.
type CheckoutResponse struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

// Checkout handles POST /api/v1/checkout/whatsapp
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	// A bodyless POST is a plain checkout with no contact block.
	var req CheckoutRequest
	if r.ContentLength != 0 {
		if err := validator.DecodeAndValidate(w, r, &req); err != nil {
			httputil.WriteValidationError(w, err)
			return
		}
	}

	cart, err := h.cart.Get(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	message, link, err := h.orders.ComposeLink(cart, domain.ContactInfo{
		Name:     req.Name,
		City:     req.City,
		Delivery: req.Delivery,
		Payment:  req.Payment,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	h.logger.InfoContext(r.Context(), "whatsapp order composed",
		slog.Int("items", len(cart.Items)),
		slog.Int64("total", cart.Totals().Total),
	)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: CheckoutResponse{
		Message: message,
		Link:    link,
	}})
}

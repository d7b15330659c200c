package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Guilhermegg-06/ELDEPARFUM/internal/domain"
	apperrors "github.com/Guilhermegg-06/ELDEPARFUM/pkg/errors"
)

// OrderService composes WhatsApp order messages. There is no order storage:
// checkout hands the conversation over to WhatsApp and the cart stays intact
// until the customer clears it.
type OrderService struct {
	phone string
}

// NewOrderService creates a new order service. phone is the shop's WhatsApp
// number in international format without the plus sign, e.g. "5511999999999".
func NewOrderService(phone string) *OrderService {
	return &OrderService{phone: phone}
}

// ComposeMessage builds the plain-text order message for the given cart and
// optional contact details. The contact block and its closing request only
// appear when at least one contact field was provided.
func (s *OrderService) ComposeMessage(cart domain.Cart, contact domain.ContactInfo) (string, error) {
	if len(cart.Items) == 0 {
		return "", apperrors.InvalidInput("cart is empty")
	}

	var b strings.Builder
	b.WriteString("Olá! Quero comprar os itens abaixo:\n\n")

	for _, item := range cart.Items {
		fmt.Fprintf(&b, "• %dx %s (%dml) — R$ %s = R$ %s\n",
			item.Quantity,
			item.Name,
			item.ML,
			domain.FormatCents(item.UnitPrice),
			domain.FormatCents(item.LineTotal()),
		)
	}

	totals := cart.Totals()
	fmt.Fprintf(&b, "\n*Total: R$ %s*\n", domain.FormatCents(totals.Total))

	if contact.HasAny() {
		b.WriteString("\n")
		if contact.Name != "" {
			fmt.Fprintf(&b, "Nome: %s\n", contact.Name)
		}
		if contact.City != "" {
			fmt.Fprintf(&b, "Cidade/Bairro: %s\n", contact.City)
		}
		if contact.Delivery != "" {
			fmt.Fprintf(&b, "Entrega/Retirada: %s\n", contact.Delivery)
		}
		if contact.Payment != "" {
			fmt.Fprintf(&b, "Forma de pagamento: %s\n", contact.Payment)
		}
		b.WriteString("\n(Por favor, complete as informações acima)")
	}

	return b.String(), nil
}

// ComposeLink builds the wa.me deep link carrying the order message as the
// pre-filled conversation text.
func (s *OrderService) ComposeLink(cart domain.Cart, contact domain.ContactInfo) (string, string, error) {
	message, err := s.ComposeMessage(cart, contact)
	if err != nil {
		return "", "", err
	}

	return message, "https://wa.me/" + s.phone + "?text=" + encodeURIComponent(message), nil
}

// encodeURIComponent escapes the message the way browsers do: spaces become
// %20, never "+".
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

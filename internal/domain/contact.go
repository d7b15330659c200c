package domain

// Delivery options offered at checkout.
const (
	DeliveryEntrega  = "entrega"
	DeliveryRetirada = "retirada"
)

// Payment preferences offered at checkout. "combinado" means the payment
// method will be arranged over chat.
const (
	PaymentCombinado = "combinado"
	PaymentCredito   = "credito"
	PaymentDebito    = "debito"
	PaymentPix       = "pix"
)

// ContactInfo carries the customer details collected at checkout. It is
// transient: used once to compose the order message and never persisted.
// Every field is optional.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	City     string `json:"city,omitempty"`
	Delivery string `json:"delivery,omitempty"`
	Payment  string `json:"payment,omitempty"`
}

// HasAny reports whether at least one contact field was provided. It decides
// whether the order message carries the contact block.
func (c ContactInfo) HasAny() bool {
	return c.Name != "" || c.City != "" || c.Delivery != "" || c.Payment != ""
}

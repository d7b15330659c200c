package domain

// CartItem is one line of the shopping cart. Name, ML, and UnitPrice are
// captured when the item is first added and never refreshed from the catalog:
// later catalog price changes do not affect items already in the cart.
//
// The JSON tags match the payload layout the storefront has always persisted,
// so carts written by earlier releases keep loading.
type CartItem struct {
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	ML        int    `json:"ml"`
	Quantity  int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"` // centavos
}

// LineTotal returns unit price times quantity, in centavos.
func (i CartItem) LineTotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

// Cart is an ordered collection of line items. Insertion order is
// significant: the first-added item stays first, and the order message lists
// items in this order. At most one item exists per slug.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Totals is the derived money summary of a cart.
type Totals struct {
	Subtotal   int64 `json:"subtotal"`
	Total      int64 `json:"total"`
	TotalItems int   `json:"totalItems"`
}

// Totals computes the cart's subtotal, total, and item count. There is no
// tax or shipping line: shipping is arranged out of band, so total equals
// subtotal.
func (c Cart) Totals() Totals {
	var subtotal int64
	var count int
	for _, item := range c.Items {
		subtotal += item.LineTotal()
		count += item.Quantity
	}
	return Totals{Subtotal: subtotal, Total: subtotal, TotalItems: count}
}

// FindItemIndex returns the index of the line item with the given slug, or -1.
func (c Cart) FindItemIndex(slug string) int {
	for i := range c.Items {
		if c.Items[i].Slug == slug {
			return i
		}
	}
	return -1
}

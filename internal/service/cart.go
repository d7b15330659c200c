package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Guilhermegg-06/ELDEPARFUM/internal/domain"
	"github.com/Guilhermegg-06/ELDEPARFUM/internal/repository"
	apperrors "github.com/Guilhermegg-06/ELDEPARFUM/pkg/errors"
)

// AddItemInput holds the parameters for adding an item to the cart. Name, ML,
// and UnitPrice are snapshotted on first add; a later add of the same slug
// only increases the quantity.
type AddItemInput struct {
	Slug      string `json:"slug" validate:"required"`
	Name      string `json:"name" validate:"required"`
	ML        int    `json:"ml" validate:"gte=0"`
	Quantity  int    `json:"qty" validate:"required,gte=1"`
	UnitPrice int64  `json:"unitPrice" validate:"gte=0"`
}

// ChangeListener observes cart mutations. Listeners run synchronously after
// the new state is persisted, on the caller's goroutine.
type ChangeListener func(cart domain.Cart)

// CartService implements the business logic for the single durable cart. The
// cart is stored as a JSON array of line items under a fixed key, the same
// payload layout the storefront has always written.
type CartService struct {
	store      repository.KV
	storageKey string
	logger     *slog.Logger
	listeners  []ChangeListener
}

// NewCartService creates a new cart service persisting under storageKey.
func NewCartService(store repository.KV, storageKey string, logger *slog.Logger) *CartService {
	return &CartService{
		store:      store,
		storageKey: storageKey,
		logger:     logger,
	}
}

// OnChange registers a listener invoked after every successful mutation.
// Not safe to call concurrently with cart operations; register during setup.
func (s *CartService) OnChange(fn ChangeListener) {
	s.listeners = append(s.listeners, fn)
}

// Get retrieves the current cart. An absent key yields an empty cart. A
// payload that no longer parses also yields an empty cart: a corrupt cart is
// abandoned rather than surfaced as an error.
func (s *CartService) Get(ctx context.Context) (domain.Cart, error) {
	raw, err := s.store.Get(ctx, s.storageKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Cart{Items: []domain.CartItem{}}, nil
		}
		return domain.Cart{}, fmt.Errorf("get cart: %w", err)
	}

	var items []domain.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.WarnContext(ctx, "cart payload is corrupt, resetting to empty",
			slog.String("error", err.Error()),
		)
		return domain.Cart{Items: []domain.CartItem{}}, nil
	}
	if items == nil {
		items = []domain.CartItem{}
	}

	return domain.Cart{Items: items}, nil
}

// AddItem adds an item to the cart. If an item with the same slug exists, the
// quantities are merged and the existing name, ml, and unit price are kept.
// Any positive quantity is accepted; the storefront's per-line display bound
// is enforced at the HTTP boundary, not here.
func (s *CartService) AddItem(ctx context.Context, input AddItemInput) (domain.Cart, error) {
	if input.Slug == "" {
		return domain.Cart{}, apperrors.InvalidInput("slug is required")
	}
	if input.Quantity <= 0 {
		return domain.Cart{}, apperrors.InvalidInput("quantity must be greater than 0")
	}
	if input.UnitPrice < 0 {
		return domain.Cart{}, apperrors.InvalidInput("unit price must not be negative")
	}

	cart, err := s.Get(ctx)
	if err != nil {
		return domain.Cart{}, err
	}

	if i := cart.FindItemIndex(input.Slug); i >= 0 {
		cart.Items[i].Quantity += input.Quantity
	} else {
		cart.Items = append(cart.Items, domain.CartItem{
			Slug:      input.Slug,
			Name:      input.Name,
			ML:        input.ML,
			Quantity:  input.Quantity,
			UnitPrice: input.UnitPrice,
		})
	}

	if err := s.save(ctx, cart); err != nil {
		return domain.Cart{}, err
	}

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("slug", input.Slug),
		slog.Int("quantity", input.Quantity),
	)

	return cart, nil
}

// UpdateQuantity sets the quantity of the item with the given slug. A
// quantity of zero or less removes the item. An unknown slug leaves the items
// untouched but still persists, matching the storefront's historical behavior.
func (s *CartService) UpdateQuantity(ctx context.Context, slug string, quantity int) (domain.Cart, error) {
	if slug == "" {
		return domain.Cart{}, apperrors.InvalidInput("slug is required")
	}

	cart, err := s.Get(ctx)
	if err != nil {
		return domain.Cart{}, err
	}

	if i := cart.FindItemIndex(slug); i >= 0 {
		if quantity <= 0 {
			return s.removeAt(ctx, cart, i, slug)
		}
		cart.Items[i].Quantity = quantity
	}

	if err := s.save(ctx, cart); err != nil {
		return domain.Cart{}, err
	}

	s.logger.InfoContext(ctx, "cart item quantity updated",
		slog.String("slug", slug),
		slog.Int("quantity", quantity),
	)

	return cart, nil
}

// RemoveItem removes the item with the given slug. Removing an absent slug is
// a no-op that still persists the unchanged cart.
func (s *CartService) RemoveItem(ctx context.Context, slug string) (domain.Cart, error) {
	if slug == "" {
		return domain.Cart{}, apperrors.InvalidInput("slug is required")
	}

	cart, err := s.Get(ctx)
	if err != nil {
		return domain.Cart{}, err
	}

	if i := cart.FindItemIndex(slug); i >= 0 {
		return s.removeAt(ctx, cart, i, slug)
	}

	if err := s.save(ctx, cart); err != nil {
		return domain.Cart{}, err
	}

	return cart, nil
}

// Clear empties the cart. The key stays present holding an empty array.
func (s *CartService) Clear(ctx context.Context) (domain.Cart, error) {
	cart := domain.Cart{Items: []domain.CartItem{}}

	if err := s.save(ctx, cart); err != nil {
		return domain.Cart{}, err
	}

	s.logger.InfoContext(ctx, "cart cleared")

	return cart, nil
}

func (s *CartService) removeAt(ctx context.Context, cart domain.Cart, i int, slug string) (domain.Cart, error) {
	cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)

	if err := s.save(ctx, cart); err != nil {
		return domain.Cart{}, err
	}

	s.logger.InfoContext(ctx, "item removed from cart",
		slog.String("slug", slug),
	)

	return cart, nil
}

// save persists the cart and notifies listeners of the new state.
func (s *CartService) save(ctx context.Context, cart domain.Cart) error {
	payload, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	if err := s.store.Set(ctx, s.storageKey, string(payload)); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}

	for _, fn := range s.listeners {
		fn(cart)
	}

	return nil
}

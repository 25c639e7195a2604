package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"shop-backend/internal/models"
	"shop-backend/internal/store"
	"shop-backend/internal/util"
)

// Add-to-cart outcomes reported to the client
const (
	StatusAdded   = "added"
	StatusUpdated = "updated"
	StatusRemoved = "removed"
)

// CartStore is the slice of the document store the cart reads and writes
type CartStore interface {
	FindCartItem(ctx context.Context, cartID, productID string) (*store.CartItemRecord, error)
	InsertCartItem(ctx context.Context, item models.CartItem) (string, error)
	AddCartItemQuantity(ctx context.Context, id string, delta int) error
	ListCartItems(ctx context.Context, cartID string) ([]store.CartItemRecord, error)
	DeleteCartItem(ctx context.Context, id string) error
	GetProductByID(ctx context.Context, id string) (*store.ProductRecord, error)
}

// CartEntry is one row of a cart view, the stored row joined to its
// product document
type CartEntry struct {
	ID       string              `json:"id"`
	Product  store.ProductRecord `json:"product"`
	Quantity int                 `json:"quantity"`
}

// CartService handles the session-keyed shopping cart
type CartService struct {
	store  CartStore
	logger *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(st CartStore) *CartService {
	return &CartService{
		store:  st,
		logger: util.GetLogger(),
	}
}

// AddToCart inserts a row for (cart, product) or increments the existing
// row's quantity. The read-then-write pair is not guarded against a
// concurrent identical request, so one of two simultaneous adds can lose
// its increment; carts are best-effort session state and this is accepted.
func (s *CartService) AddToCart(ctx context.Context, item models.CartItem) (string, error) {
	ctx, span := util.StartSpan(ctx, "CartService.AddToCart")
	defer span.End()

	existing, err := s.store.FindCartItem(ctx, item.CartID, item.ProductID)
	switch {
	case err == nil:
		if err := s.store.AddCartItemQuantity(ctx, existing.ID, item.Quantity); err != nil {
			return "", fmt.Errorf("failed to update cart item: %w", err)
		}
		util.CartAddsTotal.WithLabelValues(StatusUpdated).Inc()
		return StatusUpdated, nil

	case errors.Is(err, store.ErrNotFound):
		if _, err := s.store.InsertCartItem(ctx, item); err != nil {
			return "", fmt.Errorf("failed to insert cart item: %w", err)
		}
		util.CartAddsTotal.WithLabelValues(StatusAdded).Inc()
		s.logger.Info("Cart item added",
			zap.String("cart_id", item.CartID),
			zap.String("product_id", item.ProductID))
		return StatusAdded, nil

	default:
		return "", fmt.Errorf("failed to look up cart item: %w", err)
	}
}

// GetCart returns the cart's rows joined to their product documents. Rows
// whose product cannot be resolved are dropped from the view, not
// reported as errors.
func (s *CartService) GetCart(ctx context.Context, cartID string) ([]CartEntry, error) {
	ctx, span := util.StartSpan(ctx, "CartService.GetCart")
	defer span.End()

	items, err := s.store.ListCartItems(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	entries := make([]CartEntry, 0, len(items))
	for _, item := range items {
		product, err := s.resolveProduct(ctx, item)
		if err != nil {
			return nil, err
		}
		if product == nil {
			continue
		}
		entries = append(entries, CartEntry{
			ID:       item.ID,
			Product:  *product,
			Quantity: item.Quantity,
		})
	}
	return entries, nil
}

// RemoveFromCart deletes a cart row by its own identifier
func (s *CartService) RemoveFromCart(ctx context.Context, itemID string) error {
	ctx, span := util.StartSpan(ctx, "CartService.RemoveFromCart")
	defer span.End()

	if err := s.store.DeleteCartItem(ctx, itemID); err != nil {
		return fmt.Errorf("failed to remove cart item %q: %w", itemID, err)
	}
	util.CartRemovesTotal.Inc()
	return nil
}

// resolveProduct looks up a row's product. A missing or unparseable
// product reference returns (nil, nil): stale rows stay in the store but
// vanish from views, which is the documented policy.
func (s *CartService) resolveProduct(ctx context.Context, item store.CartItemRecord) (*store.ProductRecord, error) {
	product, err := s.store.GetProductByID(ctx, item.ProductID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidID) {
			util.CartItemsDroppedTotal.Inc()
			s.logger.Warn("Dropping cart row with unresolvable product",
				zap.String("cart_id", item.CartID),
				zap.String("product_id", item.ProductID))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve product %q: %w", item.ProductID, err)
	}
	return product, nil
}

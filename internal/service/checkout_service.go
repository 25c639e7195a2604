package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"shop-backend/internal/models"
	"shop-backend/internal/store"
	"shop-backend/internal/util"
)

// taxRate is the entire pricing policy: a fixed 8% applied to every quote
const taxRate = 0.08

// CheckoutStore is the slice of the document store checkout reads from
type CheckoutStore interface {
	ListCartItems(ctx context.Context, cartID string) ([]store.CartItemRecord, error)
	GetProductByID(ctx context.Context, id string) (*store.ProductRecord, error)
}

// Quote is a checkout calculation. Nothing is persisted; no Order is
// created anywhere in this service.
type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

// CheckoutService computes flat-rate checkout quotes from cart contents
type CheckoutService struct {
	store  CheckoutStore
	logger *zap.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(st CheckoutStore) *CheckoutService {
	return &CheckoutService{
		store:  st,
		logger: util.GetLogger(),
	}
}

// Checkout derives a quote from the cart's current rows. Rows whose
// product cannot be resolved contribute zero, matching the cart view.
func (s *CheckoutService) Checkout(ctx context.Context, cartID string) (*Quote, error) {
	ctx, span := util.StartSpan(ctx, "CheckoutService.Checkout")
	defer span.End()

	items, err := s.store.ListCartItems(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	var subtotal float64
	for _, item := range items {
		product, err := s.store.GetProductByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidID) {
				util.CartItemsDroppedTotal.Inc()
				continue
			}
			return nil, fmt.Errorf("failed to resolve product %q: %w", item.ProductID, err)
		}
		subtotal += product.Price * float64(item.Quantity)
	}

	util.CheckoutsTotal.Inc()
	s.logger.Info("Checkout quote computed",
		zap.String("cart_id", cartID),
		zap.Float64("subtotal", subtotal))

	return &Quote{
		Subtotal: round2(subtotal),
		Total:    round2(subtotal * (1 + taxRate)),
		Currency: models.DefaultCurrency,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

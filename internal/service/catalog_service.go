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

// CatalogStore is the slice of the document store the catalog reads from
type CatalogStore interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListProducts(ctx context.Context, filter store.ProductFilter) ([]store.ProductRecord, error)
	GetProductByID(ctx context.Context, id string) (*store.ProductRecord, error)
}

// CatalogService serves read-only category and product queries
type CatalogService struct {
	store  CatalogStore
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(st CatalogStore) *CatalogService {
	return &CatalogService{
		store:  st,
		logger: util.GetLogger(),
	}
}

// ListCategories returns all categories without their identifiers
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.ListCategories")
	defer span.End()

	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// ListProducts returns products matching the optional category and title
// query, each with its identifier
func (s *CatalogService) ListProducts(ctx context.Context, category, query string) ([]store.ProductRecord, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.ListProducts")
	defer span.End()

	products, err := s.store.ListProducts(ctx, store.ProductFilter{Category: category, Query: query})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		products = []store.ProductRecord{}
	}
	return products, nil
}

// GetProduct looks a product up by id. A malformed id is externally
// indistinguishable from a missing product: both report ErrNotFound.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*store.ProductRecord, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.GetProduct")
	defer span.End()

	product, err := s.store.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			util.ProductLookupsFailedTotal.WithLabelValues("invalid_id").Inc()
			s.logger.Debug("Rejected malformed product id", zap.String("id", id))
			return nil, fmt.Errorf("product %q: %w", id, store.ErrNotFound)
		}
		if errors.Is(err, store.ErrNotFound) {
			util.ProductLookupsFailedTotal.WithLabelValues("not_found").Inc()
		}
		return nil, fmt.Errorf("failed to get product %q: %w", id, err)
	}
	return product, nil
}

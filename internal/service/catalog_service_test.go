package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-backend/internal/models"
	"shop-backend/internal/store"
)

func TestListCategories(t *testing.T) {
	st := newMockStore()
	st.categories = []models.Category{
		{Name: "Tech", Slug: "tech"},
		{Name: "Featured", Slug: "featured"},
	}
	svc := NewCatalogService(st)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}

func TestListCategoriesEmptyIsNotNil(t *testing.T) {
	svc := NewCatalogService(newMockStore())

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestListProductsForwardsFilter(t *testing.T) {
	st := newMockStore()
	svc := NewCatalogService(st)

	_, err := svc.ListProducts(context.Background(), "tech", "ear")
	require.NoError(t, err)
	assert.Equal(t, store.ProductFilter{Category: "tech", Query: "ear"}, st.lastFilter)
}

func TestListProductsEmptyIsNotNil(t *testing.T) {
	svc := NewCatalogService(newMockStore())

	products, err := svc.ListProducts(context.Background(), "", "")
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestGetProduct(t *testing.T) {
	st := newMockStore()
	st.addProduct("p1", models.Product{Title: "Mug", Price: 24})
	svc := NewCatalogService(st)

	product, err := svc.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
	assert.Equal(t, "Mug", product.Title)
}

func TestGetProductMissing(t *testing.T) {
	svc := NewCatalogService(newMockStore())

	_, err := svc.GetProduct(context.Background(), "p1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetProductMalformedIDCollapsesToNotFound(t *testing.T) {
	st := newMockStore()
	st.getErr = store.ErrInvalidID
	svc := NewCatalogService(st)

	_, err := svc.GetProduct(context.Background(), "###")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.NotErrorIs(t, err, store.ErrInvalidID)
}

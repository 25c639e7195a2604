package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop-backend/internal/models"
)

func TestProductQueryEmpty(t *testing.T) {
	q := productQuery(ProductFilter{})
	assert.Empty(t, q)
}

func TestProductQueryCategory(t *testing.T) {
	q := productQuery(ProductFilter{Category: "tech"})

	assert.Len(t, q, 1)
	assert.Equal(t, "tech", q["category"])
}

func TestProductQueryTitle(t *testing.T) {
	q := productQuery(ProductFilter{Query: "ear"})

	require.Len(t, q, 1)
	regex, ok := q["title"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "ear", regex.Pattern)
	assert.Equal(t, "i", regex.Options)
}

func TestProductQueryQuotesMetacharacters(t *testing.T) {
	q := productQuery(ProductFilter{Query: "a.b*"})

	regex, ok := q["title"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, `a\.b\*`, regex.Pattern)
}

func TestProductQueryConjunction(t *testing.T) {
	q := productQuery(ProductFilter{Category: "tech", Query: "ear"})

	assert.Len(t, q, 2)
	assert.Equal(t, "tech", q["category"])
	assert.Contains(t, q, "title")
}

func TestIDFilterRoundTrip(t *testing.T) {
	oid := primitive.NewObjectID()

	filter, err := idFilter(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, filter["_id"])
}

func TestIDFilterRejectsMalformed(t *testing.T) {
	for _, id := range []string{"", "xyz", "not-a-hex-string", "0123456789"} {
		_, err := idFilter(id)
		assert.ErrorIs(t, err, ErrInvalidID, "id %q", id)
	}
}

func TestNilStoreReportsUnavailable(t *testing.T) {
	var s *Store
	ctx := context.Background()

	assert.ErrorIs(t, s.Ping(ctx), ErrStoreUnavailable)

	_, err := s.InsertOne(ctx, CollProducts, models.Product{Title: "x"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = s.ListCategories(ctx)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = s.CountProducts(ctx)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = s.ListCollections(ctx)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = s.FindCartItem(ctx, "c1", "p1")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestNilStoreCloseIsNoOp(t *testing.T) {
	var s *Store
	assert.NoError(t, s.Close(context.Background()))
}

func TestCartItemLifecycle(t *testing.T) {
	// Integration test - requires a running MongoDB instance
	t.Skip("Integration test - requires document store")

	s, err := NewStore("mongodb://localhost:27017", "shop_test")
	require.NoError(t, err)
	defer s.Close(context.Background())

	ctx := context.Background()

	id, err := s.InsertCartItem(ctx, models.CartItem{CartID: "c1", ProductID: "p1", Quantity: 1})
	require.NoError(t, err)

	found, err := s.FindCartItem(ctx, "c1", "p1")
	require.NoError(t, err)
	assert.Equal(t, id, found.ID)

	require.NoError(t, s.AddCartItemQuantity(ctx, id, 2))

	found, err = s.FindCartItem(ctx, "c1", "p1")
	require.NoError(t, err)
	assert.Equal(t, 3, found.Quantity)

	require.NoError(t, s.DeleteCartItem(ctx, id))
	assert.ErrorIs(t, s.DeleteCartItem(ctx, id), ErrNotFound)
}

package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop-backend/internal/models"
)

// CartItemRecord pairs a cart item with its store-assigned identifier.
// Removal addresses rows by this id, not by product.
type CartItemRecord struct {
	ID string `json:"id"`
	models.CartItem
}

type cartItemDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	models.CartItem `bson:",inline"`
}

// FindCartItem returns the row for a (cart, product) pair, or ErrNotFound
func (s *Store) FindCartItem(ctx context.Context, cartID, productID string) (*CartItemRecord, error) {
	filter := bson.M{"cart_id": cartID, "product_id": productID}
	var doc cartItemDoc
	if err := s.FindOne(ctx, CollCartItems, filter, &doc); err != nil {
		return nil, err
	}
	record := CartItemRecord{ID: doc.ID.Hex(), CartItem: doc.CartItem}
	return &record, nil
}

// InsertCartItem stores a new cart row and returns its id
func (s *Store) InsertCartItem(ctx context.Context, item models.CartItem) (string, error) {
	return s.InsertOne(ctx, CollCartItems, item)
}

// AddCartItemQuantity increments a row's quantity by delta
func (s *Store) AddCartItemQuantity(ctx context.Context, id string, delta int) error {
	filter, err := idFilter(id)
	if err != nil {
		return err
	}
	return s.UpdateOne(ctx, CollCartItems, filter, bson.M{"$inc": bson.M{"quantity": delta}})
}

// ListCartItems returns every row for a cart in the store's natural order
func (s *Store) ListCartItems(ctx context.Context, cartID string) ([]CartItemRecord, error) {
	var docs []cartItemDoc
	if err := s.Find(ctx, CollCartItems, bson.M{"cart_id": cartID}, &docs); err != nil {
		return nil, err
	}
	records := make([]CartItemRecord, len(docs))
	for i, doc := range docs {
		records[i] = CartItemRecord{ID: doc.ID.Hex(), CartItem: doc.CartItem}
	}
	return records, nil
}

// DeleteCartItem removes a row by its own identifier, reporting
// ErrInvalidID for unparseable ids and ErrNotFound when no row matches
func (s *Store) DeleteCartItem(ctx context.Context, id string) error {
	filter, err := idFilter(id)
	if err != nil {
		return err
	}
	deleted, err := s.DeleteOne(ctx, CollCartItems, filter)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

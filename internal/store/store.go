package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names match the original deployment's data, singular form.
const (
	CollCategories = "category"
	CollProducts   = "product"
	CollCartItems  = "cartitem"
)

var (
	ErrNotFound         = errors.New("document not found")
	ErrInvalidID        = errors.New("invalid document id")
	ErrStoreUnavailable = errors.New("document store unavailable")
)

// Store is the process-wide gateway to the document database, created once
// at startup and shared by all requests. A nil *Store is valid: every
// operation on it fails fast with ErrStoreUnavailable, which keeps the
// process serving when DATABASE_URL is not configured.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore connects to the document database and verifies the connection
func NewStore(uri, database string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping document store: %w", err)
	}

	return &Store{client: client, db: client.Database(database)}, nil
}

// Close disconnects the underlying client
func (s *Store) Close(ctx context.Context) error {
	if s == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// Ping verifies the store is reachable
func (s *Store) Ping(ctx context.Context) error {
	if s == nil {
		return ErrStoreUnavailable
	}
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// InsertOne stores a document and returns its assigned id as a string
func (s *Store) InsertOne(ctx context.Context, coll string, doc interface{}) (string, error) {
	if s == nil {
		return "", ErrStoreUnavailable
	}
	res, err := s.db.Collection(coll).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", coll, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected id type %T from %s", res.InsertedID, coll)
	}
	return oid.Hex(), nil
}

// InsertMany stores a batch of documents and returns their assigned ids
func (s *Store) InsertMany(ctx context.Context, coll string, docs []interface{}) ([]string, error) {
	if s == nil {
		return nil, ErrStoreUnavailable
	}
	res, err := s.db.Collection(coll).InsertMany(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", coll, err)
	}
	ids := make([]string, 0, len(res.InsertedIDs))
	for _, id := range res.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok {
			ids = append(ids, oid.Hex())
		}
	}
	return ids, nil
}

// Find decodes every document matching filter into out, which must be a
// pointer to a slice
func (s *Store) Find(ctx context.Context, coll string, filter bson.M, out interface{}) error {
	if s == nil {
		return ErrStoreUnavailable
	}
	cursor, err := s.db.Collection(coll).Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", coll, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s documents: %w", coll, err)
	}
	return nil
}

// FindOne decodes the first document matching filter into out, reporting
// ErrNotFound when nothing matches
func (s *Store) FindOne(ctx context.Context, coll string, filter bson.M, out interface{}) error {
	if s == nil {
		return ErrStoreUnavailable
	}
	err := s.db.Collection(coll).FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", coll, err)
	}
	return nil
}

// UpdateOne applies update to the first document matching filter
func (s *Store) UpdateOne(ctx context.Context, coll string, filter, update bson.M) error {
	if s == nil {
		return ErrStoreUnavailable
	}
	if _, err := s.db.Collection(coll).UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to update %s: %w", coll, err)
	}
	return nil
}

// DeleteOne removes the first document matching filter and returns how
// many documents were deleted (0 or 1)
func (s *Store) DeleteOne(ctx context.Context, coll string, filter bson.M) (int64, error) {
	if s == nil {
		return 0, ErrStoreUnavailable
	}
	res, err := s.db.Collection(coll).DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete from %s: %w", coll, err)
	}
	return res.DeletedCount, nil
}

// Count returns the number of documents matching filter
func (s *Store) Count(ctx context.Context, coll string, filter bson.M) (int64, error) {
	if s == nil {
		return 0, ErrStoreUnavailable
	}
	n, err := s.db.Collection(coll).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", coll, err)
	}
	return n, nil
}

// ListCollections returns the collection names present in the database
func (s *Store) ListCollections(ctx context.Context) ([]string, error) {
	if s == nil {
		return nil, ErrStoreUnavailable
	}
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

// idFilter converts an externally supplied id back into a primary-key
// filter. Identifier parsing stays inside this package so the ObjectID
// type never leaks into business logic.
func idFilter(id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return bson.M{"_id": oid}, nil
}

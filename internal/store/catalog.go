package store

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop-backend/internal/models"
)

// ProductRecord pairs a product with its store-assigned identifier,
// surfaced as an opaque string.
type ProductRecord struct {
	ID string `json:"id"`
	models.Product
}

type productDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	models.Product `bson:",inline"`
}

// ProductFilter narrows a product listing. Zero values select everything.
type ProductFilter struct {
	Category string
	Query    string
}

// productQuery builds the conjunctive filter for a listing: exact match on
// the category slug, case-insensitive substring match on the title. The
// query string is quoted so user input is never interpreted as a pattern.
func productQuery(f ProductFilter) bson.M {
	q := bson.M{}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.Query != "" {
		q["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Query), Options: "i"}
	}
	return q
}

// ListCategories returns every category document, identifiers stripped
func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.Find(ctx, CollCategories, bson.M{}, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CountCategories returns the number of category documents
func (s *Store) CountCategories(ctx context.Context) (int64, error) {
	return s.Count(ctx, CollCategories, bson.M{})
}

// InsertCategories stores a batch of categories
func (s *Store) InsertCategories(ctx context.Context, categories []models.Category) error {
	docs := make([]interface{}, len(categories))
	for i := range categories {
		docs[i] = categories[i]
	}
	_, err := s.InsertMany(ctx, CollCategories, docs)
	return err
}

// ListProducts returns the products matching filter in the store's
// natural order
func (s *Store) ListProducts(ctx context.Context, filter ProductFilter) ([]ProductRecord, error) {
	var docs []productDoc
	if err := s.Find(ctx, CollProducts, productQuery(filter), &docs); err != nil {
		return nil, err
	}
	records := make([]ProductRecord, len(docs))
	for i, doc := range docs {
		records[i] = ProductRecord{ID: doc.ID.Hex(), Product: doc.Product}
	}
	return records, nil
}

// GetProductByID looks a product up by its identifier, reporting
// ErrInvalidID for unparseable ids and ErrNotFound for missing documents
func (s *Store) GetProductByID(ctx context.Context, id string) (*ProductRecord, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	var doc productDoc
	if err := s.FindOne(ctx, CollProducts, filter, &doc); err != nil {
		return nil, err
	}
	record := ProductRecord{ID: doc.ID.Hex(), Product: doc.Product}
	return &record, nil
}

// CountProducts returns the number of product documents
func (s *Store) CountProducts(ctx context.Context) (int64, error) {
	return s.Count(ctx, CollProducts, bson.M{})
}

// InsertProducts stores a batch of products
func (s *Store) InsertProducts(ctx context.Context, products []models.Product) error {
	docs := make([]interface{}, len(products))
	for i := range products {
		docs[i] = products[i]
	}
	_, err := s.InsertMany(ctx, CollProducts, docs)
	return err
}

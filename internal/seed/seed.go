package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"shop-backend/internal/models"
	"shop-backend/internal/util"
)

// Store is the slice of the document store seeding needs
type Store interface {
	CountCategories(ctx context.Context) (int64, error)
	InsertCategories(ctx context.Context, categories []models.Category) error
	CountProducts(ctx context.Context) (int64, error)
	InsertProducts(ctx context.Context, products []models.Product) error
}

var defaultCategories = []models.Category{
	{Name: "Featured", Slug: "featured", Description: "Editor's picks"},
	{Name: "Accessories", Slug: "accessories", Description: "Bags & more"},
	{Name: "Tech", Slug: "tech", Description: "Gadgets & gear"},
}

var defaultProducts = []models.Product{
	{
		Title:          "Aurora Leather Tote",
		Description:    "Premium full-grain leather tote with magnetic closure.",
		Price:          189,
		CompareAtPrice: 249,
		Category:       "accessories",
		Images:         []string{"https://images.unsplash.com/photo-1548036328-c9fa89d128fa?q=80&w=1200&auto=format&fit=crop"},
		Rating:         4.9,
		InStock:        true,
		Tags:           []string{"bag", "leather", "tote"},
	},
	{
		Title:          "Nebula Wireless Earbuds",
		Description:    "Active noise cancelation with 36h battery life.",
		Price:          129,
		CompareAtPrice: 159,
		Category:       "tech",
		Images:         []string{"https://images.unsplash.com/photo-1590658268037-6bf12165a8df?q=80&w=1200&auto=format&fit=crop"},
		Rating:         4.7,
		InStock:        true,
		Tags:           []string{"audio", "wireless"},
	},
	{
		Title:       "Orbit Ceramic Mug",
		Description: "Matte ceramic with heat-retaining double wall.",
		Price:       24,
		Category:    "featured",
		Images:      []string{"https://images.unsplash.com/photo-1504754524776-8f4f37790ca0?q=80&w=1200&auto=format&fit=crop"},
		Rating:      4.8,
		InStock:     true,
		Tags:        []string{"mug", "ceramic"},
	},
}

// Run inserts the demo catalog into empty collections. Each collection is
// count-guarded, so running this on every process start is a no-op once
// data exists.
func Run(ctx context.Context, st Store) error {
	logger := util.GetLogger()

	n, err := st.CountCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if n == 0 {
		if err := st.InsertCategories(ctx, defaultCategories); err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}
		util.DocumentsSeededTotal.Add(float64(len(defaultCategories)))
		logger.Info("Seeded categories", zap.Int("count", len(defaultCategories)))
	}

	n, err = st.CountProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if n == 0 {
		if err := st.InsertProducts(ctx, defaultProducts); err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
		util.DocumentsSeededTotal.Add(float64(len(defaultProducts)))
		logger.Info("Seeded products", zap.Int("count", len(defaultProducts)))
	}

	return nil
}

package models

// Category is a catalog grouping addressed by its URL-safe slug. The
// store-assigned identifier is never exposed for categories, so the type
// carries business fields only.
type Category struct {
	Name        string `bson:"name" json:"name"`
	Slug        string `bson:"slug" json:"slug"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Image       string `bson:"image,omitempty" json:"image,omitempty"`
}

// Product is a catalog entry. Category is a loose slug reference to a
// Category document; nothing enforces it.
type Product struct {
	Title          string   `bson:"title" json:"title"`
	Description    string   `bson:"description,omitempty" json:"description,omitempty"`
	Price          float64  `bson:"price" json:"price"`
	CompareAtPrice float64  `bson:"compare_at_price,omitempty" json:"compare_at_price,omitempty"`
	Category       string   `bson:"category" json:"category"`
	Images         []string `bson:"images" json:"images"`
	Rating         float64  `bson:"rating" json:"rating"`
	InStock        bool     `bson:"in_stock" json:"in_stock"`
	Tags           []string `bson:"tags" json:"tags"`
}

// CartItem groups a quantity of one product under a client-chosen session
// key. The (CartID, ProductID) pair is logically unique; a repeated add
// increments the existing row instead of inserting a duplicate.
type CartItem struct {
	CartID    string `bson:"cart_id" json:"cart_id"`
	ProductID string `bson:"product_id" json:"product_id"`
	Quantity  int    `bson:"quantity" json:"quantity"`
}

// Order is schema only. No operation in this service writes one; checkout
// returns a quote without persisting anything.
type Order struct {
	CartID   string     `bson:"cart_id" json:"cart_id"`
	Items    []CartItem `bson:"items" json:"items"`
	Subtotal float64    `bson:"subtotal" json:"subtotal"`
	Total    float64    `bson:"total" json:"total"`
	Currency string     `bson:"currency" json:"currency"`
	Status   string     `bson:"status" json:"status"`
}

const (
	OrderStatusProcessing = "processing"
	DefaultCurrency       = "USD"
)

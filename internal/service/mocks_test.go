package service

import (
	"context"
	"fmt"
	"sync"

	"shop-backend/internal/models"
	"shop-backend/internal/store"
)

// mockStore is an in-memory stand-in for the document store, shared by
// the catalog, cart and checkout tests.
type mockStore struct {
	mu         sync.Mutex
	categories []models.Category
	products   map[string]store.ProductRecord
	items      []store.CartItemRecord
	nextID     int

	lastFilter store.ProductFilter
	listErr    error
	getErr     error
	findErr    error
	deleteErr  error
}

func newMockStore() *mockStore {
	return &mockStore{products: make(map[string]store.ProductRecord)}
}

func (m *mockStore) addProduct(id string, p models.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[id] = store.ProductRecord{ID: id, Product: p}
}

func (m *mockStore) ListCategories(context.Context) ([]models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.categories, nil
}

func (m *mockStore) ListProducts(_ context.Context, filter store.ProductFilter) ([]store.ProductRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastFilter = filter
	if m.listErr != nil {
		return nil, m.listErr
	}
	records := make([]store.ProductRecord, 0, len(m.products))
	for _, record := range m.products {
		records = append(records, record)
	}
	return records, nil
}

func (m *mockStore) GetProductByID(_ context.Context, id string) (*store.ProductRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	record, ok := m.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &record, nil
}

func (m *mockStore) FindCartItem(_ context.Context, cartID, productID string) (*store.CartItemRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, item := range m.items {
		if item.CartID == cartID && item.ProductID == productID {
			found := item
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockStore) InsertCartItem(_ context.Context, item models.CartItem) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	id := fmt.Sprintf("item-%d", m.nextID)
	m.items = append(m.items, store.CartItemRecord{ID: id, CartItem: item})
	return id, nil
}

func (m *mockStore) AddCartItemQuantity(_ context.Context, id string, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Quantity += delta
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *mockStore) ListCartItems(_ context.Context, cartID string) ([]store.CartItemRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	var rows []store.CartItemRecord
	for _, item := range m.items {
		if item.CartID == cartID {
			rows = append(rows, item)
		}
	}
	return rows, nil
}

func (m *mockStore) DeleteCartItem(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i, item := range m.items {
		if item.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

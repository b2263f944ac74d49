package product

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is a mutex-guarded in-memory implementation of the
// repository port. It backs unit tests and local runs without a database.
type MemoryRepository struct {
	mu       sync.RWMutex
	products map[uuid.UUID]Product
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{products: make(map[uuid.UUID]Product)}
}

var _ Repository = (*MemoryRepository)(nil)

func (r *MemoryRepository) GetAll(_ context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, p)
	}

	// Matches the SQL adapter's listing order.
	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})

	return products, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (Product, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, found := r.products[id]
	return product, found, nil
}

func (r *MemoryRepository) Add(_ context.Context, product Product) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.ID]; exists {
		return uuid.Nil, &PersistenceError{Op: "insert product", Err: ErrDuplicateID}
	}

	r.products[product.ID] = product
	return product.ID, nil
}

func (r *MemoryRepository) Update(_ context.Context, product Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.ID]; !exists {
		return ErrNotFound
	}

	r.products[product.ID] = product
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[id]; !exists {
		return false, nil
	}

	delete(r.products, id)
	return true, nil
}

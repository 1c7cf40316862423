package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/foodflow/backend/internal/domain/catalog"
	"github.com/foodflow/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository is a mutex-guarded in-memory catalog.ProductRepository
type ProductRepository struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*catalog.Product
}

// NewProductRepository creates an empty in-memory product repository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: make(map[uuid.UUID]*catalog.Product)}
}

func (r *ProductRepository) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return product, nil
}

// FindByVenue returns the venue's products in catalog order
func (r *ProductRepository) FindByVenue(_ context.Context, venueID uuid.UUID) ([]*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*catalog.Product
	for _, product := range r.products {
		if product.VenueID == venueID {
			result = append(result, product)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].SortOrder < result[j].SortOrder
	})
	return result, nil
}

func (r *ProductRepository) Save(_ context.Context, product *catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ID] = product
	return nil
}

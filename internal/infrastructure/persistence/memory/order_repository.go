// Package memory provides in-process repository implementations. They back
// the composition root and tests until a durable store is plugged in behind
// the same interfaces.
package memory

import (
	"context"
	"sync"

	"github.com/foodflow/backend/internal/domain/ordering"
	"github.com/foodflow/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderRepository is a mutex-guarded in-memory ordering.Repository
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*ordering.Order
}

// NewOrderRepository creates an empty in-memory order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[uuid.UUID]*ordering.Order)}
}

func (r *OrderRepository) FindByID(_ context.Context, id uuid.UUID) (*ordering.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return order, nil
}

func (r *OrderRepository) FindOpenByTable(_ context.Context, venueID, tableID uuid.UUID) (*ordering.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, order := range r.orders {
		if order.VenueID == venueID && order.TableID == tableID && order.IsOpen() {
			return order, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *OrderRepository) Save(_ context.Context, order *ordering.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = order
	return nil
}

package ordering

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence boundary for orders.
// The engine receives and returns plain in-memory aggregates;
// implementations live outside this module.
type Repository interface {
	// FindByID finds an order by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindOpenByTable finds the open order for a table, if any
	FindOpenByTable(ctx context.Context, venueID, tableID uuid.UUID) (*Order, error)

	// Save creates or updates an order
	Save(ctx context.Context, order *Order) error
}

package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product lookup.
// Implementations live outside this module; the pricing core only
// reads products to snapshot them onto order lines.
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByVenue finds all active products for a venue in menu order
	FindByVenue(ctx context.Context, venueID uuid.UUID) ([]*Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error
}

package promotion

import (
	"context"

	"github.com/google/uuid"
)

// Provider supplies the active promotions for a venue.
// It is read-only to the pricing engine and consulted fresh before
// every recompute; implementations live outside this module.
type Provider interface {
	ActiveForVenue(ctx context.Context, venueID uuid.UUID) ([]*Promotion, error)
}

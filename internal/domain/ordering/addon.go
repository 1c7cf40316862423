package ordering

import (
	"github.com/foodflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Addon is an extra ordered with a line, priced per unit of the line.
// Name and price are frozen at ordering time; add-ons are never
// touched by promotional or manual discounts.
type Addon struct {
	ID    uuid.UUID
	Name  string
	Price decimal.Decimal
}

// NewAddon creates an addon snapshot
func NewAddon(id uuid.UUID, name string, price decimal.Decimal) (Addon, error) {
	if name == "" {
		return Addon{}, shared.NewDomainError("INVALID_ADDON", "Addon name cannot be empty")
	}
	if price.IsNegative() {
		return Addon{}, shared.NewDomainError("INVALID_ADDON", "Addon price cannot be negative")
	}
	return Addon{ID: id, Name: name, Price: price}, nil
}

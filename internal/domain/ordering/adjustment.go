package ordering

import (
	"github.com/shopspring/decimal"
)

// AdjustmentOrigin says where a discount came from
type AdjustmentOrigin string

const (
	AdjustmentPromotion AdjustmentOrigin = "promotion"
	AdjustmentManual    AdjustmentOrigin = "manual"
)

// AdjustmentScope says what a discount was applied to
type AdjustmentScope string

const (
	AdjustmentScopeLine  AdjustmentScope = "line"
	AdjustmentScopeOrder AdjustmentScope = "order_total"
)

// Adjustment is one concrete discount as it will appear on the ticket.
// Built on demand from the order's current state, never mutated.
type Adjustment struct {
	Origin      AdjustmentOrigin
	Scope       AdjustmentScope
	Description string
	Amount      decimal.Decimal
}

// Description fallbacks for adjustments whose source carries no name
// or reason. The POS runs in Spanish.
const (
	descriptionPromotion    = "Promoción"
	descriptionManual       = "Descuento manual"
	descriptionGlobalManual = "Descuento global"
)

package ordering

import (
	"time"

	"github.com/foodflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountMode distinguishes percentage from fixed-amount manual discounts
type DiscountMode string

const (
	DiscountPercentage  DiscountMode = "percentage"
	DiscountFixedAmount DiscountMode = "fixed_amount"
)

var oneHundred = decimal.NewFromInt(100)

// ManualDiscount is an operator-granted discount. It is stateless:
// the amount is recomputed against whatever base remains after
// promotions every time it is asked for.
type ManualDiscount struct {
	Mode      DiscountMode
	Value     decimal.Decimal
	Reason    string
	AppliedBy uuid.UUID
	AppliedAt time.Time
}

// NewPercentageManualDiscount creates a percentage discount, value in (0, 100]
func NewPercentageManualDiscount(value decimal.Decimal, reason string, appliedBy uuid.UUID, appliedAt time.Time) (*ManualDiscount, error) {
	if !value.IsPositive() || value.GreaterThan(oneHundred) {
		return nil, shared.NewDomainError("INVALID_PERCENTAGE", "Percentage must be greater than 0 and at most 100")
	}
	return &ManualDiscount{
		Mode:      DiscountPercentage,
		Value:     value,
		Reason:    reason,
		AppliedBy: appliedBy,
		AppliedAt: appliedAt,
	}, nil
}

// NewFixedAmountManualDiscount creates a fixed-amount discount, value > 0
func NewFixedAmountManualDiscount(value decimal.Decimal, reason string, appliedBy uuid.UUID, appliedAt time.Time) (*ManualDiscount, error) {
	if !value.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Fixed discount amount must be positive")
	}
	return &ManualDiscount{
		Mode:      DiscountFixedAmount,
		Value:     value,
		Reason:    reason,
		AppliedBy: appliedBy,
		AppliedAt: appliedAt,
	}, nil
}

// Amount computes the discount for the given base. Percentages round
// half up to 2 decimals; fixed amounts are capped at the base so the
// result never exceeds it.
func (d *ManualDiscount) Amount(base decimal.Decimal) decimal.Decimal {
	if d == nil || base.IsNegative() {
		return decimal.Zero
	}
	switch d.Mode {
	case DiscountPercentage:
		return base.Mul(d.Value).Div(oneHundred).Round(2)
	case DiscountFixedAmount:
		if d.Value.GreaterThan(base) {
			return base.Round(2)
		}
		return d.Value.Round(2)
	default:
		return decimal.Zero
	}
}

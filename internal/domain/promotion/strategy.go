package promotion

import (
	"github.com/foodflow/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// StrategyType identifies the kind of benefit computation
type StrategyType string

const (
	StrategyDirectDiscount    StrategyType = "direct_discount"
	StrategyFixedQuantity     StrategyType = "fixed_quantity"
	StrategyConditionalCombo  StrategyType = "conditional_combo"
	StrategyFixedPricePerPack StrategyType = "fixed_price_per_pack"
)

// DiscountMode distinguishes percentage from fixed-amount benefits
type DiscountMode string

const (
	DiscountPercentage  DiscountMode = "percentage"
	DiscountFixedAmount DiscountMode = "fixed_amount"
)

// Strategy is a benefit computation. The concrete types form a closed
// set; the engine switches over them to supply each one its inputs.
type Strategy interface {
	Type() StrategyType
}

var oneHundred = decimal.NewFromInt(100)

// DirectDiscount grants a flat percentage or fixed amount off a
// beneficiary line's base total.
type DirectDiscount struct {
	Mode  DiscountMode
	Value decimal.Decimal
}

// NewPercentageDiscount creates a percentage direct discount, value in (0, 100]
func NewPercentageDiscount(value decimal.Decimal) (*DirectDiscount, error) {
	if !value.IsPositive() || value.GreaterThan(oneHundred) {
		return nil, shared.NewDomainError("INVALID_PERCENTAGE", "Percentage must be greater than 0 and at most 100")
	}
	return &DirectDiscount{Mode: DiscountPercentage, Value: value}, nil
}

// NewFixedAmountDiscount creates a fixed-amount direct discount, value > 0
func NewFixedAmountDiscount(value decimal.Decimal) (*DirectDiscount, error) {
	if !value.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Fixed discount amount must be positive")
	}
	return &DirectDiscount{Mode: DiscountFixedAmount, Value: value}, nil
}

// Type returns the strategy type tag
func (d *DirectDiscount) Type() StrategyType {
	return StrategyDirectDiscount
}

// AmountFor computes the discount for a base amount. Fixed amounts are
// capped at the base so a line can never go negative.
func (d *DirectDiscount) AmountFor(base decimal.Decimal) decimal.Decimal {
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

// FixedQuantity is the N-for-M strategy: per every buyQuantity units
// taken the customer pays for payQuantity. Leftover units outside a
// complete cycle are charged in full.
type FixedQuantity struct {
	BuyQuantity int
	PayQuantity int
}

// NewFixedQuantity creates the strategy with buy > pay >= 1
func NewFixedQuantity(buyQuantity, payQuantity int) (*FixedQuantity, error) {
	if payQuantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Pay quantity must be at least 1")
	}
	if buyQuantity <= payQuantity {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Buy quantity must be greater than pay quantity")
	}
	return &FixedQuantity{BuyQuantity: buyQuantity, PayQuantity: payQuantity}, nil
}

// Type returns the strategy type tag
func (s *FixedQuantity) Type() StrategyType {
	return StrategyFixedQuantity
}

// AmountFor computes the cycle discount for a line.
// cycles = quantity / buyQuantity, discount = cycles * (buy - pay) * unitPrice.
// A quantity below buyQuantity yields zero.
func (s *FixedQuantity) AmountFor(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	cycles := int64(quantity / s.BuyQuantity)
	if cycles == 0 {
		return decimal.Zero
	}
	freeUnits := decimal.NewFromInt(cycles * int64(s.BuyQuantity-s.PayQuantity))
	return freeUnits.Mul(unitPrice).Round(2)
}

// ConditionalCombo grants a percentage discount on beneficiary lines
// once the order holds enough units of an activator product.
type ConditionalCombo struct {
	MinimumTriggerQuantity int
	BenefitPercentage      decimal.Decimal
}

// NewConditionalCombo creates the strategy with minQuantity >= 1 and
// percentage in (0, 100]
func NewConditionalCombo(minQuantity int, percentage decimal.Decimal) (*ConditionalCombo, error) {
	if minQuantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Minimum trigger quantity must be at least 1")
	}
	if !percentage.IsPositive() || percentage.GreaterThan(oneHundred) {
		return nil, shared.NewDomainError("INVALID_PERCENTAGE", "Percentage must be greater than 0 and at most 100")
	}
	return &ConditionalCombo{MinimumTriggerQuantity: minQuantity, BenefitPercentage: percentage}, nil
}

// Type returns the strategy type tag
func (s *ConditionalCombo) Type() StrategyType {
	return StrategyConditionalCombo
}

// AmountFor computes the benefit for a beneficiary line base.
// The activator quantity requirement is checked by the engine, which
// can see the rest of the order.
func (s *ConditionalCombo) AmountFor(base decimal.Decimal) decimal.Decimal {
	return base.Mul(s.BenefitPercentage).Div(oneHundred).Round(2)
}

// FixedPricePerPack charges a flat price for every complete pack of
// packSize units; leftover units are charged normally.
type FixedPricePerPack struct {
	PackSize  int
	PackPrice decimal.Decimal
}

// NewFixedPricePerPack creates the strategy with packSize >= 2 and packPrice > 0
func NewFixedPricePerPack(packSize int, packPrice decimal.Decimal) (*FixedPricePerPack, error) {
	if packSize < 2 {
		return nil, shared.NewDomainError("INVALID_PACK_SIZE", "Pack size must be at least 2")
	}
	if !packPrice.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Pack price must be positive")
	}
	return &FixedPricePerPack{PackSize: packSize, PackPrice: packPrice}, nil
}

// Type returns the strategy type tag
func (s *FixedPricePerPack) Type() StrategyType {
	return StrategyFixedPricePerPack
}

// AmountFor computes the discount for a line. A pack price above the
// gross pack value yields zero rather than a surcharge.
func (s *FixedPricePerPack) AmountFor(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	cycles := int64(quantity / s.PackSize)
	if cycles == 0 {
		return decimal.Zero
	}
	grossPack := unitPrice.Mul(decimal.NewFromInt(int64(s.PackSize)))
	perPack := grossPack.Sub(s.PackPrice)
	if perPack.IsNegative() {
		return decimal.Zero
	}
	return perPack.Mul(decimal.NewFromInt(cycles)).Round(2)
}

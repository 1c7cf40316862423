package ordering

import (
	"sort"
	"time"

	"github.com/foodflow/backend/internal/domain/promotion"
	"github.com/shopspring/decimal"
)

// TieBreak decides the order of promotions sharing a priority
type TieBreak string

const (
	// TieBreakCatalogOrder keeps the provider's ordering (the default)
	TieBreakCatalogOrder TieBreak = "catalog-order"
	// TieBreakLowestID orders ties by promotion id ascending
	TieBreakLowestID TieBreak = "lowest-id"
)

// Engine selects and applies promotions to an order. A recompute is a
// pure function of the order's current lines and the active
// promotions, so running it twice on an unchanged order yields the
// same snapshots.
type Engine struct {
	tieBreak TieBreak
}

// NewEngine creates an engine with catalog-order tie breaking
func NewEngine() *Engine {
	return &Engine{tieBreak: TieBreakCatalogOrder}
}

// NewEngineWithTieBreak creates an engine with an explicit tie break rule
func NewEngineWithTieBreak(tieBreak TieBreak) *Engine {
	if tieBreak != TieBreakLowestID {
		tieBreak = TieBreakCatalogOrder
	}
	return &Engine{tieBreak: tieBreak}
}

// Recompute re-derives every promotional snapshot on the order from
// scratch. Every line is cleared first so stale snapshots never
// survive a structural change; then each candidate promotion, highest
// priority first, freezes its benefit onto the beneficiary lines that
// have not been claimed yet in this pass. Closed orders and orders
// with no lines are left untouched beyond the clearing.
func (e *Engine) Recompute(order *Order, promotions []*promotion.Promotion, at time.Time) {
	if order == nil || !order.IsOpen() {
		return
	}

	for _, line := range order.Lines {
		line.clearPromotion()
	}
	if len(order.Lines) == 0 {
		return
	}

	ctx := promotion.NewContext(at, order.productIDs(), order.Subtotal())

	candidates := make([]*promotion.Promotion, 0, len(promotions))
	for _, promo := range promotions {
		if promo.Eligible(ctx) && promo.Scope.HasBeneficiaries() {
			candidates = append(candidates, promo)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Priority != candidates[j].Priority {
			return candidates[i].Priority > candidates[j].Priority
		}
		if e.tieBreak == TieBreakLowestID {
			return candidates[i].ID.String() < candidates[j].ID.String()
		}
		return false
	})

	for _, promo := range candidates {
		for _, line := range order.Lines {
			if line.HasPromotion() {
				continue
			}
			if !promo.Scope.IsBeneficiary(line.ProductID, line.Category) {
				continue
			}
			amount := e.benefitAmount(promo, line, order)
			if amount.IsPositive() {
				line.applyPromotion(amount, promo.Name, promo.ID)
			}
		}
	}
}

// benefitAmount computes the discount a promotion grants one line,
// clamped to [0, line base total] and rounded to 2 decimals.
func (e *Engine) benefitAmount(promo *promotion.Promotion, line *OrderLine, order *Order) decimal.Decimal {
	var amount decimal.Decimal

	switch strategy := promo.Strategy.(type) {
	case *promotion.DirectDiscount:
		amount = strategy.AmountFor(line.BaseTotal())
	case *promotion.FixedQuantity:
		amount = strategy.AmountFor(line.UnitPrice, line.Quantity)
	case *promotion.FixedPricePerPack:
		amount = strategy.AmountFor(line.UnitPrice, line.Quantity)
	case *promotion.ConditionalCombo:
		if !activatorRequirementMet(promo.Scope, strategy.MinimumTriggerQuantity, order, line) {
			return decimal.Zero
		}
		amount = strategy.AmountFor(line.BaseTotal())
	default:
		return decimal.Zero
	}

	base := line.BaseTotal()
	if amount.IsNegative() {
		return decimal.Zero
	}
	if amount.GreaterThan(base) {
		amount = base
	}
	return amount.Round(2)
}

// activatorRequirementMet checks the conditional combo gate: some
// single activator reference must account for at least minQuantity
// units among the other lines of the order.
func activatorRequirementMet(scope promotion.Scope, minQuantity int, order *Order, beneficiary *OrderLine) bool {
	activators := scope.Activators()
	if len(activators) == 0 {
		// A combo without declared activators gates on nothing.
		return true
	}
	for _, ref := range activators {
		total := 0
		for _, line := range order.Lines {
			if line.ID == beneficiary.ID {
				continue
			}
			if ref.Matches(line.ProductID, line.Category) {
				total += line.Quantity
			}
		}
		if total >= minQuantity {
			return true
		}
	}
	return false
}

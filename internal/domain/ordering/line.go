package ordering

import (
	"github.com/foodflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLine is one ordered product inside an Order. Product name,
// category and unit price are frozen at ordering time; later catalog
// changes never reprice a line already taken.
//
// The promotional snapshot and the quantity are mutated only through
// the aggregate and the pricing engine, which live in this package.
type OrderLine struct {
	shared.BaseEntity
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Category    string
	UnitPrice   decimal.Decimal
	Quantity    int
	Note        string
	Addons      []Addon

	promoAmount    decimal.Decimal
	promoName      *string
	promoID        *uuid.UUID
	manualDiscount *ManualDiscount
}

func newOrderLine(orderID, productID uuid.UUID, productName, category string, unitPrice decimal.Decimal, quantity int, note string, addons []Addon) (*OrderLine, error) {
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	copied := make([]Addon, len(addons))
	copy(copied, addons)

	return &OrderLine{
		BaseEntity:  shared.NewBaseEntity(),
		OrderID:     orderID,
		ProductID:   productID,
		ProductName: productName,
		Category:    category,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
		Note:        note,
		Addons:      copied,
		promoAmount: decimal.Zero,
	}, nil
}

// BaseTotal returns unit price times quantity, before any discount
func (l *OrderLine) BaseTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// AddonsTotal returns the add-on charge: the sum of addon prices,
// once per unit of the line.
func (l *OrderLine) AddonsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, addon := range l.Addons {
		total = total.Add(addon.Price)
	}
	return total.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// PromoAmount returns the frozen promotional discount, zero if none
func (l *OrderLine) PromoAmount() decimal.Decimal {
	return l.promoAmount
}

// PromoName returns the name of the applied promotion, nil if none
func (l *OrderLine) PromoName() *string {
	return l.promoName
}

// PromoID returns the id of the applied promotion, nil if none
func (l *OrderLine) PromoID() *uuid.UUID {
	return l.promoID
}

// HasPromotion reports whether a promotional snapshot is frozen on the line
func (l *OrderLine) HasPromotion() bool {
	return l.promoID != nil
}

// ManualDiscount returns the attached manual discount, nil if none
func (l *OrderLine) ManualDiscount() *ManualDiscount {
	return l.manualDiscount
}

// RemainderAfterPromo returns the discountable base left once the
// promotional snapshot is subtracted.
func (l *OrderLine) RemainderAfterPromo() decimal.Decimal {
	return l.BaseTotal().Sub(l.promoAmount)
}

// ManualDiscountAmount recomputes the manual discount against the
// remainder after promotions. Zero when no discount is attached.
func (l *OrderLine) ManualDiscountAmount() decimal.Decimal {
	return l.manualDiscount.Amount(l.RemainderAfterPromo())
}

// FinalPrice runs the pricing cascade: base minus promotional
// snapshot, minus the recomputed manual discount, plus the
// non-discountable add-ons.
func (l *OrderLine) FinalPrice() decimal.Decimal {
	remainder := l.RemainderAfterPromo()
	afterManual := remainder.Sub(l.manualDiscount.Amount(remainder))
	return afterManual.Add(l.AddonsTotal()).Round(2)
}

// attachManualDiscount replaces the manual discount wholesale.
// nil detaches. A fixed amount above the remaining discountable base
// is rejected so the line can never go negative.
func (l *OrderLine) attachManualDiscount(d *ManualDiscount) error {
	if d != nil && d.Mode == DiscountFixedAmount && d.Value.GreaterThan(l.RemainderAfterPromo()) {
		return shared.NewDomainError("DISCOUNT_EXCEEDS_BASE", "Fixed discount exceeds the discountable base of the line")
	}
	l.manualDiscount = d
	return nil
}

// setQuantity updates the quantity. Callers guarantee quantity > 0;
// quantity 0 means removal and is handled by the aggregate.
func (l *OrderLine) setQuantity(quantity int) {
	l.Quantity = quantity
}

// clearPromotion wipes the promotional snapshot before re-evaluation
func (l *OrderLine) clearPromotion() {
	l.promoAmount = decimal.Zero
	l.promoName = nil
	l.promoID = nil
}

// applyPromotion freezes a promotional snapshot onto the line
func (l *OrderLine) applyPromotion(amount decimal.Decimal, name string, promotionID uuid.UUID) {
	l.promoAmount = amount
	l.promoName = &name
	id := promotionID
	l.promoID = &id
}

// clone returns a deep copy of the line, pointer fields included
func (l *OrderLine) clone() *OrderLine {
	copied := *l
	copied.Addons = make([]Addon, len(l.Addons))
	copy(copied.Addons, l.Addons)
	if l.promoName != nil {
		name := *l.promoName
		copied.promoName = &name
	}
	if l.promoID != nil {
		id := *l.promoID
		copied.promoID = &id
	}
	if l.manualDiscount != nil {
		discount := *l.manualDiscount
		copied.manualDiscount = &discount
	}
	return &copied
}

// sameConfiguration reports whether a new line request matches this
// line: same product, same note and the same add-on multiset. Matching
// requests merge into this line instead of creating a new one.
func (l *OrderLine) sameConfiguration(productID uuid.UUID, note string, addons []Addon) bool {
	if l.ProductID != productID || l.Note != note || len(l.Addons) != len(addons) {
		return false
	}
	counts := make(map[uuid.UUID]int, len(l.Addons))
	for _, addon := range l.Addons {
		counts[addon.ID]++
	}
	for _, addon := range addons {
		counts[addon.ID]--
		if counts[addon.ID] < 0 {
			return false
		}
	}
	return true
}

package ordering

import (
	"time"

	"github.com/foodflow/backend/internal/domain/catalog"
	"github.com/foodflow/backend/internal/domain/shared"
	"github.com/foodflow/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderState represents the lifecycle state of an order
type OrderState string

const (
	OrderStateOpen   OrderState = "open"
	OrderStateClosed OrderState = "closed"
)

// AccountingSnapshot freezes the order's money figures at close time
// for reconciliation. Cleared again if the order is reopened.
type AccountingSnapshot struct {
	Subtotal      valueobject.Money
	DiscountTotal valueobject.Money
	Total         valueobject.Money
	ClosedAt      time.Time
}

// Order is the aggregate root for a table's ticket. It owns the line
// collection, the optional order-level manual discount and, once
// closed, the payments and the frozen accounting snapshot.
type Order struct {
	shared.VenueAggregateRoot
	TableID  uuid.UUID
	Number   int
	State    OrderState
	OpenedAt time.Time
	ClosedAt *time.Time

	Lines    []*OrderLine
	Payments []Payment

	orderDiscount *ManualDiscount
	accounting    *AccountingSnapshot
}

// NewOrder opens a new order for a table
func NewOrder(venueID, tableID uuid.UUID, number int, openedAt time.Time) (*Order, error) {
	if number <= 0 {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Order number must be positive")
	}

	order := &Order{
		VenueAggregateRoot: shared.NewVenueAggregateRoot(venueID),
		TableID:            tableID,
		Number:             number,
		State:              OrderStateOpen,
		OpenedAt:           openedAt,
	}

	order.AddDomainEvent(NewOrderOpenedEvent(order))

	return order, nil
}

// IsOpen reports whether the order still accepts mutations
func (o *Order) IsOpen() bool {
	return o.State == OrderStateOpen
}

// FindLine looks up a line by id
func (o *Order) FindLine(lineID uuid.UUID) (*OrderLine, bool) {
	for _, line := range o.Lines {
		if line.ID == lineID {
			return line, true
		}
	}
	return nil, false
}

// AddProduct snapshots a product onto the order as a new line, or
// merges the quantity into an existing line with the same product,
// note and add-on multiset. The caller must recompute afterwards.
func (o *Order) AddProduct(product *catalog.Product, quantity int, note string, addons []Addon, at time.Time) (*OrderLine, error) {
	if !o.IsOpen() {
		return nil, shared.NewDomainError("ORDER_NOT_OPEN", "Cannot modify a closed order")
	}
	if product == nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product is required")
	}
	if product.VenueID != o.VenueID {
		return nil, shared.ErrVenueMismatch
	}
	if !product.IsActive() {
		return nil, shared.NewDomainError("PRODUCT_INACTIVE", "Product is not on the menu")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	for _, line := range o.Lines {
		if line.sameConfiguration(product.ID, note, addons) {
			line.setQuantity(line.Quantity + quantity)
			o.touch(at)
			o.AddDomainEvent(NewOrderLineQuantityChangedEvent(o, line))
			return line, nil
		}
	}

	line, err := newOrderLine(o.ID, product.ID, product.Name, product.Category, product.Price, quantity, note, addons)
	if err != nil {
		return nil, err
	}
	o.Lines = append(o.Lines, line)
	o.touch(at)
	o.AddDomainEvent(NewOrderLineAddedEvent(o, line))

	return line, nil
}

// RemoveLine drops a line from the order
func (o *Order) RemoveLine(lineID uuid.UUID, at time.Time) error {
	if !o.IsOpen() {
		return shared.NewDomainError("ORDER_NOT_OPEN", "Cannot modify a closed order")
	}
	for i, line := range o.Lines {
		if line.ID == lineID {
			o.Lines = append(o.Lines[:i], o.Lines[i+1:]...)
			o.touch(at)
			o.AddDomainEvent(NewOrderLineRemovedEvent(o, line))
			return nil
		}
	}
	return shared.NewDomainError("LINE_NOT_FOUND", "Order line not found")
}

// SetLineQuantity updates a line's quantity. Setting the current
// quantity is an idempotent no-op; setting zero removes the line.
// Returns whether the order actually changed.
func (o *Order) SetLineQuantity(lineID uuid.UUID, quantity int, at time.Time) (bool, error) {
	if !o.IsOpen() {
		return false, shared.NewDomainError("ORDER_NOT_OPEN", "Cannot modify a closed order")
	}
	if quantity < 0 {
		return false, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}

	line, ok := o.FindLine(lineID)
	if !ok {
		return false, shared.NewDomainError("LINE_NOT_FOUND", "Order line not found")
	}
	if quantity == line.Quantity {
		return false, nil
	}
	if quantity == 0 {
		return true, o.RemoveLine(lineID, at)
	}

	line.setQuantity(quantity)
	o.touch(at)
	o.AddDomainEvent(NewOrderLineQuantityChangedEvent(o, line))

	return true, nil
}

// AttachLineDiscount replaces a line's manual discount wholesale.
// nil detaches.
func (o *Order) AttachLineDiscount(lineID uuid.UUID, d *ManualDiscount) error {
	if !o.IsOpen() {
		return shared.NewDomainError("ORDER_NOT_OPEN", "Cannot modify a closed order")
	}
	line, ok := o.FindLine(lineID)
	if !ok {
		return shared.NewDomainError("LINE_NOT_FOUND", "Order line not found")
	}
	return line.attachManualDiscount(d)
}

// AttachOrderDiscount replaces the order-level manual discount
// wholesale. nil detaches. A fixed amount above the current lines
// total is rejected.
func (o *Order) AttachOrderDiscount(d *ManualDiscount) error {
	if !o.IsOpen() {
		return shared.NewDomainError("ORDER_NOT_OPEN", "Cannot modify a closed order")
	}
	if d != nil && d.Mode == DiscountFixedAmount && d.Value.GreaterThan(o.LinesTotal()) {
		return shared.NewDomainError("DISCOUNT_EXCEEDS_BASE", "Fixed discount exceeds the order total")
	}
	o.orderDiscount = d
	return nil
}

// OrderDiscount returns the order-level manual discount, nil if none
func (o *Order) OrderDiscount() *ManualDiscount {
	return o.orderDiscount
}

// Subtotal returns the pre-discount order value: every line's base
// total plus its add-ons.
func (o *Order) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.BaseTotal()).Add(line.AddonsTotal())
	}
	return total
}

// LinesTotal returns the sum of the lines' final prices, after line
// discounts but before the order-level discount.
func (o *Order) LinesTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.FinalPrice())
	}
	return total
}

// OrderDiscountAmount recomputes the order-level discount against the
// current lines total.
func (o *Order) OrderDiscountAmount() decimal.Decimal {
	return o.orderDiscount.Amount(o.LinesTotal())
}

// Total returns the amount to pay
func (o *Order) Total() decimal.Decimal {
	lines := o.LinesTotal()
	return lines.Sub(o.orderDiscount.Amount(lines)).Round(2)
}

// DiscountTotal returns every discount on the order added together
func (o *Order) DiscountTotal() decimal.Decimal {
	total := decimal.Zero
	for _, adj := range o.Adjustments() {
		total = total.Add(adj.Amount)
	}
	return total
}

// Adjustments materializes the discount audit for ticket rendering:
// line promotional snapshots first, then line manual discounts, then
// the order-level discount.
func (o *Order) Adjustments() []Adjustment {
	var adjustments []Adjustment

	for _, line := range o.Lines {
		if !line.PromoAmount().IsPositive() {
			continue
		}
		description := descriptionPromotion
		if line.PromoName() != nil && *line.PromoName() != "" {
			description = *line.PromoName()
		}
		adjustments = append(adjustments, Adjustment{
			Origin:      AdjustmentPromotion,
			Scope:       AdjustmentScopeLine,
			Description: description,
			Amount:      line.PromoAmount(),
		})
	}

	for _, line := range o.Lines {
		amount := line.ManualDiscountAmount()
		if !amount.IsPositive() {
			continue
		}
		description := descriptionManual
		if line.ManualDiscount().Reason != "" {
			description = line.ManualDiscount().Reason
		}
		adjustments = append(adjustments, Adjustment{
			Origin:      AdjustmentManual,
			Scope:       AdjustmentScopeLine,
			Description: description,
			Amount:      amount,
		})
	}

	if amount := o.OrderDiscountAmount(); amount.IsPositive() {
		description := descriptionGlobalManual
		if o.orderDiscount.Reason != "" {
			description = o.orderDiscount.Reason
		}
		adjustments = append(adjustments, Adjustment{
			Origin:      AdjustmentManual,
			Scope:       AdjustmentScopeOrder,
			Description: description,
			Amount:      amount,
		})
	}

	return adjustments
}

// Accounting returns the frozen close-time snapshot, nil while open
func (o *Order) Accounting() *AccountingSnapshot {
	return o.accounting
}

// Close settles the order. The payments must add up to the total
// exactly; the accounting snapshot is frozen and the order stops
// accepting mutations.
func (o *Order) Close(payments []Payment, at time.Time) error {
	if !o.IsOpen() {
		return shared.NewDomainError("ORDER_NOT_OPEN", "Order is already closed")
	}
	if len(o.Lines) == 0 {
		return shared.NewDomainError("EMPTY_ORDER", "Cannot close an order with no lines")
	}

	total := o.Total()
	if !paymentsTotal(payments).Equal(total) {
		return shared.NewDomainError("PAYMENT_MISMATCH", "Payments must add up to the order total exactly")
	}

	o.Payments = make([]Payment, len(payments))
	copy(o.Payments, payments)
	o.accounting = &AccountingSnapshot{
		Subtotal:      valueobject.NewMoneyARS(o.Subtotal()),
		DiscountTotal: valueobject.NewMoneyARS(o.DiscountTotal()),
		Total:         valueobject.NewMoneyARS(total),
		ClosedAt:      at,
	}
	closedAt := at
	o.ClosedAt = &closedAt
	o.State = OrderStateClosed
	o.touch(at)
	o.AddDomainEvent(NewOrderClosedEvent(o))

	return nil
}

// Reopen puts a closed order back in service. Destructive: payments
// and the accounting snapshot are discarded, the lines survive.
func (o *Order) Reopen(at time.Time) error {
	if o.State != OrderStateClosed {
		return shared.NewDomainError("ORDER_NOT_CLOSED", "Only a closed order can be reopened")
	}

	o.Payments = nil
	o.accounting = nil
	o.ClosedAt = nil
	o.State = OrderStateOpen
	o.touch(at)
	o.AddDomainEvent(NewOrderReopenedEvent(o))

	return nil
}

// Clone returns a deep copy of the order with no pending domain
// events. Correction flows mutate the copy and persist it only on
// success, so a rejected correction never leaks partial state into
// the stored aggregate.
func (o *Order) Clone() *Order {
	copied := *o
	copied.ClearDomainEvents()
	copied.Lines = make([]*OrderLine, len(o.Lines))
	for i, line := range o.Lines {
		copied.Lines[i] = line.clone()
	}
	if o.Payments != nil {
		copied.Payments = make([]Payment, len(o.Payments))
		copy(copied.Payments, o.Payments)
	}
	if o.orderDiscount != nil {
		discount := *o.orderDiscount
		copied.orderDiscount = &discount
	}
	if o.accounting != nil {
		snapshot := *o.accounting
		copied.accounting = &snapshot
	}
	if o.ClosedAt != nil {
		closedAt := *o.ClosedAt
		copied.ClosedAt = &closedAt
	}
	return &copied
}

// productIDs returns the product ids currently on the order, used to
// rebuild the evaluation context.
func (o *Order) productIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(o.Lines))
	for _, line := range o.Lines {
		ids = append(ids, line.ProductID)
	}
	return ids
}

func (o *Order) touch(at time.Time) {
	o.Touch(at)
	o.IncrementVersion()
}

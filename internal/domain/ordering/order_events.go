package ordering

import (
	"github.com/foodflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeOrder = "Order"

// Event type constants
const (
	EventTypeOrderOpened             = "OrderOpened"
	EventTypeOrderLineAdded          = "OrderLineAdded"
	EventTypeOrderLineRemoved        = "OrderLineRemoved"
	EventTypeOrderLineQuantityChange = "OrderLineQuantityChanged"
	EventTypeOrderClosed             = "OrderClosed"
	EventTypeOrderReopened           = "OrderReopened"
)

// OrderOpenedEvent is published when a new order is opened for a table
type OrderOpenedEvent struct {
	shared.BaseDomainEvent
	OrderID uuid.UUID `json:"order_id"`
	TableID uuid.UUID `json:"table_id"`
	Number  int       `json:"number"`
}

// NewOrderOpenedEvent creates a new OrderOpenedEvent
func NewOrderOpenedEvent(order *Order) *OrderOpenedEvent {
	return &OrderOpenedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderOpened, AggregateTypeOrder, order.ID, order.VenueID),
		OrderID:         order.ID,
		TableID:         order.TableID,
		Number:          order.Number,
	}
}

// OrderLineAddedEvent is published when a product lands on the order
type OrderLineAddedEvent struct {
	shared.BaseDomainEvent
	OrderID   uuid.UUID       `json:"order_id"`
	LineID    uuid.UUID       `json:"line_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// NewOrderLineAddedEvent creates a new OrderLineAddedEvent
func NewOrderLineAddedEvent(order *Order, line *OrderLine) *OrderLineAddedEvent {
	return &OrderLineAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderLineAdded, AggregateTypeOrder, order.ID, order.VenueID),
		OrderID:         order.ID,
		LineID:          line.ID,
		ProductID:       line.ProductID,
		Quantity:        line.Quantity,
		UnitPrice:       line.UnitPrice,
	}
}

// OrderLineRemovedEvent is published when a line leaves the order
type OrderLineRemovedEvent struct {
	shared.BaseDomainEvent
	OrderID   uuid.UUID `json:"order_id"`
	LineID    uuid.UUID `json:"line_id"`
	ProductID uuid.UUID `json:"product_id"`
}

// NewOrderLineRemovedEvent creates a new OrderLineRemovedEvent
func NewOrderLineRemovedEvent(order *Order, line *OrderLine) *OrderLineRemovedEvent {
	return &OrderLineRemovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderLineRemoved, AggregateTypeOrder, order.ID, order.VenueID),
		OrderID:         order.ID,
		LineID:          line.ID,
		ProductID:       line.ProductID,
	}
}

// OrderLineQuantityChangedEvent is published when a line's quantity
// changes, including merges into an existing line.
type OrderLineQuantityChangedEvent struct {
	shared.BaseDomainEvent
	OrderID  uuid.UUID `json:"order_id"`
	LineID   uuid.UUID `json:"line_id"`
	Quantity int       `json:"quantity"`
}

// NewOrderLineQuantityChangedEvent creates a new OrderLineQuantityChangedEvent
func NewOrderLineQuantityChangedEvent(order *Order, line *OrderLine) *OrderLineQuantityChangedEvent {
	return &OrderLineQuantityChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderLineQuantityChange, AggregateTypeOrder, order.ID, order.VenueID),
		OrderID:         order.ID,
		LineID:          line.ID,
		Quantity:        line.Quantity,
	}
}

// OrderClosedEvent is published when an order settles
type OrderClosedEvent struct {
	shared.BaseDomainEvent
	OrderID       uuid.UUID       `json:"order_id"`
	Total         decimal.Decimal `json:"total"`
	DiscountTotal decimal.Decimal `json:"discount_total"`
}

// NewOrderClosedEvent creates a new OrderClosedEvent
func NewOrderClosedEvent(order *Order) *OrderClosedEvent {
	return &OrderClosedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderClosed, AggregateTypeOrder, order.ID, order.VenueID),
		OrderID:         order.ID,
		Total:           order.accounting.Total.Amount(),
		DiscountTotal:   order.accounting.DiscountTotal.Amount(),
	}
}

// OrderReopenedEvent is published when a closed order is put back in service
type OrderReopenedEvent struct {
	shared.BaseDomainEvent
	OrderID uuid.UUID `json:"order_id"`
}

// NewOrderReopenedEvent creates a new OrderReopenedEvent
func NewOrderReopenedEvent(order *Order) *OrderReopenedEvent {
	return &OrderReopenedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderReopened, AggregateTypeOrder, order.ID, order.VenueID),
		OrderID:         order.ID,
	}
}

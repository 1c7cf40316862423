package ordering

import (
	"time"

	"github.com/foodflow/backend/internal/domain/ordering"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OpenOrderRequest opens a new order for a table
type OpenOrderRequest struct {
	VenueID uuid.UUID `json:"venue_id" binding:"required"`
	TableID uuid.UUID `json:"table_id" binding:"required"`
	Number  int       `json:"number" binding:"required,min=1"`
}

// AddProductRequest puts a product on an order
type AddProductRequest struct {
	ProductID uuid.UUID   `json:"product_id" binding:"required"`
	Quantity  int         `json:"quantity" binding:"required,min=1"`
	Note      string      `json:"note"`
	AddonIDs  []uuid.UUID `json:"addon_ids"`
}

// DiscountRequest attaches a manual discount
type DiscountRequest struct {
	Mode      string          `json:"mode" binding:"required,oneof=percentage fixed_amount"`
	Value     decimal.Decimal `json:"value" binding:"required"`
	Reason    string          `json:"reason"`
	AppliedBy uuid.UUID       `json:"applied_by" binding:"required"`
}

// PaymentInput is one settlement inside a close request
type PaymentInput struct {
	Method string          `json:"method" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// CloseOrderRequest settles an order
type CloseOrderRequest struct {
	Payments []PaymentInput `json:"payments" binding:"required,min=1"`
}

// LineQuantityInput is one quantity correction inside an amend request
type LineQuantityInput struct {
	LineID   uuid.UUID `json:"line_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"min=0"`
}

// AmendOrderRequest corrects a closed order in place: quantities are
// fixed up, prices re-derived and the order re-closed with the
// replacement payments.
type AmendOrderRequest struct {
	Quantities []LineQuantityInput `json:"quantities"`
	Payments   []PaymentInput      `json:"payments" binding:"required,min=1"`
}

// AddonResponse is an add-on as frozen on a line
type AddonResponse struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// OrderLineResponse is one priced line of an order
type OrderLineResponse struct {
	ID             uuid.UUID       `json:"id"`
	ProductID      uuid.UUID       `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Category       string          `json:"category,omitempty"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Quantity       int             `json:"quantity"`
	Note           string          `json:"note,omitempty"`
	Addons         []AddonResponse `json:"addons,omitempty"`
	PromoAmount    decimal.Decimal `json:"promo_amount"`
	PromoName      *string         `json:"promo_name,omitempty"`
	ManualDiscount decimal.Decimal `json:"manual_discount"`
	FinalPrice     decimal.Decimal `json:"final_price"`
}

// AdjustmentResponse is one audit entry for ticket rendering
type AdjustmentResponse struct {
	Origin      string          `json:"origin"`
	Scope       string          `json:"scope"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// PaymentResponse is one recorded settlement
type PaymentResponse struct {
	ID         uuid.UUID       `json:"id"`
	Method     string          `json:"method"`
	Amount     decimal.Decimal `json:"amount"`
	ReceivedAt time.Time       `json:"received_at"`
}

// OrderResponse is the priced order as returned by every operation
type OrderResponse struct {
	ID            uuid.UUID            `json:"id"`
	VenueID       uuid.UUID            `json:"venue_id"`
	TableID       uuid.UUID            `json:"table_id"`
	Number        int                  `json:"number"`
	State         string               `json:"state"`
	OpenedAt      time.Time            `json:"opened_at"`
	ClosedAt      *time.Time           `json:"closed_at,omitempty"`
	Lines         []OrderLineResponse  `json:"lines"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	DiscountTotal decimal.Decimal      `json:"discount_total"`
	Total         decimal.Decimal      `json:"total"`
	Adjustments   []AdjustmentResponse `json:"adjustments"`
	Payments      []PaymentResponse    `json:"payments,omitempty"`
}

// toOrderResponse prices the aggregate into its transport shape
func toOrderResponse(order *ordering.Order) *OrderResponse {
	lines := make([]OrderLineResponse, 0, len(order.Lines))
	for _, line := range order.Lines {
		addons := make([]AddonResponse, 0, len(line.Addons))
		for _, addon := range line.Addons {
			addons = append(addons, AddonResponse{ID: addon.ID, Name: addon.Name, Price: addon.Price})
		}
		lines = append(lines, OrderLineResponse{
			ID:             line.ID,
			ProductID:      line.ProductID,
			ProductName:    line.ProductName,
			Category:       line.Category,
			UnitPrice:      line.UnitPrice,
			Quantity:       line.Quantity,
			Note:           line.Note,
			Addons:         addons,
			PromoAmount:    line.PromoAmount(),
			PromoName:      line.PromoName(),
			ManualDiscount: line.ManualDiscountAmount(),
			FinalPrice:     line.FinalPrice(),
		})
	}

	adjustments := make([]AdjustmentResponse, 0)
	for _, adj := range order.Adjustments() {
		adjustments = append(adjustments, AdjustmentResponse{
			Origin:      string(adj.Origin),
			Scope:       string(adj.Scope),
			Description: adj.Description,
			Amount:      adj.Amount,
		})
	}

	payments := make([]PaymentResponse, 0, len(order.Payments))
	for _, p := range order.Payments {
		payments = append(payments, PaymentResponse{
			ID:         p.ID,
			Method:     string(p.Method),
			Amount:     p.Amount,
			ReceivedAt: p.ReceivedAt,
		})
	}

	return &OrderResponse{
		ID:            order.ID,
		VenueID:       order.VenueID,
		TableID:       order.TableID,
		Number:        order.Number,
		State:         string(order.State),
		OpenedAt:      order.OpenedAt,
		ClosedAt:      order.ClosedAt,
		Lines:         lines,
		Subtotal:      order.Subtotal(),
		DiscountTotal: order.DiscountTotal(),
		Total:         order.Total(),
		Adjustments:   adjustments,
		Payments:      payments,
	}
}

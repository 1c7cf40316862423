package ordering

import (
	"time"

	"github.com/foodflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is how a payment was settled
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentQR       PaymentMethod = "qr"
)

// Payment records one settlement against a closed order
type Payment struct {
	ID         uuid.UUID
	Method     PaymentMethod
	Amount     decimal.Decimal
	ReceivedAt time.Time
}

// NewPayment creates a payment, rejecting non-positive amounts
func NewPayment(method PaymentMethod, amount decimal.Decimal, receivedAt time.Time) (Payment, error) {
	switch method {
	case PaymentCash, PaymentCard, PaymentTransfer, PaymentQR:
	default:
		return Payment{}, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}
	if !amount.IsPositive() {
		return Payment{}, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	return Payment{
		ID:         uuid.New(),
		Method:     method,
		Amount:     amount,
		ReceivedAt: receivedAt,
	}, nil
}

func paymentsTotal(payments []Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

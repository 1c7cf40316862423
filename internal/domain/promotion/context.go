package promotion

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Context is an immutable snapshot of an order at evaluation time.
// The engine rebuilds it from the order's current lines before every
// recompute; triggers only ever see this snapshot.
type Context struct {
	date      time.Time
	timeOfDay TimeOfDay
	hasTime   bool
	weekday   time.Weekday
	products  map[uuid.UUID]struct{}
	subtotal  decimal.Decimal
}

// NewContext builds a context carrying both the date and the wall-clock
// time taken from at.
func NewContext(at time.Time, productIDs []uuid.UUID, subtotal decimal.Decimal) Context {
	ctx := newContext(at, productIDs, subtotal)
	ctx.timeOfDay = TimeOfDay{Hour: at.Hour(), Minute: at.Minute()}
	ctx.hasTime = true
	return ctx
}

// NewDateContext builds a context with a date but no wall-clock time.
// Time-bounded temporal triggers fail closed against it.
func NewDateContext(date time.Time, productIDs []uuid.UUID, subtotal decimal.Decimal) Context {
	return newContext(date, productIDs, subtotal)
}

func newContext(at time.Time, productIDs []uuid.UUID, subtotal decimal.Decimal) Context {
	products := make(map[uuid.UUID]struct{}, len(productIDs))
	for _, id := range productIDs {
		products[id] = struct{}{}
	}
	return Context{
		date:     truncateToDay(at),
		weekday:  at.Weekday(),
		products: products,
		subtotal: subtotal,
	}
}

// Date returns the evaluation date truncated to midnight
func (c Context) Date() time.Time {
	return c.date
}

// Weekday returns the evaluation day of week
func (c Context) Weekday() time.Weekday {
	return c.weekday
}

// TimeOfDay returns the wall-clock time and whether one was captured
func (c Context) TimeOfDay() (TimeOfDay, bool) {
	return c.timeOfDay, c.hasTime
}

// ContainsProduct reports whether the product is on the order
func (c Context) ContainsProduct(id uuid.UUID) bool {
	_, ok := c.products[id]
	return ok
}

// Subtotal returns the pre-discount order subtotal, add-ons included
func (c Context) Subtotal() decimal.Decimal {
	return c.subtotal
}

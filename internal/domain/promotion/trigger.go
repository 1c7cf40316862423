package promotion

import (
	"fmt"
	"time"

	"github.com/foodflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TriggerType identifies the kind of activation criterion
type TriggerType string

const (
	TriggerTemporal      TriggerType = "temporal"
	TriggerContents      TriggerType = "contains_products"
	TriggerMinimumAmount TriggerType = "minimum_amount"
)

// Trigger is an activation criterion evaluated against an order context.
// Implementations are pure and never error for valid contexts.
type Trigger interface {
	Type() TriggerType
	SatisfiedBy(ctx Context) bool
}

// TimeOfDay is a wall-clock time without a date
type TimeOfDay struct {
	Hour   int
	Minute int
}

// NewTimeOfDay creates a TimeOfDay, validating the range
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, shared.NewDomainError("INVALID_TIME", fmt.Sprintf("Invalid time of day %02d:%02d", hour, minute))
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// Minutes returns the minutes elapsed since midnight
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t is earlier than other
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Minutes() < other.Minutes()
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// TemporalTrigger is satisfied inside a date range, optionally narrowed
// to an allow-set of weekdays and a time-of-day window.
type TemporalTrigger struct {
	From     time.Time
	To       time.Time
	Days     []time.Weekday
	TimeFrom *TimeOfDay
	TimeTo   *TimeOfDay
}

// NewTemporalTrigger creates a temporal trigger for the date range [from, to].
// An empty days slice allows every weekday. timeFrom and timeTo must be
// provided together with timeFrom earlier than timeTo, or both nil.
func NewTemporalTrigger(from, to time.Time, days []time.Weekday, timeFrom, timeTo *TimeOfDay) (*TemporalTrigger, error) {
	fromDay := truncateToDay(from)
	toDay := truncateToDay(to)
	if fromDay.After(toDay) {
		return nil, shared.NewDomainError("INVALID_DATE_RANGE", "Start date cannot be after end date")
	}
	if (timeFrom == nil) != (timeTo == nil) {
		return nil, shared.NewDomainError("INVALID_TIME_RANGE", "Time range requires both a start and an end")
	}
	if timeFrom != nil && !timeFrom.Before(*timeTo) {
		return nil, shared.NewDomainError("INVALID_TIME_RANGE", "Time range start must be earlier than its end")
	}

	return &TemporalTrigger{
		From:     fromDay,
		To:       toDay,
		Days:     days,
		TimeFrom: timeFrom,
		TimeTo:   timeTo,
	}, nil
}

// Type returns the trigger type tag
func (t *TemporalTrigger) Type() TriggerType {
	return TriggerTemporal
}

// SatisfiedBy reports whether the context date falls inside the range,
// on an allowed weekday, and inside the time window when one is set.
// A configured time window against a context without a time fails closed.
func (t *TemporalTrigger) SatisfiedBy(ctx Context) bool {
	date := ctx.Date()
	if date.Before(t.From) || date.After(t.To) {
		return false
	}
	if !t.dayAllowed(ctx.Weekday()) {
		return false
	}
	if t.TimeFrom != nil {
		tod, ok := ctx.TimeOfDay()
		if !ok {
			return false
		}
		if tod.Minutes() < t.TimeFrom.Minutes() || tod.Minutes() > t.TimeTo.Minutes() {
			return false
		}
	}
	return true
}

func (t *TemporalTrigger) dayAllowed(day time.Weekday) bool {
	if len(t.Days) == 0 {
		return true
	}
	for _, d := range t.Days {
		if d == day {
			return true
		}
	}
	return false
}

// ContainsProductsTrigger is satisfied only when every required
// product is present in the order.
type ContainsProductsTrigger struct {
	Required []uuid.UUID
}

// NewContainsProductsTrigger creates the trigger, rejecting an empty set
func NewContainsProductsTrigger(required []uuid.UUID) (*ContainsProductsTrigger, error) {
	if len(required) == 0 {
		return nil, shared.NewDomainError("EMPTY_PRODUCT_SET", "At least one required product is needed")
	}
	return &ContainsProductsTrigger{Required: required}, nil
}

// Type returns the trigger type tag
func (t *ContainsProductsTrigger) Type() TriggerType {
	return TriggerContents
}

// SatisfiedBy reports whether every required product is in the context
func (t *ContainsProductsTrigger) SatisfiedBy(ctx Context) bool {
	for _, id := range t.Required {
		if !ctx.ContainsProduct(id) {
			return false
		}
	}
	return true
}

// MinimumAmountTrigger is satisfied when the order subtotal reaches
// the threshold. The subtotal includes add-ons.
type MinimumAmountTrigger struct {
	Threshold decimal.Decimal
}

// NewMinimumAmountTrigger creates the trigger, rejecting non-positive thresholds
func NewMinimumAmountTrigger(threshold decimal.Decimal) (*MinimumAmountTrigger, error) {
	if !threshold.IsPositive() {
		return nil, shared.NewDomainError("INVALID_THRESHOLD", "Minimum amount threshold must be positive")
	}
	return &MinimumAmountTrigger{Threshold: threshold}, nil
}

// Type returns the trigger type tag
func (t *MinimumAmountTrigger) Type() TriggerType {
	return TriggerMinimumAmount
}

// SatisfiedBy reports whether the context subtotal reaches the threshold
func (t *MinimumAmountTrigger) SatisfiedBy(ctx Context) bool {
	return ctx.Subtotal().GreaterThanOrEqual(t.Threshold)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

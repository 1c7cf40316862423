package promotion

import (
	"strings"
	"time"

	"github.com/foodflow/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// State represents the lifecycle state of a promotion
type State string

const (
	StateActive   State = "active"
	StateInactive State = "inactive"
)

// Promotion combines a benefit strategy with the triggers that gate it
// and the scope of products it touches. Invalid promotions cannot be
// constructed, which is what lets the engine evaluate without errors.
type Promotion struct {
	shared.VenueAggregateRoot
	Name        string
	Description string
	Priority    int
	State       State
	Strategy    Strategy
	Triggers    []Trigger
	Scope       Scope
}

// NewPromotion creates an active promotion.
// At least one trigger is required; an empty trigger list is rejected
// here rather than ever being evaluated as vacuously true.
func NewPromotion(venueID uuid.UUID, name, description string, priority int, strategy Strategy, triggers []Trigger, scope Scope) (*Promotion, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Promotion name cannot be blank")
	}
	if priority < 0 {
		return nil, shared.NewDomainError("INVALID_PRIORITY", "Priority cannot be negative")
	}
	if strategy == nil {
		return nil, shared.NewDomainError("MISSING_STRATEGY", "Promotion requires a benefit strategy")
	}
	if len(triggers) == 0 {
		return nil, shared.NewDomainError("EMPTY_TRIGGERS", "Promotion requires at least one trigger")
	}

	copied := make([]Trigger, len(triggers))
	copy(copied, triggers)

	return &Promotion{
		VenueAggregateRoot: shared.NewVenueAggregateRoot(venueID),
		Name:               name,
		Description:        description,
		Priority:           priority,
		State:              StateActive,
		Strategy:           strategy,
		Triggers:           copied,
		Scope:              scope,
	}, nil
}

// Eligible reports whether the promotion applies to the context:
// it must be active and every one of its triggers satisfied.
func (p *Promotion) Eligible(ctx Context) bool {
	if p.State != StateActive {
		return false
	}
	for _, trigger := range p.Triggers {
		if !trigger.SatisfiedBy(ctx) {
			return false
		}
	}
	return true
}

// IsActive reports whether the promotion is in the active state
func (p *Promotion) IsActive() bool {
	return p.State == StateActive
}

// Activate turns the promotion on
func (p *Promotion) Activate() error {
	if p.State == StateActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Promotion is already active")
	}
	p.State = StateActive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Deactivate turns the promotion off without deleting it
func (p *Promotion) Deactivate() error {
	if p.State == StateInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Promotion is already inactive")
	}
	p.State = StateInactive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Rename changes the promotion name
func (p *Promotion) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Promotion name cannot be blank")
	}
	p.Name = name
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Reprioritize changes the winning priority
func (p *Promotion) Reprioritize(priority int) error {
	if priority < 0 {
		return shared.NewDomainError("INVALID_PRIORITY", "Priority cannot be negative")
	}
	p.Priority = priority
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// DefineScope replaces the scope wholesale
func (p *Promotion) DefineScope(scope Scope) {
	p.Scope = scope
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

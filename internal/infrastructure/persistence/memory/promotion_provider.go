package memory

import (
	"context"
	"sync"

	"github.com/foodflow/backend/internal/domain/promotion"
	"github.com/google/uuid"
)

// PromotionProvider is a mutex-guarded in-memory promotion.Provider
type PromotionProvider struct {
	mu     sync.RWMutex
	promos map[uuid.UUID]*promotion.Promotion
}

// NewPromotionProvider creates an empty in-memory promotion provider
func NewPromotionProvider() *PromotionProvider {
	return &PromotionProvider{promos: make(map[uuid.UUID]*promotion.Promotion)}
}

// Save registers or replaces a promotion
func (p *PromotionProvider) Save(_ context.Context, promo *promotion.Promotion) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.promos[promo.ID] = promo
	return nil
}

// ActiveForVenue returns the venue's promotions currently in the active state
func (p *PromotionProvider) ActiveForVenue(_ context.Context, venueID uuid.UUID) ([]*promotion.Promotion, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var result []*promotion.Promotion
	for _, promo := range p.promos {
		if promo.VenueID == venueID && promo.IsActive() {
			result = append(result, promo)
		}
	}
	return result, nil
}

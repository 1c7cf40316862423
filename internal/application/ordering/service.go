package ordering

import (
	"context"
	"sync"
	"time"

	"github.com/foodflow/backend/internal/domain/catalog"
	"github.com/foodflow/backend/internal/domain/ordering"
	"github.com/foodflow/backend/internal/domain/promotion"
	"github.com/foodflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService handles order mutations. Every structural change runs
// the pricing engine against the freshly fetched active promotions
// before the order is saved, and mutations on the same order are
// serialized through a per-order lock.
type OrderService struct {
	orderRepo   ordering.Repository
	productRepo catalog.ProductRepository
	promotions  promotion.Provider
	engine      *ordering.Engine
	events      shared.EventPublisher
	logger      *zap.Logger
	now         func() time.Time

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo ordering.Repository,
	productRepo catalog.ProductRepository,
	promotions promotion.Provider,
	engine *ordering.Engine,
	events shared.EventPublisher,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		promotions:  promotions,
		engine:      engine,
		events:      events,
		logger:      logger,
		now:         time.Now,
		locks:       make(map[uuid.UUID]*sync.Mutex),
	}
}

// SetClock overrides the service clock, used by tests
func (s *OrderService) SetClock(now func() time.Time) {
	s.now = now
}

// lockOrder serializes access to one order and returns the unlock
func (s *OrderService) lockOrder(orderID uuid.UUID) func() {
	s.mu.Lock()
	lock, ok := s.locks[orderID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[orderID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// save persists the order and publishes its pending domain events
func (s *OrderService) save(ctx context.Context, order *ordering.Order) error {
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return err
	}
	if events := order.GetDomainEvents(); len(events) > 0 {
		if err := s.events.Publish(ctx, events...); err != nil {
			s.logger.Warn("failed to publish order events",
				zap.String("order_id", order.ID.String()),
				zap.Error(err))
		}
		order.ClearDomainEvents()
	}
	return nil
}

// recompute re-derives every discount on the order from the venue's
// currently active promotions.
func (s *OrderService) recompute(ctx context.Context, order *ordering.Order) error {
	promos, err := s.promotions.ActiveForVenue(ctx, order.VenueID)
	if err != nil {
		return err
	}
	s.engine.Recompute(order, promos, s.now())
	return nil
}

// Open opens a new order for a table
func (s *OrderService) Open(ctx context.Context, req OpenOrderRequest) (*OrderResponse, error) {
	order, err := ordering.NewOrder(req.VenueID, req.TableID, req.Number, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order opened",
		zap.String("order_id", order.ID.String()),
		zap.String("table_id", order.TableID.String()),
		zap.Int("number", order.Number))

	return toOrderResponse(order), nil
}

// Get returns the priced order
func (s *OrderService) Get(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// AddProduct puts a product on the order and reprices it
func (s *OrderService) AddProduct(ctx context.Context, orderID uuid.UUID, req AddProductRequest) (*OrderResponse, error) {
	defer s.lockOrder(orderID)()

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	addons, err := resolveAddons(product, req.AddonIDs)
	if err != nil {
		return nil, err
	}

	line, err := order.AddProduct(product, req.Quantity, req.Note, addons, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.recompute(ctx, order); err != nil {
		return nil, err
	}
	if err := s.save(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("product added to order",
		zap.String("order_id", order.ID.String()),
		zap.String("product_id", product.ID.String()),
		zap.Int("quantity", line.Quantity),
		zap.String("total", order.Total().String()))

	return toOrderResponse(order), nil
}

// RemoveLine drops a line and reprices the order
func (s *OrderService) RemoveLine(ctx context.Context, orderID, lineID uuid.UUID) (*OrderResponse, error) {
	defer s.lockOrder(orderID)()

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.RemoveLine(lineID, s.now()); err != nil {
		return nil, err
	}
	if err := s.recompute(ctx, order); err != nil {
		return nil, err
	}
	if err := s.save(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order line removed",
		zap.String("order_id", order.ID.String()),
		zap.String("line_id", lineID.String()),
		zap.String("total", order.Total().String()))

	return toOrderResponse(order), nil
}

// SetLineQuantity updates a line's quantity and reprices the order.
// Setting the current quantity is a no-op, setting zero removes the line.
func (s *OrderService) SetLineQuantity(ctx context.Context, orderID, lineID uuid.UUID, quantity int) (*OrderResponse, error) {
	defer s.lockOrder(orderID)()

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	changed, err := order.SetLineQuantity(lineID, quantity, s.now())
	if err != nil {
		return nil, err
	}
	if !changed {
		return toOrderResponse(order), nil
	}

	if err := s.recompute(ctx, order); err != nil {
		return nil, err
	}
	if err := s.save(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order line quantity changed",
		zap.String("order_id", order.ID.String()),
		zap.String("line_id", lineID.String()),
		zap.Int("quantity", quantity),
		zap.String("total", order.Total().String()))

	return toOrderResponse(order), nil
}

// AttachLineDiscount attaches a manual discount to one line
func (s *OrderService) AttachLineDiscount(ctx context.Context, orderID, lineID uuid.UUID, req DiscountRequest) (*OrderResponse, error) {
	defer s.lockOrder(orderID)()

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	discount, err := buildManualDiscount(req, s.now())
	if err != nil {
		return nil, err
	}
	if err := order.AttachLineDiscount(lineID, discount); err != nil {
		return nil, err
	}
	if err := s.save(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("line discount attached",
		zap.String("order_id", order.ID.String()),
		zap.String("line_id", lineID.String()),
		zap.String("mode", req.Mode))

	return toOrderResponse(order), nil
}

// RemoveLineDiscount detaches a line's manual discount
func (s *OrderService) RemoveLineDiscount(ctx context.Context, orderID, lineID uuid.UUID) (*OrderResponse, error) {
	defer s.lockOrder(orderID)()

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.AttachLineDiscount(lineID, nil); err != nil {
		return nil, err
	}
	if err := s.save(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// AttachOrderDiscount attaches the order-level manual discount
func (s *OrderService) AttachOrderDiscount(ctx context.Context, orderID uuid.UUID, req DiscountRequest) (*OrderResponse, error) {
	defer s.lockOrder(orderID)()

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	discount, err := buildManualDiscount(req, s.now())
	if err != nil {
		return nil, err
	}
	if err := order.AttachOrderDiscount(discount); err != nil {
		return nil, err
	}
	if err := s.save(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order discount attached",
		zap.String("order_id", order.ID.String()),
		zap.String("mode", req.Mode),
		zap.String("total", order.Total().String()))

	return toOrderResponse(order), nil
}

// RemoveOrderDiscount detaches the order-level manual discount
func (s *OrderService) RemoveOrderDiscount(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	defer s.lockOrder(orderID)()

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.AttachOrderDiscount(nil); err != nil {
		return nil, err
	}
	if err := s.save(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Close settles the order with the given payments
func (s *OrderService) Close(ctx context.Context, orderID uuid.UUID, req CloseOrderRequest) (*OrderResponse, error) {
	defer s.lockOrder(orderID)()

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	payments, err := buildPayments(req.Payments, s.now())
	if err != nil {
		return nil, err
	}
	if err := order.Close(payments, s.now()); err != nil {
		return nil, err
	}
	if err := s.save(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order closed",
		zap.String("order_id", order.ID.String()),
		zap.String("total", order.Total().String()),
		zap.Int("payments", len(payments)))

	return toOrderResponse(order), nil
}

// Reopen puts a closed order back in service and reprices it against
// the promotions active right now.
func (s *OrderService) Reopen(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	defer s.lockOrder(orderID)()

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.Reopen(s.now()); err != nil {
		return nil, err
	}
	if err := s.recompute(ctx, order); err != nil {
		return nil, err
	}
	if err := s.save(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order reopened", zap.String("order_id", order.ID.String()))

	return toOrderResponse(order), nil
}

// Amend corrects a closed order: quantities are fixed up, every
// discount re-derived and the order re-closed with the replacement
// payments. The mutations run against a copy of the aggregate and
// the copy is persisted only once the re-close succeeds, so a
// rejected correction leaves the stored order closed and unchanged.
func (s *OrderService) Amend(ctx context.Context, orderID uuid.UUID, req AmendOrderRequest) (*OrderResponse, error) {
	defer s.lockOrder(orderID)()

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	amended := order.Clone()
	if err := amended.Reopen(s.now()); err != nil {
		return nil, err
	}
	for _, correction := range req.Quantities {
		if _, err := amended.SetLineQuantity(correction.LineID, correction.Quantity, s.now()); err != nil {
			return nil, err
		}
	}
	if err := s.recompute(ctx, amended); err != nil {
		return nil, err
	}
	payments, err := buildPayments(req.Payments, s.now())
	if err != nil {
		return nil, err
	}
	if err := amended.Close(payments, s.now()); err != nil {
		return nil, err
	}
	if err := s.save(ctx, amended); err != nil {
		return nil, err
	}

	s.logger.Info("order amended",
		zap.String("order_id", amended.ID.String()),
		zap.String("total", amended.Total().String()))

	return toOrderResponse(amended), nil
}

func resolveAddons(product *catalog.Product, addonIDs []uuid.UUID) ([]ordering.Addon, error) {
	addons := make([]ordering.Addon, 0, len(addonIDs))
	for _, id := range addonIDs {
		option, ok := product.FindAddonOption(id)
		if !ok {
			return nil, shared.NewDomainError("ADDON_NOT_FOUND", "Addon option does not belong to the product")
		}
		addon, err := ordering.NewAddon(option.ID, option.Name, option.Price)
		if err != nil {
			return nil, err
		}
		addons = append(addons, addon)
	}
	return addons, nil
}

func buildManualDiscount(req DiscountRequest, at time.Time) (*ordering.ManualDiscount, error) {
	switch ordering.DiscountMode(req.Mode) {
	case ordering.DiscountPercentage:
		return ordering.NewPercentageManualDiscount(req.Value, req.Reason, req.AppliedBy, at)
	case ordering.DiscountFixedAmount:
		return ordering.NewFixedAmountManualDiscount(req.Value, req.Reason, req.AppliedBy, at)
	default:
		return nil, shared.NewDomainError("INVALID_DISCOUNT_MODE", "Unknown discount mode")
	}
}

func buildPayments(inputs []PaymentInput, at time.Time) ([]ordering.Payment, error) {
	payments := make([]ordering.Payment, 0, len(inputs))
	for _, input := range inputs {
		payment, err := ordering.NewPayment(ordering.PaymentMethod(input.Method), input.Amount, at)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

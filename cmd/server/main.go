package main

import (
	"os"
	"os/signal"
	"syscall"

	orderingapp "github.com/foodflow/backend/internal/application/ordering"
	"github.com/foodflow/backend/internal/domain/ordering"
	"github.com/foodflow/backend/internal/infrastructure/config"
	"github.com/foodflow/backend/internal/infrastructure/event"
	"github.com/foodflow/backend/internal/infrastructure/logger"
	"github.com/foodflow/backend/internal/infrastructure/persistence/memory"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.NewFromSettings(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting FoodFlow pricing backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("currency", cfg.Pricing.Currency),
		zap.String("tie_break", cfg.Pricing.TieBreak),
	)

	// Initialize repositories
	orderRepo := memory.NewOrderRepository()
	productRepo := memory.NewProductRepository()
	promotionProvider := memory.NewPromotionProvider()

	// Initialize the event bus, the pricing engine and the ordering service
	eventBus := event.NewInMemoryEventBus(log)
	engine := ordering.NewEngineWithTieBreak(ordering.TieBreak(cfg.Pricing.TieBreak))
	orderService := orderingapp.NewOrderService(orderRepo, productRepo, promotionProvider, engine, eventBus, log)
	_ = orderService

	log.Info("Ordering service ready")

	// The transport layer mounts on top of the service. Until it lands the
	// process just waits for a shutdown signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
}

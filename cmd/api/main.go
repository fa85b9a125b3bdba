package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/forkpoint/ordering-api/internal/application/service"
	"github.com/forkpoint/ordering-api/internal/config"
	domainRepo "github.com/forkpoint/ordering-api/internal/domain/repository"
	"github.com/forkpoint/ordering-api/internal/infrastructure/database"
	"github.com/forkpoint/ordering-api/internal/infrastructure/repository"
	"github.com/forkpoint/ordering-api/internal/presentation/http/handler"
	"github.com/forkpoint/ordering-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize repositories
	var cartStates domainRepo.CartStateRepository
	if cfg.Cart.Store == "memory" {
		// Ephemeral carts: snapshots do not survive a restart
		log.Println("Running with in-memory cart store")
		cartStates = repository.NewMemoryCartStateRepository()
	} else {
		cartStates = repository.NewCartStateRepository(db)
	}
	branchRepo := repository.NewBranchRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	sessions := service.NewSessionManager(cartStates)
	pricingService := service.NewPricingService()
	splitService := service.NewSplitBillService()
	orderGateway := repository.NewLoggingOrderGateway()
	orderService := service.NewOrderService(orderGateway, pricingService, splitService)

	// Initialize handlers
	h := &routes.Handlers{
		Cart:    handler.NewCartHandler(sessions, branchRepo),
		Pricing: handler.NewPricingHandler(sessions, branchRepo, pricingService, splitService),
		Branch:  handler.NewBranchHandler(branchRepo),
		Order:   handler.NewOrderHandler(sessions, branchRepo, orderService),
	}

	router := routes.Setup(h, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	log.Printf("Starting %s on port %s", cfg.App.Name, cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

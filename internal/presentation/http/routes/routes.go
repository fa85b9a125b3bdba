package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/forkpoint/ordering-api/internal/config"
	domainRepo "github.com/forkpoint/ordering-api/internal/domain/repository"
	"github.com/forkpoint/ordering-api/internal/presentation/http/handler"
	"github.com/forkpoint/ordering-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Cart    *handler.CartHandler
	Pricing *handler.PricingHandler
	Branch  *handler.BranchHandler
	Order   *handler.OrderHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		branches := v1.Group("/branches")
		{
			branches.GET("", h.Branch.List)
			branches.GET("/:branchId", h.Branch.Get)
			branches.POST("", h.Branch.Create)
		}

		// Cart and order routes are session scoped
		session := v1.Group("")
		session.Use(middleware.SessionMiddleware())

		rateLimiter := middleware.NewSessionRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		session.Use(rateLimiter.Middleware())

		cart := session.Group("/cart")
		{
			cart.GET("", h.Cart.Get)
			cart.DELETE("", h.Cart.Clear)
			cart.POST("/items", h.Cart.AddItem)
			cart.DELETE("/items/:key", h.Cart.RemoveItem)
			cart.PATCH("/items/:key", h.Cart.UpdateQuantity)
			cart.PUT("/branch/:branchId", h.Cart.SelectBranch)
			cart.DELETE("/branches/:branchId", h.Cart.ClearBranch)
			cart.GET("/summary", h.Cart.Summary)
			cart.PUT("/context", h.Cart.UpdateContext)
			cart.GET("/quote", h.Pricing.Quote)
			cart.GET("/split", h.Pricing.SplitBill)
		}

		orders := session.Group("/orders")
		if deps.IdempotencyRepo != nil {
			orders.Use(middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}))
		}
		{
			orders.GET("/preview", h.Order.Preview)
			orders.POST("", h.Order.Submit)
		}
	}

	return router
}

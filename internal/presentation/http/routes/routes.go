package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/washbook/washbook-api/internal/config"
	domainRepo "github.com/washbook/washbook-api/internal/domain/repository"
	"github.com/washbook/washbook-api/internal/presentation/http/handler"
	"github.com/washbook/washbook-api/internal/presentation/http/middleware"
	"github.com/washbook/washbook-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Customer  *handler.CustomerHandler
	ClothType *handler.ClothTypeHandler
	Order     *handler.OrderHandler
	Bill      *handler.BillHandler
	Shop      *handler.ShopHandler
	Activity  *handler.ActivityHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, h)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewOwnerRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	idempotency := middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})

	// Auth/Profile
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Customers
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	// Price catalog
	clothTypes := protected.Group("/cloth-types")
	{
		clothTypes.GET("", h.ClothType.List)
		clothTypes.POST("", h.ClothType.Create)
		clothTypes.GET("/watch", h.ClothType.Watch)
		clothTypes.PUT("/:id", h.ClothType.Update)
		clothTypes.DELETE("/:id", h.ClothType.Delete)
	}

	// Orders
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		// Creation replays on retry instead of duplicating
		orders.POST("", idempotency, h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id", h.Order.Update)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
		orders.DELETE("/:id", h.Order.Delete)
	}

	// Bills
	bills := protected.Group("/bills")
	{
		bills.GET("", h.Bill.List)
		bills.POST("", idempotency, h.Bill.Create)
		bills.GET("/:id", h.Bill.Get)
		bills.GET("/:id/invoice", h.Bill.Invoice)
		bills.PUT("/:id/status", h.Bill.UpdateStatus)
		bills.DELETE("/:id", h.Bill.Delete)
	}

	// Shop profile
	protected.GET("/shop", h.Shop.Get)
	protected.PUT("/shop", h.Shop.Update)

	// Audit log
	protected.GET("/activities", h.Activity.List)
}

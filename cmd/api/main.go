package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/washbook/washbook-api/internal/application/service"
	"github.com/washbook/washbook-api/internal/config"
	"github.com/washbook/washbook-api/internal/events"
	"github.com/washbook/washbook-api/internal/infrastructure/database"
	"github.com/washbook/washbook-api/internal/infrastructure/repository"
	"github.com/washbook/washbook-api/internal/presentation/http/handler"
	"github.com/washbook/washbook-api/internal/presentation/http/routes"
	"github.com/washbook/washbook-api/pkg/email"
	"github.com/washbook/washbook-api/pkg/utils"
)

func main() {
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	clothTypeRepo := repository.NewClothTypeRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	billRepo := repository.NewBillRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	shopRepo := repository.NewShopRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// In-process event bus: catalog watchers and the audit log recorder hang
	// off mutations without slowing down the request path
	bus := events.New()

	// Services
	authService := service.NewAuthService(userRepo, passwordResetRepo, jwtManager, emailService)
	customerService := service.NewCustomerService(customerRepo, bus)
	clothTypeService := service.NewClothTypeService(clothTypeRepo, bus)
	orderService := service.NewOrderService(orderRepo, orderItemRepo, customerRepo, clothTypeRepo, bus)
	billService := service.NewBillService(billRepo, orderRepo, customerRepo, bus)
	invoiceService := service.NewInvoiceService(billRepo, orderRepo, clothTypeRepo, shopRepo)
	shopService := service.NewShopService(shopRepo, bus)
	activityService := service.NewActivityService(activityRepo)

	if err := activityService.Subscribe(bus); err != nil {
		log.Fatalf("Failed to attach activity recorder: %v", err)
	}

	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Customer:  handler.NewCustomerHandler(customerService),
		ClothType: handler.NewClothTypeHandler(clothTypeService, bus),
		Order:     handler.NewOrderHandler(orderService),
		Bill:      handler.NewBillHandler(billService, invoiceService),
		Shop:      handler.NewShopHandler(shopService),
		Activity:  handler.NewActivityHandler(activityService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

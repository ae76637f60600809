package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"print-kiosk-backend/internal/config"
	"print-kiosk-backend/internal/handlers"
	"print-kiosk-backend/internal/middleware"
	"print-kiosk-backend/internal/services"
)

func setupRouter(cfg *config.Config, logger *zap.Logger, orderService *services.OrderService) (*gin.Engine, error) {
	ordersHandler := handlers.NewOrdersHandler(cfg, orderService, logger)
	webhookHandler := handlers.NewWebhookHandler(orderService, logger)
	staffHandler := handlers.NewStaffHandler(orderService, logger)

	router := gin.New()

	// ClientIP keys the rate limiter, so forwarding headers are only read
	// from listed proxies. An empty list trusts none.
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}

	router.Use(middleware.RequestLogger(logger))
	router.Use(gin.Recovery())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health (no auth)
	router.GET("/", handlers.RootHandler)
	router.GET("/health", handlers.HealthHandler)

	var limiter *middleware.IPRateLimiter
	if cfg.CreateOrderRateLimit > 0 {
		limiter = middleware.NewIPRateLimiter(cfg.CreateOrderRateLimit)
	}
	rateLimited := middleware.RateLimitMiddleware(limiter)

	// Kiosk routes
	router.POST("/test", rateLimited, ordersHandler.TestEcho)
	router.POST("/create-order-test", rateLimited, ordersHandler.CreateOrderTest)
	router.POST("/create-order", rateLimited, ordersHandler.CreateOrder)
	router.GET("/orders/:code", ordersHandler.GetOrderStatus)

	// Webhook (no auth, events are not signature-checked)
	router.POST("/webhook/yoco", webhookHandler.HandleYocoWebhook)

	// Staff routes
	if cfg.StaffAuthEnabled() {
		staff := router.Group("/staff")
		staff.Use(middleware.AuthMiddleware(cfg))
		staff.GET("/orders/:code", staffHandler.GetOrder)
	} else {
		logger.Warn("SUPABASE_JWT_SECRET not set, staff routes disabled")
	}

	return router, nil
}

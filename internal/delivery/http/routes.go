package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/tebramedicals/medtech-site/config"
	"github.com/tebramedicals/medtech-site/internal/infrastructure/content"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) (*gin.Engine, error) {
	// Set Gin mode based on environment
	switch cfg.Server.Environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	router := gin.New()

	// Client IPs key the contact rate limiter, so X-Forwarded-For is only
	// honored when the connection comes from a configured proxy.
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	// Global middleware
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(handler.logger))
	router.Use(RecoveryMiddleware(handler.logger))
	router.Use(MetricsMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	limiter := NewIPRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst)

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	router.StaticFS("/assets", assets())

	// Pages
	router.GET(content.PathHome, handler.HomePage)
	router.GET(content.PathAbout, handler.AboutPage)
	router.GET(content.PathProducts, handler.ProductsPage)
	router.GET(content.PathContact, handler.ContactPage)
	router.POST(content.PathContact, RateLimitMiddleware(limiter), handler.SubmitContactForm)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", handler.ListProducts)
			products.GET("/:id", handler.GetProduct)
		}
		v1.GET("/categories", handler.ListCategories)
		v1.POST("/contact", RateLimitMiddleware(limiter), handler.SubmitContact)
	}

	router.NoRoute(handler.NotFound)

	return router, nil
}

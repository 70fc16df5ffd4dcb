package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"traceability-api/internal/middleware"
	"traceability-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	Services    *services.ServiceContainer
	FunctionKey string
}

// SetupRoutes configures all API routes. Route paths keep the historical
// function names the shop-floor clients already call; the info/read
// endpoints are anonymous, everything that writes (and card auth) requires
// the function key.
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	authHandler := NewAuthHandler(config.Services.Auth)
	statusHandler := NewStatusHandler(config.Services.Status)
	gitterHandler := NewGitterHandler(config.Services.Gitter)
	forgingHandler := NewForgingHandler(config.Services.Forging)
	protocolHandler := NewProtocolHandler(config.Services.Protocol)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "traceability-api",
			"version": "1.0.0",
		})
	})

	// Anonymous read endpoints
	router.GET("/readstatus", statusHandler.ReadStatus)
	router.GET("/InfoStatus", statusHandler.InfoStatus)
	router.GET("/GetInfoGitter", gitterHandler.GetInfoGitter)

	// Function-key protected endpoints
	protected := router.Group("")
	protected.Use(middleware.FunctionKey(config.FunctionKey))
	{
		protected.GET("/authenticatecard", authHandler.AuthenticateCard)
		protected.POST("/authenticatecard", authHandler.AuthenticateCard)
		protected.POST("/ChangeStatus", statusHandler.ChangeStatus)
		protected.POST("/KovaciLinkaCheck", forgingHandler.Check)
		protected.POST("/KovaciLinkaScan", forgingHandler.Scan)
		protected.POST("/ProtocolPartInsert", protocolHandler.Insert)
	}
}

package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"storefront/config"
	_ "storefront/docs"
	"storefront/middleware"
	"storefront/models"
	"storefront/repositories"
	"storefront/routes"
	"storefront/services"
)

// @title Storefront Gateway API
// @version 1.0
// @description Cart, checkout and storefront proxy for the shop UI
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.InitStorage()
	models.InitRedis()
	defer models.CloseRedis()

	var cartRepo repositories.CartRepository
	if config.AppConfig.CartBackend == "redis" && models.RedisClient != nil {
		cartRepo = repositories.NewRedisCartRepository(models.RedisClient)
		log.Println("Cart persistence: redis")
	} else {
		cartRepo = repositories.NewFileCartRepository(config.CartStorageDir())
		log.Println("Cart persistence: file")
	}

	carts := services.NewCartStore(cartRepo)
	payments := services.NewPaymentService(
		config.AppConfig.APIBaseURL,
		config.AppConfig.PaymentProviderURL,
		config.AppConfig.HTTPTimeout,
	)
	orders := services.NewOrderService(config.AppConfig.APIBaseURL, config.AppConfig.HTTPTimeout)
	pending := repositories.NewFilePendingOrderRepository(config.PendingOrderDir())

	mail, err := services.NewEmailService()
	if err != nil {
		log.Println("Running without receipt email:", err)
		mail = nil
	}

	checkout := services.NewCheckoutService(carts, payments, orders, pending, mail, config.AppConfig.PaymentCurrency)

	catalog := services.NewCatalogService(
		config.AppConfig.APIBaseURL,
		config.AppConfig.HTTPTimeout,
		models.RedisClient,
		config.AppConfig.CatalogCacheTTL,
	)

	assistant := services.NewAssistantService(
		config.AppConfig.AssistantBaseURL,
		config.AppConfig.AssistantAPIKey,
		config.AppConfig.AssistantModel,
		config.AppConfig.HTTPTimeout,
	)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, routes.Services{
		Carts:     carts,
		Checkout:  checkout,
		Catalog:   catalog,
		Orders:    orders,
		Assistant: assistant,
	})

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

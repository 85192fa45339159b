package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront/controllers"
	"storefront/middleware"
	"storefront/services"
)

// Services carries the application-root-owned dependencies into the route
// layer; controllers receive them instead of reaching for globals.
type Services struct {
	Carts     *services.CartStore
	Checkout  *services.CheckoutService
	Catalog   *services.CatalogService
	Orders    *services.OrderService
	Assistant *services.AssistantService
}

func SetupRoutes(router *gin.Engine, deps Services) {
	authCtrl := controllers.NewAuthController()
	productCtrl := controllers.NewProductController(deps.Catalog)
	cartCtrl := controllers.NewCartController(deps.Carts)
	checkoutCtrl := controllers.NewCheckoutController(deps.Checkout)
	orderCtrl := controllers.NewOrderController(deps.Orders)
	assistantCtrl := controllers.NewAssistantController(deps.Assistant)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/register", authCtrl.Register)

	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.GET("/products/category/:category", productCtrl.GetProductsByCategory)

	router.POST("/assistant/suggestion", assistantCtrl.Suggest)

	cart := router.Group("/cart")
	cart.Use(middleware.CartSessionMiddleware())
	{
		cart.GET("", cartCtrl.GetCart)
		cart.DELETE("", cartCtrl.ClearCart)
		cart.POST("/items", cartCtrl.AddItem)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
		cart.POST("/items/:id/increment", cartCtrl.IncrementItem)
		cart.POST("/items/:id/decrement", cartCtrl.DecrementItem)
	}

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("/checkout", checkoutCtrl.Checkout)
		auth.POST("/checkout/pending/retry", checkoutCtrl.RetryPending)
		auth.GET("/orders/payment/:paymentId", orderCtrl.GetOrderByPayment)
		auth.PUT("/auth/user/:id", authCtrl.UpdateUser)
		auth.DELETE("/auth/user/:id", authCtrl.DeleteUser)
	}
}

package routes

import (
	"log"

	"mmoss/controllers"
	"mmoss/middleware"
	"mmoss/models"
	"mmoss/repositories"
	"mmoss/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	productRepo := repositories.NewProductRepository()
	userRepo := repositories.NewUserRepository()
	promoRepo := repositories.NewPromoRepository()
	orderRepo := repositories.NewOrderRepository()

	// One cart service for the process: carts live in memory, keyed by user.
	cartService := services.NewCartService(productRepo)
	promoService := services.NewPromoService(promoRepo)

	var mailer services.Mailer
	if emailService, err := models.NewEmailService(); err == nil {
		mailer = emailService
	} else {
		log.Println("Order confirmation emails disabled:", err)
	}

	checkoutService := services.NewCheckoutService(
		cartService, productRepo, promoService, userRepo, orderRepo, mailer,
	)

	authCtrl := controllers.NewAuthController(services.NewAuthService(), cartService)
	userCtrl := controllers.NewUserController(services.NewUserService())
	productCtrl := controllers.NewProductController(services.NewProductService())
	cartCtrl := controllers.NewCartController(cartService, userRepo)
	checkoutCtrl := controllers.NewCheckoutController(checkoutService)
	promoCtrl := controllers.NewPromoController(promoRepo)
	orderCtrl := controllers.NewOrderController(orderRepo)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.GET("/categories", productCtrl.ListCategories)
	router.GET("/products", productCtrl.ListProducts)
	router.GET("/products/:id", productCtrl.GetProduct)
	router.GET("/stores", checkoutCtrl.ListStores)
	router.GET("/promos", promoCtrl.ListActivePromos)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("/auth/logout", authCtrl.Logout)
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.PATCH("/auth/profile", authCtrl.UpdateProfile)
		auth.POST("/auth/change-password", authCtrl.ChangePassword)

		auth.POST("/account/top-up", userCtrl.TopUp)
		auth.POST("/account/vip", userCtrl.PurchaseVIP)
		auth.DELETE("/account/vip", userCtrl.CancelVIP)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items/:id", cartCtrl.SetQuantity)
		auth.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		auth.DELETE("/cart", cartCtrl.ClearCart)

		auth.POST("/checkout", checkoutCtrl.Checkout)
		auth.GET("/orders", orderCtrl.GetMyOrders)
		auth.GET("/orders/:id", orderCtrl.GetOrder)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", orderCtrl.GetDashboard)

		admin.GET("/users", userCtrl.ListUsers)

		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)

		admin.GET("/promos", promoCtrl.ListAllPromos)
		admin.POST("/promos", promoCtrl.CreatePromo)
		admin.PATCH("/promos/:id", promoCtrl.UpdatePromo)
		admin.DELETE("/promos/:id", promoCtrl.DeletePromo)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/:id", orderCtrl.GetOrder)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
	}
}

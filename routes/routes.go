package routes

import (
	"fhr-mart/config"
	"fhr-mart/controllers"
	"fhr-mart/libs"
	"fhr-mart/middleware"
	"fhr-mart/repositories"
	"fhr-mart/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	catalogRepo := repositories.NewCatalogRepository()
	catalogSvc := services.NewCatalogService(catalogRepo)
	sessionSvc := services.NewSessionService(config.AppConfig.ToastDuration)

	gemini := libs.NewGeminiClient(
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
		config.AppConfig.GeminiTimeout,
	)
	adviceSvc := services.NewAdviceService(gemini, catalogRepo)

	productCtrl := controllers.NewProductController(catalogSvc)
	sessionCtrl := controllers.NewSessionController(sessionSvc)
	cartCtrl := controllers.NewCartController(catalogSvc)
	checkoutCtrl := controllers.NewCheckoutController()
	wishlistCtrl := controllers.NewWishlistController(catalogSvc)
	authCtrl := controllers.NewAuthController()
	advisorCtrl := controllers.NewAdvisorController(adviceSvc)
	notificationCtrl := controllers.NewNotificationController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/categories", productCtrl.GetAllCategories)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.POST("/session", sessionCtrl.CreateSession)

	session := router.Group("/")
	session.Use(middleware.SessionMiddleware(sessionSvc))
	{
		session.GET("/cart", cartCtrl.GetCart)
		session.POST("/cart/items", cartCtrl.AddItem)
		session.PATCH("/cart/items/:id", cartCtrl.UpdateItem)
		session.DELETE("/cart/items/:id", cartCtrl.RemoveItem)

		session.GET("/checkout", checkoutCtrl.GetCheckout)
		session.POST("/checkout/open", checkoutCtrl.Open)
		session.POST("/checkout/advance", checkoutCtrl.Advance)
		session.POST("/checkout/confirm", checkoutCtrl.Confirm)

		session.GET("/wishlist", wishlistCtrl.GetWishlist)
		session.POST("/wishlist/:id", wishlistCtrl.Toggle)

		session.POST("/auth/login", authCtrl.Login)
		session.GET("/auth/profile", authCtrl.GetProfile)

		session.GET("/notifications/toast", notificationCtrl.GetToast)
		session.POST("/advisor", advisorCtrl.Ask)
	}
}

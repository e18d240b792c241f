package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/coffee-shop/config"
	"github.com/yeremiapane/coffee-shop/controllers"
	"github.com/yeremiapane/coffee-shop/middlewares"
	"github.com/yeremiapane/coffee-shop/services"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg *config.Config, paymentService *services.PaymentService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSAllowedOrigin))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).RateLimit())

	// Inisialisasi controller
	tableCtrl := controllers.NewTableController(db)
	reservationCtrl := controllers.NewReservationController(db)
	categoryCtrl := controllers.NewMenuCategoryController(db)
	menuCtrl := controllers.NewMenuController(db)
	cartCtrl := controllers.NewCartController(db)
	checkoutCtrl := controllers.NewCheckoutController(db)
	paymentCtrl := controllers.NewPaymentController(db, paymentService)
	receiptCtrl := controllers.NewReceiptController(db, paymentService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// TABLES
	r.GET("/tables", tableCtrl.GetAllTables)
	r.GET("/tables/lookup", tableCtrl.LookupTable)
	r.GET("/tables/availability", tableCtrl.GetAvailability)
	r.GET("/tables/:table_id", tableCtrl.GetTableByID)

	// RESERVATIONS
	r.POST("/reservations", reservationCtrl.CreateReservation)
	r.GET("/reservations/:code", reservationCtrl.GetReservation)
	r.DELETE("/reservations/:code", reservationCtrl.CancelReservation)

	// MENU
	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.GET("/menus/:menu_id", menuCtrl.GetMenuByID)

	// CART
	r.POST("/carts", cartCtrl.CreateCart)
	r.GET("/carts/:cart_id", cartCtrl.GetCart)
	r.POST("/carts/:cart_id/items", cartCtrl.AddItem)
	r.PATCH("/carts/:cart_id/items/:menu_id", cartCtrl.UpdateQuantity)
	r.DELETE("/carts/:cart_id/items/:menu_id", cartCtrl.RemoveItem)
	r.DELETE("/carts/:cart_id/items", cartCtrl.ClearCart)

	// CHECKOUT
	r.GET("/payment-methods", paymentCtrl.GetPaymentMethods)
	r.GET("/payments/metrics", paymentCtrl.GetPaymentMetrics)
	r.POST("/checkout", checkoutCtrl.StartCheckout)
	r.GET("/checkout/:reference", checkoutCtrl.GetCheckout)
	r.PUT("/checkout/:reference/contact", checkoutCtrl.SubmitContact)
	r.PUT("/checkout/:reference/payment-method", checkoutCtrl.SelectPaymentMethod)
	r.POST("/checkout/:reference/back", checkoutCtrl.Back)
	r.GET("/checkout/:reference/payment", paymentCtrl.GetPaymentStatus)

	payGroup := r.Group("/checkout")
	payGroup.Use(
		middlewares.PaymentSecurityHeaders(),
		middlewares.PaymentRateLimiter(),
		middlewares.LogPaymentRequest(),
	)
	{
		payGroup.POST("/:reference/pay", paymentCtrl.Pay)
	}

	// Routes untuk receipt dengan middleware logger
	receiptGroup := r.Group("/checkout")
	receiptGroup.Use(middlewares.ReceiptLoggerMiddleware())
	{
		receiptGroup.GET("/:reference/receipt", receiptCtrl.DownloadReceipt)
	}

	// WebSocket untuk display barista, floor board dan staff
	r.GET("/ws/:role", controllers.KDSHandler)

	return r
}

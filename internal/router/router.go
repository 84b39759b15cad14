package router

import (
	"github.com/gin-gonic/gin"

	"github.com/digimarketpro/digimarket-backend/config"
	"github.com/digimarketpro/digimarket-backend/internal/app/controller"
	"github.com/digimarketpro/digimarket-backend/internal/middleware"
	"github.com/digimarketpro/digimarket-backend/internal/websocket"
)

type Router struct {
	authController      *controller.AuthController
	catalogController   *controller.CatalogController
	cartController      *controller.CartController
	checkoutController  *controller.CheckoutController
	contentController   *controller.ContentController
	wishlistController  *controller.WishlistController
	settingsController  *controller.SettingsController
	assistantController *controller.AssistantController
	adminController     *controller.AdminController
	uploadController    *controller.UploadController
	assistantWS         *websocket.Handler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	catalogController *controller.CatalogController,
	cartController *controller.CartController,
	checkoutController *controller.CheckoutController,
	contentController *controller.ContentController,
	wishlistController *controller.WishlistController,
	settingsController *controller.SettingsController,
	assistantController *controller.AssistantController,
	adminController *controller.AdminController,
	uploadController *controller.UploadController,
	assistantWS *websocket.Handler,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:      authController,
		catalogController:   catalogController,
		cartController:      cartController,
		checkoutController:  checkoutController,
		contentController:   contentController,
		wishlistController:  wishlistController,
		settingsController:  settingsController,
		assistantController: assistantController,
		adminController:     adminController,
		uploadController:    uploadController,
		assistantWS:         assistantWS,
		authMiddleware:      authMiddleware,
		config:              cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "DigiMarket API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
		}

		products := v1.Group("/products")
		{
			products.GET("", r.catalogController.ListProducts)
			products.GET("/categories", r.catalogController.ListCategories)
			products.GET("/:id", r.catalogController.GetProduct)
			products.POST("/:id/reviews", r.catalogController.AddReview)
		}

		v1.GET("/currencies", r.catalogController.ListCurrencies)

		// cart, wishlist, and history work for guests too; a signed-in
		// token takes precedence over the guest id header
		cart := v1.Group("/cart")
		cart.Use(r.authMiddleware.OptionalAuthenticate())
		{
			cart.GET("", r.cartController.GetCart)
			cart.POST("/items", r.cartController.AddItem)
			cart.PATCH("/items/:productId", r.cartController.UpdateQuantity)
			cart.DELETE("/items/:productId", r.cartController.RemoveItem)
			cart.DELETE("", r.cartController.ClearCart)
		}

		v1.POST("/checkout",
			r.authMiddleware.OptionalAuthenticate(),
			r.checkoutController.PlaceOrder,
		)

		wishlist := v1.Group("/wishlist")
		wishlist.Use(r.authMiddleware.OptionalAuthenticate())
		{
			wishlist.GET("", r.wishlistController.GetWishlist)
			wishlist.POST("/toggle", r.wishlistController.Toggle)
		}

		history := v1.Group("/history")
		history.Use(r.authMiddleware.OptionalAuthenticate())
		{
			history.GET("", r.wishlistController.GetHistory)
			history.POST("", r.wishlistController.RecordView)
		}

		pages := v1.Group("/pages")
		{
			pages.GET("", r.contentController.ListPages)
			pages.GET("/:slug", r.contentController.GetPage)
		}

		blog := v1.Group("/blog")
		{
			blog.GET("", r.contentController.ListPosts)
			blog.GET("/:slug", r.contentController.GetPost)
		}

		v1.GET("/settings", r.settingsController.GetSettings)
		v1.GET("/meta/:view", r.settingsController.GetMeta)

		assistant := v1.Group("/assistant")
		{
			assistant.GET("/greeting", r.assistantController.Greeting)
			assistant.POST("/ask", r.assistantController.Ask)
			assistant.GET("/ws", r.assistantWS.Serve)
		}

		admin := v1.Group("/admin")
		admin.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireRole("admin"))
		{
			admin.POST("/products", r.adminController.CreateProduct)
			admin.PUT("/products/:id", r.adminController.UpdateProduct)
			admin.DELETE("/products/:id", r.adminController.DeleteProduct)

			admin.POST("/pages", r.adminController.CreatePage)
			admin.PUT("/pages/:id", r.adminController.UpdatePage)
			admin.DELETE("/pages/:id", r.adminController.DeletePage)

			admin.POST("/posts", r.adminController.CreatePost)
			admin.PUT("/posts/:id", r.adminController.UpdatePost)
			admin.DELETE("/posts/:id", r.adminController.DeletePost)

			admin.GET("/customers", r.adminController.ListCustomers)
			admin.GET("/sitemap.xml", r.adminController.GetSitemap)
			admin.GET("/exports/products", r.adminController.ExportProducts)
			admin.GET("/exports/customers", r.adminController.ExportCustomers)

			admin.PUT("/settings", r.settingsController.UpdateSettings)
			admin.POST("/uploads/presigned-url", r.uploadController.GeneratePresignedURL)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Guest-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

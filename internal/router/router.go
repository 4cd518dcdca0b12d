package router

import (
	"github.com/gin-gonic/gin"
	"github.com/pehchaan/storefront-backend/config"
	"github.com/pehchaan/storefront-backend/internal/app/controller"
	"github.com/pehchaan/storefront-backend/internal/middleware"
	"github.com/pehchaan/storefront-backend/internal/web"
)

type Router struct {
	catalogController *controller.CatalogController
	cartController    *controller.CartController
	pageController    *controller.PageController
	config            *config.Config
}

func NewRouter(
	catalogController *controller.CatalogController,
	cartController *controller.CartController,
	pageController *controller.PageController,
	cfg *config.Config,
) *Router {
	return &Router{
		catalogController: catalogController,
		cartController:    cartController,
		pageController:    pageController,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))
	router.Use(middleware.CartSession())

	router.SetHTMLTemplate(web.Templates())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Pehchaan storefront is running",
		})
	})

	// Static product images and styles
	router.Static("/images", "./web/static/images")
	router.Static("/static", "./web/static")

	// Storefront pages
	router.GET("/", r.pageController.ProductsPage)
	router.GET("/products", r.pageController.ProductsPage)
	router.GET("/products/:id", r.pageController.ProductDetailPage)
	router.GET("/cart", r.pageController.CartPage)
	router.POST("/cart/add", r.pageController.AddToCartForm)
	router.POST("/cart/increase", r.pageController.IncreaseQuantityForm)
	router.POST("/cart/decrease", r.pageController.DecreaseQuantityForm)
	router.POST("/cart/remove", r.pageController.RemoveFromCartForm)

	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", r.catalogController.ListProducts)
			products.GET("/:id", r.catalogController.GetProductByID)
		}

		cart := v1.Group("/cart")
		{
			cart.GET("", r.cartController.GetCart)
			cart.GET("/count", r.cartController.CartCount)
			cart.POST("", r.cartController.AddToCart)
			cart.PATCH("/:product_id", r.cartController.ChangeQuantity)
			cart.DELETE("/:product_id", r.cartController.RemoveFromCart)
			cart.DELETE("", r.cartController.ClearCart)
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
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

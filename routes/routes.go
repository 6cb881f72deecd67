package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"shopping/controllers"
	"shopping/middleware"
)

// NewEngine returns a gin engine with the middleware both services share.
func NewEngine(logger zerolog.Logger, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.SetTrustedProxies(nil)

	r.Use(middleware.RequestID(logger))
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(corsOrigins))

	return r
}

func RegisterProductRoutes(r *gin.Engine, products *controllers.ProductController, health *controllers.HealthController) {
	r.GET("/health", health.CheckHealth)

	r.POST("/addProduct", products.AddProduct)
	r.GET("/products", products.GetProducts)
}

func RegisterCartRoutes(r *gin.Engine, cart *controllers.CartController, health *controllers.HealthController) {
	r.GET("/health", health.CheckHealth)

	api := r.Group("/api")
	{
		api.GET("/cart", cart.GetCart)
		api.POST("/cart", cart.AddToCart)
		api.PUT("/cart/:id", cart.UpdateCart)
		api.DELETE("/cart/:id", cart.RemoveFromCart)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/faturh/product-service/internal/handlers"
)

// Register wires all endpoints onto the router.
func Register(router *gin.Engine, products *handlers.ProductHandler, recs *handlers.RecommendationHandler, users *handlers.UserHandler, health *handlers.HealthHandler) {
	router.GET("/healthz", health.Healthz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/products", products.ListProducts)
	router.GET("/products/:id", products.GetProduct)
	router.POST("/products", products.CreateProduct)
	router.PUT("/products/:id", products.UpdateProduct)
	router.DELETE("/products/:id", products.DeleteProduct)

	router.GET("/products/:id/seller", users.GetProductSeller)
	router.GET("/users", users.GetAllUsers)

	router.GET("/recommendations/similar/:productId", recs.GetSimilarProducts)
	router.GET("/recommendations/user/:userId", recs.GetUserRecommendations)
	router.POST("/recommendations/update-history", recs.UpdatePurchaseHistory)
}

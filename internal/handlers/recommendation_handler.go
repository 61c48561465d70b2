package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/faturh/product-service/internal/metrics"
	"github.com/faturh/product-service/internal/models"
)

// Recommender is the engine surface the handlers call.
type Recommender interface {
	SimilarProducts(ctx context.Context, productID int64) ([]models.Product, error)
	UserRecommendations(ctx context.Context, userID int64) ([]models.Product, error)
	RecordPurchase(userID, productID int64) []int64
}

type RecommendationHandler struct {
	engine Recommender
}

func NewRecommendationHandler(engine Recommender) *RecommendationHandler {
	return &RecommendationHandler{engine: engine}
}

// GetSimilarProducts returns products similar to the given one. A
// malformed or unknown id yields an empty list, not an error.
func (h *RecommendationHandler) GetSimilarProducts(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, []models.Product{})
		return
	}

	products, err := h.engine.SimilarProducts(c.Request.Context(), productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{
			Error:   "Failed to generate recommendations",
			Message: err.Error(),
		})
		return
	}

	metrics.RecommendationsServed.WithLabelValues("similar").Inc()
	c.JSON(http.StatusOK, products)
}

// GetUserRecommendations returns products recommended from the user's
// purchase history.
func (h *RecommendationHandler) GetUserRecommendations(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, []models.Product{})
		return
	}

	products, err := h.engine.UserRecommendations(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{
			Error:   "Failed to generate user recommendations",
			Message: err.Error(),
		})
		return
	}

	metrics.RecommendationsServed.WithLabelValues("user").Inc()
	c.JSON(http.StatusOK, products)
}

// UpdatePurchaseHistory records a purchase event.
func (h *RecommendationHandler) UpdatePurchaseHistory(c *gin.Context) {
	var req models.UpdateHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{
			Error:   "validation failed",
			Message: err.Error(),
		})
		return
	}

	history := h.engine.RecordPurchase(*req.UserID, *req.ProductID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Purchase history updated successfully",
		"history": history,
	})
}

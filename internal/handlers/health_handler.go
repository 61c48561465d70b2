package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ProductCounter reports the catalog size; used as a liveness probe of
// the product store.
type ProductCounter interface {
	Count(ctx context.Context) (int64, error)
}

type HealthHandler struct {
	store ProductCounter
}

func NewHealthHandler(store ProductCounter) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) Healthz(c *gin.Context) {
	count, err := h.store.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "products": count})
}

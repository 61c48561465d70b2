package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/faturh/product-service/internal/clients"
	"github.com/faturh/product-service/internal/repository"
)

// UserDirectory is the user-service surface the proxy handlers use.
type UserDirectory interface {
	GetUser(ctx context.Context, userID int64) (*clients.PeerResponse, error)
	ListUsers(ctx context.Context) (*clients.PeerResponse, error)
}

// UserHandler proxies user lookups to the user service. Upstream
// responses pass through verbatim, status included; only connection
// failures are converted to a local 500.
type UserHandler struct {
	users UserDirectory
	store ProductStore
}

func NewUserHandler(users UserDirectory, store ProductStore) *UserHandler {
	return &UserHandler{users: users, store: store}
}

// GetProductSeller resolves the seller of a product via the user
// service.
func (h *UserHandler) GetProductSeller(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "Product not found"})
		return
	}

	product, err := h.store.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Error: "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to get product"})
		return
	}

	sellerID := product.SellerID
	if sellerID == 0 {
		sellerID = 1
	}

	resp, err := h.users.GetUser(c.Request.Context(), sellerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{
			Error:   "Error connecting to UserService",
			Message: err.Error(),
		})
		return
	}

	c.Data(resp.Status, "application/json", resp.Body)
}

// GetAllUsers lists users from the user service.
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	resp, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{
			Error:   "Error connecting to UserService",
			Message: err.Error(),
		})
		return
	}

	c.Data(resp.Status, "application/json", resp.Body)
}

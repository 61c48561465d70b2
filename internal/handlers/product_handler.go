package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/faturh/product-service/internal/cache"
	"github.com/faturh/product-service/internal/models"
	"github.com/faturh/product-service/internal/repository"
)

const (
	productCacheTTL = 5 * time.Minute
	listCacheTTL    = 2 * time.Minute
	listCacheKey    = "products:list:all"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// ProductStore is what the product handlers need from the repository.
type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, id int64, upd models.ProductUpdate) (*models.Product, error)
	SoftDelete(ctx context.Context, id int64) error
}

type ProductHandler struct {
	store ProductStore
	cache *cache.Cache
}

func NewProductHandler(store ProductStore, c *cache.Cache) *ProductHandler {
	return &ProductHandler{store: store, cache: c}
}

// ListProducts returns every product.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	if cached, ok := h.cache.Value(listCacheKey); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := h.store.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to list products"})
		return
	}

	h.cache.Set(listCacheKey, products, listCacheTTL)
	c.JSON(http.StatusOK, products)
}

// GetProduct returns a single product by id.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "Product not found"})
		return
	}

	cacheKey := fmt.Sprintf("product:%d", id)
	if cached, ok := h.cache.Value(cacheKey); ok {
		c.JSON(http.StatusOK, cached)
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

	h.cache.Set(cacheKey, product, productCacheTTL)
	c.JSON(http.StatusOK, product)
}

// CreateProduct inserts a new product.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: "validation failed", Message: err.Error()})
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
		SellerID:    req.SellerID,
	}
	if product.SellerID == 0 {
		product.SellerID = 1
	}

	if err := h.store.Create(c.Request.Context(), &product); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to create product"})
		return
	}

	h.cache.Delete(listCacheKey)
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct applies a partial update and returns the new state.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "Product not found"})
		return
	}

	var upd models.ProductUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: "validation failed", Message: err.Error()})
		return
	}

	product, err := h.store.Update(c.Request.Context(), id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Error: "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to update product"})
		return
	}

	h.cache.Delete(fmt.Sprintf("product:%d", id))
	h.cache.Delete(listCacheKey)
	c.JSON(http.StatusOK, product)
}

// DeleteProduct soft-deletes a product.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "Product not found"})
		return
	}

	if err := h.store.SoftDelete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Error: "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to delete product"})
		return
	}

	h.cache.Delete(fmt.Sprintf("product:%d", id))
	h.cache.Delete(listCacheKey)
	c.JSON(http.StatusOK, messageResponse{Message: "Product deleted successfully"})
}

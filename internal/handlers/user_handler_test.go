package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faturh/product-service/internal/clients"
	"github.com/faturh/product-service/internal/models"
)

type fakeDirectory struct {
	user *clients.PeerResponse
	list *clients.PeerResponse
	err  error

	gotUserID int64
}

func (f *fakeDirectory) GetUser(_ context.Context, userID int64) (*clients.PeerResponse, error) {
	f.gotUserID = userID
	return f.user, f.err
}

func (f *fakeDirectory) ListUsers(context.Context) (*clients.PeerResponse, error) {
	return f.list, f.err
}

func userRouter(dir UserDirectory, store ProductStore) *gin.Engine {
	h := NewUserHandler(dir, store)

	r := gin.New()
	r.GET("/products/:id/seller", h.GetProductSeller)
	r.GET("/users", h.GetAllUsers)
	return r
}

func TestGetProductSeller(t *testing.T) {
	dir := &fakeDirectory{user: &clients.PeerResponse{
		Status: http.StatusOK,
		Body:   []byte(`{"id":3,"name":"Seller"}`),
	}}
	store := newFakeStore(models.Product{ID: 1, Name: "Laptop", SellerID: 3})
	r := userRouter(dir, store)

	w := doRequest(r, http.MethodGet, "/products/1/seller", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":3,"name":"Seller"}`, w.Body.String())
	assert.Equal(t, int64(3), dir.gotUserID)
}

func TestGetProductSellerProductMissing(t *testing.T) {
	r := userRouter(&fakeDirectory{}, newFakeStore())

	w := doRequest(r, http.MethodGet, "/products/9/seller", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProductSellerUpstreamStatusPassthrough(t *testing.T) {
	dir := &fakeDirectory{user: &clients.PeerResponse{
		Status: http.StatusNotFound,
		Body:   []byte(`{"error":"user not found"}`),
	}}
	store := newFakeStore(models.Product{ID: 1, SellerID: 8})
	r := userRouter(dir, store)

	w := doRequest(r, http.MethodGet, "/products/1/seller", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"user not found"}`, w.Body.String())
}

func TestGetProductSellerConnectionFailure(t *testing.T) {
	dir := &fakeDirectory{err: &clients.PeerError{Service: "user-service", Message: "connection refused"}}
	store := newFakeStore(models.Product{ID: 1, SellerID: 2})
	r := userRouter(dir, store)

	w := doRequest(r, http.MethodGet, "/products/1/seller", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error connecting to UserService")
}

func TestGetAllUsers(t *testing.T) {
	dir := &fakeDirectory{list: &clients.PeerResponse{
		Status: http.StatusOK,
		Body:   []byte(`[{"id":1},{"id":2}]`),
	}}
	r := userRouter(dir, newFakeStore())

	w := doRequest(r, http.MethodGet, "/users", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1},{"id":2}]`, w.Body.String())
}

func TestGetAllUsersConnectionFailure(t *testing.T) {
	dir := &fakeDirectory{err: &clients.PeerError{Service: "user-service", Message: "timeout"}}
	r := userRouter(dir, newFakeStore())

	w := doRequest(r, http.MethodGet, "/users", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

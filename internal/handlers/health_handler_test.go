package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeCounter struct {
	count int64
	err   error
}

func (f *fakeCounter) Count(context.Context) (int64, error) {
	return f.count, f.err
}

func TestHealthz(t *testing.T) {
	r := gin.New()
	r.GET("/healthz", NewHealthHandler(&fakeCounter{count: 3}).Healthz)

	w := doRequest(r, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestHealthzStoreDown(t *testing.T) {
	r := gin.New()
	r.GET("/healthz", NewHealthHandler(&fakeCounter{err: errors.New("no reachable servers")}).Healthz)

	w := doRequest(r, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

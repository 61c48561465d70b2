package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchPurchaseHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/user/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"product_id":1,"qty":2},{"id":2,"product_id":3},{"id":3,"product_id":1}]`))
	}))
	defer srv.Close()

	client := NewOrderClient(srv.URL, time.Second)

	ids, err := client.FetchPurchaseHistory(context.Background(), 7)

	require.NoError(t, err)
	// Duplicates pass through as-is; dedup happens downstream.
	assert.Equal(t, []int64{1, 3, 1}, ids)
}

func TestFetchPurchaseHistoryEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewOrderClient(srv.URL, time.Second)

	ids, err := client.FetchPurchaseHistory(context.Background(), 7)

	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFetchPurchaseHistoryHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewOrderClient(srv.URL, time.Second)

	_, err := client.FetchPurchaseHistory(context.Background(), 7)

	var peerErr *PeerError
	require.ErrorAs(t, err, &peerErr)
	assert.Equal(t, http.StatusInternalServerError, peerErr.Status)
}

func TestFetchPurchaseHistoryTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewOrderClient(srv.URL, 20*time.Millisecond)

	_, err := client.FetchPurchaseHistory(context.Background(), 7)

	var peerErr *PeerError
	require.ErrorAs(t, err, &peerErr)
	assert.Zero(t, peerErr.Status)
}

func TestFetchPurchaseHistoryConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	client := NewOrderClient(srv.URL, time.Second)

	_, err := client.FetchPurchaseHistory(context.Background(), 7)

	var peerErr *PeerError
	require.ErrorAs(t, err, &peerErr)
	assert.Zero(t, peerErr.Status)
}

func TestFetchPurchaseHistoryMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	client := NewOrderClient(srv.URL, time.Second)

	_, err := client.FetchPurchaseHistory(context.Background(), 7)

	var peerErr *PeerError
	require.ErrorAs(t, err, &peerErr)
}

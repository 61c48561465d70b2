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

func TestGetUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/1", r.URL.Path)
		w.Write([]byte(`{"id":1,"name":"Product User"}`))
	}))
	defer srv.Close()

	client := NewUserClient(srv.URL, time.Second)

	resp, err := client.GetUser(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.JSONEq(t, `{"id":1,"name":"Product User"}`, string(resp.Body))
}

func TestGetUserUpstreamErrorIsPassedThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"user not found"}`))
	}))
	defer srv.Close()

	client := NewUserClient(srv.URL, time.Second)

	resp, err := client.GetUser(context.Background(), 42)

	// Upstream HTTP errors are not client errors: the proxy forwards
	// them verbatim.
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.JSONEq(t, `{"error":"user not found"}`, string(resp.Body))
}

func TestListUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users", r.URL.Path)
		w.Write([]byte(`[{"id":1},{"id":2}]`))
	}))
	defer srv.Close()

	client := NewUserClient(srv.URL, time.Second)

	resp, err := client.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
}

func TestListUsersConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewUserClient(srv.URL, time.Second)

	_, err := client.ListUsers(context.Background())

	var peerErr *PeerError
	require.ErrorAs(t, err, &peerErr)
	assert.Zero(t, peerErr.Status)
}

package clients

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/faturh/product-service/internal/metrics"
)

const userServiceName = "user-service"

// PeerResponse carries an upstream response for verbatim proxying.
type PeerResponse struct {
	Status int
	Body   []byte
}

// UserClient talks to the user directory service. Upstream HTTP errors
// are not client errors here: the proxy endpoints pass status and body
// through unchanged, so only transport failures return *PeerError.
type UserClient struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*PeerResponse]
}

func NewUserClient(baseURL string, timeout time.Duration) *UserClient {
	return &UserClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    newBreaker[*PeerResponse](userServiceName),
	}
}

// GetUser fetches a single user by id.
func (c *UserClient) GetUser(ctx context.Context, userID int64) (*PeerResponse, error) {
	return c.get(ctx, fmt.Sprintf("/api/users/%d", userID))
}

// ListUsers fetches all users.
func (c *UserClient) ListUsers(ctx context.Context) (*PeerResponse, error) {
	return c.get(ctx, "/api/users")
}

func (c *UserClient) get(ctx context.Context, path string) (*PeerResponse, error) {
	resp, err := c.breaker.Execute(func() (*PeerResponse, error) {
		return c.do(ctx, path)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.PeerRequests.WithLabelValues(userServiceName, "rejected").Inc()
			return nil, &PeerError{Service: userServiceName, Message: err.Error()}
		}
		return nil, err
	}
	metrics.PeerRequests.WithLabelValues(userServiceName, "success").Inc()
	return resp, nil
}

func (c *UserClient) do(ctx context.Context, path string) (*PeerResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &PeerError{Service: userServiceName, Message: err.Error()}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.PeerRequests.WithLabelValues(userServiceName, "transport_error").Inc()
		return nil, &PeerError{Service: userServiceName, Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &PeerError{Service: userServiceName, Message: err.Error()}
	}

	return &PeerResponse{Status: resp.StatusCode, Body: body}, nil
}

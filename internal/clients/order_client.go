package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/faturh/product-service/internal/metrics"
)

const orderServiceName = "order-service"

// OrderClient fetches a user's order history from the order service.
// Calls are bounded by the configured timeout and guarded by a circuit
// breaker so a failing peer is not hammered; a single attempt is made
// per call, the engine's fallback handles degradation.
type OrderClient struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]int64]
}

func NewOrderClient(baseURL string, timeout time.Duration) *OrderClient {
	return &OrderClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    newBreaker[[]int64](orderServiceName),
	}
}

// newBreaker builds the circuit breaker shared by the peer clients:
// opens after a 60% failure rate over at least 5 requests, allows 3
// probes in half-open state, recovers after 30 seconds.
func newBreaker[T any](name string) *gobreaker.CircuitBreaker[T] {
	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Info().Str("breaker", name).
				Str("from", from.String()).Str("to", to.String()).
				Msg("circuit breaker state change")
		},
	})
}

// orderRecord is the slice of the order service's order object the
// catalog cares about.
type orderRecord struct {
	ProductID int64 `json:"product_id"`
}

// FetchPurchaseHistory returns the product ids from the user's orders,
// in order-service order, duplicates included. All failures come back
// as *PeerError; the caller picks the fallback policy.
func (c *OrderClient) FetchPurchaseHistory(ctx context.Context, userID int64) ([]int64, error) {
	ids, err := c.breaker.Execute(func() ([]int64, error) {
		return c.fetch(ctx, userID)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.PeerRequests.WithLabelValues(orderServiceName, "rejected").Inc()
			return nil, &PeerError{Service: orderServiceName, Message: err.Error()}
		}
		return nil, err
	}
	metrics.PeerRequests.WithLabelValues(orderServiceName, "success").Inc()
	return ids, nil
}

func (c *OrderClient) fetch(ctx context.Context, userID int64) ([]int64, error) {
	url := fmt.Sprintf("%s/api/orders/user/%d", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &PeerError{Service: orderServiceName, Message: err.Error()}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.PeerRequests.WithLabelValues(orderServiceName, "transport_error").Inc()
		return nil, &PeerError{Service: orderServiceName, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.PeerRequests.WithLabelValues(orderServiceName, "http_error").Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &PeerError{
			Service: orderServiceName,
			Status:  resp.StatusCode,
			Message: string(body),
		}
	}

	var orders []orderRecord
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, &PeerError{
			Service: orderServiceName,
			Status:  resp.StatusCode,
			Message: "malformed order history: " + err.Error(),
		}
	}

	ids := make([]int64, 0, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ProductID)
	}
	return ids, nil
}

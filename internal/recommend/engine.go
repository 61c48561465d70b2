package recommend

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/faturh/product-service/internal/metrics"
	"github.com/faturh/product-service/internal/models"
	"github.com/faturh/product-service/internal/repository"
)

// ProductFinder is the slice of the product store the engine needs.
type ProductFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]models.Product, error)
}

// HistoryFetcher fetches a user's order history from the order service.
type HistoryFetcher interface {
	FetchPurchaseHistory(ctx context.Context, userID int64) ([]int64, error)
}

// Engine resolves product recommendations. It never mutates the
// product store and returns empty results rather than errors for the
// expected no-data cases: unknown products, empty similarity lists,
// empty purchase histories and stale candidate ids.
type Engine struct {
	products   ProductFinder
	similarity *SimilarityTable
	history    *HistoryStore
	orders     HistoryFetcher
}

func NewEngine(products ProductFinder, similarity *SimilarityTable, history *HistoryStore, orders HistoryFetcher) *Engine {
	return &Engine{
		products:   products,
		similarity: similarity,
		history:    history,
		orders:     orders,
	}
}

// SimilarProducts returns the products related to productID, in
// similarity order, restricted to products that still exist.
func (e *Engine) SimilarProducts(ctx context.Context, productID int64) ([]models.Product, error) {
	if _, err := e.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []models.Product{}, nil
		}
		return nil, fmt.Errorf("looking up product %d: %w", productID, err)
	}

	candidateIDs := e.similarity.SimilarIDs(productID)
	if len(candidateIDs) == 0 {
		return []models.Product{}, nil
	}

	found, err := e.products.FindByIDs(ctx, candidateIDs)
	if err != nil {
		return nil, fmt.Errorf("materializing similar products: %w", err)
	}
	return orderByIDs(candidateIDs, found), nil
}

// UserRecommendations returns products similar to what the user has
// bought, excluding products already owned. The order service is the
// primary history source; on any failure the local history store is
// used instead, so peer outages degrade results rather than the
// endpoint.
func (e *Engine) UserRecommendations(ctx context.Context, userID int64) ([]models.Product, error) {
	owned, err := e.orders.FetchPurchaseHistory(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Int64("user_id", userID).
			Msg("order service unavailable, falling back to local history")
		metrics.HistoryFallbacks.Inc()
		owned = e.history.Get(userID)
	}

	ownedIDs, ownedSet := dedupe(owned)
	if len(ownedIDs) == 0 {
		return []models.Product{}, nil
	}

	var candidateIDs []int64
	seen := make(map[int64]bool)
	for _, productID := range ownedIDs {
		for _, candidate := range e.similarity.SimilarIDs(productID) {
			if ownedSet[candidate] || seen[candidate] {
				continue
			}
			seen[candidate] = true
			candidateIDs = append(candidateIDs, candidate)
		}
	}
	if len(candidateIDs) == 0 {
		return []models.Product{}, nil
	}

	found, err := e.products.FindByIDs(ctx, candidateIDs)
	if err != nil {
		return nil, fmt.Errorf("materializing recommendations: %w", err)
	}
	return orderByIDs(candidateIDs, found), nil
}

// RecordPurchase adds productID to the user's purchase history and
// returns the updated history. Recording the same pair twice is a
// no-op.
func (e *Engine) RecordPurchase(userID, productID int64) []int64 {
	return e.history.Record(userID, productID)
}

// dedupe keeps the first occurrence of each id, preserving order, and
// also returns a membership set.
func dedupe(ids []int64) ([]int64, map[int64]bool) {
	out := make([]int64, 0, len(ids))
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if set[id] {
			continue
		}
		set[id] = true
		out = append(out, id)
	}
	return out, set
}

// orderByIDs arranges products to match the order of ids, dropping ids
// the store did not return.
func orderByIDs(ids []int64, products []models.Product) []models.Product {
	byID := make(map[int64]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	out := make([]models.Product, 0, len(products))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

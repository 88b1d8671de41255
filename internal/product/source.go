package product

import (
	"context"
	"fmt"
	"math"
	"time"
)

// CatalogSource simulates a slow upstream catalog (database or external
// API). Every fetch waits for the configured delay before answering.
type CatalogSource struct {
	delay time.Duration
}

// NewCatalogSource creates a catalog source with the given simulated latency
func NewCatalogSource(delay time.Duration) *CatalogSource {
	return &CatalogSource{delay: delay}
}

// Fetch returns the product details for id after the simulated delay.
// The wait is context-aware so callers can cancel a slow fetch.
func (s *CatalogSource) Fetch(ctx context.Context, id int) (*Product, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return &Product{
		ID:    id,
		Name:  fmt.Sprintf("Product %d", id),
		Price: math.Round((100+float64(id)*1.5)*100) / 100,
	}, nil
}

var _ Source = (*CatalogSource)(nil)

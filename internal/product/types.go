package product

import (
	"context"
	"fmt"
)

// Product represents a catalog item returned by the upstream source
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Source produces product details from the slow upstream. It is invoked
// only on a cache miss; its latency and failure modes are opaque to the
// caching layer.
type Source interface {
	Fetch(ctx context.Context, id int) (*Product, error)
}

// ProductResponse is the API payload for a product read, annotated with
// where the value came from.
type ProductResponse struct {
	*Product
	Origin string `json:"origin"`
}

// CacheKey returns the cache key for a product id. The "product:" prefix
// is a caller convention, nothing the cache itself enforces.
func CacheKey(id int) string {
	return fmt.Sprintf("product:%d", id)
}

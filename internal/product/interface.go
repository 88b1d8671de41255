package product

import (
	"context"

	"github.com/cachefront/backend/internal/cache"
)

// ProductService defines the interface for product read operations
type ProductService interface {
	GetProduct(ctx context.Context, id int) (*Product, cache.Origin, error)
}

package product

import (
	"context"
	"time"

	"github.com/cachefront/backend/internal/cache"
	apperrors "github.com/cachefront/backend/internal/errors"
	"github.com/cachefront/backend/internal/logger"
)

// Service implements the cache-aside read path for products: check the
// cache, and on a miss fetch from the upstream source and cache the result
// with the configured TTL.
type Service struct {
	source Source
	loader *cache.Loader
	ttl    time.Duration
	logger logger.Logger
}

// NewService creates a new product service
func NewService(source Source, loader *cache.Loader, ttl time.Duration, logger logger.Logger) *Service {
	return &Service{
		source: source,
		loader: loader,
		ttl:    ttl,
		logger: logger,
	}
}

// GetProduct returns the product for id and where it came from. Concurrent
// misses on the same product trigger a single upstream fetch.
func (s *Service) GetProduct(ctx context.Context, id int) (*Product, cache.Origin, error) {
	key := CacheKey(id)

	v, origin, err := s.loader.GetOrLoad(ctx, key, s.ttl, func(ctx context.Context) (interface{}, error) {
		p, err := s.source.Fetch(ctx, id)
		if err != nil {
			return nil, apperrors.NewUpstreamError("failed to fetch product from source", err)
		}
		return p, nil
	})
	if err != nil {
		return nil, "", s.logger.LogErrorf(err, "product read failed for key %s", key)
	}

	s.logger.LogDebug("Product read completed", map[string]interface{}{
		"key":    key,
		"origin": string(origin),
	})

	return v.(*Product), origin, nil
}

package product

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/cachefront/backend/internal/cache"
	"github.com/cachefront/backend/testhelper"
)

// countingSource counts fetches and can be configured to fail
type countingSource struct {
	calls int32
	err   error
}

func (s *countingSource) Fetch(ctx context.Context, id int) (*Product, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.err != nil {
		return nil, s.err
	}
	return &Product{ID: id, Name: "Product 42", Price: 163}, nil
}

func newTestService(source Source, ttl time.Duration) (*Service, *clock.Mock) {
	clk := clock.NewMock()
	log := testhelper.NewTestLogger()
	c := cache.New(clk, log)
	return NewService(source, cache.NewLoader(c), ttl, log), clk
}

func TestGetProduct_CacheAside(t *testing.T) {
	source := &countingSource{}
	svc, clk := newTestService(source, 30*time.Second)

	p, origin, err := svc.GetProduct(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if origin != cache.OriginSource {
		t.Fatalf("expected first read from source, got %q", origin)
	}
	if p.Name != "Product 42" {
		t.Fatalf("unexpected product: %+v", p)
	}

	// Within the TTL the source must not be hit again.
	clk.Add(10 * time.Second)
	_, origin, err = svc.GetProduct(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if origin != cache.OriginCache {
		t.Fatalf("expected cached read, got %q", origin)
	}
	if n := atomic.LoadInt32(&source.calls); n != 1 {
		t.Fatalf("expected one fetch, got %d", n)
	}

	// Past the TTL the product is fetched again.
	clk.Add(21 * time.Second)
	_, origin, err = svc.GetProduct(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if origin != cache.OriginSource {
		t.Fatalf("expected refetch after expiry, got %q", origin)
	}
	if n := atomic.LoadInt32(&source.calls); n != 2 {
		t.Fatalf("expected two fetches, got %d", n)
	}
}

func TestGetProduct_ConcurrentMissesFetchOnce(t *testing.T) {
	source := &countingSource{}
	svc, _ := newTestService(source, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := svc.GetProduct(context.Background(), 7); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if n := atomic.LoadInt32(&source.calls); n != 1 {
		t.Fatalf("expected a single upstream fetch for concurrent misses, got %d", n)
	}
}

func TestGetProduct_UpstreamFailure(t *testing.T) {
	cause := errors.New("catalog unreachable")
	source := &countingSource{err: cause}
	svc, _ := newTestService(source, time.Minute)

	_, _, err := svc.GetProduct(context.Background(), 1)
	if err == nil {
		t.Fatalf("expected error from failing source")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected underlying cause to be preserved, got %v", err)
	}

	// The failure must not be cached: a recovered source is consulted again.
	source.err = nil
	p, origin, err := svc.GetProduct(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error after recovery: %v", err)
	}
	if origin != cache.OriginSource || p == nil {
		t.Fatalf("expected fresh fetch after recovery, got %v from %q", p, origin)
	}
}

func TestCatalogSource_Fetch(t *testing.T) {
	source := NewCatalogSource(0)

	p, err := source.Fetch(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 42 || p.Name != "Product 42" {
		t.Fatalf("unexpected product: %+v", p)
	}
	if p.Price != 163.0 {
		t.Fatalf("expected price 163.0, got %v", p.Price)
	}
}

func TestCatalogSource_FetchHonorsCancellation(t *testing.T) {
	source := NewCatalogSource(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := source.Fetch(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/cachefront/backend/testhelper"
)

func newTestCache() (*Cache, *clock.Mock) {
	clk := clock.NewMock()
	return New(clk, testhelper.NewTestLogger()), clk
}

func TestSetForever_NoSpontaneousExpiry(t *testing.T) {
	c, clk := newTestCache()

	c.SetForever("k", "v")

	if v, ok := c.Get("k"); !ok || v != "v" {
		t.Fatalf("expected immediate hit, got %v, %v", v, ok)
	}

	// An arbitrarily long delay must not expire a no-TTL entry.
	clk.Add(1000 * time.Hour)

	if v, ok := c.Get("k"); !ok || v != "v" {
		t.Fatalf("expected hit after delay, got %v, %v", v, ok)
	}
}

func TestSet_TTLExpiry(t *testing.T) {
	c, clk := newTestCache()

	c.Set("k", "v", 30*time.Second)

	if v, ok := c.Get("k"); !ok || v != "v" {
		t.Fatalf("expected hit before expiry, got %v, %v", v, ok)
	}

	// An entry is valid through its exact expiry instant.
	clk.Add(30 * time.Second)
	if _, ok := c.Get("k"); !ok {
		t.Fatalf("expected hit at exact expiry instant")
	}

	// And invalid immediately after.
	clk.Add(time.Nanosecond)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected miss after expiry")
	}

	// The failed Get must have removed the entry physically.
	if n := c.Len(); n != 0 {
		t.Fatalf("expected entry to be reaped, still have %d entries", n)
	}
}

func TestSet_ZeroTTLIsImmediatelyExpired(t *testing.T) {
	c, _ := newTestCache()

	c.Set("k", "v", 0)

	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected zero-TTL entry to be absent")
	}
	if n := c.Len(); n != 0 {
		t.Fatalf("expected zero-TTL entry to be reaped, still have %d entries", n)
	}
}

func TestSet_NegativeTTLIsImmediatelyExpired(t *testing.T) {
	c, _ := newTestCache()

	c.Set("k", "v", -5*time.Second)

	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected negative-TTL entry to be absent")
	}
}

func TestGet_ExpiredKeyIsIdempotent(t *testing.T) {
	c, clk := newTestCache()

	c.Set("k", "v", time.Second)
	clk.Add(2 * time.Second)

	// Repeated reads of an expired key produce the same absent result and
	// no error on re-deletion.
	for i := 0; i < 3; i++ {
		if _, ok := c.Get("k"); ok {
			t.Fatalf("read %d: expected miss", i)
		}
	}
	if n := c.Len(); n != 0 {
		t.Fatalf("expected no entries, got %d", n)
	}
}

func TestSet_OverwriteDiscardsOldTTL(t *testing.T) {
	c, clk := newTestCache()

	c.Set("k", "v1", 10*time.Second)
	clk.Add(8 * time.Second)

	// Refresh replaces the entry including its TTL.
	c.Set("k", "v2", 10*time.Second)
	clk.Add(8 * time.Second)

	if v, ok := c.Get("k"); !ok || v != "v2" {
		t.Fatalf("expected refreshed entry to be live, got %v, %v", v, ok)
	}

	clk.Add(3 * time.Second)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected refreshed entry to expire on its own TTL")
	}
}

func TestDelete_AbsentKeyIsNoOp(t *testing.T) {
	c, _ := newTestCache()

	c.Delete("missing")

	c.Set("k", "v", time.Minute)
	c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected deleted key to be absent")
	}

	// Deleting again is still a no-op.
	c.Delete("k")
}

func TestClear_RemovesEverything(t *testing.T) {
	c, _ := newTestCache()

	keys := []string{"a", "b", "c"}
	for _, k := range keys {
		c.Set(k, k, time.Hour)
	}
	c.SetForever("forever", "v")

	c.Clear()

	for _, k := range append(keys, "forever") {
		if _, ok := c.Get(k); ok {
			t.Fatalf("expected %q to be absent after clear", k)
		}
	}
	if n := c.Len(); n != 0 {
		t.Fatalf("expected empty cache, got %d entries", n)
	}
}

func TestProductLifecycle(t *testing.T) {
	c, clk := newTestCache()

	product := map[string]interface{}{"id": 42, "name": "Product 42"}
	c.Set("product:42", product, 30*time.Second)

	clk.Add(10 * time.Second)
	v, ok := c.Get("product:42")
	if !ok {
		t.Fatalf("expected hit at t+10s")
	}
	if got := v.(map[string]interface{})["name"]; got != "Product 42" {
		t.Fatalf("expected cached product, got %v", got)
	}

	clk.Add(21 * time.Second)
	if _, ok := c.Get("product:42"); ok {
		t.Fatalf("expected miss at t+31s")
	}
}

func TestConcurrentOperations(t *testing.T) {
	c, _ := newTestCache()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key:%d", j%10)
				switch j % 4 {
				case 0:
					c.Set(key, n, time.Minute)
				case 1:
					c.Get(key)
				case 2:
					c.Delete(key)
				default:
					c.SetForever(key, n)
				}
			}
		}(i)
	}
	wg.Wait()
}

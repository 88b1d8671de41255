// Package cache implements the in-process, TTL-aware key/value cache that
// sits in front of the slow upstream catalog source.
//
// The design is deliberately small:
//   - a map guarded by sync.RWMutex holds the entries (same-key operations
//     are linearizable, different keys are independent)
//   - expiry is lazy: an expired entry is removed when the next Get finds it
//   - the clock is injected so TTL behavior is testable without sleeping
//
// There is no LRU and no memory bound; TTL expiry is the only eviction.
// Unbounded growth under an adversarial key space is an accepted limitation.
//
// Loader layers cache-aside population on top of the Cache and suppresses
// cache stampedes with singleflight: concurrent misses on one key trigger a
// single upstream production shared by every waiter.
package cache

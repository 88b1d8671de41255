package notification

import "sync"

// memoryRepository is the in-process, append-only notification log. It
// lives for the lifetime of the process; persistence is out of scope.
type memoryRepository struct {
	mu      sync.RWMutex
	entries []Notification
}

// NewRepository creates an empty in-memory notification log
func NewRepository() Repository {
	return &memoryRepository{}
}

// Append adds a completed notification to the log
func (r *memoryRepository) Append(n Notification) {
	r.mu.Lock()
	r.entries = append(r.entries, n)
	r.mu.Unlock()
}

// List returns a snapshot of the log in append order
func (r *memoryRepository) List() []Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Notification(nil), r.entries...)
}

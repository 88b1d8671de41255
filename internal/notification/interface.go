package notification

import "context"

// NotificationService defines the interface for scheduling notifications
// and reading the completed-notification log.
type NotificationService interface {
	Schedule(email, message string) error
	Log() []Notification
}

// Repository defines the append-only log of completed notifications
type Repository interface {
	Append(n Notification)
	List() []Notification
}

// Sender delivers a single notification. Implementations may be slow; the
// dispatcher calls them from worker goroutines, never from a request
// handler.
type Sender interface {
	Send(ctx context.Context, email, message string) error
}

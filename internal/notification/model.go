package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a completed delivery attempt recorded in the
// process-lifetime log.
type Notification struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sentAt"`
}

// NotifyRequest is the payload accepted by the notify endpoint
type NotifyRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

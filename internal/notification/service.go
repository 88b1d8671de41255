package notification

import (
	"context"
	"errors"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/cachefront/backend/internal/logger"
	"github.com/google/uuid"
)

// ErrQueueFull is returned by Schedule when the dispatch queue has no room
var ErrQueueFull = errors.New("notification queue is full")

// Config holds the dispatcher settings
type Config struct {
	Workers   int
	QueueSize int
}

// job is a queued notification awaiting delivery
type job struct {
	email   string
	message string
}

// Service dispatches notifications in the background. Schedule hands a job
// to a worker pool and returns immediately; the caller's response never
// waits on delivery. Completed deliveries are recorded in the repository.
//
// Delivery is best effort: jobs are eventually attempted after the
// triggering request returns, with no ordering or exactly-once guarantee.
type Service struct {
	config     Config
	logger     logger.Logger
	repository Repository
	sender     Sender
	clock      clock.Clock

	jobs chan job
	wg   sync.WaitGroup

	mu      sync.Mutex
	started bool
	stopped bool
}

// NewService creates a new notification service
func NewService(config Config, logger logger.Logger, repository Repository, sender Sender, clk clock.Clock) *Service {
	return &Service{
		config:     config,
		logger:     logger,
		repository: repository,
		sender:     sender,
		clock:      clk,
		jobs:       make(chan job, config.QueueSize),
	}
}

// Start launches the worker pool. It is a no-op if already started.
func (s *Service) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	for i := 0; i < s.config.Workers; i++ {
		s.wg.Add(1)
		go s.worker()
	}

	s.logger.LogInfo("Notification dispatcher started", map[string]interface{}{
		"workers":    s.config.Workers,
		"queue_size": s.config.QueueSize,
	})
}

// Stop closes the queue and waits for in-flight deliveries to finish, or
// for ctx to expire, whichever comes first.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.started || s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	s.mu.Unlock()

	close(s.jobs)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.LogInfo("Notification dispatcher stopped", nil)
		return nil
	case <-ctx.Done():
		return s.logger.LogError(ctx.Err(), "Notification dispatcher shutdown timed out")
	}
}

// Schedule enqueues a notification for background delivery. It never
// blocks: when the queue is full it reports ErrQueueFull instead of making
// the caller wait.
func (s *Service) Schedule(email, message string) error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return ErrQueueFull
	}
	s.mu.Unlock()

	select {
	case s.jobs <- job{email: email, message: message}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Log returns the completed-notification log
func (s *Service) Log() []Notification {
	return s.repository.List()
}

// worker drains the queue, delivering one job at a time
func (s *Service) worker() {
	defer s.wg.Done()

	for j := range s.jobs {
		if err := s.sender.Send(context.Background(), j.email, j.message); err != nil {
			s.logger.LogError(err, "Failed to send notification")
			continue
		}

		n := Notification{
			ID:      uuid.New(),
			Email:   j.email,
			Message: j.message,
			SentAt:  s.clock.Now(),
		}
		s.repository.Append(n)

		s.logger.LogInfo("Notification sent", map[string]interface{}{
			"notification_id": n.ID.String(),
			"email":           n.Email,
		})
	}
}

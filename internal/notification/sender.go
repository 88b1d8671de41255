package notification

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
)

// simulatedSender stands in for a real email integration: it waits for the
// configured delay and reports success.
type simulatedSender struct {
	delay time.Duration
	clock clock.Clock
}

// NewSimulatedSender creates a sender that sleeps for delay per delivery
func NewSimulatedSender(delay time.Duration, clk clock.Clock) Sender {
	return &simulatedSender{delay: delay, clock: clk}
}

func (s *simulatedSender) Send(ctx context.Context, email, message string) error {
	if s.delay > 0 {
		timer := s.clock.Timer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}

package scheduler

import "context"

// Scheduler gives each registered task a turn in strict rotation.
type Scheduler interface {
	// Start begins the scheduling loop. Blocks until ctx is cancelled,
	// Stop is called, or the configured iteration count is reached.
	Start(ctx context.Context) error

	// Stop shuts down the scheduler after the current step returns.
	Stop() error

	// Tick runs a single scheduling iteration. Used for testing.
	Tick(ctx context.Context) error
}

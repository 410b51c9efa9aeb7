package scheduler

import "context"

// Job is a unit of work the worker pool executes. Implementations carry
// their own dependencies; the pool only needs identity for logging.
type Job interface {
	Execute(ctx context.Context) error

	// UserID identifies whose data the job touches, for logs and metrics.
	UserID() string

	// Description is a human-readable label for logging.
	Description() string
}

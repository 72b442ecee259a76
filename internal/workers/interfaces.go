// Package workers provides abstractions for managing and running the
// client's background workers: the heartbeat probe and the periodic sync
// job. It defines the Worker interface and a Workers aggregate that runs
// multiple workers with one lifecycle.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Waker is implemented by workers that can run one out-of-cadence pass,
// used when the application regains foreground visibility after a long
// suspension.
type Waker interface {
	Wake()
}

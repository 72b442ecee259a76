package workers

import (
	"context"
	"sync"
	"time"

	"github.com/avoronin/go-sync-keeper/internal/service"
)

type Workers struct {
	workers []Worker

	wg sync.WaitGroup
}

func New(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run launches every worker in its own goroutine and returns immediately.
// The workers stop when ctx is cancelled; Wait blocks until they have.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(ctx)
		}(worker)
	}
}

// Wait blocks until every running worker has exited.
func (w *Workers) Wait() {
	w.wg.Wait()
}

// Wake fans one out-of-cadence pass out to every worker that supports it.
func (w *Workers) Wake() {
	for _, worker := range w.workers {
		if waker, ok := worker.(Waker); ok {
			waker.Wake()
		}
	}
}

// syncJobWorker adapts the start/stop sync job to the Worker lifecycle.
type syncJobWorker struct {
	job      service.SyncJobService
	interval time.Duration
}

// NewSyncJobWorker wraps job so the aggregate can own its lifecycle.
func NewSyncJobWorker(job service.SyncJobService, interval time.Duration) Worker {
	return &syncJobWorker{job: job, interval: interval}
}

func (w *syncJobWorker) Run(ctx context.Context) {
	w.job.Start(ctx, w.interval)
	<-ctx.Done()
	w.job.Stop()
}

func (w *syncJobWorker) Wake() {
	w.job.Wake()
}

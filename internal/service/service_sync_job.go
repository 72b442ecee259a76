package service

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/avoronin/go-sync-keeper/internal/logger"
	"github.com/avoronin/go-sync-keeper/internal/transport"
)

type syncJob struct {
	engine SyncEngineService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
	wake   chan struct{}
}

// NewSyncJob creates a syncJob that runs the engine's push and pull cycles
// on a ticker and whenever the engine's debounced trigger fires. The job is
// idle until Start is called.
func NewSyncJob(engine SyncEngineService) SyncJobService {
	return &syncJob{engine: engine, wake: make(chan struct{}, 1)}
}

// Start implements SyncJobService. It stops any previously running job, then
// launches a background goroutine that syncs every interval. If interval is
// zero or negative it defaults to one minute. The goroutine exits when ctx
// is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		log := logger.FromContext(jobCtx)

		bo := backoff.NewExponentialBackOff()
		bo.InitialInterval = interval
		bo.Multiplier = 2
		bo.MaxInterval = heartbeatBackoffCap * interval
		bo.MaxElapsedTime = 0
		bo.RandomizationFactor = 0
		bo.Reset()

		t := time.NewTimer(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
			case <-j.wake:
				drainTimer(t)
			case <-j.engine.Triggered():
				// A debounced local change pushes immediately; the pull
				// half still runs so the cycle stays symmetric.
				drainTimer(t)
			}

			pushErr := j.engine.PushCycle(jobCtx)
			if pushErr != nil {
				log.Warn().Str("func", "Start").Err(pushErr).Msg("push cycle failed")
			}
			pullErr := j.engine.PullCycle(jobCtx)
			if pullErr != nil {
				log.Warn().Str("func", "Start").Err(pullErr).Msg("pull cycle failed")
			}

			t.Reset(nextSyncDelay(bo, interval, pushErr, pullErr))
		}
	}()
}

func drainTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}

// nextSyncDelay applies the heartbeat retry discipline to the sync cadence:
// a clean pass resets the backoff, a rate limit waits exactly as told, and
// transient transport failures back off exponentially. Local errors keep the
// plain interval.
func nextSyncDelay(bo *backoff.ExponentialBackOff, interval time.Duration, errs ...error) time.Duration {
	for _, err := range errs {
		if err == nil {
			continue
		}
		if te, ok := transport.AsError(err); ok {
			if te.Kind == transport.KindRateLimit && te.RetryAfter > 0 {
				bo.Reset()
				return te.RetryAfter
			}
			if te.Retryable() {
				return bo.NextBackOff()
			}
		}
		return interval
	}
	bo.Reset()
	return interval
}

// Stop implements SyncJobService. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Wake runs one out-of-cadence sync pass.
func (j *syncJob) Wake() {
	select {
	case j.wake <- struct{}{}:
	default:
	}
}

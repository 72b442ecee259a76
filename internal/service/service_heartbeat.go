package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/avoronin/go-sync-keeper/internal/logger"
	"github.com/avoronin/go-sync-keeper/internal/store"
	"github.com/avoronin/go-sync-keeper/internal/transport"
	"github.com/avoronin/go-sync-keeper/models"
)

const (
	// heartbeatBackoffCap bounds the retry delay at this multiple of the
	// probe interval.
	heartbeatBackoffCap = 10

	// livenessFailureThreshold is the minimum number of consecutive probes
	// that must judge the master unreachable before promotion is
	// considered.
	livenessFailureThreshold = 3

	// livenessGraceFactor stretches the failure window: promotion is not
	// considered before this many probe intervals have passed since the
	// master was last seen alive, so a burst of quick out-of-cadence
	// probes cannot trigger it.
	livenessGraceFactor = 3

	// livenessThresholdFactor is how many probe intervals may pass since
	// the master was last seen before it is judged unreachable.
	livenessThresholdFactor = 2
)

type heartbeatService struct {
	configs    store.ConfigRepository
	transport  transport.RelayTransport
	membership MembershipService
	promotion  PromotionService
	interval   time.Duration
	now        func() time.Time

	bo *backoff.ExponentialBackOff

	mu          sync.Mutex
	failures    int
	lastAliveAt time.Time

	wake chan struct{}
}

func NewHeartbeatService(configs store.ConfigRepository, relay transport.RelayTransport, membership MembershipService, promotion PromotionService, interval time.Duration) HeartbeatService {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = interval
	bo.Multiplier = 2
	bo.MaxInterval = heartbeatBackoffCap * interval
	bo.MaxElapsedTime = 0
	bo.RandomizationFactor = 0
	bo.Reset()

	return &heartbeatService{
		configs:    configs,
		transport:  relay,
		membership: membership,
		promotion:  promotion,
		interval:   interval,
		now:        time.Now,
		bo:         bo,
		wake:       make(chan struct{}, 1),
	}
}

func (h *heartbeatService) Run(ctx context.Context) {
	log := logger.FromContext(ctx)

	t := time.NewTimer(h.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-h.wake:
			if !t.Stop() {
				select {
				case <-t.C:
				default:
				}
			}
		case <-t.C:
		}

		err := h.Tick(ctx)
		if err != nil {
			log.Warn().Str("func", "Run").Err(err).Msg("heartbeat failed")
		}
		t.Reset(h.nextDelay(err))
	}
}

func (h *heartbeatService) Tick(ctx context.Context) error {
	cfg, err := h.configs.Get(ctx)
	if err != nil {
		return fmt.Errorf("load sync config: %w", err)
	}
	if !cfg.Paired() {
		return ErrNotPaired
	}

	req := models.HeartbeatRequest{DeviceID: cfg.DeviceID, DeviceToken: cfg.DeviceToken}

	var resp models.HeartbeatResponse
	if err := h.transport.Send(ctx, transport.EndpointHeartbeat, req, &resp); err != nil {
		return fmt.Errorf("send heartbeat: %w", err)
	}

	h.membership.ApplyStatus(resp.ClusterStatus)

	if cfg.Role == models.RoleSlave {
		h.judgeMaster(ctx)
	}
	return nil
}

// judgeMaster counts consecutive probes that found the master unreachable
// and hands off to the promotion protocol once the threshold and the grace
// window are both met. A single probe that sees the master alive resets the
// count.
func (h *heartbeatService) judgeMaster(ctx context.Context) {
	threshold := livenessThresholdFactor * h.interval
	if h.membership.IsMasterAlive(threshold) {
		h.mu.Lock()
		h.failures = 0
		h.lastAliveAt = h.now()
		h.mu.Unlock()
		return
	}

	h.mu.Lock()
	if h.failures == 0 && h.lastAliveAt.IsZero() {
		// No alive observation yet. Assume the master was fine one
		// interval ago so the grace window is measured, not skipped.
		h.lastAliveAt = h.now().Add(-h.interval)
	}
	h.failures++
	failures, since := h.failures, h.now().Sub(h.lastAliveAt)
	h.mu.Unlock()

	if failures < livenessFailureThreshold || since < livenessGraceFactor*h.interval {
		return
	}

	log := logger.FromContext(ctx)
	state, err := h.promotion.Evaluate(ctx)
	if err != nil {
		log.Warn().Str("func", "judgeMaster").Err(err).Msg("promotion attempt failed")
		return
	}
	log.Info().Str("func", "judgeMaster").Str("state", string(state)).Msg("promotion evaluated")

	h.mu.Lock()
	h.failures = 0
	h.mu.Unlock()
}

// nextDelay picks the delay until the next probe. A successful probe resets
// the backoff and returns the plain interval. Transient failures back off
// exponentially up to the cap, and a rate limit is never retried before the
// server-mandated delay.
func (h *heartbeatService) nextDelay(err error) time.Duration {
	if err == nil {
		h.bo.Reset()
		return h.interval
	}
	if te, ok := transport.AsError(err); ok {
		if te.Kind == transport.KindRateLimit && te.RetryAfter > 0 {
			h.bo.Reset()
			return te.RetryAfter
		}
		if te.Retryable() {
			return h.bo.NextBackOff()
		}
	}
	return h.interval
}

func (h *heartbeatService) Wake() {
	select {
	case h.wake <- struct{}{}:
	default:
	}
}

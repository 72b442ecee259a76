package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avoronin/go-sync-keeper/internal/logger"
	"github.com/avoronin/go-sync-keeper/internal/store"
	"github.com/avoronin/go-sync-keeper/internal/transport"
	"github.com/avoronin/go-sync-keeper/models"
)

type promotionService struct {
	configs    store.ConfigRepository
	transport  transport.RelayTransport
	membership MembershipService
	interval   time.Duration
	now        func() time.Time

	mu    sync.Mutex
	state PromotionState
}

func NewPromotionService(configs store.ConfigRepository, relay transport.RelayTransport, membership MembershipService, interval time.Duration) PromotionService {
	return &promotionService{
		configs:    configs,
		transport:  relay,
		membership: membership,
		interval:   interval,
		now:        time.Now,
		state:      PromotionIdle,
	}
}

func (p *promotionService) State() PromotionState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *promotionService) Evaluate(ctx context.Context) (PromotionState, error) {
	log := logger.FromContext(ctx)

	// Only one evaluation runs at a time; concurrent triggers observe the
	// in-flight state and back off.
	p.mu.Lock()
	if p.state != PromotionIdle {
		state := p.state
		p.mu.Unlock()
		return state, nil
	}
	p.state = PromotionEvaluating
	p.mu.Unlock()

	state, err := p.evaluate(ctx, log)

	p.mu.Lock()
	if state == PromotionPromoted {
		p.state = PromotionPromoted
	} else {
		// Rejection and deferral both return the machine to Idle so a
		// later liveness failure can try again against a fresh roster.
		p.state = PromotionIdle
	}
	p.mu.Unlock()

	return state, err
}

func (p *promotionService) evaluate(ctx context.Context, log *logger.Logger) (PromotionState, error) {
	cfg, err := p.configs.Get(ctx)
	if err != nil {
		return PromotionIdle, fmt.Errorf("load sync config: %w", err)
	}
	if !cfg.Paired() {
		return PromotionIdle, ErrNotPaired
	}
	if cfg.Role != models.RoleSlave {
		return PromotionIdle, nil
	}

	// Re-confirm against a fresh roster before acting: the heartbeat that
	// triggered us may be stale by now.
	if _, err := p.membership.Refresh(ctx); err != nil {
		log.Warn().Str("func", "evaluate").Err(err).Msg("roster refresh failed, using cached view")
	}
	threshold := livenessThresholdFactor * p.interval
	if p.membership.IsMasterAlive(threshold) {
		log.Info().Str("func", "evaluate").Msg("master is back, promotion abandoned")
		return PromotionIdle, nil
	}

	// Deterministic candidate selection: among the slaves still believed
	// alive, the lexicographically smallest device id goes first. Others
	// defer and re-evaluate on a later cycle. The relay stays the final
	// arbiter either way.
	if candidate := p.candidate(cfg.DeviceID, threshold); candidate != cfg.DeviceID {
		log.Info().Str("func", "evaluate").Str("candidate", candidate).Msg("deferring promotion to smaller device id")
		return PromotionIdle, nil
	}

	p.mu.Lock()
	p.state = PromotionRequesting
	p.mu.Unlock()

	req := models.PromoteRequest{
		DeviceID:    cfg.DeviceID,
		DeviceToken: cfg.DeviceToken,
		MasterID:    cfg.MasterID,
	}

	var resp models.PromoteResponse
	if err := p.transport.Send(ctx, transport.EndpointPromote, req, &resp); err != nil {
		if te, ok := transport.AsError(err); ok && te.Kind == transport.KindHTTP {
			// Someone else won, or the relay still sees a live master.
			// Refresh so the local view learns the actual outcome.
			if _, rerr := p.membership.Refresh(ctx); rerr != nil {
				log.Warn().Str("func", "evaluate").Err(rerr).Msg("roster refresh after rejection failed")
			}
			return PromotionRejected, fmt.Errorf("%w: %v", ErrPromotionRejected, err)
		}
		return PromotionIdle, fmt.Errorf("request promotion: %w", err)
	}

	cfg.Role = models.RoleMaster
	cfg.MasterID = cfg.DeviceID
	if err := p.configs.Save(ctx, cfg); err != nil {
		return PromotionIdle, fmt.Errorf("save promoted config: %w", err)
	}

	log.Info().Str("func", "evaluate").Int("notified_slaves", resp.NotifiedSlaves).Msg("promoted to master")
	return PromotionPromoted, nil
}

// candidate returns the device id that should request promotion first:
// the smallest id among the slaves seen within threshold. Falls back to
// self when the roster offers nothing better.
func (p *promotionService) candidate(self string, threshold time.Duration) string {
	best := self
	for _, d := range p.membership.Cached().Slaves() {
		if d.DeviceID == self {
			continue
		}
		if d.LastSeen == nil || p.now().Sub(*d.LastSeen) > threshold {
			continue
		}
		if d.DeviceID < best {
			best = d.DeviceID
		}
	}
	return best
}

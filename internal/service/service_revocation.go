package service

import (
	"context"
	"fmt"

	"github.com/avoronin/go-sync-keeper/internal/logger"
	"github.com/avoronin/go-sync-keeper/internal/store"
	"github.com/avoronin/go-sync-keeper/internal/transport"
	"github.com/avoronin/go-sync-keeper/models"
)

type revocationService struct {
	configs    store.ConfigRepository
	transport  transport.RelayTransport
	membership MembershipService
}

func NewRevocationService(configs store.ConfigRepository, relay transport.RelayTransport, membership MembershipService) RevocationService {
	return &revocationService{configs: configs, transport: relay, membership: membership}
}

func (r *revocationService) Revoke(ctx context.Context, targetID, reason string) (int, error) {
	log := logger.FromContext(ctx)

	cfg, err := r.configs.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("load sync config: %w", err)
	}
	if !cfg.Paired() {
		return 0, ErrNotPaired
	}
	if targetID == "" {
		targetID = cfg.DeviceID
	}

	req := models.RevokeRequest{
		DeviceID:       cfg.DeviceID,
		DeviceToken:    cfg.DeviceToken,
		TargetDeviceID: targetID,
		Reason:         reason,
	}

	var resp models.RevokeResponse
	if err := r.transport.Send(ctx, transport.EndpointRevoke, req, &resp); err != nil {
		return 0, fmt.Errorf("revoke device %s: %w", targetID, err)
	}

	if targetID == cfg.DeviceID {
		// Self-revocation: drop the credentials so every later sync
		// operation fails fast locally instead of calling the relay.
		if err := r.configs.Wipe(ctx); err != nil {
			return resp.NotifiedDevices, fmt.Errorf("wipe sync config: %w", err)
		}
		log.Info().Str("func", "Revoke").Msg("device revoked itself, local sync config wiped")
		return resp.NotifiedDevices, nil
	}

	// Revoking a peer changes the roster; refresh so the cached view does
	// not keep addressing a device the relay already dropped.
	if _, err := r.membership.Refresh(ctx); err != nil {
		log.Warn().Str("func", "Revoke").Err(err).Msg("roster refresh after revocation failed")
	}
	return resp.NotifiedDevices, nil
}

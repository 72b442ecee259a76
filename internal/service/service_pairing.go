package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/avoronin/go-sync-keeper/internal/crypto"
	"github.com/avoronin/go-sync-keeper/internal/logger"
	"github.com/avoronin/go-sync-keeper/internal/store"
	"github.com/avoronin/go-sync-keeper/internal/transport"
	"github.com/avoronin/go-sync-keeper/models"
)

type pairingService struct {
	configs    store.ConfigRepository
	transport  transport.RelayTransport
	keychain   crypto.KeyChainService
	bootstrap  *transport.BootstrapStore
	deviceName string

	mu      sync.Mutex
	claimed *models.PairingPayload
}

func NewPairingService(configs store.ConfigRepository, relay transport.RelayTransport, keychain crypto.KeyChainService, bootstrap *transport.BootstrapStore, deviceName string) PairingService {
	return &pairingService{
		configs:    configs,
		transport:  relay,
		keychain:   keychain,
		bootstrap:  bootstrap,
		deviceName: deviceName,
	}
}

func (p *pairingService) BootstrapMaster(ctx context.Context, apiURL, passphrase string) (models.SyncConfig, error) {
	log := logger.FromContext(ctx)

	cfg, err := p.configs.Get(ctx)
	if err != nil && !errors.Is(err, store.ErrConfigNotFound) {
		return models.SyncConfig{}, fmt.Errorf("load sync config: %w", err)
	}
	if cfg.Paired() {
		return models.SyncConfig{}, ErrAlreadyPaired
	}

	deviceID := cfg.DeviceID
	if deviceID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return models.SyncConfig{}, fmt.Errorf("generate device id: %w", err)
		}
		deviceID = id.String()
	}

	key, err := p.keychain.GenerateClusterKey()
	if err != nil {
		return models.SyncConfig{}, fmt.Errorf("generate cluster key: %w", err)
	}

	req := models.PairRequest{
		DeviceID:   deviceID,
		Role:       models.RoleMaster,
		Bootstrap:  true,
		DeviceName: p.deviceName,
	}
	if passphrase != "" {
		salt, err := p.keychain.GenerateSalt()
		if err != nil {
			return models.SyncConfig{}, fmt.Errorf("generate recovery salt: %w", err)
		}
		derived := p.keychain.DeriveRecoveryKey(passphrase, salt)
		// Salt travels with the derived key so the relay can verify a
		// recovery attempt without ever seeing the passphrase.
		req.RecoveryKey = base64.StdEncoding.EncodeToString(salt) + ":" + base64.StdEncoding.EncodeToString(derived)
	}

	// The transport resolver has no persisted config yet, so remember the
	// URL the user gave us before the first call.
	if apiURL != "" {
		if err := p.bootstrap.Save(apiURL); err != nil {
			return models.SyncConfig{}, fmt.Errorf("save bootstrap url: %w", err)
		}
	}

	var resp models.PairResponse
	if err := p.transport.Send(ctx, transport.EndpointPair, req, &resp); err != nil {
		return models.SyncConfig{}, fmt.Errorf("pair as master: %w", err)
	}

	cfg = models.SyncConfig{
		DeviceID:      deviceID,
		DeviceToken:   resp.DeviceToken,
		Role:          models.RoleMaster,
		MasterID:      deviceID,
		APIURL:        apiURL,
		EncryptionKey: p.keychain.ExportKey(key),
		DeviceName:    p.deviceName,
	}
	if err := p.configs.Save(ctx, cfg); err != nil {
		return models.SyncConfig{}, fmt.Errorf("save sync config: %w", err)
	}

	log.Info().Str("func", "BootstrapMaster").Str("device_id", deviceID).Msg("cluster bootstrapped")
	return cfg, nil
}

func (p *pairingService) Initiate(ctx context.Context) (models.PairingSession, error) {
	cfg, err := p.configs.Get(ctx)
	if err != nil {
		return models.PairingSession{}, fmt.Errorf("load sync config: %w", err)
	}
	if !cfg.Paired() {
		return models.PairingSession{}, ErrNotPaired
	}
	if cfg.Role != models.RoleMaster {
		return models.PairingSession{}, ErrNotMaster
	}

	req := models.InitiateRequest{
		DeviceID:    cfg.DeviceID,
		DeviceToken: cfg.DeviceToken,
		Payload: models.PairingPayload{
			V:             models.PairingPayloadVersion,
			MasterID:      cfg.DeviceID,
			EncryptionKey: cfg.EncryptionKey,
			APIURL:        cfg.APIURL,
		},
	}

	var resp models.InitiateResponse
	if err := p.transport.Send(ctx, transport.EndpointInitiate, req, &resp); err != nil {
		return models.PairingSession{}, fmt.Errorf("initiate pairing: %w", err)
	}

	return models.PairingSession{ShortCode: resp.ShortCode, ExpiresAt: resp.ExpiresAt}, nil
}

func (p *pairingService) Claim(ctx context.Context, shortCode string) (models.PairingPayload, error) {
	cfg, err := p.configs.Get(ctx)
	if err != nil && !errors.Is(err, store.ErrConfigNotFound) {
		return models.PairingPayload{}, fmt.Errorf("load sync config: %w", err)
	}
	if cfg.Paired() {
		return models.PairingPayload{}, ErrAlreadyPaired
	}

	req := models.ClaimRequest{
		ShortCode:   shortCode,
		Fingerprint: p.keychain.Fingerprint(),
	}

	var resp models.ClaimResponse
	if err := p.transport.Send(ctx, transport.EndpointClaim, req, &resp); err != nil {
		return models.PairingPayload{}, fmt.Errorf("claim pairing code: %w", err)
	}
	if resp.Payload.V != models.PairingPayloadVersion {
		return models.PairingPayload{}, fmt.Errorf("%w: got v%d", ErrPayloadVersion, resp.Payload.V)
	}

	// Cache the payload so a failed registration can be retried without a
	// fresh short code, as long as the session is still valid server-side.
	p.mu.Lock()
	payload := resp.Payload
	p.claimed = &payload
	p.mu.Unlock()

	return resp.Payload, nil
}

func (p *pairingService) RegisterSlave(ctx context.Context) (models.SyncConfig, error) {
	log := logger.FromContext(ctx)

	p.mu.Lock()
	claimed := p.claimed
	p.mu.Unlock()
	if claimed == nil {
		return models.SyncConfig{}, ErrNoClaimedPayload
	}

	cfg, err := p.configs.Get(ctx)
	if err != nil && !errors.Is(err, store.ErrConfigNotFound) {
		return models.SyncConfig{}, fmt.Errorf("load sync config: %w", err)
	}
	if cfg.Paired() {
		return models.SyncConfig{}, ErrAlreadyPaired
	}

	deviceID := cfg.DeviceID
	if deviceID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return models.SyncConfig{}, fmt.Errorf("generate device id: %w", err)
		}
		deviceID = id.String()
	}

	// Make the claimed API URL usable before the config row exists.
	if claimed.APIURL != "" {
		if err := p.bootstrap.Save(claimed.APIURL); err != nil {
			return models.SyncConfig{}, fmt.Errorf("save bootstrap url: %w", err)
		}
	}

	req := models.PairRequest{
		DeviceID:   deviceID,
		Role:       models.RoleSlave,
		MasterID:   claimed.MasterID,
		DeviceName: p.deviceName,
	}

	var resp models.PairResponse
	if err := p.transport.Send(ctx, transport.EndpointPair, req, &resp); err != nil {
		// Keep the claimed payload: the caller may retry within the
		// pairing session TTL.
		return models.SyncConfig{}, fmt.Errorf("pair as slave: %w", err)
	}

	cfg = models.SyncConfig{
		DeviceID:      deviceID,
		DeviceToken:   resp.DeviceToken,
		Role:          models.RoleSlave,
		MasterID:      claimed.MasterID,
		APIURL:        claimed.APIURL,
		EncryptionKey: claimed.EncryptionKey,
		DeviceName:    p.deviceName,
	}
	if err := p.configs.Save(ctx, cfg); err != nil {
		return models.SyncConfig{}, fmt.Errorf("save sync config: %w", err)
	}

	p.mu.Lock()
	p.claimed = nil
	p.mu.Unlock()

	log.Info().Str("func", "RegisterSlave").Str("device_id", deviceID).Str("master_id", cfg.MasterID).Msg("device paired")
	return cfg, nil
}

func (p *pairingService) Rename(ctx context.Context, name string) error {
	cfg, err := p.configs.Get(ctx)
	if err != nil {
		return fmt.Errorf("load sync config: %w", err)
	}
	if !cfg.Paired() {
		return ErrNotPaired
	}

	req := models.DeviceNameRequest{
		DeviceID:    cfg.DeviceID,
		DeviceToken: cfg.DeviceToken,
		DeviceName:  name,
	}
	if err := p.transport.Send(ctx, transport.EndpointDeviceName, req, &models.DeviceNameResponse{}); err != nil {
		return fmt.Errorf("rename device: %w", err)
	}

	cfg.DeviceName = name
	if err := p.configs.Save(ctx, cfg); err != nil {
		return fmt.Errorf("save sync config: %w", err)
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avoronin/go-sync-keeper/internal/store"
	"github.com/avoronin/go-sync-keeper/internal/transport"
	"github.com/avoronin/go-sync-keeper/models"
)

type membershipService struct {
	configs   store.ConfigRepository
	transport transport.RelayTransport
	now       func() time.Time

	mu           sync.RWMutex
	cached       models.ClusterState
	lastStatusAt time.Time
}

func NewMembershipService(configs store.ConfigRepository, relay transport.RelayTransport) MembershipService {
	return &membershipService{configs: configs, transport: relay, now: time.Now}
}

func (m *membershipService) Refresh(ctx context.Context) (models.ClusterState, error) {
	cfg, err := m.configs.Get(ctx)
	if err != nil {
		return models.ClusterState{}, fmt.Errorf("load sync config: %w", err)
	}
	if !cfg.Paired() {
		return models.ClusterState{}, ErrNotPaired
	}

	req := models.DevicesRequest{DeviceID: cfg.DeviceID, DeviceToken: cfg.DeviceToken}

	var resp models.DevicesResponse
	if err := m.transport.Send(ctx, transport.EndpointDevices, req, &resp); err != nil {
		return models.ClusterState{}, fmt.Errorf("fetch devices: %w", err)
	}

	// The roster is replaced wholesale; there is no merging of stale
	// entries with fresh ones.
	m.mu.Lock()
	m.cached.Devices = resp.Devices
	state := m.cached
	m.mu.Unlock()

	return state, nil
}

func (m *membershipService) Cached() models.ClusterState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cached
}

func (m *membershipService) ApplyStatus(status models.ClusterStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cached.MasterAlive = status.MasterAlive
	if len(status.Devices) > 0 {
		m.cached.Devices = status.Devices
	}
	m.lastStatusAt = m.now()
}

func (m *membershipService) IsMasterAlive(threshold time.Duration) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// A recent heartbeat saying the master is alive settles the question.
	if m.cached.MasterAlive && !m.lastStatusAt.IsZero() && m.now().Sub(m.lastStatusAt) <= threshold {
		return true
	}
	if master, ok := m.cached.Master(); ok && master.LastSeen != nil {
		return m.now().Sub(*master.LastSeen) <= threshold
	}
	return false
}

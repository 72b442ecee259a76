package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avoronin/go-sync-keeper/internal/mock"
	"github.com/avoronin/go-sync-keeper/internal/transport"
	"github.com/avoronin/go-sync-keeper/models"
)

func newTestMembershipSvc(t *testing.T, ctrl *gomock.Controller) (*membershipService, *mock.MockConfigRepository, *mock.MockRelayTransport) {
	t.Helper()
	configs := mock.NewMockConfigRepository(ctrl)
	relay := mock.NewMockRelayTransport(ctrl)
	svc := NewMembershipService(configs, relay).(*membershipService)
	return svc, configs, relay
}

func TestMembershipService_Refresh_ReplacesWholesale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, configs, relay := newTestMembershipSvc(t, ctrl)
	ctx := context.Background()

	cfg := models.SyncConfig{DeviceID: "d1", DeviceToken: "tok", Role: models.RoleSlave}
	configs.EXPECT().Get(ctx).Return(cfg, nil).Times(2)

	first := []models.DeviceInfo{
		{DeviceID: "m1", Role: models.RoleMaster},
		{DeviceID: "d1", Role: models.RoleSlave},
		{DeviceID: "d2", Role: models.RoleSlave},
	}
	second := []models.DeviceInfo{
		{DeviceID: "m1", Role: models.RoleMaster},
		{DeviceID: "d1", Role: models.RoleSlave},
	}

	gomock.InOrder(
		relay.EXPECT().Send(ctx, transport.EndpointDevices, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _, out any) error {
				out.(*models.DevicesResponse).Devices = first
				return nil
			},
		),
		relay.EXPECT().Send(ctx, transport.EndpointDevices, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _, out any) error {
				out.(*models.DevicesResponse).Devices = second
				return nil
			},
		),
	)

	state, err := svc.Refresh(ctx)
	require.NoError(t, err)
	assert.Len(t, state.Devices, 3)

	// d2 отозван на сервере: после обновления его не должно остаться в кеше
	state, err = svc.Refresh(ctx)
	require.NoError(t, err)
	assert.Len(t, state.Devices, 2)
	assert.Len(t, svc.Cached().Devices, 2)
}

func TestMembershipService_Refresh_NotPaired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, configs, _ := newTestMembershipSvc(t, ctrl)

	configs.EXPECT().Get(gomock.Any()).Return(models.SyncConfig{}, nil)

	_, err := svc.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrNotPaired)
}

func TestMembershipService_IsMasterAlive(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	threshold := 2 * time.Minute

	tests := []struct {
		name     string
		statusAt time.Time
		alive    bool
		lastSeen time.Time
		want     bool
	}{
		{name: "recent status says alive", statusAt: base.Add(-30 * time.Second), alive: true, want: true},
		{name: "stale status ignored, last_seen fresh", statusAt: base.Add(-10 * time.Minute), alive: true, lastSeen: base.Add(-time.Minute), want: true},
		{name: "stale status and stale last_seen", statusAt: base.Add(-10 * time.Minute), alive: true, lastSeen: base.Add(-5 * time.Minute), want: false},
		{name: "recent status says dead, last_seen stale", statusAt: base.Add(-30 * time.Second), alive: false, lastSeen: base.Add(-5 * time.Minute), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _, _ := newTestMembershipSvc(t, ctrl)
			svc.now = func() time.Time { return base }

			svc.cached = models.ClusterState{MasterAlive: tt.alive}
			svc.lastStatusAt = tt.statusAt
			if !tt.lastSeen.IsZero() {
				seen := tt.lastSeen
				svc.cached.Devices = []models.DeviceInfo{{DeviceID: "m1", Role: models.RoleMaster, LastSeen: &seen}}
			}

			assert.Equal(t, tt.want, svc.IsMasterAlive(threshold))
		})
	}
}

func TestMembershipService_ApplyStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestMembershipSvc(t, ctrl)

	svc.ApplyStatus(models.ClusterStatus{
		MasterAlive: true,
		Devices:     []models.DeviceInfo{{DeviceID: "m1", Role: models.RoleMaster}},
	})

	state := svc.Cached()
	assert.True(t, state.MasterAlive)
	assert.Len(t, state.Devices, 1)

	// Статус без ростера обновляет только признак живости
	svc.ApplyStatus(models.ClusterStatus{MasterAlive: false})
	state = svc.Cached()
	assert.False(t, state.MasterAlive)
	assert.Len(t, state.Devices, 1)
}

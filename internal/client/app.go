package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avoronin/go-sync-keeper/internal/config"
	"github.com/avoronin/go-sync-keeper/internal/crypto"
	"github.com/avoronin/go-sync-keeper/internal/logger"
	"github.com/avoronin/go-sync-keeper/internal/service"
	"github.com/avoronin/go-sync-keeper/internal/store"
	"github.com/avoronin/go-sync-keeper/internal/transport"
	"github.com/avoronin/go-sync-keeper/internal/workers"
	"github.com/avoronin/go-sync-keeper/models"
)

type App struct {
	cfg      *config.ClientConfig
	log      *logger.Logger
	db       *store.DB
	storages *store.ClientStorages
	services *service.ClientServices
	workers  *workers.Workers
}

func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect local storage: %w", err)
	}
	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate local storage: %w", err)
	}

	storages := store.NewClientStorages(db, log)
	bootstrap := transport.NewBootstrapStore(bootstrapPath(cfg.Storage.DB.DSN))
	resolver := transport.NewBaseResolver(cfg.Transport.APIURL, storages.Config, bootstrap)
	relay := transport.NewHTTPRelayTransport(resolver, cfg.Transport.RequestTimeout, log)
	keychain := crypto.NewKeyChainService()

	services := service.NewClientServices(storages, relay, keychain, bootstrap, service.Options{
		DeviceName:        cfg.App.DeviceName,
		HeartbeatInterval: cfg.Workers.HeartbeatInterval,
		DebounceWindow:    cfg.Workers.DebounceWindow,
	})

	return &App{
		cfg:      cfg,
		log:      log,
		db:       db,
		storages: storages,
		services: services,
		workers: workers.New(
			services.Heartbeat,
			workers.NewSyncJobWorker(services.SyncJob, cfg.Workers.SyncInterval),
		),
	}, nil
}

// Services exposes the wired service layer to the command front-end.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Records lists locally stored records, tombstones excluded. limit <= 0
// means all of them.
func (a *App) Records(ctx context.Context, limit int) ([]models.Record, error) {
	return a.storages.Records.List(ctx, store.RecordFilter{Limit: limit})
}

// Run restores the persisted pairing state, starts the background workers,
// and blocks until ctx is cancelled. An unpaired installation still runs:
// the workers fail fast locally until pairing completes.
func (a *App) Run(ctx context.Context) error {
	ctx = a.log.WithContext(ctx)

	cfg, err := a.storages.Config.Get(ctx)
	switch {
	case errors.Is(err, store.ErrConfigNotFound):
		a.log.Info().Str("func", "Run").Msg("no sync configuration, waiting for pairing")
	case err != nil:
		return fmt.Errorf("restore sync config: %w", err)
	case cfg.Paired():
		a.log.Info().Str("func", "Run").
			Str("device_id", cfg.DeviceID).
			Str("role", string(cfg.Role)).
			Msg("sync configuration restored")
	default:
		a.log.Info().Str("func", "Run").Msg("device is unpaired")
	}

	a.workers.Run(ctx)

	// Catch up immediately instead of waiting out the first full interval.
	a.workers.Wake()

	<-ctx.Done()
	a.workers.Wait()

	if err := a.db.Close(); err != nil {
		return fmt.Errorf("close local storage: %w", err)
	}
	return nil
}

// Wake runs one out-of-cadence heartbeat and sync pass. Called when the
// application returns to the foreground after a suspension, so convergence
// does not wait out the remaining interval.
func (a *App) Wake() {
	a.workers.Wake()
}

// bootstrapPath places the pre-pairing relay URL next to the database file.
func bootstrapPath(dsn string) string {
	if dsn == "" || dsn == ":memory:" {
		return filepath.Join(os.TempDir(), "sync-keeper-bootstrap.json")
	}
	return dsn + ".bootstrap.json"
}

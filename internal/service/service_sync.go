package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avoronin/go-sync-keeper/internal/crypto"
	"github.com/avoronin/go-sync-keeper/internal/logger"
	"github.com/avoronin/go-sync-keeper/internal/store"
	"github.com/avoronin/go-sync-keeper/internal/transport"
	"github.com/avoronin/go-sync-keeper/models"
)

// pushBatchLimit bounds how many queued deltas one push cycle ships.
const pushBatchLimit = 100

// cycleGuard serialises one kind of sync cycle. A trigger that arrives while
// a cycle runs does not start a second one; it marks the run as pending and
// the finishing cycle immediately runs once more.
type cycleGuard struct {
	mu      sync.Mutex
	running bool
	pending bool
}

func (g *cycleGuard) run(fn func() error) error {
	g.mu.Lock()
	if g.running {
		g.pending = true
		g.mu.Unlock()
		return nil
	}
	g.running = true
	g.mu.Unlock()

	for {
		err := fn()

		g.mu.Lock()
		if g.pending {
			g.pending = false
			g.mu.Unlock()
			continue
		}
		g.running = false
		g.mu.Unlock()
		return err
	}
}

type syncEngine struct {
	storages   *store.ClientStorages
	transport  transport.RelayTransport
	keychain   crypto.KeyChainService
	membership MembershipService
	debounce   time.Duration
	now        func() time.Time

	pushGuard cycleGuard
	pullGuard cycleGuard

	debounceMu    sync.Mutex
	debounceTimer *time.Timer
	triggered     chan struct{}
}

func NewSyncEngine(storages *store.ClientStorages, relay transport.RelayTransport, keychain crypto.KeyChainService, membership MembershipService, debounce time.Duration) SyncEngineService {
	return &syncEngine{
		storages:   storages,
		transport:  relay,
		keychain:   keychain,
		membership: membership,
		debounce:   debounce,
		now:        time.Now,
		triggered:  make(chan struct{}, 1),
	}
}

func (e *syncEngine) SaveRecord(ctx context.Context, recordID string, data models.CipheredRecord) (models.Record, error) {
	cfg, err := e.storages.Config.Get(ctx)
	if err != nil {
		return models.Record{}, fmt.Errorf("load sync config: %w", err)
	}
	if !cfg.Paired() {
		return models.Record{}, ErrNotPaired
	}

	if recordID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return models.Record{}, fmt.Errorf("generate record id: %w", err)
		}
		recordID = id.String()
	}

	delta := models.Delta{
		RecordID:   recordID,
		Kind:       models.DeltaUpsert,
		Data:       data,
		ModifiedAt: e.now().UTC(),
		DeviceID:   cfg.DeviceID,
	}
	if err := e.applyLocal(ctx, delta); err != nil {
		return models.Record{}, err
	}
	return delta.ToRecord(), nil
}

func (e *syncEngine) DeleteRecord(ctx context.Context, recordID string) error {
	cfg, err := e.storages.Config.Get(ctx)
	if err != nil {
		return fmt.Errorf("load sync config: %w", err)
	}
	if !cfg.Paired() {
		return ErrNotPaired
	}

	delta := models.Delta{
		RecordID:   recordID,
		Kind:       models.DeltaDelete,
		ModifiedAt: e.now().UTC(),
		DeviceID:   cfg.DeviceID,
	}
	return e.applyLocal(ctx, delta)
}

// applyLocal writes the mutation to the replica, appends it to the outbound
// queue, and arms the debounce timer.
func (e *syncEngine) applyLocal(ctx context.Context, delta models.Delta) error {
	if err := e.storages.Records.Upsert(ctx, delta.ToRecord()); err != nil {
		return fmt.Errorf("save record locally: %w", err)
	}
	if err := e.storages.Queue.Enqueue(ctx, delta); err != nil {
		return fmt.Errorf("enqueue delta: %w", err)
	}
	e.schedulePush()
	return nil
}

// schedulePush coalesces bursts of local mutations: the push trigger fires
// once, a debounce window after the last mutation.
func (e *syncEngine) schedulePush() {
	e.debounceMu.Lock()
	defer e.debounceMu.Unlock()

	if e.debounceTimer != nil {
		e.debounceTimer.Reset(e.debounce)
		return
	}
	e.debounceTimer = time.AfterFunc(e.debounce, func() {
		e.debounceMu.Lock()
		e.debounceTimer = nil
		e.debounceMu.Unlock()

		select {
		case e.triggered <- struct{}{}:
		default:
		}
	})
}

func (e *syncEngine) Triggered() <-chan struct{} {
	return e.triggered
}

func (e *syncEngine) PushCycle(ctx context.Context) error {
	return e.pushGuard.run(func() error { return e.pushOnce(ctx) })
}

func (e *syncEngine) pushOnce(ctx context.Context) error {
	log := logger.FromContext(ctx)

	cfg, err := e.storages.Config.Get(ctx)
	if err != nil {
		return fmt.Errorf("load sync config: %w", err)
	}
	if !cfg.Paired() {
		return ErrNotPaired
	}

	batch, err := e.storages.Queue.Oldest(ctx, pushBatchLimit)
	if err != nil {
		return fmt.Errorf("read outbound queue: %w", err)
	}
	if len(batch) == 0 {
		return nil
	}

	key, err := e.keychain.ImportKey(cfg.EncryptionKey)
	if err != nil {
		return fmt.Errorf("import cluster key: %w", err)
	}

	deltas := make([]models.Delta, 0, len(batch))
	seqs := make([]int64, 0, len(batch))
	for _, q := range batch {
		deltas = append(deltas, q.Delta)
		seqs = append(seqs, q.Seq)
	}

	plaintext, err := json.Marshal(deltas)
	if err != nil {
		return fmt.Errorf("marshal delta batch: %w", err)
	}
	payload, err := e.keychain.EncryptDelta(key, plaintext)
	if err != nil {
		return fmt.Errorf("encrypt delta batch: %w", err)
	}

	recipients, err := e.recipients(ctx, cfg.DeviceID)
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		// A cluster of one has nobody to push to. The queue is kept so
		// the history reaches the first device that pairs.
		return nil
	}

	for _, to := range recipients {
		req := models.PushRequest{
			DeviceID:    cfg.DeviceID,
			DeviceToken: cfg.DeviceToken,
			To:          to,
			Payload:     payload,
		}
		if err := e.transport.Send(ctx, transport.EndpointPush, req, &models.PushResponse{}); err != nil {
			// The queue stays intact; the next cycle retries from the
			// same oldest entry.
			return fmt.Errorf("push to %s: %w", to, err)
		}
	}

	if err := e.storages.Queue.Remove(ctx, seqs...); err != nil {
		return fmt.Errorf("remove pushed deltas: %w", err)
	}

	log.Debug().Str("func", "pushOnce").Int("deltas", len(deltas)).Int("recipients", len(recipients)).Msg("delta batch pushed")
	return nil
}

// recipients lists every other device in the cluster, refreshing the roster
// when the cache is empty.
func (e *syncEngine) recipients(ctx context.Context, self string) ([]string, error) {
	state := e.membership.Cached()
	if len(state.Devices) == 0 {
		var err error
		state, err = e.membership.Refresh(ctx)
		if err != nil {
			return nil, fmt.Errorf("refresh roster: %w", err)
		}
	}

	var out []string
	for _, d := range state.Devices {
		if d.DeviceID != self {
			out = append(out, d.DeviceID)
		}
	}
	return out, nil
}

func (e *syncEngine) PullCycle(ctx context.Context) error {
	return e.pullGuard.run(func() error { return e.pullOnce(ctx) })
}

func (e *syncEngine) pullOnce(ctx context.Context) error {
	log := logger.FromContext(ctx)

	cfg, err := e.storages.Config.Get(ctx)
	if err != nil {
		return fmt.Errorf("load sync config: %w", err)
	}
	if !cfg.Paired() {
		return ErrNotPaired
	}

	key, err := e.keychain.ImportKey(cfg.EncryptionKey)
	if err != nil {
		return fmt.Errorf("import cluster key: %w", err)
	}

	req := models.PullRequest{DeviceID: cfg.DeviceID, DeviceToken: cfg.DeviceToken}

	var resp models.PullResponse
	if err := e.transport.Send(ctx, transport.EndpointPull, req, &resp); err != nil {
		return fmt.Errorf("pull messages: %w", err)
	}

	for _, msg := range resp.Messages {
		applied, err := e.storages.Applied.IsApplied(ctx, msg.MessageID)
		if err != nil {
			return fmt.Errorf("check applied set: %w", err)
		}
		if applied {
			continue
		}

		deltas, err := e.decode(key, msg)
		if err != nil {
			// A corrupt or wrongly-keyed message is skipped without
			// poisoning the rest of the batch. It is also not marked
			// applied, so a relay-side fix can still land later.
			log.Warn().Str("func", "pullOnce").Str("message_id", msg.MessageID).Err(err).Msg("skipping undecodable message")
			continue
		}

		for _, d := range deltas {
			if err := e.merge(ctx, d); err != nil {
				return fmt.Errorf("merge delta for %s: %w", d.RecordID, err)
			}
		}

		if err := e.storages.Applied.MarkApplied(ctx, msg.MessageID); err != nil {
			return fmt.Errorf("mark message applied: %w", err)
		}
	}
	return nil
}

func (e *syncEngine) decode(key []byte, msg models.SyncMessage) ([]models.Delta, error) {
	plaintext, err := e.keychain.DecryptDelta(key, msg.Payload)
	if err != nil {
		return nil, fmt.Errorf("decrypt payload: %w", err)
	}
	var deltas []models.Delta
	if err := json.Unmarshal(plaintext, &deltas); err != nil {
		return nil, fmt.Errorf("unmarshal delta batch: %w", err)
	}
	return deltas, nil
}

// merge applies one incoming delta under last-writer-wins. Applying the same
// delta twice converges to the same replica state, so relay redelivery of a
// not-yet-marked message is harmless.
func (e *syncEngine) merge(ctx context.Context, d models.Delta) error {
	existing, err := e.storages.Records.Get(ctx, d.RecordID)
	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		// First sighting of the record, nothing to compare against.
	case err != nil:
		return fmt.Errorf("load record: %w", err)
	default:
		current := models.Delta{ModifiedAt: existing.ModifiedAt, DeviceID: existing.DeviceID}
		if !d.Supersedes(current) {
			return nil
		}
	}
	return e.storages.Records.Upsert(ctx, d.ToRecord())
}

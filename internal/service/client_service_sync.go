package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vitalog/vitalog/internal/adapter"
	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/store"
	"github.com/vitalog/vitalog/models"
)

// Externally observable coordinator states.
const (
	StateIdle         = "idle"
	StateGathering    = "gathering"
	StateTransmitting = "transmitting"
	StateApplying     = "applying"
	StateCommitting   = "committing"
	StateCooldown     = "cooldown"
)

type clientSyncCoordinator struct {
	queue    store.ChangeQueueRepository
	entities store.LocalEntityRepository
	meta     store.SyncMetaRepository
	adapter  adapter.ServerAdapter
	logger   *logger.Logger

	// clock and cooldown are injected so tests can run cycles against fake
	// time and a fake transport.
	clock    func() time.Time
	cooldown time.Duration

	mu            sync.Mutex
	state         string
	inFlight      bool
	cooldownUntil time.Time
}

// NewSyncCoordinator constructs the coordinator that owns the sync cursor,
// the single-flight guard and the post-failure cooldown.
func NewSyncCoordinator(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cooldown time.Duration, log *logger.Logger) SyncCoordinator {
	if cooldown <= 0 {
		cooldown = 5 * time.Minute
	}

	return &clientSyncCoordinator{
		queue:    storages.Queue,
		entities: storages.Entities,
		meta:     storages.Meta,
		adapter:  serverAdapter,
		logger:   log,
		clock:    time.Now,
		cooldown: cooldown,
		state:    StateIdle,
	}
}

func (c *clientSyncCoordinator) Sync(ctx context.Context, force bool) error {
	if err := c.begin(force); err != nil {
		return err
	}
	defer c.end()

	err := c.runCycle(ctx)
	if err != nil {
		c.noteFailure(ctx, err)
	}

	return err
}

// begin is the single enforcement point for concurrent triggers: it checks
// the in-flight flag and the cooldown window under one lock, so any number
// of trigger sources may fire without producing overlapping cycles.
func (c *clientSyncCoordinator) begin(force bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inFlight {
		return ErrSyncInFlight
	}
	if !force && c.clock().Before(c.cooldownUntil) {
		return ErrCooldownActive
	}

	c.inFlight = true
	c.state = StateGathering
	return nil
}

func (c *clientSyncCoordinator) end() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.inFlight = false
	if c.state != StateCooldown {
		c.state = StateIdle
	}
}

// noteFailure enters cooldown and records the failure in sync metadata so
// Status keeps serving it. The metadata write is best effort: the store may
// be the very thing that failed.
func (c *clientSyncCoordinator) noteFailure(ctx context.Context, cause error) {
	c.mu.Lock()
	c.cooldownUntil = c.clock().Add(c.cooldown)
	c.state = StateCooldown
	c.mu.Unlock()

	if err := c.meta.SetSyncError(ctx, cause.Error(), c.clock()); err != nil {
		c.logger.Err(err).Msg("failed to record sync error")
	}
}

func (c *clientSyncCoordinator) setState(state string) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
}

func (c *clientSyncCoordinator) runCycle(ctx context.Context) error {
	// ── gather ──────────────────────────────────────────────────────────
	deviceID, err := c.meta.DeviceID(ctx)
	if err != nil {
		return fmt.Errorf("load device identity: %w", err)
	}

	cursor, err := c.meta.Cursor(ctx)
	if err != nil {
		return fmt.Errorf("load sync cursor: %w", err)
	}

	// Rows stranded in flight by an earlier crash are gathered again; the
	// server applies resubmissions idempotently.
	changes, err := c.queue.ListForSync(ctx, "")
	if err != nil {
		return fmt.Errorf("gather pending changes: %w", err)
	}

	grouped, rowIndex, ids := groupChanges(changes)

	// ── transmit ────────────────────────────────────────────────────────
	c.setState(StateTransmitting)

	if err = c.queue.SetStatus(ctx, ids, models.StatusInFlight); err != nil {
		return fmt.Errorf("mark changes in flight: %w", err)
	}

	req := models.SyncRequest{
		DeviceID:          deviceID,
		LastSyncTimestamp: cursor,
		Changes:           grouped,
	}

	resp, err := c.adapter.Sync(ctx, req)
	if err != nil {
		c.logger.Err(err).Int("changes", len(changes)).Msg("sync transmit failed")

		// The queue goes back exactly as it was; nothing is lost, nothing
		// is retried until the cooldown window passes or a manual trigger.
		// noteFailure records the error in sync metadata.
		if restoreErr := c.queue.SetStatus(ctx, ids, models.StatusPending); restoreErr != nil {
			return fmt.Errorf("restore queue after transport failure: %w", restoreErr)
		}

		return fmt.Errorf("transmit sync request: %w", err)
	}

	// ── apply ───────────────────────────────────────────────────────────
	c.setState(StateApplying)

	if err = c.applyVerdicts(ctx, resp.ProcessedChanges, rowIndex); err != nil {
		return err
	}
	if err = c.applyServerChanges(ctx, resp.ServerChanges); err != nil {
		return err
	}

	// ── commit ──────────────────────────────────────────────────────────
	c.setState(StateCommitting)

	if err = c.commitCursor(ctx, resp.SyncTimestamp); err != nil {
		return err
	}
	if err = c.meta.SetLastSyncAt(ctx, c.clock()); err != nil {
		return fmt.Errorf("record last sync time: %w", err)
	}
	if err = c.meta.ClearSyncError(ctx); err != nil {
		return fmt.Errorf("clear sync error: %w", err)
	}

	c.mu.Lock()
	c.cooldownUntil = time.Time{}
	c.mu.Unlock()

	c.logger.Info().
		Int("submitted", len(changes)).
		Time("cursor", resp.SyncTimestamp).
		Msg("sync cycle committed")

	return nil
}

// applyVerdicts settles the queue according to the server's per-change
// outcome. Acknowledged rows leave the queue before the echoed server copies
// are applied, so applyServerChanges is not blocked by rows that are already
// confirmed.
func (c *clientSyncCoordinator) applyVerdicts(ctx context.Context, processed map[string]models.ProcessedSet, rowIndex map[string][]int64) error {
	now := c.clock()

	for entityType, set := range processed {
		// A sync_id can land in an applied bucket and in Conflicts at once:
		// a resubmitted stranded row gets acknowledged while the fresh edit
		// for the same record conflicts. Rows claimed by a conflict verdict
		// must survive until MarkConflict parks one of them.
		conflicted := make(map[int64]bool)
		for _, conflict := range set.Conflicts {
			for _, id := range rowIndex[rowKey(entityType, conflict.SyncID)] {
				conflicted[id] = true
			}
		}

		var synced []int64
		for _, syncID := range applied(set) {
			for _, id := range rowIndex[rowKey(entityType, syncID)] {
				if !conflicted[id] {
					synced = append(synced, id)
				}
			}
		}
		if err := c.queue.DeleteByIDs(ctx, synced...); err != nil {
			return fmt.Errorf("clear synced changes: %w", err)
		}

		for _, conflict := range set.Conflicts {
			rows := rowIndex[rowKey(entityType, conflict.SyncID)]
			if len(rows) == 0 {
				continue
			}

			// A crash can leave two queue rows for one record (a stranded
			// in-flight row plus a fresh edit); the newest row carries the
			// payload worth keeping, earlier ones are superseded.
			snapshot := conflict.ServerSnapshot
			snapshot.EntityType = entityType
			if err := c.queue.MarkConflict(ctx, rows[len(rows)-1], snapshot, now); err != nil {
				return fmt.Errorf("park conflicting change: %w", err)
			}
			if err := c.queue.DeleteByIDs(ctx, rows[:len(rows)-1]...); err != nil {
				return fmt.Errorf("drop superseded changes: %w", err)
			}
		}

		var rejected []int64
		for _, syncID := range set.Rejected {
			rejected = append(rejected, rowIndex[rowKey(entityType, syncID)]...)
		}
		if err := c.queue.SetStatus(ctx, rejected, models.StatusFailed); err != nil {
			return fmt.Errorf("park rejected changes: %w", err)
		}
	}

	return nil
}

// applyServerChanges upserts the server's view into the local cache.
// Tombstones are upserted, not physically deleted, so re-applying the same
// batch after a crash converges to the same state. Records with a live queue
// row of their own are skipped: a local edit made after gathering must not
// be overwritten by an in-flight cycle. Parked conflict and failed rows keep
// their payload in the queue, so the cache stays free to follow the server.
func (c *clientSyncCoordinator) applyServerChanges(ctx context.Context, serverChanges map[string][]models.EntityRecord) error {
	for entityType, records := range serverChanges {
		for _, record := range records {
			record.EntityType = entityType

			blocked, err := c.queue.HasActive(ctx, entityType, record.SyncID)
			if err != nil {
				return fmt.Errorf("check pending status before upsert: %w", err)
			}
			if blocked {
				c.logger.Debug().
					Str("entity_type", entityType).
					Str("sync_id", record.SyncID).
					Msg("server change skipped, local change queued")
				continue
			}

			if err = c.entities.Upsert(ctx, record); err != nil {
				return fmt.Errorf("apply server change: %w", err)
			}
		}
	}

	return nil
}

// commitCursor advances the cursor, never regressing it: a replayed or
// delayed response cannot move the device backwards in time.
func (c *clientSyncCoordinator) commitCursor(ctx context.Context, syncTimestamp time.Time) error {
	current, err := c.meta.Cursor(ctx)
	if err != nil {
		return fmt.Errorf("read cursor before commit: %w", err)
	}
	if current != nil && !syncTimestamp.After(*current) {
		return nil
	}

	if err = c.meta.SetCursor(ctx, syncTimestamp); err != nil {
		return fmt.Errorf("commit cursor: %w", err)
	}

	return nil
}

func (c *clientSyncCoordinator) Status(ctx context.Context) (SyncStatus, error) {
	c.mu.Lock()
	state := c.state
	c.mu.Unlock()

	status := SyncStatus{State: state}

	var err error
	if status.Cursor, err = c.meta.Cursor(ctx); err != nil {
		return SyncStatus{}, fmt.Errorf("read cursor: %w", err)
	}
	if status.LastSyncAt, err = c.meta.LastSyncAt(ctx); err != nil {
		return SyncStatus{}, fmt.Errorf("read last sync time: %w", err)
	}
	if status.SyncError, status.SyncErrorAt, err = c.meta.SyncError(ctx); err != nil {
		return SyncStatus{}, fmt.Errorf("read sync error: %w", err)
	}
	if status.PendingCount, err = c.queue.CountPending(ctx); err != nil {
		return SyncStatus{}, fmt.Errorf("count pending changes: %w", err)
	}

	conflicts, err := c.queue.GetConflicts(ctx)
	if err != nil {
		return SyncStatus{}, fmt.Errorf("list conflicts: %w", err)
	}
	status.Conflicts = len(conflicts)

	return status, nil
}

func (c *clientSyncCoordinator) ResetCursor(ctx context.Context) error {
	if err := c.meta.ResetCursor(ctx); err != nil {
		return fmt.Errorf("reset cursor: %w", err)
	}

	return nil
}

// groupChanges builds the wire buckets, an index from (type, sync_id) to the
// queue rows that produced them (FIFO within a key), and the flat row ID
// list.
func groupChanges(changes []models.PendingChange) (map[string][]models.ChangeItem, map[string][]int64, []int64) {
	grouped := make(map[string][]models.ChangeItem)
	rowIndex := make(map[string][]int64)
	ids := make([]int64, 0, len(changes))

	for _, change := range changes {
		grouped[change.EntityType] = append(grouped[change.EntityType], models.ChangeItem{
			SyncID:        change.SyncID,
			Operation:     change.Operation,
			Payload:       change.Payload,
			BaseTimestamp: change.BaseTimestamp,
		})
		key := rowKey(change.EntityType, change.SyncID)
		rowIndex[key] = append(rowIndex[key], change.ID)
		ids = append(ids, change.ID)
	}

	return grouped, rowIndex, ids
}

func applied(set models.ProcessedSet) []string {
	out := make([]string, 0, len(set.Created)+len(set.Updated)+len(set.Deleted))
	out = append(out, set.Created...)
	out = append(out, set.Updated...)
	out = append(out, set.Deleted...)
	return out
}

func rowKey(entityType, syncID string) string {
	return entityType + "\x00" + syncID
}

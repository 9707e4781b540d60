package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/store"
	"github.com/vitalog/vitalog/models"
)

type clientChangeTracker struct {
	queue    store.ChangeQueueRepository
	entities store.LocalEntityRepository
	logger   *logger.Logger
	clock    func() time.Time
}

// NewChangeTracker constructs the pending change tracker over the device's
// durable store.
func NewChangeTracker(storages *store.ClientStorages, log *logger.Logger) ChangeTracker {
	return &clientChangeTracker{
		queue:    storages.Queue,
		entities: storages.Entities,
		logger:   log,
		clock:    time.Now,
	}
}

func (t *clientChangeTracker) Record(ctx context.Context, entityType, syncID, operation string, payload json.RawMessage) error {
	if !models.ValidOperation(operation) {
		return fmt.Errorf("%w: %q", ErrUnknownOperation, operation)
	}

	now := t.clock()

	existing, err := t.queue.FindPending(ctx, entityType, syncID)
	switch {
	case err == nil:
		return t.coalesce(ctx, existing, operation, payload, now)
	case errors.Is(err, store.ErrChangeNotFound):
		return t.append(ctx, entityType, syncID, operation, payload, now)
	default:
		return fmt.Errorf("find pending change: %w", err)
	}
}

// coalesce folds a later local edit of the same record into its pending
// queue row, preserving the row's creation order and base timestamp.
func (t *clientChangeTracker) coalesce(ctx context.Context, existing models.PendingChange, operation string, payload json.RawMessage, now time.Time) error {
	entityType, syncID := existing.EntityType, existing.SyncID

	if operation == models.OperationDelete {
		if existing.Operation == models.OperationCreate {
			// The record was created and deleted before it ever reached the
			// server: both sides of the story cancel out.
			if err := t.queue.DeleteByIDs(ctx, existing.ID); err != nil {
				return fmt.Errorf("cancel pending create: %w", err)
			}
			if err := t.entities.Remove(ctx, entityType, syncID); err != nil {
				return fmt.Errorf("remove never-synced entity: %w", err)
			}
			t.logger.Debug().
				Str("entity_type", entityType).
				Str("sync_id", syncID).
				Msg("pending create cancelled by delete")
			return nil
		}

		if err := t.queue.ReplacePending(ctx, existing.ID, models.OperationDelete, nil, now); err != nil {
			return fmt.Errorf("coalesce delete: %w", err)
		}
		if err := t.entities.MarkDeleted(ctx, entityType, syncID); err != nil {
			return fmt.Errorf("tombstone entity locally: %w", err)
		}
		return nil
	}

	// A later create/update replaces the pending payload; the queued
	// operation keeps its original kind so a never-synced record still
	// arrives at the server as a create.
	if err := t.queue.ReplacePending(ctx, existing.ID, existing.Operation, payload, now); err != nil {
		return fmt.Errorf("coalesce payload: %w", err)
	}
	if err := t.entities.SavePayload(ctx, entityType, syncID, payload); err != nil {
		return fmt.Errorf("save local payload: %w", err)
	}

	return nil
}

func (t *clientChangeTracker) append(ctx context.Context, entityType, syncID, operation string, payload json.RawMessage, now time.Time) error {
	change := models.PendingChange{
		EntityType:     entityType,
		SyncID:         syncID,
		Operation:      operation,
		Payload:        payload,
		LocalTimestamp: now,
		Status:         models.StatusPending,
	}

	// The base timestamp is the server revision the device is editing from;
	// records the server has never confirmed carry none.
	cached, err := t.entities.Get(ctx, entityType, syncID)
	if err != nil && !errors.Is(err, store.ErrEntityNotFound) {
		return fmt.Errorf("read cached entity: %w", err)
	}
	if err == nil && !cached.UpdatedAt.IsZero() {
		base := cached.UpdatedAt
		change.BaseTimestamp = &base
	}

	if _, err = t.queue.Append(ctx, change); err != nil {
		return fmt.Errorf("append pending change: %w", err)
	}

	if operation == models.OperationDelete {
		if err = t.entities.MarkDeleted(ctx, entityType, syncID); err != nil {
			return fmt.Errorf("tombstone entity locally: %w", err)
		}
		return nil
	}

	if err = t.entities.SavePayload(ctx, entityType, syncID, payload); err != nil {
		return fmt.Errorf("save local payload: %w", err)
	}

	return nil
}

func (t *clientChangeTracker) ListPending(ctx context.Context, entityType string) ([]models.PendingChange, error) {
	changes, err := t.queue.ListForSync(ctx, entityType)
	if err != nil {
		return nil, fmt.Errorf("list pending changes: %w", err)
	}

	return changes, nil
}

func (t *clientChangeTracker) MarkSynced(ctx context.Context, ids []int64) error {
	if err := t.queue.DeleteByIDs(ctx, ids...); err != nil {
		return fmt.Errorf("mark changes synced: %w", err)
	}

	return nil
}

func (t *clientChangeTracker) MarkFailed(ctx context.Context, ids []int64) error {
	if err := t.queue.SetStatus(ctx, ids, models.StatusFailed); err != nil {
		return fmt.Errorf("mark changes failed: %w", err)
	}

	return nil
}

func (t *clientChangeTracker) MarkConflict(ctx context.Context, id int64, snapshot models.EntityRecord) error {
	if err := t.queue.MarkConflict(ctx, id, snapshot, t.clock()); err != nil {
		return fmt.Errorf("mark change conflict: %w", err)
	}

	return nil
}

func (t *clientChangeTracker) PendingCount(ctx context.Context) (int, error) {
	count, err := t.queue.CountPending(ctx)
	if err != nil {
		return 0, fmt.Errorf("count pending changes: %w", err)
	}

	return count, nil
}

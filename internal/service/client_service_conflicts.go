package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/store"
	"github.com/vitalog/vitalog/models"
)

type conflictResolver struct {
	queue    store.ChangeQueueRepository
	entities store.LocalEntityRepository
	logger   *logger.Logger
	clock    func() time.Time
}

// NewConflictResolver constructs the resolver over the device's durable
// store.
func NewConflictResolver(storages *store.ClientStorages, log *logger.Logger) ConflictResolver {
	return &conflictResolver{
		queue:    storages.Queue,
		entities: storages.Entities,
		logger:   log,
		clock:    time.Now,
	}
}

func (r *conflictResolver) ListConflicts(ctx context.Context) ([]models.Conflict, error) {
	conflicts, err := r.queue.GetConflicts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conflicts: %w", err)
	}

	return conflicts, nil
}

func (r *conflictResolver) Resolve(ctx context.Context, conflictID int64, choice string) error {
	conflict, err := r.findConflict(ctx, conflictID)
	if err != nil {
		return err
	}

	switch choice {
	case models.ResolveUseServer:
		return r.useServer(ctx, conflict)
	case models.ResolveUseLocal:
		return r.useLocal(ctx, conflict)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownResolution, choice)
	}
}

func (r *conflictResolver) findConflict(ctx context.Context, conflictID int64) (models.Conflict, error) {
	change, err := r.queue.GetByID(ctx, conflictID)
	if err != nil {
		return models.Conflict{}, fmt.Errorf("load conflict %d: %w", conflictID, err)
	}
	if change.Status != models.StatusConflict {
		return models.Conflict{}, fmt.Errorf("%w: change %d has status %s", ErrNotAConflict, conflictID, change.Status)
	}

	conflicts, err := r.queue.GetConflicts(ctx)
	if err != nil {
		return models.Conflict{}, fmt.Errorf("load conflicts: %w", err)
	}
	for _, c := range conflicts {
		if c.ID == conflictID {
			return c, nil
		}
	}

	return models.Conflict{}, fmt.Errorf("%w: change %d", ErrNotAConflict, conflictID)
}

// useServer makes the server win: the snapshot overwrites the local record
// and the losing change is discarded.
func (r *conflictResolver) useServer(ctx context.Context, conflict models.Conflict) error {
	if err := r.entities.Upsert(ctx, conflict.ServerSnapshot); err != nil {
		return fmt.Errorf("apply server snapshot: %w", err)
	}
	if err := r.queue.DeleteByIDs(ctx, conflict.ID); err != nil {
		return fmt.Errorf("discard conflicting change: %w", err)
	}

	r.logger.Info().
		Str("entity_type", conflict.Change.EntityType).
		Str("sync_id", conflict.Change.SyncID).
		Msg("conflict resolved with server copy")

	return nil
}

// useLocal makes the local edit win: it is re-enqueued as a fresh pending
// change based on the server's current revision, so the next cycle resubmits
// it. A third device racing in between can still produce another conflict;
// that one comes back through the same path.
func (r *conflictResolver) useLocal(ctx context.Context, conflict models.Conflict) error {
	change := conflict.Change
	base := conflict.ServerSnapshot.UpdatedAt

	// The local cache keeps the local payload but adopts the server's
	// revision timestamp, because that is now the revision the retried
	// change is based on.
	retried := models.EntityRecord{
		EntityType: change.EntityType,
		SyncID:     change.SyncID,
		Payload:    change.Payload,
		UpdatedAt:  base,
		Deleted:    change.Operation == models.OperationDelete,
	}
	if err := r.entities.Upsert(ctx, retried); err != nil {
		return fmt.Errorf("keep local copy: %w", err)
	}

	if err := r.queue.DeleteByIDs(ctx, conflict.ID); err != nil {
		return fmt.Errorf("discard conflict record: %w", err)
	}

	operation := models.OperationUpdate
	if change.Operation == models.OperationDelete {
		operation = models.OperationDelete
	}

	_, err := r.queue.Append(ctx, models.PendingChange{
		EntityType:     change.EntityType,
		SyncID:         change.SyncID,
		Operation:      operation,
		Payload:        change.Payload,
		BaseTimestamp:  &base,
		LocalTimestamp: r.clock(),
		Status:         models.StatusPending,
	})
	if err != nil {
		return fmt.Errorf("re-enqueue local change: %w", err)
	}

	r.logger.Info().
		Str("entity_type", change.EntityType).
		Str("sync_id", change.SyncID).
		Msg("conflict resolved with local copy, change re-enqueued")

	return nil
}

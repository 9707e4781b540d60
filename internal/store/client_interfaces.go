package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/vitalog/vitalog/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalEntityRepository is the on-device cache of entity records, keyed by
// (entity_type, sync_id). Upserts are idempotent; deletions are tombstones.
type LocalEntityRepository interface {
	// Upsert writes server-confirmed records, overwriting payload, revision
	// timestamp and tombstone flag. Applying the same batch twice leaves the
	// store in the same state.
	Upsert(ctx context.Context, records ...models.EntityRecord) error

	// Get returns one record, tombstoned or not. ErrEntityNotFound when the
	// device has never seen the record.
	Get(ctx context.Context, entityType, syncID string) (models.EntityRecord, error)

	// List returns the records of one entity type. Tombstones are filtered
	// out unless includeDeleted is set.
	List(ctx context.Context, entityType string, includeDeleted bool) ([]models.EntityRecord, error)

	// SavePayload writes a locally edited payload while preserving the
	// cached server revision timestamp, inserting a fresh row (zero
	// revision) for records the server has never confirmed.
	SavePayload(ctx context.Context, entityType, syncID string, payload json.RawMessage) error

	// MarkDeleted tombstones a record locally without touching its cached
	// server revision.
	MarkDeleted(ctx context.Context, entityType, syncID string) error

	// Remove physically deletes a row. Only valid for records the server
	// has never seen (a cancelled local create); synced records must be
	// tombstoned instead.
	Remove(ctx context.Context, entityType, syncID string) error
}

// ChangeQueueRepository persists the pending change queue. Every mutation is
// durable before the call returns.
type ChangeQueueRepository interface {
	// Append adds a change in creation order and returns its queue row ID.
	Append(ctx context.Context, change models.PendingChange) (int64, error)

	// FindPending returns the queue row for (entityType, syncID) with
	// status pending, if any. ErrChangeNotFound otherwise.
	FindPending(ctx context.Context, entityType, syncID string) (models.PendingChange, error)

	// HasActive reports whether a pending or in-flight queue row exists for
	// (entityType, syncID). The coordinator checks this before overwriting
	// a cached entity with a server change; conflict and failed rows carry
	// their own payload and do not block the cache.
	HasActive(ctx context.Context, entityType, syncID string) (bool, error)

	// ReplacePending coalesces a later local edit into an existing pending
	// row: operation and payload are replaced, the local timestamp is
	// refreshed, base timestamp and creation order are kept.
	ReplacePending(ctx context.Context, id int64, operation string, payload json.RawMessage, localTS time.Time) error

	// ListForSync returns the changes to submit — status pending or
	// in_flight (rows stranded in flight by a crash are resubmitted) — in
	// creation (FIFO) order. entityType "" selects all types.
	ListForSync(ctx context.Context, entityType string) ([]models.PendingChange, error)

	// ListByStatus returns all rows with the given status in creation order.
	ListByStatus(ctx context.Context, status string) ([]models.PendingChange, error)

	// GetByID returns one queue row. ErrChangeNotFound when absent.
	GetByID(ctx context.Context, id int64) (models.PendingChange, error)

	// SetStatus transitions the given rows to status.
	SetStatus(ctx context.Context, ids []int64, status string) error

	// DeleteByIDs removes rows from the queue. Used when the server
	// acknowledges a change as applied and when a pending create is
	// cancelled by a local delete.
	DeleteByIDs(ctx context.Context, ids ...int64) error

	// MarkConflict transitions a row to conflict status and stores the
	// server snapshot alongside it.
	MarkConflict(ctx context.Context, id int64, snapshot models.EntityRecord, detectedAt time.Time) error

	// GetConflicts returns all unresolved conflicts in detection order.
	GetConflicts(ctx context.Context) ([]models.Conflict, error)

	// CountPending returns the number of rows awaiting submission
	// (pending + in_flight). This feeds the user-visible counter and the
	// trigger policy.
	CountPending(ctx context.Context) (int, error)
}

// SyncMetaRepository persists the per-installation sync state: the device
// identity, the cursor and the last error. All values survive restarts.
type SyncMetaRepository interface {
	// DeviceID returns the persisted device identity, generating and
	// persisting it on first call.
	DeviceID(ctx context.Context) (string, error)

	// Cursor returns the last committed sync cursor, nil before the first
	// completed cycle.
	Cursor(ctx context.Context) (*time.Time, error)

	// SetCursor commits a new cursor value. Only the coordinator calls
	// this, and only after server changes have been durably applied.
	SetCursor(ctx context.Context, t time.Time) error

	// ResetCursor clears the cursor (device re-registration).
	ResetCursor(ctx context.Context) error

	// LastSyncAt returns the wall-clock time of the last successful cycle.
	LastSyncAt(ctx context.Context) (*time.Time, error)
	SetLastSyncAt(ctx context.Context, t time.Time) error

	// SyncError returns the recorded transport failure, empty when the last
	// cycle succeeded.
	SyncError(ctx context.Context) (string, *time.Time, error)
	SetSyncError(ctx context.Context, message string, at time.Time) error
	ClearSyncError(ctx context.Context) error
}

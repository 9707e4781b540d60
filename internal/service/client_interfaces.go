package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/vitalog/vitalog/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ChangeTracker records local mutations into the durable pending change
// queue and keeps the local entity cache in step with them. Local CRUD for
// every entity type funnels through Record so nothing escapes the queue.
type ChangeTracker interface {
	// Record appends a change, coalescing with an earlier pending change
	// for the same record: a later edit replaces the pending payload, and a
	// delete after a pending create cancels both (the record never existed
	// on the server). Durable before return.
	Record(ctx context.Context, entityType, syncID, operation string, payload json.RawMessage) error

	// ListPending returns unsubmitted changes in creation (FIFO) order,
	// optionally filtered by entity type ("" = all).
	ListPending(ctx context.Context, entityType string) ([]models.PendingChange, error)

	// MarkSynced removes acknowledged changes from the queue.
	MarkSynced(ctx context.Context, ids []int64) error

	// MarkFailed parks rejected changes; they are not retried automatically.
	MarkFailed(ctx context.Context, ids []int64) error

	// MarkConflict parks a change together with the winning server snapshot
	// until a human or policy resolves it.
	MarkConflict(ctx context.Context, id int64, snapshot models.EntityRecord) error

	// PendingCount is the user-visible number of changes awaiting
	// submission.
	PendingCount(ctx context.Context) (int, error)
}

// SyncStatus is a point-in-time snapshot of the engine's externally visible
// state, served to the UI layer.
type SyncStatus struct {
	State        string     `json:"state"`
	Cursor       *time.Time `json:"cursor,omitempty"`
	LastSyncAt   *time.Time `json:"last_sync_at,omitempty"`
	SyncError    string     `json:"sync_error,omitempty"`
	SyncErrorAt  *time.Time `json:"sync_error_at,omitempty"`
	PendingCount int        `json:"pending_count"`
	Conflicts    int        `json:"conflicts"`
}

// SyncCoordinator drives full sync cycles against the server. It owns the
// cursor, the single-flight guard and the post-failure cooldown; everything
// else only files triggers.
type SyncCoordinator interface {
	// Sync runs one gather→transmit→apply→commit cycle. Automatic triggers
	// pass force=false and are refused while a cycle is in flight or the
	// cooldown window is open; a manual trigger passes force=true and
	// bypasses the cooldown but still respects the single-flight guard.
	Sync(ctx context.Context, force bool) error

	// Status reports the engine state for display.
	Status(ctx context.Context) (SyncStatus, error)

	// ResetCursor clears the sync cursor (device re-registration). The next
	// cycle pulls the server's full record set again; idempotent upserts
	// make the replay safe.
	ResetCursor(ctx context.Context) error
}

// ConflictResolver exposes parked conflicts and applies the user's decision.
type ConflictResolver interface {
	ListConflicts(ctx context.Context) ([]models.Conflict, error)

	// Resolve terminates a conflict: models.ResolveUseServer overwrites the
	// local record with the server snapshot and discards the change;
	// models.ResolveUseLocal re-enqueues the local payload against the
	// server's current revision. A second conflict on retry is possible and
	// is handled the same way.
	Resolve(ctx context.Context, conflictID int64, choice string) error
}

// ClientSyncJob is the background trigger policy: it reacts to connectivity
// transitions and re-evaluates the pending change count on a low-frequency
// timer. Triggers are advisory; the coordinator enforces single-flight and
// cooldown.
type ClientSyncJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

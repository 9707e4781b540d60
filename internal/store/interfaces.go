package store

import (
	"context"
	"time"

	"github.com/vitalog/vitalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordRepository is the server's authoritative store of entity records.
// Rows are keyed by (user_id, entity_type, sync_id); deletions are
// tombstones so they can propagate to every device.
type RecordRepository interface {
	// Get returns one record, tombstoned or not. ErrRecordNotFound when no
	// row exists.
	Get(ctx context.Context, userID int64, entityType, syncID string) (models.EntityRecord, error)

	// Upsert writes a record with its server-assigned UpdatedAt. Inserting
	// and overwriting go through the same statement so retried submissions
	// stay idempotent.
	Upsert(ctx context.Context, userID int64, record models.EntityRecord) error

	// ChangedSince returns every record (tombstones included) whose
	// UpdatedAt is strictly after since, ordered by UpdatedAt. A nil since
	// returns the user's full record set — a device's first sync.
	ChangedSince(ctx context.Context, userID int64, since *time.Time) ([]models.EntityRecord, error)
}

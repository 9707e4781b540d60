package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/utils"
)

const (
	metaDeviceID    = "device_id"
	metaCursor      = "cursor"
	metaLastSyncAt  = "last_sync_at"
	metaSyncError   = "sync_error"
	metaSyncErrorAt = "sync_error_at"
)

type syncMetaRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSyncMetaRepository constructs the SQLite-backed key/value store for
// per-installation sync state.
func NewSyncMetaRepository(db *DB, log *logger.Logger) SyncMetaRepository {
	return &syncMetaRepository{db: db, logger: log}
}

func (r *syncMetaRepository) DeviceID(ctx context.Context) (string, error) {
	id, err := r.get(ctx, metaDeviceID)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}

	id = utils.NewDeviceID()
	if err = r.set(ctx, metaDeviceID, id); err != nil {
		return "", err
	}
	r.logger.Info().Str("device_id", id).Msg("generated new device identity")

	return id, nil
}

func (r *syncMetaRepository) Cursor(ctx context.Context) (*time.Time, error) {
	return r.getTime(ctx, metaCursor)
}

func (r *syncMetaRepository) SetCursor(ctx context.Context, t time.Time) error {
	return r.set(ctx, metaCursor, formatTime(t))
}

func (r *syncMetaRepository) ResetCursor(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteMetaValue, metaCursor); err != nil {
		return fmt.Errorf("%w: reset cursor: %w", ErrLocalStorage, err)
	}

	return nil
}

func (r *syncMetaRepository) LastSyncAt(ctx context.Context) (*time.Time, error) {
	return r.getTime(ctx, metaLastSyncAt)
}

func (r *syncMetaRepository) SetLastSyncAt(ctx context.Context, t time.Time) error {
	return r.set(ctx, metaLastSyncAt, formatTime(t))
}

func (r *syncMetaRepository) SyncError(ctx context.Context) (string, *time.Time, error) {
	message, err := r.get(ctx, metaSyncError)
	if err != nil {
		return "", nil, err
	}

	at, err := r.getTime(ctx, metaSyncErrorAt)
	if err != nil {
		return "", nil, err
	}

	return message, at, nil
}

func (r *syncMetaRepository) SetSyncError(ctx context.Context, message string, at time.Time) error {
	if err := r.set(ctx, metaSyncError, message); err != nil {
		return err
	}

	return r.set(ctx, metaSyncErrorAt, formatTime(at))
}

func (r *syncMetaRepository) ClearSyncError(ctx context.Context) error {
	for _, key := range []string{metaSyncError, metaSyncErrorAt} {
		if _, err := r.db.ExecContext(ctx, deleteMetaValue, key); err != nil {
			return fmt.Errorf("%w: clear sync error: %w", ErrLocalStorage, err)
		}
	}

	return nil
}

func (r *syncMetaRepository) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, selectMetaValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: get meta %s: %w", ErrLocalStorage, key, err)
	}

	return value, nil
}

func (r *syncMetaRepository) getTime(ctx context.Context, key string) (*time.Time, error) {
	value, err := r.get(ctx, key)
	if err != nil || value == "" {
		return nil, err
	}

	t, err := parseTimePtr(value)
	if err != nil {
		return nil, fmt.Errorf("%w: parse meta %s: %w", ErrLocalStorage, key, err)
	}

	return t, nil
}

func (r *syncMetaRepository) set(ctx context.Context, key, value string) error {
	if _, err := r.db.ExecContext(ctx, upsertMetaValue, key, value); err != nil {
		return fmt.Errorf("%w: set meta %s: %w", ErrLocalStorage, key, err)
	}

	return nil
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/models"
)

type localEntityRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalEntityRepository constructs the SQLite-backed entity cache.
func NewLocalEntityRepository(db *DB, log *logger.Logger) LocalEntityRepository {
	return &localEntityRepository{db: db, logger: log}
}

func (r *localEntityRepository) Upsert(ctx context.Context, records ...models.EntityRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLocalStorage, errors.Join(ErrBeginningTransaction, err))
	}
	defer tx.Rollback()

	for _, rec := range records {
		_, err = tx.ExecContext(ctx, upsertEntity,
			rec.EntityType, rec.SyncID, string(rec.Payload), formatTime(rec.UpdatedAt), rec.Deleted)
		if err != nil {
			return fmt.Errorf("%w: upsert entity %s/%s: %w", ErrLocalStorage, rec.EntityType, rec.SyncID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrLocalStorage, errors.Join(ErrCommitingTransaction, err))
	}

	return nil
}

func (r *localEntityRepository) Get(ctx context.Context, entityType, syncID string) (models.EntityRecord, error) {
	row := r.db.QueryRowContext(ctx, selectEntity, entityType, syncID)

	rec, err := scanEntity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.EntityRecord{}, ErrEntityNotFound
	}
	if err != nil {
		return models.EntityRecord{}, fmt.Errorf("%w: get entity %s/%s: %w", ErrLocalStorage, entityType, syncID, err)
	}

	return rec, nil
}

func (r *localEntityRepository) List(ctx context.Context, entityType string, includeDeleted bool) ([]models.EntityRecord, error) {
	query := selectEntities
	if !includeDeleted {
		query += ` AND deleted = 0`
	}
	query += ` ORDER BY sync_id;`

	rows, err := r.db.QueryContext(ctx, query, entityType)
	if err != nil {
		return nil, fmt.Errorf("%w: list entities %s: %w", ErrLocalStorage, entityType, err)
	}
	defer rows.Close()

	var records []models.EntityRecord
	for rows.Next() {
		rec, err := scanEntity(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan entity row: %w", ErrLocalStorage, err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate entity rows: %w", ErrLocalStorage, err)
	}

	return records, nil
}

func (r *localEntityRepository) SavePayload(ctx context.Context, entityType, syncID string, payload json.RawMessage) error {
	_, err := r.db.ExecContext(ctx, saveEntityPayload, entityType, syncID, string(payload))
	if err != nil {
		return fmt.Errorf("%w: save entity payload %s/%s: %w", ErrLocalStorage, entityType, syncID, err)
	}

	return nil
}

func (r *localEntityRepository) MarkDeleted(ctx context.Context, entityType, syncID string) error {
	res, err := r.db.ExecContext(ctx, markEntityDeleted, entityType, syncID)
	if err != nil {
		return fmt.Errorf("%w: mark entity deleted %s/%s: %w", ErrLocalStorage, entityType, syncID, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrEntityNotFound
	}

	return nil
}

func (r *localEntityRepository) Remove(ctx context.Context, entityType, syncID string) error {
	_, err := r.db.ExecContext(ctx, removeEntity, entityType, syncID)
	if err != nil {
		return fmt.Errorf("%w: remove entity %s/%s: %w", ErrLocalStorage, entityType, syncID, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntity(row rowScanner) (models.EntityRecord, error) {
	var rec models.EntityRecord
	var payload sql.NullString
	var updatedAt string

	if err := row.Scan(&rec.EntityType, &rec.SyncID, &payload, &updatedAt, &rec.Deleted); err != nil {
		return models.EntityRecord{}, err
	}

	if payload.Valid {
		rec.Payload = json.RawMessage(payload.String)
	}

	ts, err := parseTime(updatedAt)
	if err != nil {
		return models.EntityRecord{}, fmt.Errorf("parse updated_at: %w", err)
	}
	rec.UpdatedAt = ts

	return rec, nil
}

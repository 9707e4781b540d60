package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/models"
)

type recordRepository struct {
	db      *DB
	logger  *logger.Logger
	builder sq.StatementBuilderType
}

// NewRecordRepository constructs the PostgreSQL-backed record store.
func NewRecordRepository(db *DB, log *logger.Logger) RecordRepository {
	return &recordRepository{
		db:      db,
		logger:  log,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *recordRepository) Get(ctx context.Context, userID int64, entityType, syncID string) (models.EntityRecord, error) {
	query, args, err := r.builder.
		Select("entity_type", "sync_id", "payload", "updated_at", "deleted").
		From("records").
		Where(sq.Eq{"user_id": userID, "entity_type": entityType, "sync_id": syncID}).
		ToSql()
	if err != nil {
		return models.EntityRecord{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	var record models.EntityRecord
	var payload []byte
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&record.EntityType, &record.SyncID, &payload, &record.UpdatedAt, &record.Deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return models.EntityRecord{}, ErrRecordNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*recordRepository.Get").Msg("error getting record")
		return models.EntityRecord{}, errors.Join(ErrExecutingQuery, err)
	}

	record.Payload = json.RawMessage(payload)
	record.UpdatedAt = record.UpdatedAt.UTC()

	return record, nil
}

func (r *recordRepository) Upsert(ctx context.Context, userID int64, record models.EntityRecord) error {
	query, args, err := r.builder.
		Insert("records").
		Columns("user_id", "entity_type", "sync_id", "payload", "updated_at", "deleted").
		Values(userID, record.EntityType, record.SyncID, string(record.Payload), record.UpdatedAt.UTC(), record.Deleted).
		Suffix(`ON CONFLICT (user_id, entity_type, sync_id)
			DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at, deleted = EXCLUDED.deleted`).
		ToSql()
	if err != nil {
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "*recordRepository.Upsert").
			Str("sync_id", record.SyncID).
			Msg("error upserting record")
		return errors.Join(ErrExecutingQuery, err)
	}

	return nil
}

func (r *recordRepository) ChangedSince(ctx context.Context, userID int64, since *time.Time) ([]models.EntityRecord, error) {
	q := r.builder.
		Select("entity_type", "sync_id", "payload", "updated_at", "deleted").
		From("records").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at", "sync_id")

	if since != nil {
		q = q.Where(sq.Gt{"updated_at": since.UTC()})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*recordRepository.ChangedSince").Msg("error querying changed records")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.EntityRecord
	for rows.Next() {
		var record models.EntityRecord
		var payload []byte
		if err = rows.Scan(&record.EntityType, &record.SyncID, &payload, &record.UpdatedAt, &record.Deleted); err != nil {
			return nil, fmt.Errorf("scan changed record: %w", err)
		}
		record.Payload = json.RawMessage(payload)
		record.UpdatedAt = record.UpdatedAt.UTC()
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Join(ErrExecutingQuery, err)
	}

	return records, nil
}

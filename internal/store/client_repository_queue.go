package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/models"
)

type changeQueueRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewChangeQueueRepository constructs the SQLite-backed pending change
// queue. Every write goes straight to the database file, so a change
// recorded here survives a process crash.
func NewChangeQueueRepository(db *DB, log *logger.Logger) ChangeQueueRepository {
	return &changeQueueRepository{db: db, logger: log}
}

func (r *changeQueueRepository) Append(ctx context.Context, change models.PendingChange) (int64, error) {
	status := change.Status
	if status == "" {
		status = models.StatusPending
	}

	var baseTS any
	if change.BaseTimestamp != nil {
		baseTS = formatTime(*change.BaseTimestamp)
	}

	res, err := r.db.ExecContext(ctx, insertPendingChange,
		change.EntityType, change.SyncID, change.Operation,
		string(change.Payload), baseTS, formatTime(change.LocalTimestamp), status)
	if err != nil {
		return 0, fmt.Errorf("%w: append change %s/%s: %w", ErrLocalStorage, change.EntityType, change.SyncID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: last insert id: %w", ErrLocalStorage, err)
	}

	return id, nil
}

func (r *changeQueueRepository) FindPending(ctx context.Context, entityType, syncID string) (models.PendingChange, error) {
	query := selectChangeColumns + ` WHERE entity_type = ? AND sync_id = ? AND status = 'pending' ORDER BY id LIMIT 1;`

	row := r.db.QueryRowContext(ctx, query, entityType, syncID)
	change, err := scanChange(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PendingChange{}, ErrChangeNotFound
	}
	if err != nil {
		return models.PendingChange{}, fmt.Errorf("%w: find pending %s/%s: %w", ErrLocalStorage, entityType, syncID, err)
	}

	return change, nil
}

func (r *changeQueueRepository) HasActive(ctx context.Context, entityType, syncID string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pending_changes WHERE entity_type = ? AND sync_id = ? AND status IN ('pending', 'in_flight');`,
		entityType, syncID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("%w: count changes %s/%s: %w", ErrLocalStorage, entityType, syncID, err)
	}

	return count > 0, nil
}

func (r *changeQueueRepository) ReplacePending(ctx context.Context, id int64, operation string, payload json.RawMessage, localTS time.Time) error {
	res, err := r.db.ExecContext(ctx, replacePendingChange,
		operation, string(payload), formatTime(localTS), id)
	if err != nil {
		return fmt.Errorf("%w: replace pending change %d: %w", ErrLocalStorage, id, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrChangeNotFound
	}

	return nil
}

func (r *changeQueueRepository) ListForSync(ctx context.Context, entityType string) ([]models.PendingChange, error) {
	query := selectChangeColumns + ` WHERE status IN ('pending', 'in_flight')`
	args := []any{}
	if entityType != "" {
		query += ` AND entity_type = ?`
		args = append(args, entityType)
	}
	query += ` ORDER BY id;`

	return r.queryChanges(ctx, query, args...)
}

func (r *changeQueueRepository) ListByStatus(ctx context.Context, status string) ([]models.PendingChange, error) {
	query := selectChangeColumns + ` WHERE status = ? ORDER BY id;`

	return r.queryChanges(ctx, query, status)
}

func (r *changeQueueRepository) GetByID(ctx context.Context, id int64) (models.PendingChange, error) {
	query := selectChangeColumns + ` WHERE id = ?;`

	row := r.db.QueryRowContext(ctx, query, id)
	change, err := scanChange(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PendingChange{}, ErrChangeNotFound
	}
	if err != nil {
		return models.PendingChange{}, fmt.Errorf("%w: get change %d: %w", ErrLocalStorage, id, err)
	}

	return change, nil
}

func (r *changeQueueRepository) SetStatus(ctx context.Context, ids []int64, status string) error {
	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE pending_changes SET status = ? WHERE id IN (%s);`, placeholders(len(ids)))
	args := make([]any, 0, len(ids)+1)
	args = append(args, status)
	for _, id := range ids {
		args = append(args, id)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: set status %s: %w", ErrLocalStorage, status, err)
	}

	return nil
}

func (r *changeQueueRepository) DeleteByIDs(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf(`DELETE FROM pending_changes WHERE id IN (%s);`, placeholders(len(ids)))
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: delete changes: %w", ErrLocalStorage, err)
	}

	return nil
}

func (r *changeQueueRepository) MarkConflict(ctx context.Context, id int64, snapshot models.EntityRecord, detectedAt time.Time) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode server snapshot: %w", err)
	}

	res, err := r.db.ExecContext(ctx, markChangeConflict, string(payload), formatTime(detectedAt), id)
	if err != nil {
		return fmt.Errorf("%w: mark conflict %d: %w", ErrLocalStorage, id, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrChangeNotFound
	}

	return nil
}

func (r *changeQueueRepository) GetConflicts(ctx context.Context) ([]models.Conflict, error) {
	rows, err := r.db.QueryContext(ctx, selectConflicts)
	if err != nil {
		return nil, fmt.Errorf("%w: list conflicts: %w", ErrLocalStorage, err)
	}
	defer rows.Close()

	var conflicts []models.Conflict
	for rows.Next() {
		var change models.PendingChange
		var payload, baseTS, snapshot, detectedAt sql.NullString
		var localTS string

		err = rows.Scan(&change.ID, &change.EntityType, &change.SyncID, &change.Operation,
			&payload, &baseTS, &localTS, &change.Status, &snapshot, &detectedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: scan conflict row: %w", ErrLocalStorage, err)
		}

		if err = fillChangeTimes(&change, payload, baseTS, localTS); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLocalStorage, err)
		}

		conflict := models.Conflict{ID: change.ID, Change: change}
		if snapshot.Valid && snapshot.String != "" {
			if err = json.Unmarshal([]byte(snapshot.String), &conflict.ServerSnapshot); err != nil {
				return nil, fmt.Errorf("%w: decode server snapshot: %w", ErrLocalStorage, err)
			}
		}
		if detectedAt.Valid {
			ts, err := parseTime(detectedAt.String)
			if err != nil {
				return nil, fmt.Errorf("%w: parse detected_at: %w", ErrLocalStorage, err)
			}
			conflict.DetectedAt = ts
		}

		conflicts = append(conflicts, conflict)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate conflict rows: %w", ErrLocalStorage, err)
	}

	return conflicts, nil
}

func (r *changeQueueRepository) CountPending(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, countPendingChanges).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: count pending changes: %w", ErrLocalStorage, err)
	}

	return count, nil
}

func (r *changeQueueRepository) queryChanges(ctx context.Context, query string, args ...any) ([]models.PendingChange, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list changes: %w", ErrLocalStorage, err)
	}
	defer rows.Close()

	var changes []models.PendingChange
	for rows.Next() {
		change, err := scanChange(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan change row: %w", ErrLocalStorage, err)
		}
		changes = append(changes, change)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate change rows: %w", ErrLocalStorage, err)
	}

	return changes, nil
}

func scanChange(row rowScanner) (models.PendingChange, error) {
	var change models.PendingChange
	var payload, baseTS sql.NullString
	var localTS string

	err := row.Scan(&change.ID, &change.EntityType, &change.SyncID, &change.Operation,
		&payload, &baseTS, &localTS, &change.Status)
	if err != nil {
		return models.PendingChange{}, err
	}

	if err = fillChangeTimes(&change, payload, baseTS, localTS); err != nil {
		return models.PendingChange{}, err
	}

	return change, nil
}

func fillChangeTimes(change *models.PendingChange, payload, baseTS sql.NullString, localTS string) error {
	if payload.Valid && payload.String != "" {
		change.Payload = json.RawMessage(payload.String)
	}

	if baseTS.Valid {
		base, err := parseTimePtr(baseTS.String)
		if err != nil {
			return fmt.Errorf("parse base_ts: %w", err)
		}
		change.BaseTimestamp = base
	}

	local, err := parseTime(localTS)
	if err != nil {
		return fmt.Errorf("parse local_ts: %w", err)
	}
	change.LocalTimestamp = local

	return nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

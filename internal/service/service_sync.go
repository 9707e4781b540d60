package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/store"
	"github.com/vitalog/vitalog/models"
)

type syncService struct {
	records store.RecordRepository
	logger  *logger.Logger
	clock   func() time.Time
}

// NewSyncService constructs the server-side sync processor. The clock is a
// field so tests can pin revision timestamps.
func NewSyncService(records store.RecordRepository, log *logger.Logger) SyncService {
	return &syncService{
		records: records,
		logger:  log,
		clock:   time.Now,
	}
}

// ProcessSync implements SyncService.
//
// Every submitted change lands in exactly one verdict bucket:
//
//   - applied (created/updated/deleted): the record's current revision is
//     not newer than the base the device edited from, so the change is
//     written with a fresh server-assigned UpdatedAt;
//   - conflict: the record changed on the server after the device's base
//     revision — the change is NOT applied, and the server's current copy
//     travels back so the device can offer a resolution;
//   - rejected: the item is malformed (empty sync_id, unknown operation,
//     missing payload) and will not succeed on retry.
//
// Afterwards the user's records changed since the request cursor are
// collected, tombstones included. Just-applied records fall in that window
// too; the echo is how the device learns their new revisions.
func (s *syncService) ProcessSync(ctx context.Context, userID int64, req models.SyncRequest) (models.SyncResponse, error) {
	resp := models.SyncResponse{
		ServerChanges:    make(map[string][]models.EntityRecord),
		ProcessedChanges: make(map[string]models.ProcessedSet),
	}

	for entityType, items := range req.Changes {
		set := models.ProcessedSet{
			Created:   []string{},
			Updated:   []string{},
			Deleted:   []string{},
			Conflicts: []models.ConflictItem{},
			Rejected:  []string{},
		}

		for _, item := range items {
			verdict, snapshot, err := s.processChange(ctx, userID, entityType, item)
			if err != nil {
				return models.SyncResponse{}, fmt.Errorf("process change %s/%s: %w", entityType, item.SyncID, err)
			}

			switch verdict {
			case verdictCreated:
				set.Created = append(set.Created, item.SyncID)
			case verdictUpdated:
				set.Updated = append(set.Updated, item.SyncID)
			case verdictDeleted:
				set.Deleted = append(set.Deleted, item.SyncID)
			case verdictConflict:
				set.Conflicts = append(set.Conflicts, models.ConflictItem{
					SyncID:         item.SyncID,
					ServerSnapshot: snapshot,
				})
			case verdictRejected:
				set.Rejected = append(set.Rejected, item.SyncID)
			}
		}

		resp.ProcessedChanges[entityType] = set
	}

	changed, err := s.records.ChangedSince(ctx, userID, req.LastSyncTimestamp)
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("collect server changes: %w", err)
	}

	syncTimestamp := s.clock().UTC()
	for _, record := range changed {
		resp.ServerChanges[record.EntityType] = append(resp.ServerChanges[record.EntityType], record)
		if record.UpdatedAt.After(syncTimestamp) {
			syncTimestamp = record.UpdatedAt
		}
	}
	resp.SyncTimestamp = syncTimestamp

	return resp, nil
}

type changeVerdict int

const (
	verdictCreated changeVerdict = iota
	verdictUpdated
	verdictDeleted
	verdictConflict
	verdictRejected
)

func (s *syncService) processChange(ctx context.Context, userID int64, entityType string, item models.ChangeItem) (changeVerdict, models.EntityRecord, error) {
	if rejectChange(item) {
		s.logger.Warn().
			Str("entity_type", entityType).
			Str("sync_id", item.SyncID).
			Str("operation", item.Operation).
			Msg("malformed change rejected")
		return verdictRejected, models.EntityRecord{}, nil
	}

	existing, err := s.records.Get(ctx, userID, entityType, item.SyncID)
	exists := true
	if errors.Is(err, store.ErrRecordNotFound) {
		exists = false
		err = nil
	}
	if err != nil {
		return 0, models.EntityRecord{}, err
	}

	if exists && s.conflicts(existing, item) {
		return verdictConflict, existing, nil
	}

	record := models.EntityRecord{
		EntityType: entityType,
		SyncID:     item.SyncID,
		Payload:    item.Payload,
		UpdatedAt:  s.nextRevision(existing),
		Deleted:    item.Operation == models.OperationDelete,
	}
	if record.Deleted && record.Payload == nil && existing.Payload != nil {
		// A tombstone keeps the last known payload for the audit trail.
		record.Payload = existing.Payload
	}

	if err = s.records.Upsert(ctx, userID, record); err != nil {
		return 0, models.EntityRecord{}, err
	}

	switch item.Operation {
	case models.OperationDelete:
		return verdictDeleted, models.EntityRecord{}, nil
	case models.OperationCreate:
		if exists {
			// A resubmitted create after a device crash: the record is
			// already there, the retry is acknowledged as an update.
			return verdictUpdated, models.EntityRecord{}, nil
		}
		return verdictCreated, models.EntityRecord{}, nil
	default:
		return verdictUpdated, models.EntityRecord{}, nil
	}
}

// conflicts applies the concurrency rule: a submitted change loses iff the
// record's current revision is strictly newer than the base revision the
// device edited from. Equal or older means no concurrent edit happened.
func (s *syncService) conflicts(existing models.EntityRecord, item models.ChangeItem) bool {
	base := time.Time{}
	if item.BaseTimestamp != nil {
		base = *item.BaseTimestamp
	}

	if item.Operation == models.OperationCreate && base.IsZero() {
		// A create colliding with an existing record is either this
		// device's own retry (identical payload — no conflict) or two
		// devices racing to create the same sync_id.
		return !bytes.Equal(compactJSON(item.Payload), compactJSON(existing.Payload))
	}

	return existing.UpdatedAt.After(base)
}

// nextRevision assigns the record's new server revision, keeping UpdatedAt
// strictly monotonic per record even when the wall clock stands still.
func (s *syncService) nextRevision(existing models.EntityRecord) time.Time {
	now := s.clock().UTC()
	if !now.After(existing.UpdatedAt) {
		return existing.UpdatedAt.Add(time.Millisecond)
	}
	return now
}

func rejectChange(item models.ChangeItem) bool {
	if item.SyncID == "" || !models.ValidOperation(item.Operation) {
		return true
	}
	if item.Operation != models.OperationDelete && len(item.Payload) == 0 {
		return true
	}
	if len(item.Payload) > 0 && !json.Valid(item.Payload) {
		return true
	}

	return false
}

func compactJSON(raw json.RawMessage) []byte {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return raw
	}
	return buf.Bytes()
}

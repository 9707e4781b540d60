package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vitalog/vitalog/internal/adapter"
	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/mock"
	"github.com/vitalog/vitalog/internal/store"
	"github.com/vitalog/vitalog/models"
)

type coordinatorMocks struct {
	queue    *mock.MockChangeQueueRepository
	entities *mock.MockLocalEntityRepository
	meta     *mock.MockSyncMetaRepository
	adapter  *mock.MockServerAdapter
}

func newTestCoordinator(t *testing.T, now time.Time) (*clientSyncCoordinator, coordinatorMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := coordinatorMocks{
		queue:    mock.NewMockChangeQueueRepository(ctrl),
		entities: mock.NewMockLocalEntityRepository(ctrl),
		meta:     mock.NewMockSyncMetaRepository(ctrl),
		adapter:  mock.NewMockServerAdapter(ctrl),
	}

	storages := &store.ClientStorages{
		Entities: m.entities,
		Queue:    m.queue,
		Meta:     m.meta,
	}

	c := NewSyncCoordinator(storages, m.adapter, 5*time.Minute, logger.Nop()).(*clientSyncCoordinator)
	c.clock = func() time.Time { return now }

	return c, m
}

func TestCoordinator_SuccessfulCycle(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	c, m := newTestCoordinator(t, now)
	ctx := context.Background()

	base := now.Add(-time.Hour)
	change := models.PendingChange{
		ID:            1,
		EntityType:    models.EntityGoals,
		SyncID:        "goal-1",
		Operation:     models.OperationUpdate,
		Payload:       json.RawMessage(`{"calories":1800}`),
		BaseTimestamp: &base,
		Status:        models.StatusPending,
	}

	serverRevision := now.Add(time.Second)
	echoed := models.EntityRecord{
		SyncID:    "goal-1",
		Payload:   json.RawMessage(`{"calories":1800}`),
		UpdatedAt: serverRevision,
	}

	m.meta.EXPECT().DeviceID(ctx).Return("device-1", nil)
	m.meta.EXPECT().Cursor(ctx).Return(nil, nil).Times(2) // gather + commit
	m.queue.EXPECT().ListForSync(ctx, "").Return([]models.PendingChange{change}, nil)
	m.queue.EXPECT().SetStatus(ctx, []int64{1}, models.StatusInFlight).Return(nil)

	m.adapter.EXPECT().Sync(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.SyncRequest) (models.SyncResponse, error) {
			assert.Equal(t, "device-1", req.DeviceID)
			assert.Nil(t, req.LastSyncTimestamp)
			require.Len(t, req.Changes[models.EntityGoals], 1)
			item := req.Changes[models.EntityGoals][0]
			assert.Equal(t, "goal-1", item.SyncID)
			require.NotNil(t, item.BaseTimestamp)
			assert.True(t, item.BaseTimestamp.Equal(base))

			return models.SyncResponse{
				SyncTimestamp: serverRevision,
				ServerChanges: map[string][]models.EntityRecord{
					models.EntityGoals: {echoed},
				},
				ProcessedChanges: map[string]models.ProcessedSet{
					models.EntityGoals: {Updated: []string{"goal-1"}},
				},
			}, nil
		})

	// acknowledged rows leave the queue, then the echoed copy lands in the cache
	m.queue.EXPECT().DeleteByIDs(ctx, int64(1)).Return(nil)
	m.queue.EXPECT().SetStatus(ctx, gomock.Nil(), models.StatusFailed).Return(nil)
	m.queue.EXPECT().HasActive(ctx, models.EntityGoals, "goal-1").Return(false, nil)
	m.entities.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, records ...models.EntityRecord) error {
			require.Len(t, records, 1)
			assert.Equal(t, models.EntityGoals, records[0].EntityType)
			assert.True(t, records[0].UpdatedAt.Equal(serverRevision))
			return nil
		})

	m.meta.EXPECT().SetCursor(ctx, serverRevision).Return(nil)
	m.meta.EXPECT().SetLastSyncAt(ctx, now).Return(nil)
	m.meta.EXPECT().ClearSyncError(ctx).Return(nil)

	require.NoError(t, c.Sync(ctx, false))
}

func TestCoordinator_TransportFailurePreservesQueue(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	c, m := newTestCoordinator(t, now)
	ctx := context.Background()

	change := models.PendingChange{
		ID: 1, EntityType: models.EntityGoals, SyncID: "goal-1",
		Operation: models.OperationCreate, Payload: json.RawMessage(`{}`),
		Status: models.StatusPending,
	}

	m.meta.EXPECT().DeviceID(ctx).Return("device-1", nil)
	m.meta.EXPECT().Cursor(ctx).Return(nil, nil)
	m.queue.EXPECT().ListForSync(ctx, "").Return([]models.PendingChange{change}, nil)
	m.queue.EXPECT().SetStatus(ctx, []int64{1}, models.StatusInFlight).Return(nil)
	m.adapter.EXPECT().Sync(ctx, gomock.Any()).Return(models.SyncResponse{}, adapter.ErrTransport)

	// the queue goes back exactly as it was and the failure is recorded
	m.queue.EXPECT().SetStatus(ctx, []int64{1}, models.StatusPending).Return(nil)
	m.meta.EXPECT().SetSyncError(ctx, gomock.Any(), now).Return(nil)

	err := c.Sync(ctx, false)
	require.ErrorIs(t, err, adapter.ErrTransport)

	// automatic triggers are refused during the cooldown window
	err = c.Sync(ctx, false)
	assert.ErrorIs(t, err, ErrCooldownActive)

	c.mu.Lock()
	state := c.state
	c.mu.Unlock()
	assert.Equal(t, StateCooldown, state)
}

func TestCoordinator_ForceBypassesCooldown(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	c, m := newTestCoordinator(t, now)
	ctx := context.Background()

	c.mu.Lock()
	c.cooldownUntil = now.Add(time.Minute)
	c.mu.Unlock()

	assert.ErrorIs(t, c.Sync(ctx, false), ErrCooldownActive)

	// an empty-queue cycle still pulls server changes
	m.meta.EXPECT().DeviceID(ctx).Return("device-1", nil)
	m.meta.EXPECT().Cursor(ctx).Return(nil, nil).Times(2)
	m.queue.EXPECT().ListForSync(ctx, "").Return(nil, nil)
	m.queue.EXPECT().SetStatus(ctx, gomock.Nil(), models.StatusInFlight).Return(nil)
	m.adapter.EXPECT().Sync(ctx, gomock.Any()).Return(models.SyncResponse{
		SyncTimestamp:    now,
		ServerChanges:    map[string][]models.EntityRecord{},
		ProcessedChanges: map[string]models.ProcessedSet{},
	}, nil)
	m.meta.EXPECT().SetCursor(ctx, now).Return(nil)
	m.meta.EXPECT().SetLastSyncAt(ctx, now).Return(nil)
	m.meta.EXPECT().ClearSyncError(ctx).Return(nil)

	require.NoError(t, c.Sync(ctx, true))
}

func TestCoordinator_SingleFlight(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	c, m := newTestCoordinator(t, now)
	ctx := context.Background()

	m.meta.EXPECT().DeviceID(ctx).Return("device-1", nil)
	m.meta.EXPECT().Cursor(ctx).Return(nil, nil).Times(2)
	m.queue.EXPECT().ListForSync(ctx, "").Return(nil, nil)
	m.queue.EXPECT().SetStatus(ctx, gomock.Nil(), models.StatusInFlight).Return(nil)
	m.adapter.EXPECT().Sync(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.SyncRequest) (models.SyncResponse, error) {
			// even a forced trigger must not overlap a running cycle
			assert.ErrorIs(t, c.Sync(ctx, true), ErrSyncInFlight)
			return models.SyncResponse{SyncTimestamp: now}, nil
		})
	m.meta.EXPECT().SetCursor(ctx, now).Return(nil)
	m.meta.EXPECT().SetLastSyncAt(ctx, now).Return(nil)
	m.meta.EXPECT().ClearSyncError(ctx).Return(nil)

	require.NoError(t, c.Sync(ctx, false))
}

func TestCoordinator_ConflictVerdictParksNewestRow(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	c, m := newTestCoordinator(t, now)
	ctx := context.Background()

	// two queue rows for one record: a row stranded in flight by a crash
	// plus the fresh edit made after it
	stranded := models.PendingChange{
		ID: 2, EntityType: models.EntityGoals, SyncID: "goal-1",
		Operation: models.OperationUpdate, Payload: json.RawMessage(`{"v":1}`),
		Status: models.StatusInFlight,
	}
	fresh := models.PendingChange{
		ID: 5, EntityType: models.EntityGoals, SyncID: "goal-1",
		Operation: models.OperationUpdate, Payload: json.RawMessage(`{"v":2}`),
		Status: models.StatusPending,
	}

	snapshot := models.EntityRecord{
		SyncID:    "goal-1",
		Payload:   json.RawMessage(`{"v":"server"}`),
		UpdatedAt: now.Add(-time.Minute),
	}

	m.meta.EXPECT().DeviceID(ctx).Return("device-1", nil)
	m.meta.EXPECT().Cursor(ctx).Return(nil, nil).Times(2)
	m.queue.EXPECT().ListForSync(ctx, "").Return([]models.PendingChange{stranded, fresh}, nil)
	m.queue.EXPECT().SetStatus(ctx, []int64{2, 5}, models.StatusInFlight).Return(nil)

	m.adapter.EXPECT().Sync(ctx, gomock.Any()).Return(models.SyncResponse{
		SyncTimestamp: now,
		ServerChanges: map[string][]models.EntityRecord{},
		ProcessedChanges: map[string]models.ProcessedSet{
			models.EntityGoals: {
				Conflicts: []models.ConflictItem{{SyncID: "goal-1", ServerSnapshot: snapshot}},
			},
		},
	}, nil)

	m.queue.EXPECT().DeleteByIDs(ctx).Return(nil) // nothing acknowledged
	m.queue.EXPECT().MarkConflict(ctx, int64(5), gomock.Any(), now).DoAndReturn(
		func(_ context.Context, _ int64, snap models.EntityRecord, _ time.Time) error {
			assert.Equal(t, models.EntityGoals, snap.EntityType)
			assert.JSONEq(t, `{"v":"server"}`, string(snap.Payload))
			return nil
		})
	m.queue.EXPECT().DeleteByIDs(ctx, int64(2)).Return(nil)
	m.queue.EXPECT().SetStatus(ctx, gomock.Nil(), models.StatusFailed).Return(nil)

	m.meta.EXPECT().SetCursor(ctx, now).Return(nil)
	m.meta.EXPECT().SetLastSyncAt(ctx, now).Return(nil)
	m.meta.EXPECT().ClearSyncError(ctx).Return(nil)

	require.NoError(t, c.Sync(ctx, false))
}

func TestCoordinator_MixedVerdictKeepsConflictRow(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	c, m := newTestCoordinator(t, now)
	ctx := context.Background()

	// A crash stranded the create in flight; the user edited the record
	// again before the next cycle. The resubmitted create is acknowledged
	// while the fresh edit's stale base conflicts, so one ProcessedSet
	// carries the same sync_id in Updated and in Conflicts.
	stranded := models.PendingChange{
		ID: 2, EntityType: models.EntityGoals, SyncID: "goal-1",
		Operation: models.OperationCreate, Payload: json.RawMessage(`{"v":1}`),
		Status: models.StatusInFlight,
	}
	fresh := models.PendingChange{
		ID: 5, EntityType: models.EntityGoals, SyncID: "goal-1",
		Operation: models.OperationUpdate, Payload: json.RawMessage(`{"v":2}`),
		Status: models.StatusPending,
	}

	snapshot := models.EntityRecord{
		SyncID:    "goal-1",
		Payload:   json.RawMessage(`{"v":1}`),
		UpdatedAt: now.Add(-time.Second),
	}

	m.meta.EXPECT().DeviceID(ctx).Return("device-1", nil)
	m.meta.EXPECT().Cursor(ctx).Return(nil, nil).Times(2)
	m.queue.EXPECT().ListForSync(ctx, "").Return([]models.PendingChange{stranded, fresh}, nil)
	m.queue.EXPECT().SetStatus(ctx, []int64{2, 5}, models.StatusInFlight).Return(nil)

	m.adapter.EXPECT().Sync(ctx, gomock.Any()).Return(models.SyncResponse{
		SyncTimestamp: now,
		ServerChanges: map[string][]models.EntityRecord{},
		ProcessedChanges: map[string]models.ProcessedSet{
			models.EntityGoals: {
				Updated:   []string{"goal-1"},
				Conflicts: []models.ConflictItem{{SyncID: "goal-1", ServerSnapshot: snapshot}},
			},
		},
	}, nil)

	// the acknowledgement must not take the rows the conflict verdict
	// targets: the fresh edit is parked, the stranded row is superseded
	m.queue.EXPECT().DeleteByIDs(ctx).Return(nil)
	m.queue.EXPECT().MarkConflict(ctx, int64(5), gomock.Any(), now).DoAndReturn(
		func(_ context.Context, _ int64, snap models.EntityRecord, _ time.Time) error {
			assert.Equal(t, models.EntityGoals, snap.EntityType)
			return nil
		})
	m.queue.EXPECT().DeleteByIDs(ctx, int64(2)).Return(nil)
	m.queue.EXPECT().SetStatus(ctx, gomock.Nil(), models.StatusFailed).Return(nil)

	m.meta.EXPECT().SetCursor(ctx, now).Return(nil)
	m.meta.EXPECT().SetLastSyncAt(ctx, now).Return(nil)
	m.meta.EXPECT().ClearSyncError(ctx).Return(nil)

	require.NoError(t, c.Sync(ctx, false))
}

func TestCoordinator_LocalFailureRecordsSyncError(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	c, m := newTestCoordinator(t, now)
	ctx := context.Background()

	incoming := models.EntityRecord{
		SyncID:    "goal-1",
		Payload:   json.RawMessage(`{"v":"server"}`),
		UpdatedAt: now,
	}

	m.meta.EXPECT().DeviceID(ctx).Return("device-1", nil)
	m.meta.EXPECT().Cursor(ctx).Return(nil, nil)
	m.queue.EXPECT().ListForSync(ctx, "").Return(nil, nil)
	m.queue.EXPECT().SetStatus(ctx, gomock.Nil(), models.StatusInFlight).Return(nil)
	m.adapter.EXPECT().Sync(ctx, gomock.Any()).Return(models.SyncResponse{
		SyncTimestamp: now,
		ServerChanges: map[string][]models.EntityRecord{
			models.EntityGoals: {incoming},
		},
		ProcessedChanges: map[string]models.ProcessedSet{},
	}, nil)

	m.queue.EXPECT().HasActive(ctx, models.EntityGoals, "goal-1").Return(false, nil)
	m.entities.EXPECT().Upsert(ctx, gomock.Any()).Return(store.ErrLocalStorage)

	// the cursor stays untouched and the failure lands in sync metadata
	m.meta.EXPECT().SetSyncError(ctx, gomock.Any(), now).Return(nil)

	err := c.Sync(ctx, false)
	require.ErrorIs(t, err, store.ErrLocalStorage)

	c.mu.Lock()
	state := c.state
	c.mu.Unlock()
	assert.Equal(t, StateCooldown, state)
}

func TestCoordinator_ServerChangeSkippedWhenLocalEditQueued(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	c, m := newTestCoordinator(t, now)
	ctx := context.Background()

	incoming := models.EntityRecord{
		SyncID:    "goal-1",
		Payload:   json.RawMessage(`{"v":"server"}`),
		UpdatedAt: now,
	}

	m.meta.EXPECT().DeviceID(ctx).Return("device-1", nil)
	m.meta.EXPECT().Cursor(ctx).Return(nil, nil).Times(2)
	m.queue.EXPECT().ListForSync(ctx, "").Return(nil, nil)
	m.queue.EXPECT().SetStatus(ctx, gomock.Nil(), models.StatusInFlight).Return(nil)
	m.adapter.EXPECT().Sync(ctx, gomock.Any()).Return(models.SyncResponse{
		SyncTimestamp: now,
		ServerChanges: map[string][]models.EntityRecord{
			models.EntityGoals: {incoming},
		},
		ProcessedChanges: map[string]models.ProcessedSet{},
	}, nil)

	// a local edit raced in while the request was in flight: no upsert
	m.queue.EXPECT().HasActive(ctx, models.EntityGoals, "goal-1").Return(true, nil)

	m.meta.EXPECT().SetCursor(ctx, now).Return(nil)
	m.meta.EXPECT().SetLastSyncAt(ctx, now).Return(nil)
	m.meta.EXPECT().ClearSyncError(ctx).Return(nil)

	require.NoError(t, c.Sync(ctx, false))
}

func TestCoordinator_CursorNeverRegresses(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	c, m := newTestCoordinator(t, now)
	ctx := context.Background()

	ahead := now.Add(time.Hour)

	m.meta.EXPECT().DeviceID(ctx).Return("device-1", nil)
	m.meta.EXPECT().Cursor(ctx).Return(nil, nil) // gather
	m.queue.EXPECT().ListForSync(ctx, "").Return(nil, nil)
	m.queue.EXPECT().SetStatus(ctx, gomock.Nil(), models.StatusInFlight).Return(nil)
	m.adapter.EXPECT().Sync(ctx, gomock.Any()).Return(models.SyncResponse{
		SyncTimestamp:    now, // a delayed response, older than the committed cursor
		ServerChanges:    map[string][]models.EntityRecord{},
		ProcessedChanges: map[string]models.ProcessedSet{},
	}, nil)

	m.meta.EXPECT().Cursor(ctx).Return(&ahead, nil) // commit: no SetCursor expected
	m.meta.EXPECT().SetLastSyncAt(ctx, now).Return(nil)
	m.meta.EXPECT().ClearSyncError(ctx).Return(nil)

	require.NoError(t, c.Sync(ctx, false))
}

func TestCoordinator_Status(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	c, m := newTestCoordinator(t, now)
	ctx := context.Background()

	cursor := now.Add(-time.Hour)
	lastSync := now.Add(-30 * time.Minute)

	m.meta.EXPECT().Cursor(ctx).Return(&cursor, nil)
	m.meta.EXPECT().LastSyncAt(ctx).Return(&lastSync, nil)
	m.meta.EXPECT().SyncError(ctx).Return("", nil, nil)
	m.queue.EXPECT().CountPending(ctx).Return(3, nil)
	m.queue.EXPECT().GetConflicts(ctx).Return([]models.Conflict{{ID: 1}}, nil)

	status, err := c.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateIdle, status.State)
	assert.Equal(t, 3, status.PendingCount)
	assert.Equal(t, 1, status.Conflicts)
	require.NotNil(t, status.Cursor)
	assert.True(t, status.Cursor.Equal(cursor))
}

func TestCoordinator_ResetCursor(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	c, m := newTestCoordinator(t, now)
	ctx := context.Background()

	m.meta.EXPECT().ResetCursor(ctx).Return(nil)

	require.NoError(t, c.ResetCursor(ctx))
}

package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/mock"
	"github.com/vitalog/vitalog/internal/store"
	"github.com/vitalog/vitalog/models"
)

func newTestTracker(t *testing.T, now time.Time) (*clientChangeTracker, *mock.MockChangeQueueRepository, *mock.MockLocalEntityRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	queue := mock.NewMockChangeQueueRepository(ctrl)
	entities := mock.NewMockLocalEntityRepository(ctrl)

	storages := &store.ClientStorages{Entities: entities, Queue: queue}
	tracker := NewChangeTracker(storages, logger.Nop()).(*clientChangeTracker)
	tracker.clock = func() time.Time { return now }

	return tracker, queue, entities
}

func TestTracker_RecordAppendsNewChange(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	tracker, queue, entities := newTestTracker(t, now)
	ctx := context.Background()

	payload := json.RawMessage(`{"calories":1800}`)
	revision := now.Add(-time.Hour)

	queue.EXPECT().FindPending(ctx, models.EntityGoals, "goal-1").
		Return(models.PendingChange{}, store.ErrChangeNotFound)
	entities.EXPECT().Get(ctx, models.EntityGoals, "goal-1").
		Return(models.EntityRecord{SyncID: "goal-1", UpdatedAt: revision}, nil)
	queue.EXPECT().Append(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, change models.PendingChange) (int64, error) {
			assert.Equal(t, models.OperationUpdate, change.Operation)
			assert.Equal(t, models.StatusPending, change.Status)
			assert.True(t, change.LocalTimestamp.Equal(now))
			// the base is the server revision the device edited from
			require.NotNil(t, change.BaseTimestamp)
			assert.True(t, change.BaseTimestamp.Equal(revision))
			return 1, nil
		})
	entities.EXPECT().SavePayload(ctx, models.EntityGoals, "goal-1", payload).Return(nil)

	require.NoError(t, tracker.Record(ctx, models.EntityGoals, "goal-1", models.OperationUpdate, payload))
}

func TestTracker_RecordCreateCarriesNoBase(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	tracker, queue, entities := newTestTracker(t, now)
	ctx := context.Background()

	payload := json.RawMessage(`{"calories":2000}`)

	queue.EXPECT().FindPending(ctx, models.EntityGoals, "goal-1").
		Return(models.PendingChange{}, store.ErrChangeNotFound)
	entities.EXPECT().Get(ctx, models.EntityGoals, "goal-1").
		Return(models.EntityRecord{}, store.ErrEntityNotFound)
	queue.EXPECT().Append(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, change models.PendingChange) (int64, error) {
			assert.Nil(t, change.BaseTimestamp)
			return 1, nil
		})
	entities.EXPECT().SavePayload(ctx, models.EntityGoals, "goal-1", payload).Return(nil)

	require.NoError(t, tracker.Record(ctx, models.EntityGoals, "goal-1", models.OperationCreate, payload))
}

func TestTracker_RecordCoalescesLaterEdit(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	tracker, queue, entities := newTestTracker(t, now)
	ctx := context.Background()

	existing := models.PendingChange{
		ID: 4, EntityType: models.EntityGoals, SyncID: "goal-1",
		Operation: models.OperationCreate, Payload: json.RawMessage(`{"v":1}`),
		Status: models.StatusPending,
	}
	newPayload := json.RawMessage(`{"v":2}`)

	queue.EXPECT().FindPending(ctx, models.EntityGoals, "goal-1").Return(existing, nil)
	// the queued operation keeps its original kind: a never-synced record
	// still arrives at the server as a create
	queue.EXPECT().ReplacePending(ctx, int64(4), models.OperationCreate, newPayload, now).Return(nil)
	entities.EXPECT().SavePayload(ctx, models.EntityGoals, "goal-1", newPayload).Return(nil)

	require.NoError(t, tracker.Record(ctx, models.EntityGoals, "goal-1", models.OperationUpdate, newPayload))
}

func TestTracker_DeleteCancelsPendingCreate(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	tracker, queue, entities := newTestTracker(t, now)
	ctx := context.Background()

	existing := models.PendingChange{
		ID: 4, EntityType: models.EntityGoals, SyncID: "goal-1",
		Operation: models.OperationCreate, Status: models.StatusPending,
	}

	queue.EXPECT().FindPending(ctx, models.EntityGoals, "goal-1").Return(existing, nil)
	// the record never reached the server: both sides cancel out
	queue.EXPECT().DeleteByIDs(ctx, int64(4)).Return(nil)
	entities.EXPECT().Remove(ctx, models.EntityGoals, "goal-1").Return(nil)

	require.NoError(t, tracker.Record(ctx, models.EntityGoals, "goal-1", models.OperationDelete, nil))
}

func TestTracker_DeleteCoalescesOverPendingUpdate(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	tracker, queue, entities := newTestTracker(t, now)
	ctx := context.Background()

	existing := models.PendingChange{
		ID: 4, EntityType: models.EntityGoals, SyncID: "goal-1",
		Operation: models.OperationUpdate, Status: models.StatusPending,
	}

	queue.EXPECT().FindPending(ctx, models.EntityGoals, "goal-1").Return(existing, nil)
	queue.EXPECT().ReplacePending(ctx, int64(4), models.OperationDelete, gomock.Nil(), now).Return(nil)
	entities.EXPECT().MarkDeleted(ctx, models.EntityGoals, "goal-1").Return(nil)

	require.NoError(t, tracker.Record(ctx, models.EntityGoals, "goal-1", models.OperationDelete, nil))
}

func TestTracker_RecordRejectsUnknownOperation(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	tracker, _, _ := newTestTracker(t, now)

	err := tracker.Record(context.Background(), models.EntityGoals, "goal-1", "merge", nil)
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestTracker_MarkSyncedAndFailed(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	tracker, queue, _ := newTestTracker(t, now)
	ctx := context.Background()

	queue.EXPECT().DeleteByIDs(ctx, int64(1), int64(2)).Return(nil)
	require.NoError(t, tracker.MarkSynced(ctx, []int64{1, 2}))

	queue.EXPECT().SetStatus(ctx, []int64{3}, models.StatusFailed).Return(nil)
	require.NoError(t, tracker.MarkFailed(ctx, []int64{3}))
}

func TestTracker_PendingCount(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	tracker, queue, _ := newTestTracker(t, now)
	ctx := context.Background()

	queue.EXPECT().CountPending(ctx).Return(5, nil)

	count, err := tracker.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

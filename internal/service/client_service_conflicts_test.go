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

func newTestResolver(t *testing.T, now time.Time) (*conflictResolver, *mock.MockChangeQueueRepository, *mock.MockLocalEntityRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	queue := mock.NewMockChangeQueueRepository(ctrl)
	entities := mock.NewMockLocalEntityRepository(ctrl)

	storages := &store.ClientStorages{Entities: entities, Queue: queue}
	resolver := NewConflictResolver(storages, logger.Nop()).(*conflictResolver)
	resolver.clock = func() time.Time { return now }

	return resolver, queue, entities
}

func testConflict(now time.Time) models.Conflict {
	return models.Conflict{
		ID: 7,
		Change: models.PendingChange{
			ID: 7, EntityType: models.EntityGoals, SyncID: "goal-1",
			Operation: models.OperationUpdate,
			Payload:   json.RawMessage(`{"calories":1800}`),
			Status:    models.StatusConflict,
		},
		ServerSnapshot: models.EntityRecord{
			EntityType: models.EntityGoals, SyncID: "goal-1",
			Payload:   json.RawMessage(`{"calories":2500}`),
			UpdatedAt: now.Add(-time.Minute),
		},
		DetectedAt: now,
	}
}

func TestResolver_UseServer(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	resolver, queue, entities := newTestResolver(t, now)
	ctx := context.Background()

	conflict := testConflict(now)

	queue.EXPECT().GetByID(ctx, int64(7)).Return(conflict.Change, nil)
	queue.EXPECT().GetConflicts(ctx).Return([]models.Conflict{conflict}, nil)

	// the snapshot overwrites the local record, the losing change is gone
	entities.EXPECT().Upsert(ctx, conflict.ServerSnapshot).Return(nil)
	queue.EXPECT().DeleteByIDs(ctx, int64(7)).Return(nil)

	require.NoError(t, resolver.Resolve(ctx, 7, models.ResolveUseServer))
}

func TestResolver_UseLocalReenqueues(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	resolver, queue, entities := newTestResolver(t, now)
	ctx := context.Background()

	conflict := testConflict(now)

	queue.EXPECT().GetByID(ctx, int64(7)).Return(conflict.Change, nil)
	queue.EXPECT().GetConflicts(ctx).Return([]models.Conflict{conflict}, nil)

	entities.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, records ...models.EntityRecord) error {
			require.Len(t, records, 1)
			// local payload wins, but it now bases on the server revision
			assert.JSONEq(t, `{"calories":1800}`, string(records[0].Payload))
			assert.True(t, records[0].UpdatedAt.Equal(conflict.ServerSnapshot.UpdatedAt))
			return nil
		})
	queue.EXPECT().DeleteByIDs(ctx, int64(7)).Return(nil)
	queue.EXPECT().Append(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, change models.PendingChange) (int64, error) {
			assert.Equal(t, models.OperationUpdate, change.Operation)
			assert.Equal(t, models.StatusPending, change.Status)
			require.NotNil(t, change.BaseTimestamp)
			assert.True(t, change.BaseTimestamp.Equal(conflict.ServerSnapshot.UpdatedAt))
			return 8, nil
		})

	require.NoError(t, resolver.Resolve(ctx, 7, models.ResolveUseLocal))
}

func TestResolver_RejectsUnknownChoice(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	resolver, queue, _ := newTestResolver(t, now)
	ctx := context.Background()

	conflict := testConflict(now)
	queue.EXPECT().GetByID(ctx, int64(7)).Return(conflict.Change, nil)
	queue.EXPECT().GetConflicts(ctx).Return([]models.Conflict{conflict}, nil)

	err := resolver.Resolve(ctx, 7, "merge")
	assert.ErrorIs(t, err, ErrUnknownResolution)
}

func TestResolver_RejectsNonConflictRow(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	resolver, queue, _ := newTestResolver(t, now)
	ctx := context.Background()

	queue.EXPECT().GetByID(ctx, int64(3)).Return(models.PendingChange{
		ID: 3, Status: models.StatusPending,
	}, nil)

	err := resolver.Resolve(ctx, 3, models.ResolveUseServer)
	assert.ErrorIs(t, err, ErrNotAConflict)
}

func TestResolver_MissingChange(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	resolver, queue, _ := newTestResolver(t, now)
	ctx := context.Background()

	queue.EXPECT().GetByID(ctx, int64(99)).Return(models.PendingChange{}, store.ErrChangeNotFound)

	err := resolver.Resolve(ctx, 99, models.ResolveUseServer)
	assert.ErrorIs(t, err, store.ErrChangeNotFound)
}

func TestResolver_ListConflicts(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	resolver, queue, _ := newTestResolver(t, now)
	ctx := context.Background()

	queue.EXPECT().GetConflicts(ctx).Return([]models.Conflict{testConflict(now)}, nil)

	conflicts, err := resolver.ListConflicts(ctx)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, int64(7), conflicts[0].ID)
}

package utils

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]int{"count": 3}, 201)
	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"count":3}`, rec.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, json.RawMessage(`{broken`), 200)
	assert.Error(t, err)
	assert.Equal(t, 500, rec.Code)
}

func TestUserIDContextRoundTrip(t *testing.T) {
	ctx := context.Background()

	_, found := GetUserIDFromContext(ctx)
	assert.False(t, found)

	ctx = SetUserIDToContext(ctx, 42)
	userID, found := GetUserIDFromContext(ctx)
	require.True(t, found)
	assert.Equal(t, int64(42), userID)
}

func TestNewSyncID(t *testing.T) {
	first := NewSyncID()
	second := NewSyncID()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestNewDeviceID(t *testing.T) {
	assert.NotEqual(t, NewDeviceID(), NewDeviceID())
}

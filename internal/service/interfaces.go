package service

import (
	"context"

	"github.com/vitalog/vitalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService is the server half of the sync protocol: it applies one
// device's batch of changes, detects concurrent edits, and collects the
// changes the device has not seen yet.
type SyncService interface {
	ProcessSync(ctx context.Context, userID int64, req models.SyncRequest) (models.SyncResponse, error)
}

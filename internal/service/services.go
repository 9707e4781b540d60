package service

import (
	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/store"
)

// Services bundles the server-side services consumed by the HTTP handler.
type Services struct {
	SyncService SyncService
}

// NewServices wires the server service layer on top of the record store.
func NewServices(storages *store.Storages, log *logger.Logger) *Services {
	return &Services{
		SyncService: NewSyncService(storages.Records, log),
	}
}

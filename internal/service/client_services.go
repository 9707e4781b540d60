package service

import (
	"time"

	"github.com/vitalog/vitalog/internal/adapter"
	"github.com/vitalog/vitalog/internal/connectivity"
	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/store"
)

// ClientServices bundles the device-side services.
type ClientServices struct {
	Tracker     ChangeTracker
	Coordinator SyncCoordinator
	Resolver    ConflictResolver
	SyncJob     ClientSyncJob
}

// NewClientServices wires the on-device sync engine: tracker, coordinator,
// conflict resolver and the background trigger job.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, monitor *connectivity.Monitor, cooldown time.Duration, log *logger.Logger) *ClientServices {
	tracker := NewChangeTracker(storages, log)
	coordinator := NewSyncCoordinator(storages, serverAdapter, cooldown, log)

	return &ClientServices{
		Tracker:     tracker,
		Coordinator: coordinator,
		Resolver:    NewConflictResolver(storages, log),
		SyncJob:     NewClientSyncJob(coordinator, tracker, monitor, log),
	}
}

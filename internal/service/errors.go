package service

import "errors"

var (
	// ErrSyncInFlight is returned when a sync trigger fires while a cycle
	// is already running. The trigger is a no-op; callers do not retry.
	ErrSyncInFlight = errors.New("sync already in progress")

	// ErrCooldownActive is returned to automatic triggers during the
	// post-failure cooldown window. Manual (forced) triggers bypass it.
	ErrCooldownActive = errors.New("sync cooldown active")

	// ErrUnknownOperation is returned when a change is recorded with an
	// operation outside create/update/delete.
	ErrUnknownOperation = errors.New("unknown change operation")

	// ErrUnknownResolution is returned when a conflict is resolved with a
	// choice outside use_local/use_server.
	ErrUnknownResolution = errors.New("unknown conflict resolution choice")

	// ErrNotAConflict is returned when the queue row targeted by Resolve is
	// not in conflict status.
	ErrNotAConflict = errors.New("change is not in conflict status")
)

package models

import (
	"encoding/json"
	"time"
)

// Operations a device can queue against an entity record.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// Lifecycle states of a queued pending change.
const (
	// StatusPending — recorded locally, not yet part of a sync request.
	StatusPending = "pending"

	// StatusInFlight — included in a sync request that has not completed.
	// Rows left in this state by a crash are resubmitted on the next cycle;
	// the server applies them idempotently.
	StatusInFlight = "in_flight"

	// StatusConflict — the server reported a concurrent edit; the row is
	// retained together with the server snapshot until resolved.
	StatusConflict = "conflict"

	// StatusFailed — the server rejected the change; not retried
	// automatically.
	StatusFailed = "failed"
)

// ValidOperation reports whether op is one of the queueable operations.
func ValidOperation(op string) bool {
	return op == OperationCreate || op == OperationUpdate || op == OperationDelete
}

// PendingChange is a locally made, not-yet-server-confirmed mutation queued
// for transmission. A change is removed from the queue once the server
// acknowledges it as applied; conflicting and rejected changes stay behind
// in their terminal status.
type PendingChange struct {
	// ID is the queue row identifier, assigned in creation (FIFO) order.
	ID int64 `json:"id"`

	EntityType string          `json:"entity_type"`
	SyncID     string          `json:"sync_id"`
	Operation  string          `json:"operation"`
	Payload    json.RawMessage `json:"payload,omitempty"`

	// BaseTimestamp is the server revision the device believed it was
	// editing from — the UpdatedAt the server last returned for the record.
	// Nil for records the server has never seen.
	BaseTimestamp *time.Time `json:"base_timestamp,omitempty"`

	// LocalTimestamp is the device clock at the time of the edit.
	LocalTimestamp time.Time `json:"local_timestamp"`

	Status string `json:"status"`
}

// Conflict pairs a pending change with the server snapshot that beat it.
// It exists only between detection and resolution.
type Conflict struct {
	// ID equals the queue row ID of the conflicting pending change.
	ID int64 `json:"id"`

	Change         PendingChange `json:"change"`
	ServerSnapshot EntityRecord  `json:"server_snapshot"`
	DetectedAt     time.Time     `json:"detected_at"`
}

// Choices accepted by conflict resolution.
const (
	ResolveUseLocal  = "use_local"
	ResolveUseServer = "use_server"
)

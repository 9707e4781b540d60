package models

import (
	"encoding/json"
	"time"
)

// ChangeItem is a single queued mutation as submitted to the sync endpoint.
type ChangeItem struct {
	SyncID    string          `json:"sync_id"`
	Operation string          `json:"operation"`
	Payload   json.RawMessage `json:"payload,omitempty"`

	// BaseTimestamp carries the server revision the device edited from, so
	// the server can detect a concurrent edit. Null for records the device
	// created and the server has never confirmed.
	BaseTimestamp *time.Time `json:"base_timestamp,omitempty"`
}

// SyncRequest is one device's half of a sync cycle: everything it has queued
// since the last cycle plus the cursor marking the server state it has seen.
type SyncRequest struct {
	// DeviceID is the installation-scoped identity token generated once on
	// the device and persisted for the life of the install.
	DeviceID string `json:"device_id"`

	// LastSyncTimestamp is the sync cursor: the server timestamp up to which
	// this device has fully reconciled. Null on a device's first sync.
	LastSyncTimestamp *time.Time `json:"last_sync_timestamp"`

	// Changes holds the queued mutations grouped by entity type, in
	// creation (FIFO) order within each type. An empty map is a valid
	// request — the cycle still pulls server changes.
	Changes map[string][]ChangeItem `json:"changes"`
}

// ConflictItem reports one submitted change that lost to a newer server
// revision, together with the server's current copy of the record.
type ConflictItem struct {
	SyncID         string       `json:"sync_id"`
	ServerSnapshot EntityRecord `json:"server_snapshot"`
}

// ProcessedSet is the server's verdict on every change submitted for one
// entity type. Each submitted sync_id lands in exactly one list.
type ProcessedSet struct {
	Created   []string       `json:"created"`
	Updated   []string       `json:"updated"`
	Deleted   []string       `json:"deleted"`
	Conflicts []ConflictItem `json:"conflicts"`
	Rejected  []string       `json:"rejected"`
}

// SyncResponse is the server's half of a sync cycle.
type SyncResponse struct {
	// SyncTimestamp is the new cursor value. It is not less than the
	// UpdatedAt of any record in ServerChanges or applied in this cycle.
	SyncTimestamp time.Time `json:"sync_timestamp"`

	// ServerChanges holds full records (tombstones included) changed on the
	// server since the request cursor, grouped by entity type. The device's
	// own just-applied changes are included so it learns their fresh
	// server-assigned revisions.
	ServerChanges map[string][]EntityRecord `json:"server_changes"`

	// ProcessedChanges holds the per-type verdicts for the submitted
	// changes.
	ProcessedChanges map[string]ProcessedSet `json:"processed_changes"`
}

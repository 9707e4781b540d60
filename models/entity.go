package models

import (
	"encoding/json"
	"time"
)

// Known entity types carried by the sync engine. The engine treats payloads
// as opaque JSON; these constants exist so that both sides agree on the
// spelling of the per-type buckets in the wire protocol.
const (
	EntityFoodLogs      = "food_logs"
	EntityGoals         = "goals"
	EntityWeightEntries = "weight_entries"
	EntityBloodPressure = "blood_pressure_entries"
	EntityActivities    = "activities"
)

// EntityRecord is the sync engine's view of any synchronizable business
// object (food log, goal, weight entry, ...). The payload is opaque to the
// engine; only the identity, revision timestamp and tombstone flag matter.
//
// UpdatedAt is owned by the server: a device only ever stores the value the
// server last returned for the record. Deleted records are tombstones and
// are never physically removed, so the deletion itself can propagate.
type EntityRecord struct {
	// EntityType names the per-type bucket the record belongs to
	// (e.g. "goals"). Omitted on the wire where the bucket key already
	// carries it.
	EntityType string `json:"entity_type,omitempty"`

	// SyncID is the opaque stable identifier of the record, unique across
	// devices and the server, assigned once at creation time on whichever
	// side created the record.
	SyncID string `json:"sync_id"`

	// Payload is the full business snapshot of the record.
	Payload json.RawMessage `json:"payload"`

	// UpdatedAt is the server-assigned revision timestamp, monotonic per
	// record.
	UpdatedAt time.Time `json:"updated_at"`

	// Deleted marks the record as a tombstone.
	Deleted bool `json:"is_deleted"`
}

package utils

import "github.com/google/uuid"

// NewSyncID generates an opaque stable identifier for a freshly created
// entity record. Generated on whichever side creates the record and never
// reassigned for its logical lifetime.
func NewSyncID() string {
	return uuid.NewString()
}

// NewDeviceID generates the installation-scoped device identity token. The
// caller persists it once; it stays stable for the life of the install.
func NewDeviceID() string {
	return uuid.NewString()
}

// Package adapter provides the transport layer between the on-device sync
// engine and the vitalog sync server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync
// coordinator from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Transport-level failures (timeouts, DNS errors, 5xx responses) are mapped
// to [ErrTransport] so the coordinator can match them with [errors.Is] and
// enter its cooldown window without inspecting protocol details.
package adapter

import (
	"context"

	"github.com/vitalog/vitalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the sync
// server. Implementations are responsible for serialisation, timeouts, and
// mapping transport-level errors to the sentinel values defined in this
// package.
type ServerAdapter interface {
	// Sync submits one full sync request and returns the server's response.
	// The call blocks until a definitive response or the configured timeout;
	// it is never cancelled mid-flight by the engine, so a returned error
	// always means the local queue can be safely preserved and resubmitted.
	Sync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)

	// Ping performs a cheap reachability check against the server. Used by
	// the connectivity monitor only; never gates correctness.
	Ping(ctx context.Context) error
}

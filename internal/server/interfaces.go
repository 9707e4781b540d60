package server

// Server is the lifecycle contract for the transport servers this package
// wires up.
type Server interface {
	// RunServer listens and serves until a shutdown signal arrives, then
	// blocks until in-flight requests drain.
	RunServer()

	// Shutdown stops accepting new requests and releases the listeners.
	Shutdown()
}

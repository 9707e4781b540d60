// Package http implements the HTTP transport layer of the sync server.
//
// It exposes route wiring, request handlers, and middleware for the REST
// API. Request tracing, access logging, and caller identity extraction are
// handled here before requests are delegated to the service layer.
package http

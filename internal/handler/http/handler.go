package http

import (
	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/service"
)

// Handler serves the sync endpoint and the version endpoint. Authentication
// lives outside the sync engine: the identity middleware trusts the
// X-User-ID header placed by the auth layer in front of this service.
type Handler struct {
	services *service.Services

	version string
	logger  *logger.Logger
}

// NewHandler constructs the HTTP handler.
func NewHandler(services *service.Services, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		version:  version,
		logger:   logger,
	}
}

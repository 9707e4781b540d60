package handler

import (
	"github.com/vitalog/vitalog/internal/config"
	"github.com/vitalog/vitalog/internal/handler/http"
	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/service"
)

// Handlers aggregates the transport handlers exposed by the sync server.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, version string, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, version, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. The sync route carries the full middleware chain;
// the version probe stays cheap and unauthenticated so the connectivity
// monitor can use it.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.versionInfo)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.withIdentity)
		r.Post("/api/sync", h.sync)
	})

	return router
}

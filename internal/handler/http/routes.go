package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})

	// settings
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/settings/{key}", h.getSetting)
		r.With(h.updateHashing).Put("/api/settings/{key}", h.updateSetting)
	})

	router.MethodNotAllowed(methodNotAllowed(router))

	return router
}

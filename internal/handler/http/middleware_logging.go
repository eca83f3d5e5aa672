package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/site-settings/internal/logger"
)

// withLogging writes one access entry per request. The route pattern and the
// setting key are known only after routing, so they are read once next
// returns. Client errors are logged as warnings, server errors as errors.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		log := logger.FromRequest(r)
		status := rec.Status()

		var event *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		default:
			event = log.Info()
		}

		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				event = event.Str("route", pattern)
			}
			if key := rctx.URLParam("key"); key != "" {
				event = event.Str("setting_key", key)
			}
		}

		event.
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", status).
			Int("size", rec.bytes).
			Dur("duration", time.Since(start)).
			Send()
	})
}

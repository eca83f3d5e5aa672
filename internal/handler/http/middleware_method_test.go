// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter mirrors the settings routes without services.
func buildRouter() *chi.Mux {
	ok := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

	router := chi.NewRouter()
	router.Post("/api/auth/login", ok)
	router.Get("/api/version/", ok)
	router.Get("/api/settings/{key}", ok)
	router.Put("/api/settings/{key}", ok)
	router.MethodNotAllowed(methodNotAllowed(router))

	return router
}

func TestMethodNotAllowed(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{name: "GET setting passes", method: http.MethodGet, path: "/api/settings/sections", wantStatus: http.StatusOK},
		{name: "PUT setting passes", method: http.MethodPut, path: "/api/settings/socialMedia", wantStatus: http.StatusOK},
		{name: "DELETE setting", method: http.MethodDelete, path: "/api/settings/sections", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, PUT"},
		{name: "POST setting", method: http.MethodPost, path: "/api/settings/sections", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, PUT"},
		{name: "GET login", method: http.MethodGet, path: "/api/auth/login", wantStatus: http.StatusMethodNotAllowed, wantAllow: "POST"},
		{name: "POST version", method: http.MethodPost, path: "/api/version/", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET"},
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))
		})
	}
}

func TestMethodNotAllowed_NoMatchingRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/nowhere", nil)

	methodNotAllowed(buildRouter())(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get("Allow"))
}

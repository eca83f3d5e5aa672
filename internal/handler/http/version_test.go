package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/site-settings/internal/service"
	"github.com/MKhiriev/site-settings/models"
)

func TestGetServerVersion_WritesBuildInfo(t *testing.T) {
	h := newTestRouterHandler(t, &service.Services{AppInfoService: &mockAppInfoService{version: "1.2.3"}}, "")

	rec := httptest.NewRecorder()
	h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var got models.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.VersionResponse{Version: "1.2.3", Date: "N/A", Commit: "N/A"}, got)
}

func TestGetServerVersion_ViaRouter(t *testing.T) {
	router := newTestRouterHandler(t, &service.Services{AppInfoService: &mockAppInfoService{version: "v2.0.0-beta+build.42"}}, "").Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version":"v2.0.0-beta+build.42"`)
}

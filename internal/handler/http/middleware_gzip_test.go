// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sectionsJSON = `{"key":"sections","value":[{"id":"s1","name":"الفن","nameEn":"Art","visible":true}],"version":3}`

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, b []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(b))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func jsonHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

func TestGZip_ResponseNegotiation(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		wantGzip       bool
	}{
		{name: "plain gzip", acceptEncoding: "gzip", wantGzip: true},
		{name: "list with gzip", acceptEncoding: "deflate, gzip, br", wantGzip: true},
		{name: "quality parameter", acceptEncoding: "gzip;q=1.0, identity;q=0.5", wantGzip: true},
		{name: "upper case", acceptEncoding: "GZIP", wantGzip: true},
		{name: "no header", acceptEncoding: "", wantGzip: false},
		{name: "x-gzip is not gzip", acceptEncoding: "x-gzip", wantGzip: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/settings/sections", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()

			withGZip(jsonHandler(http.StatusOK, sectionsJSON)).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Values("Vary"), "Accept-Encoding")
			if tt.wantGzip {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, sectionsJSON, gunzip(t, rec.Body.Bytes()))
			} else {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				assert.Equal(t, sectionsJSON, rec.Body.String())
			}
		})
	}
}

func TestGZip_KeepsStatus(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/api/settings/sections", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(jsonHandler(http.StatusConflict, "version conflict")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "version conflict", gunzip(t, rec.Body.Bytes()))
}

func TestGZip_EmptyBodyNotCompressed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestGZip_ImplicitOK(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/settings/sections", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, sectionsJSON)
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sectionsJSON, gunzip(t, rec.Body.Bytes()))
}

func TestGZip_PreEncodedResponsePassesThrough(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/settings/sections", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Encoding", "br")
		_, _ = w.Write([]byte("raw"))
	})).ServeHTTP(rec, req)

	assert.Equal(t, "br", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "raw", rec.Body.String())
}

func TestGZip_RequestBody(t *testing.T) {
	t.Run("inflates gzip body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/settings/sections", bytes.NewReader(gzipBytes(t, sectionsJSON)))
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()

		var got string
		withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, r.Body.Close())
			got = string(b)
			assert.Empty(t, r.Header.Get("Content-Encoding"))
			assert.Equal(t, int64(-1), r.ContentLength)
			w.WriteHeader(http.StatusOK)
		})).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, sectionsJSON, got)
	})

	t.Run("rejects malformed gzip", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/settings/sections", strings.NewReader("not gzip"))
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()

		called := false
		withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, called)
	})

	t.Run("plain body untouched", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/settings/sections", strings.NewReader(sectionsJSON))
		rec := httptest.NewRecorder()

		var got string
		withGZip(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			b, _ := io.ReadAll(r.Body)
			got = string(b)
		})).ServeHTTP(rec, req)

		assert.Equal(t, sectionsJSON, got)
	})
}

// Пулы читателей и писателей не должны смешивать данные параллельных запросов.
func TestGZip_ConcurrentRequests(t *testing.T) {
	h := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		_, _ = w.Write(b)
	}))

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body := strings.Repeat("x", i+1)
			req := httptest.NewRequest(http.MethodPut, "/api/settings/sections", bytes.NewReader(gzipBytes(t, body)))
			req.Header.Set("Content-Encoding", "gzip")
			req.Header.Set("Accept-Encoding", "gzip")
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, body, gunzip(t, rec.Body.Bytes()))
		}()
	}
	wg.Wait()
}

func TestPooledReader_CloseTwice(t *testing.T) {
	calls := 0
	p := &pooledReader{Reader: strings.NewReader(""), release: func() { calls++ }}

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.Equal(t, 1, calls)
}

package http

import (
	"bytes"
	"crypto/hmac"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/site-settings/internal/app"
	"github.com/MKhiriev/site-settings/internal/logger"
	"github.com/MKhiriev/site-settings/internal/utils"
)

// updateHashing verifies the "hash" field of a settings write against the
// HMAC of the compacted "value". It is a pass-through when no hash key is
// configured.
func (h *Handler) updateHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		var req struct {
			Value json.RawMessage `json:"value"`
			Hash  string          `json:"hash"`
		}

		log.Debug().Str("func", "*Handler.updateHashing").Msg("checking hash begins")

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.updateHashing").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		// Decode JSON from []byte
		if err := json.NewDecoder(bytes.NewReader(body)).Decode(&req); err != nil {
			log.Err(err).Str("func", "*Handler.updateHashing").Msg("failed to decode JSON")
			http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
			return
		}

		canonical, err := utils.CanonicalJSON(req.Value)
		if err != nil {
			log.Err(err).Str("func", "*Handler.updateHashing").Msg("failed to compact value")
			http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
			return
		}

		// Calculate hash from JSON value
		hashedBody := hex.EncodeToString(utils.Hash(canonical))
		if !hmac.Equal([]byte(hashedBody), []byte(req.Hash)) {
			log.Error().Str("func", "*Handler.updateHashing").
				Str("hash from request", req.Hash).
				Str("hashed body", hashedBody).
				Msg("hashes are not equal")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		log.Debug().Str("func", "*Handler.updateHashing").Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}

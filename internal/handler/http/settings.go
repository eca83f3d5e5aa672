// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/site-settings/internal/app"
	"github.com/MKhiriev/site-settings/internal/logger"
	"github.com/MKhiriev/site-settings/models"
)

func (h *Handler) getSetting(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	key := chi.URLParam(r, "key")

	setting, err := h.services.SettingsService.GetSetting(r.Context(), key)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSetting").Str("key", key).Msg("error getting setting")
		writeServiceError(w, err)
		return
	}

	respondJSON(w, r, setting)
}

func (h *Handler) updateSetting(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var update models.SettingUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateSetting").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	update.Key = chi.URLParam(r, "key")

	result, err := h.services.SettingsService.UpdateSetting(r.Context(), update)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateSetting").Str("key", update.Key).Msg("error updating setting")
		writeServiceError(w, err)
		return
	}

	respondJSON(w, r, result)
}

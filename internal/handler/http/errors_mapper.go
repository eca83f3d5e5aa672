package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/site-settings/internal/app"
	"github.com/MKhiriev/site-settings/internal/logger"
	"github.com/MKhiriev/site-settings/internal/service"
	"github.com/MKhiriev/site-settings/internal/store"
	"github.com/MKhiriev/site-settings/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrSettingNotFound: http.StatusNotFound,
	store.ErrVersionConflict: http.StatusConflict,
	store.ErrSettingNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

var statusMessageMap = map[int]string{
	http.StatusBadRequest:          app.MsgInvalidDataProvided,
	http.StatusUnauthorized:        app.MsgTokenIsExpiredOrInvalid,
	http.StatusNotFound:            app.MsgSettingNotFound,
	http.StatusConflict:            app.MsgVersionConflict,
	http.StatusInternalServerError: app.MsgInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError writes the status and the shared message for err.
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	http.Error(w, statusMessageMap[status], status)
}

// respondJSON writes data with 200, or a bare 500 when it can't be encoded.
func respondJSON(w http.ResponseWriter, r *http.Request, data any) {
	if err := utils.WriteJSON(w, http.StatusOK, data); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "respondJSON").Msg("error encoding response")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
	}
}

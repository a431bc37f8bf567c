package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-foodmap/internal/logger"
	"github.com/MKhiriev/go-foodmap/internal/service"
	"github.com/MKhiriev/go-foodmap/internal/store"
	"github.com/MKhiriev/go-foodmap/internal/utils"
	"github.com/MKhiriev/go-foodmap/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrEmailAlreadyRegistered:  http.StatusBadRequest,
	service.ErrIdentityNotFound:        http.StatusNotFound,
	service.ErrWrongPassword:           http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrPasswordHashingFailed:   http.StatusInternalServerError,

	store.ErrConnectingDB:       http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrCacheUnavailable:   http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError renders err for the client. Errors carrying a field map
// are written as JSON with the status of their kind; anything else is an
// opaque 500.
func writeServiceError(w http.ResponseWriter, log *logger.Logger, err error, msg string) {
	var fieldErrs *service.FieldErrors
	if errors.As(err, &fieldErrs) {
		status := statusFromError(err)
		log.Warn().Err(err).Int("status", status).Msg(msg)
		if _, writeErr := utils.WriteJSON(w, fieldErrs.Fields, status); writeErr != nil {
			log.Err(writeErr).Msg("error writing error response")
		}
		return
	}

	log.Err(err).Msg(msg)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func writeInvalidJSON(w http.ResponseWriter, log *logger.Logger, err error) {
	log.Warn().Err(err).Msg(msgInvalidJSON)
	if _, writeErr := utils.WriteJSON(w, models.FieldErrors{fieldBody: msgInvalidJSON}, http.StatusBadRequest); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}

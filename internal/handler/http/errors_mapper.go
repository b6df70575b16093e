package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/models"
)

// errorStatusMap holds the default status of every error a client may see.
// Targets never wrap one another, so at most one of them matches.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusBadRequest,
	service.ErrTokenIsExpired:          http.StatusForbidden,
	service.ErrTokenIsExpiredOrInvalid: http.StatusForbidden,
	service.ErrImageNotFound:           http.StatusNotFound,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrStoryNotFound:      http.StatusNotFound,

	models.ErrInvalidEpochMillis: http.StatusBadRequest,

	ErrInvalidJSON:     http.StatusBadRequest,
	ErrBodyTooLarge:    http.StatusRequestEntityTooLarge,
	ErrInvalidStoryID:  http.StatusBadRequest,
	ErrNoImageUploaded: http.StatusBadRequest,
	ErrImageTooLarge:   http.StatusRequestEntityTooLarge,
	ErrNoUserInContext: http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing message for err. Validation
// errors keep their details; other known errors are reduced to the sentinel
// text and unknown ones to a generic message.
func messageFromError(err error) string {
	for target := range errorStatusMap {
		if !errors.Is(err, target) {
			continue
		}
		if target == service.ErrInvalidDataProvided {
			msg := err.Error()
			if i := strings.Index(msg, target.Error()); i >= 0 {
				return msg[i:]
			}
		}
		return target.Error()
	}
	return http.StatusText(http.StatusInternalServerError)
}

// writeError logs err and answers with its mapped status.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	writeErrorStatus(w, statusFromError(err), messageFromError(err))

	log := logger.FromRequest(r)
	if status := statusFromError(err); status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}
}

func writeErrorStatus(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.Response{Error: true, Message: message}, status)
}

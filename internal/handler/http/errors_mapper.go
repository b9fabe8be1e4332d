package http

import (
	"errors"
	"net/http"

	"accountgate/internal/service"
	"accountgate/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongSecret:             http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrProvisionNotPermitted:   http.StatusForbidden,
	service.ErrInvalidLogin:            http.StatusUnprocessableEntity,
	service.ErrUnknownCapability:       http.StatusUnprocessableEntity,

	store.ErrLoginAlreadyRegistered: http.StatusConflict,
	store.ErrNoAccountWasFound:      http.StatusNotFound,
	store.ErrAuditEventNotSaved:     http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes the status mapped for err. Client errors keep their
// descriptive message; anything resolving to a server error answers with the
// bare status text so driver and connection detail never reaches the client.
func respondError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shop/internal/service"
	"github.com/MKhiriev/go-shop/internal/store"
)

var errorStatusMap = map[error]int{
	ErrMalformedRequestBody: http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrCredentialMismatch:  http.StatusUnauthorized,
	service.ErrInvalidInput:        http.StatusInternalServerError,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

// errorMessages holds the client-facing body per status. Internal error
// text is never written to the client.
var errorMessages = map[int]string{
	http.StatusBadRequest:   ErrMalformedRequestBody.Error(),
	http.StatusUnauthorized: http.StatusText(http.StatusUnauthorized),
	http.StatusConflict:     store.ErrUsernameAlreadyExists.Error(),
	http.StatusNotFound:     store.ErrNoUserWasFound.Error(),
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err and its generic body.
func writeError(w http.ResponseWriter, err error) int {
	status := statusFromError(err)

	message, ok := errorMessages[status]
	if !ok {
		message = http.StatusText(status)
	}

	http.Error(w, message, status)
	return status
}

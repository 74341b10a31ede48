package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-mission-hub/internal/adapter"
	"github.com/MKhiriev/go-mission-hub/internal/service"
	"github.com/MKhiriev/go-mission-hub/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrWrongCredentials:      http.StatusUnauthorized,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	adapter.ErrInferenceUnavailable: http.StatusBadGateway,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:    http.StatusNotFound,

	store.ErrUIDAssignmentConflict: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/items-api/internal/service"
	"github.com/MKhiriev/items-api/internal/store"
	"github.com/MKhiriev/items-api/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusUnprocessableEntity,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	validators.ErrInvalidEmail:       http.StatusUnprocessableEntity,
	validators.ErrPasswordTooWeak:    http.StatusUnprocessableEntity,
	validators.ErrEmptyItemName:      http.StatusUnprocessableEntity,
	validators.ErrItemNameTooLong:    http.StatusUnprocessableEntity,
	validators.ErrDescriptionTooLong: http.StatusUnprocessableEntity,

	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrItemNameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusUnauthorized,
	store.ErrItemNotFound:          http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

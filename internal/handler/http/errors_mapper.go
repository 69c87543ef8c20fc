package http

import (
	"errors"
	"net/http"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/service"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrEmptyMessage:            http.StatusBadRequest,
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongAdminToken:         http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAdminDisabled:           http.StatusServiceUnavailable,
	service.ErrContactsUnavailable:     http.StatusServiceUnavailable,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrContactNotFound: http.StatusNotFound,
	store.ErrContactNotSaved: http.StatusInternalServerError,
	store.ErrCatalogEmpty:    http.StatusInternalServerError,

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

package http

import (
	"errors"
	"net/http"

	"github.com/pvaldera/go-game-catalog/internal/service"
	"github.com/pvaldera/go-game-catalog/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidScore:        http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrTokenInvalid:        http.StatusUnauthorized,
	service.ErrDuplicateRating:     http.StatusConflict,

	store.ErrEmailAlreadyExists:     http.StatusConflict,
	store.ErrNoUserWasFound:         http.StatusNotFound,
	store.ErrGenreNotFound:          http.StatusNotFound,
	store.ErrGenreNameExists:        http.StatusConflict,
	store.ErrDeveloperNotFound:      http.StatusNotFound,
	store.ErrStudioNameExists:       http.StatusConflict,
	store.ErrGameNotFound:           http.StatusNotFound,
	store.ErrGameReferenceMissing:   http.StatusBadRequest,
	store.ErrRatingExists:           http.StatusConflict,
	store.ErrRatingReferenceMissing: http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

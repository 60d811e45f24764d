package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pvaldera/go-game-catalog/internal/logger"
	"github.com/pvaldera/go-game-catalog/internal/service"
	"github.com/pvaldera/go-game-catalog/internal/utils"
	"github.com/pvaldera/go-game-catalog/models"
)

// createRating records a rating for the authenticated caller. The rated
// user is always the caller from the SecurityContext; a user id in the
// request body would be ignored.
func (h *Handler) createRating(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sc, ok := utils.GetSecurityContextFromContext(ctx)
	if !ok || !sc.IsAuthenticated || sc.User == nil {
		// unreachable when the route is registered behind the access policy
		log.Error().Msg("rating request reached handler without authenticated context")
		utils.WriteJSONError(w, msgUnauthenticated, http.StatusUnauthorized)
		return
	}

	var req models.RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	rating, err := h.services.RatingService.Submit(ctx, sc.User.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidScore):
			log.Err(err).Msg("score out of range")
			utils.WriteJSONError(w, "score must be between 1 and 10", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrDuplicateRating):
			log.Err(err).Msg("duplicate rating")
			utils.WriteJSONError(w, "game already rated by this user", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("error occurred during rating creation")
			status := statusFromError(err)
			utils.WriteJSONError(w, http.StatusText(status), status)
			return
		}
	}

	utils.WriteJSON(w, rating, http.StatusCreated)
}

func (h *Handler) getRatingsByGame(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ratings, err := h.services.RatingService.GetByGame(ctx, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("error occurred during ratings listing")
		status := statusFromError(err)
		utils.WriteJSONError(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, ratings, http.StatusOK)
}

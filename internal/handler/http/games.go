package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pvaldera/go-game-catalog/internal/logger"
	"github.com/pvaldera/go-game-catalog/internal/utils"
	"github.com/pvaldera/go-game-catalog/models"
)

// getAllGames supports optional query filters: ?title= (case-insensitive
// substring), ?genre=, ?developer=, ?platform=.
func (h *Handler) getAllGames(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.GameFilter{
		Title:       r.URL.Query().Get("title"),
		GenreID:     r.URL.Query().Get("genre"),
		DeveloperID: r.URL.Query().Get("developer"),
		Platform:    r.URL.Query().Get("platform"),
	}

	games, err := h.services.GameService.GetAll(ctx, filter)
	if err != nil {
		log.Err(err).Msg("error occurred during games listing")
		status := statusFromError(err)
		utils.WriteJSONError(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, games, http.StatusOK)
}

func (h *Handler) getGameByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	game, err := h.services.GameService.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("error occurred during game lookup")
		status := statusFromError(err)
		utils.WriteJSONError(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, game, http.StatusOK)
}

func (h *Handler) createGame(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var game models.Game
	if err := json.NewDecoder(r.Body).Decode(&game); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdGame, err := h.services.GameService.Create(ctx, game)
	if err != nil {
		log.Err(err).Msg("error occurred during game creation")
		status := statusFromError(err)
		utils.WriteJSONError(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, createdGame, http.StatusCreated)
}

func (h *Handler) updateGame(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var game models.Game
	if err := json.NewDecoder(r.Body).Decode(&game); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	game.ID = chi.URLParam(r, "id")

	updatedGame, err := h.services.GameService.Update(ctx, game)
	if err != nil {
		log.Err(err).Msg("error occurred during game update")
		status := statusFromError(err)
		utils.WriteJSONError(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, updatedGame, http.StatusOK)
}

func (h *Handler) deleteGame(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.GameService.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		log.Err(err).Msg("error occurred during game deletion")
		status := statusFromError(err)
		utils.WriteJSONError(w, http.StatusText(status), status)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

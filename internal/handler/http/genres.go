package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pvaldera/go-game-catalog/internal/logger"
	"github.com/pvaldera/go-game-catalog/internal/utils"
	"github.com/pvaldera/go-game-catalog/models"
)

func (h *Handler) getAllGenres(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	genres, err := h.services.GenreService.GetAll(ctx)
	if err != nil {
		log.Err(err).Msg("error occurred during genres listing")
		status := statusFromError(err)
		utils.WriteJSONError(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, genres, http.StatusOK)
}

func (h *Handler) getGenreByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	genre, err := h.services.GenreService.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("error occurred during genre lookup")
		status := statusFromError(err)
		utils.WriteJSONError(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, genre, http.StatusOK)
}

func (h *Handler) createGenre(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var genre models.Genre
	if err := json.NewDecoder(r.Body).Decode(&genre); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdGenre, err := h.services.GenreService.Create(ctx, genre)
	if err != nil {
		log.Err(err).Msg("error occurred during genre creation")
		status := statusFromError(err)
		utils.WriteJSONError(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, createdGenre, http.StatusCreated)
}

func (h *Handler) updateGenre(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var genre models.Genre
	if err := json.NewDecoder(r.Body).Decode(&genre); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	genre.ID = chi.URLParam(r, "id")

	updatedGenre, err := h.services.GenreService.Update(ctx, genre)
	if err != nil {
		log.Err(err).Msg("error occurred during genre update")
		status := statusFromError(err)
		utils.WriteJSONError(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, updatedGenre, http.StatusOK)
}

func (h *Handler) deleteGenre(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.GenreService.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		log.Err(err).Msg("error occurred during genre deletion")
		status := statusFromError(err)
		utils.WriteJSONError(w, http.StatusText(status), status)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pvaldera/go-game-catalog/internal/logger"
	"github.com/pvaldera/go-game-catalog/internal/utils"
	"github.com/pvaldera/go-game-catalog/models"
)

func (h *Handler) getAllDevelopers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	developers, err := h.services.DeveloperService.GetAll(ctx)
	if err != nil {
		log.Err(err).Msg("error occurred during developers listing")
		status := statusFromError(err)
		utils.WriteJSONError(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, developers, http.StatusOK)
}

func (h *Handler) getDeveloperByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	developer, err := h.services.DeveloperService.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("error occurred during developer lookup")
		status := statusFromError(err)
		utils.WriteJSONError(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, developer, http.StatusOK)
}

func (h *Handler) createDeveloper(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var developer models.Developer
	if err := json.NewDecoder(r.Body).Decode(&developer); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdDeveloper, err := h.services.DeveloperService.Create(ctx, developer)
	if err != nil {
		log.Err(err).Msg("error occurred during developer creation")
		status := statusFromError(err)
		utils.WriteJSONError(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, createdDeveloper, http.StatusCreated)
}

func (h *Handler) updateDeveloper(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var developer models.Developer
	if err := json.NewDecoder(r.Body).Decode(&developer); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	developer.ID = chi.URLParam(r, "id")

	updatedDeveloper, err := h.services.DeveloperService.Update(ctx, developer)
	if err != nil {
		log.Err(err).Msg("error occurred during developer update")
		status := statusFromError(err)
		utils.WriteJSONError(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, updatedDeveloper, http.StatusOK)
}

func (h *Handler) deleteDeveloper(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.DeveloperService.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		log.Err(err).Msg("error occurred during developer deletion")
		status := statusFromError(err)
		utils.WriteJSONError(w, http.StatusText(status), status)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

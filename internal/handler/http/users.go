package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pvaldera/go-game-catalog/internal/logger"
	"github.com/pvaldera/go-game-catalog/internal/utils"
	"github.com/pvaldera/go-game-catalog/models"
)

// User management routes are reachable by ADMIN callers only; the access
// policy enforces that before these handlers run.

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdUser, err := h.services.UserService.Create(ctx, req)
	if err != nil {
		log.Err(err).Msg("error occurred during user creation")
		status := statusFromError(err)
		utils.WriteJSONError(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, createdUser, http.StatusCreated)
}

func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.GetAll(ctx)
	if err != nil {
		log.Err(err).Msg("error occurred during users listing")
		status := statusFromError(err)
		utils.WriteJSONError(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUserByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := h.services.UserService.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("error occurred during user lookup")
		status := statusFromError(err)
		utils.WriteJSONError(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	user.ID = chi.URLParam(r, "id")

	updatedUser, err := h.services.UserService.Update(ctx, user)
	if err != nil {
		log.Err(err).Msg("error occurred during user update")
		status := statusFromError(err)
		utils.WriteJSONError(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.UserService.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		log.Err(err).Msg("error occurred during user deletion")
		status := statusFromError(err)
		utils.WriteJSONError(w, http.StatusText(status), status)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/savorly/savorly-go/internal/middleware"
	"github.com/savorly/savorly-go/internal/model"
	"github.com/savorly/savorly-go/internal/service"
)

// SavedHandler handles HTTP requests for the personal collection.
type SavedHandler struct {
	saves      *service.SaveService
	collection *service.CollectionService
}

// NewSavedHandler creates a new SavedHandler.
func NewSavedHandler(saves *service.SaveService, collection *service.CollectionService) *SavedHandler {
	return &SavedHandler{saves: saves, collection: collection}
}

// HandleList handles GET /api/v1/saved requests.
func (h *SavedHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	recs, err := h.collection.List(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	if recs == nil {
		recs = []model.SavedRecipeResponse{}
	}

	writeJSON(w, http.StatusOK, recs)
}

// HandleToggle handles POST /api/v1/saved requests: save the recipe if
// currently_saved is false, remove it if true.
func (h *SavedHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.ToggleSaveRequest
	if !decodeBody(w, r, 1<<20, &req) {
		return
	}

	saved, err := h.saves.Toggle(r.Context(), userID, req.Recipe, req.CurrentlySaved)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAuthenticationRequired):
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		case errors.Is(err, service.ErrRecipeRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrSaveInFlight):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		case errors.Is(err, service.ErrPersistenceFailed):
			writeJSON(w, http.StatusServiceUnavailable, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, model.ToggleSaveResponse{Saved: saved})
}

// HandleRemove handles DELETE /api/v1/saved/{recipe_id} requests.
func (h *SavedHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	recipeID := chi.URLParam(r, "recipe_id")
	if recipeID == "" || len(recipeID) > 20 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid recipe id"))
		return
	}

	err := h.collection.Remove(r.Context(), userID, recipeID)
	if err != nil {
		if errors.Is(err, service.ErrNotSaved) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/smkhize/erfsite/internal/model"
	"github.com/smkhize/erfsite/internal/store"
)

// StandsHandler handles stand endpoints, public and admin.
type StandsHandler struct {
	Store store.Store
	Log   *zap.Logger
}

// List handles GET /api/stands and GET /api/admin/stands. An optional
// status query narrows the listing.
func (h *StandsHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && !model.ValidStandStatus(status) {
		jsonError(w, http.StatusBadRequest, "invalid status")
		return
	}

	stands, err := h.Store.ListStands(r.Context(), status)
	if err != nil {
		h.Log.Error("failed to list stands", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to fetch stands")
		return
	}
	if stands == nil {
		stands = []model.Stand{}
	}
	jsonResponse(w, http.StatusOK, stands)
}

// Get handles GET /api/stands/{id}.
func (h *StandsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid stand id")
		return
	}

	stand, err := h.Store.GetStand(r.Context(), id)
	if err != nil {
		h.Log.Error("failed to get stand", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to fetch stand")
		return
	}
	if stand == nil {
		jsonError(w, http.StatusNotFound, "stand not found")
		return
	}
	jsonResponse(w, http.StatusOK, stand)
}

// Create handles POST /api/admin/stands.
func (h *StandsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.StandInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	stand, err := h.Store.CreateStand(r.Context(), in)
	if err != nil {
		h.Log.Error("failed to create stand", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to create stand")
		return
	}
	jsonResponse(w, http.StatusCreated, stand)
}

// Update handles PUT /api/admin/stands/{id}.
func (h *StandsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid stand id")
		return
	}

	var patch model.StandPatch
	if err := decodeJSON(r, &patch); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := patch.Validate(); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	stand, err := h.Store.UpdateStand(r.Context(), id, patch)
	if err != nil {
		h.Log.Error("failed to update stand", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to update stand")
		return
	}
	if stand == nil {
		jsonError(w, http.StatusNotFound, "stand not found")
		return
	}
	jsonResponse(w, http.StatusOK, stand)
}

// Delete handles DELETE /api/admin/stands/{id}.
func (h *StandsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid stand id")
		return
	}

	deleted, err := h.Store.DeleteStand(r.Context(), id)
	if err != nil {
		h.Log.Error("failed to delete stand", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to delete stand")
		return
	}
	if !deleted {
		jsonError(w, http.StatusNotFound, "stand not found")
		return
	}
	jsonResponse(w, http.StatusNoContent, nil)
}

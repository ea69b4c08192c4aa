package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/smkhize/erfsite/internal/model"
	"github.com/smkhize/erfsite/internal/store"
)

// GalleryHandler handles gallery image endpoints, public and admin.
type GalleryHandler struct {
	Store store.Store
	Log   *zap.Logger
}

// List handles GET /api/gallery and GET /api/admin/gallery. An optional
// category query narrows the listing.
func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	images, err := h.Store.ListGalleryImages(r.Context(), category)
	if err != nil {
		h.Log.Error("failed to list gallery images", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to fetch gallery images")
		return
	}
	if images == nil {
		images = []model.GalleryImage{}
	}
	jsonResponse(w, http.StatusOK, images)
}

// Create handles POST /api/admin/gallery.
func (h *GalleryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.GalleryImageInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	image, err := h.Store.CreateGalleryImage(r.Context(), in)
	if err != nil {
		h.Log.Error("failed to create gallery image", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to create gallery image")
		return
	}
	jsonResponse(w, http.StatusCreated, image)
}

// Delete handles DELETE /api/admin/gallery/{id}.
func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid image id")
		return
	}

	deleted, err := h.Store.DeleteGalleryImage(r.Context(), id)
	if err != nil {
		h.Log.Error("failed to delete gallery image", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to delete gallery image")
		return
	}
	if !deleted {
		jsonError(w, http.StatusNotFound, "gallery image not found")
		return
	}
	jsonResponse(w, http.StatusNoContent, nil)
}

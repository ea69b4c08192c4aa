package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/smkhize/erfsite/internal/model"
	"github.com/smkhize/erfsite/internal/store"
)

// DownloadsHandler handles download endpoints, public and admin.
type DownloadsHandler struct {
	Store store.Store
	Log   *zap.Logger
}

// List handles GET /api/downloads and GET /api/admin/downloads. An
// optional category query narrows the listing.
func (h *DownloadsHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	downloads, err := h.Store.ListDownloads(r.Context(), category)
	if err != nil {
		h.Log.Error("failed to list downloads", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to fetch downloads")
		return
	}
	if downloads == nil {
		downloads = []model.Download{}
	}
	jsonResponse(w, http.StatusOK, downloads)
}

// Create handles POST /api/admin/downloads.
func (h *DownloadsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.DownloadInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	download, err := h.Store.CreateDownload(r.Context(), in)
	if err != nil {
		h.Log.Error("failed to create download", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to create download")
		return
	}
	jsonResponse(w, http.StatusCreated, download)
}

// Delete handles DELETE /api/admin/downloads/{id}.
func (h *DownloadsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid download id")
		return
	}

	deleted, err := h.Store.DeleteDownload(r.Context(), id)
	if err != nil {
		h.Log.Error("failed to delete download", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to delete download")
		return
	}
	if !deleted {
		jsonError(w, http.StatusNotFound, "download not found")
		return
	}
	jsonResponse(w, http.StatusNoContent, nil)
}

package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/smkhize/erfsite/internal/imaging"
	"github.com/smkhize/erfsite/internal/store"
)

// MediaHandler handles image uploads and serving.
type MediaHandler struct {
	Store store.Store
	Log   *zap.Logger
}

// maxUploadBytes limits uploads to 10 MB.
const maxUploadBytes = 10 << 20

type uploadResponse struct {
	ID       int64  `json:"id"`
	URL      string `json:"url"`
	ThumbURL string `json:"thumbUrl"`
}

// Upload handles POST /api/admin/media. The multipart "image" part is
// validated, downscaled, and stored with a thumbnail; the response
// carries the public URL to paste into imageUrl fields.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	result, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	media, err := h.Store.CreateMedia(r.Context(), header.Filename, result.MIME, result.Data, result.Thumb)
	if err != nil {
		h.Log.Error("failed to store media", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to store image")
		return
	}

	jsonResponse(w, http.StatusCreated, uploadResponse{
		ID:       media.ID,
		URL:      media.URL(),
		ThumbURL: media.ThumbURL(),
	})
}

// Serve handles GET /media/{id}.
func (h *MediaHandler) Serve(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, false)
}

// ServeThumb handles GET /media/{id}/thumb.
func (h *MediaHandler) ServeThumb(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, true)
}

func (h *MediaHandler) serve(w http.ResponseWriter, r *http.Request, thumb bool) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid media id")
		return
	}

	data, mime, err := h.Store.GetMediaData(r.Context(), id, thumb)
	if err != nil {
		h.Log.Error("failed to get media", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to fetch image")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "image not found")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(data)
}

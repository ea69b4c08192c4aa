package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/smkhize/erfsite/internal/model"
	"github.com/smkhize/erfsite/internal/store"
)

// ContactHandler handles the public contact form and admin message triage.
type ContactHandler struct {
	Store store.Store
	Log   *zap.Logger
}

// Submit handles POST /api/contact. The created message always starts
// unread.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in model.ContactMessageInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := h.Store.CreateContactMessage(r.Context(), in)
	if err != nil {
		h.Log.Error("failed to store contact message", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to submit message")
		return
	}
	jsonResponse(w, http.StatusCreated, msg)
}

// List handles GET /api/admin/messages.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Store.ListContactMessages(r.Context())
	if err != nil {
		h.Log.Error("failed to list messages", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to fetch messages")
		return
	}
	if messages == nil {
		messages = []model.ContactMessage{}
	}
	jsonResponse(w, http.StatusOK, messages)
}

// MarkRead handles PUT /api/admin/messages/{id}/read. Re-marking an
// already-read message still succeeds.
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid message id")
		return
	}

	ok, err := h.Store.MarkMessageRead(r.Context(), id)
	if err != nil {
		h.Log.Error("failed to mark message read", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to mark message as read")
		return
	}
	if !ok {
		jsonError(w, http.StatusNotFound, "message not found")
		return
	}
	jsonResponse(w, http.StatusNoContent, nil)
}

package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/smkhize/erfsite/internal/model"
	"github.com/smkhize/erfsite/internal/store"
)

// BlogHandler handles blog post endpoints, public and admin.
type BlogHandler struct {
	Store store.Store
	Log   *zap.Logger
}

// ListPublished handles GET /api/blog. Unpublished posts never appear here.
func (h *BlogHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Store.ListPublishedBlogPosts(r.Context())
	if err != nil {
		h.Log.Error("failed to list published posts", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to fetch blog posts")
		return
	}
	if posts == nil {
		posts = []model.BlogPost{}
	}
	jsonResponse(w, http.StatusOK, posts)
}

// GetPublished handles GET /api/blog/{id}. An unpublished post is
// indistinguishable from a missing one.
func (h *BlogHandler) GetPublished(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	post, err := h.Store.GetBlogPost(r.Context(), id)
	if err != nil {
		h.Log.Error("failed to get post", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to fetch blog post")
		return
	}
	if post == nil || !post.Published {
		jsonError(w, http.StatusNotFound, "blog post not found")
		return
	}
	jsonResponse(w, http.StatusOK, post)
}

// List handles GET /api/admin/blog, including unpublished drafts.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Store.ListBlogPosts(r.Context())
	if err != nil {
		h.Log.Error("failed to list posts", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to fetch blog posts")
		return
	}
	if posts == nil {
		posts = []model.BlogPost{}
	}
	jsonResponse(w, http.StatusOK, posts)
}

// Create handles POST /api/admin/blog.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.BlogPostInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.Store.CreateBlogPost(r.Context(), in)
	if err != nil {
		h.Log.Error("failed to create post", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to create blog post")
		return
	}
	jsonResponse(w, http.StatusCreated, post)
}

// Update handles PUT /api/admin/blog/{id}.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	var patch model.BlogPostPatch
	if err := decodeJSON(r, &patch); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := patch.Validate(); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.Store.UpdateBlogPost(r.Context(), id, patch)
	if err != nil {
		h.Log.Error("failed to update post", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to update blog post")
		return
	}
	if post == nil {
		jsonError(w, http.StatusNotFound, "blog post not found")
		return
	}
	jsonResponse(w, http.StatusOK, post)
}

// Delete handles DELETE /api/admin/blog/{id}.
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	deleted, err := h.Store.DeleteBlogPost(r.Context(), id)
	if err != nil {
		h.Log.Error("failed to delete post", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to delete blog post")
		return
	}
	if !deleted {
		jsonError(w, http.StatusNotFound, "blog post not found")
		return
	}
	jsonResponse(w, http.StatusNoContent, nil)
}

package web

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/smkhize/erfsite/internal/model"
)

// HomePage handles GET /.
func (s *Server) HomePage(w http.ResponseWriter, r *http.Request) {
	stands, err := s.Store.ListStands(r.Context(), model.StandAvailable)
	if err != nil {
		s.Log.Error("failed to list stands for home page", zap.Error(err))
	}
	if len(stands) > 3 {
		stands = stands[:3]
	}

	posts, err := s.Store.ListPublishedBlogPosts(r.Context())
	if err != nil {
		s.Log.Error("failed to list posts for home page", zap.Error(err))
	}
	if len(posts) > 3 {
		posts = posts[:3]
	}

	s.Templates.Render(w, "home.html", &struct {
		PageData
		Stands []model.Stand
		Posts  []model.BlogPost
	}{
		PageData: PageData{Title: "Riverside Estate"},
		Stands:   stands,
		Posts:    posts,
	})
}

// AboutPage handles GET /about.
func (s *Server) AboutPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "about.html", &PageData{Title: "About Us"})
}

// StandsPage handles GET /stands.
func (s *Server) StandsPage(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && !model.ValidStandStatus(status) {
		status = ""
	}

	stands, err := s.Store.ListStands(r.Context(), status)
	if err != nil {
		s.Log.Error("failed to list stands", zap.Error(err))
	}

	s.Templates.Render(w, "stands.html", &struct {
		PageData
		Stands []model.Stand
		Status string
	}{
		PageData: PageData{Title: "Stands for Sale"},
		Stands:   stands,
		Status:   status,
	})
}

// StandDetailPage handles GET /stands/{id}.
func (s *Server) StandDetailPage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	stand, err := s.Store.GetStand(r.Context(), id)
	if err != nil {
		s.Log.Error("failed to get stand", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if stand == nil {
		http.NotFound(w, r)
		return
	}

	s.Templates.Render(w, "stand_detail.html", &struct {
		PageData
		Stand *model.Stand
	}{
		PageData: PageData{Title: stand.Title},
		Stand:    stand,
	})
}

// BlogPage handles GET /blog.
func (s *Server) BlogPage(w http.ResponseWriter, r *http.Request) {
	posts, err := s.Store.ListPublishedBlogPosts(r.Context())
	if err != nil {
		s.Log.Error("failed to list published posts", zap.Error(err))
	}

	s.Templates.Render(w, "blog.html", &struct {
		PageData
		Posts []model.BlogPost
	}{
		PageData: PageData{Title: "News"},
		Posts:    posts,
	})
}

// BlogPostPage handles GET /blog/{id}. Drafts are treated as absent.
func (s *Server) BlogPostPage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := s.Store.GetBlogPost(r.Context(), id)
	if err != nil {
		s.Log.Error("failed to get post", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if post == nil || !post.Published {
		http.NotFound(w, r)
		return
	}

	s.Templates.Render(w, "blog_post.html", &struct {
		PageData
		Post *model.BlogPost
	}{
		PageData: PageData{Title: post.Title},
		Post:     post,
	})
}

// GalleryPage handles GET /gallery.
func (s *Server) GalleryPage(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	images, err := s.Store.ListGalleryImages(r.Context(), category)
	if err != nil {
		s.Log.Error("failed to list gallery images", zap.Error(err))
	}

	// Distinct categories for the filter bar.
	all := images
	if category != "" {
		all, err = s.Store.ListGalleryImages(r.Context(), "")
		if err != nil {
			s.Log.Error("failed to list gallery categories", zap.Error(err))
		}
	}
	seen := make(map[string]bool)
	var categories []string
	for _, img := range all {
		if img.Category != "" && !seen[img.Category] {
			seen[img.Category] = true
			categories = append(categories, img.Category)
		}
	}

	s.Templates.Render(w, "gallery.html", &struct {
		PageData
		Images     []model.GalleryImage
		Categories []string
		Category   string
	}{
		PageData:   PageData{Title: "Gallery"},
		Images:     images,
		Categories: categories,
		Category:   category,
	})
}

// ContactPage handles GET /contact. The form posts to /api/contact.
func (s *Server) ContactPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "contact.html", &PageData{Title: "Contact Us"})
}

// DownloadsPage handles GET /downloads.
func (s *Server) DownloadsPage(w http.ResponseWriter, r *http.Request) {
	downloads, err := s.Store.ListDownloads(r.Context(), "")
	if err != nil {
		s.Log.Error("failed to list downloads", zap.Error(err))
	}

	// Group by category in listing order.
	groups := make(map[string][]model.Download)
	var order []string
	for _, d := range downloads {
		if _, ok := groups[d.Category]; !ok {
			order = append(order, d.Category)
		}
		groups[d.Category] = append(groups[d.Category], d)
	}

	s.Templates.Render(w, "downloads.html", &struct {
		PageData
		Groups map[string][]model.Download
		Order  []string
	}{
		PageData: PageData{Title: "Downloads"},
		Groups:   groups,
		Order:    order,
	})
}

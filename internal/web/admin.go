package web

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/smkhize/erfsite/internal/model"
)

// Dashboard handles GET /admin.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	stands, err := s.Store.ListStands(r.Context(), "")
	if err != nil {
		s.Log.Error("failed to list stands for dashboard", zap.Error(err))
	}
	posts, err := s.Store.ListBlogPosts(r.Context())
	if err != nil {
		s.Log.Error("failed to list posts for dashboard", zap.Error(err))
	}
	messages, err := s.Store.ListContactMessages(r.Context())
	if err != nil {
		s.Log.Error("failed to list messages for dashboard", zap.Error(err))
	}
	unread, err := s.Store.CountUnreadMessages(r.Context())
	if err != nil {
		s.Log.Error("failed to count unread messages", zap.Error(err))
	}

	available := 0
	for _, st := range stands {
		if st.Status == model.StandAvailable {
			available++
		}
	}
	published := 0
	for _, p := range posts {
		if p.Published {
			published++
		}
	}

	// Recent messages, newest first.
	recent := messages
	if len(recent) > 5 {
		recent = recent[:5]
	}

	s.Templates.Render(w, "admin_dashboard.html", &struct {
		PageData
		TotalStands     int
		AvailableStands int
		TotalPosts      int
		PublishedPosts  int
		UnreadMessages  int
		RecentMessages  []model.ContactMessage
	}{
		PageData:        PageData{Title: "Dashboard", User: claims},
		TotalStands:     len(stands),
		AvailableStands: available,
		TotalPosts:      len(posts),
		PublishedPosts:  published,
		UnreadMessages:  unread,
		RecentMessages:  recent,
	})
}

// AdminStandsPage handles GET /admin/stands.
func (s *Server) AdminStandsPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	stands, err := s.Store.ListStands(r.Context(), "")
	if err != nil {
		s.Log.Error("failed to list stands", zap.Error(err))
	}

	s.Templates.Render(w, "admin_stands.html", &struct {
		PageData
		Stands []model.Stand
	}{
		PageData: PageData{Title: "Manage Stands", User: claims},
		Stands:   stands,
	})
}

// AdminBlogPage handles GET /admin/blog. Shows drafts too.
func (s *Server) AdminBlogPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	posts, err := s.Store.ListBlogPosts(r.Context())
	if err != nil {
		s.Log.Error("failed to list posts", zap.Error(err))
	}

	s.Templates.Render(w, "admin_blog.html", &struct {
		PageData
		Posts []model.BlogPost
	}{
		PageData: PageData{Title: "Manage Blog", User: claims},
		Posts:    posts,
	})
}

// AdminGalleryPage handles GET /admin/gallery.
func (s *Server) AdminGalleryPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	images, err := s.Store.ListGalleryImages(r.Context(), "")
	if err != nil {
		s.Log.Error("failed to list gallery images", zap.Error(err))
	}

	s.Templates.Render(w, "admin_gallery.html", &struct {
		PageData
		Images []model.GalleryImage
	}{
		PageData: PageData{Title: "Manage Gallery", User: claims},
		Images:   images,
	})
}

// AdminMessagesPage handles GET /admin/messages.
func (s *Server) AdminMessagesPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	messages, err := s.Store.ListContactMessages(r.Context())
	if err != nil {
		s.Log.Error("failed to list messages", zap.Error(err))
	}
	unread, err := s.Store.CountUnreadMessages(r.Context())
	if err != nil {
		s.Log.Error("failed to count unread messages", zap.Error(err))
	}

	s.Templates.Render(w, "admin_messages.html", &struct {
		PageData
		Messages []model.ContactMessage
		Unread   int
	}{
		PageData: PageData{Title: "Messages", User: claims},
		Messages: messages,
		Unread:   unread,
	})
}

// AdminDownloadsPage handles GET /admin/downloads.
func (s *Server) AdminDownloadsPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	downloads, err := s.Store.ListDownloads(r.Context(), "")
	if err != nil {
		s.Log.Error("failed to list downloads", zap.Error(err))
	}

	s.Templates.Render(w, "admin_downloads.html", &struct {
		PageData
		Downloads []model.Download
	}{
		PageData:  PageData{Title: "Manage Downloads", User: claims},
		Downloads: downloads,
	})
}

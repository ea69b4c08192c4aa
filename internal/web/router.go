package web

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/smkhize/erfsite/internal/store"
	webembed "github.com/smkhize/erfsite/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(st store.Store, jwtSecret string, logger *zap.Logger) (http.Handler, error) {
	templates, err := LoadTemplates(logger)
	if err != nil {
		return nil, err
	}

	s := &Server{
		Store:     st,
		Templates: templates,
		JWTSecret: jwtSecret,
		Log:       logger,
	}

	mux := http.NewServeMux()
	cookieAuth := CookieAuth(jwtSecret, st, logger)

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Public pages.
	mux.HandleFunc("GET /{$}", s.HomePage)
	mux.HandleFunc("GET /about", s.AboutPage)
	mux.HandleFunc("GET /stands", s.StandsPage)
	mux.HandleFunc("GET /stands/{id}", s.StandDetailPage)
	mux.HandleFunc("GET /blog", s.BlogPage)
	mux.HandleFunc("GET /blog/{id}", s.BlogPostPage)
	mux.HandleFunc("GET /gallery", s.GalleryPage)
	mux.HandleFunc("GET /contact", s.ContactPage)
	mux.HandleFunc("GET /downloads", s.DownloadsPage)

	mux.HandleFunc("GET /login", s.LoginPage)
	mux.HandleFunc("POST /login", s.LoginSubmit)
	mux.HandleFunc("POST /logout", s.Logout)

	// Admin pages.
	mux.Handle("GET /admin", cookieAuth(http.HandlerFunc(s.Dashboard)))
	mux.Handle("GET /admin/stands", cookieAuth(http.HandlerFunc(s.AdminStandsPage)))
	mux.Handle("GET /admin/blog", cookieAuth(http.HandlerFunc(s.AdminBlogPage)))
	mux.Handle("GET /admin/gallery", cookieAuth(http.HandlerFunc(s.AdminGalleryPage)))
	mux.Handle("GET /admin/messages", cookieAuth(http.HandlerFunc(s.AdminMessagesPage)))
	mux.Handle("GET /admin/downloads", cookieAuth(http.HandlerFunc(s.AdminDownloadsPage)))

	return mux, nil
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/smkhize/erfsite/internal/store"
)

// NewRouter creates the API router with all endpoints registered.
// Everything under /api/admin except login requires a valid, unrevoked
// token.
func NewRouter(st store.Store, jwtSecret string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)

	authHandler := &AuthHandler{Store: st, JWTSecret: jwtSecret, Log: logger}
	stands := &StandsHandler{Store: st, Log: logger}
	blog := &BlogHandler{Store: st, Log: logger}
	gallery := &GalleryHandler{Store: st, Log: logger}
	contact := &ContactHandler{Store: st, Log: logger}
	downloads := &DownloadsHandler{Store: st, Log: logger}
	media := &MediaHandler{Store: st, Log: logger}

	r.Route("/api", func(r chi.Router) {
		// Public routes.
		r.Get("/stands", stands.List)
		r.Get("/stands/{id}", stands.Get)
		r.Get("/blog", blog.ListPublished)
		r.Get("/blog/{id}", blog.GetPublished)
		r.Get("/gallery", gallery.List)
		r.Post("/contact", contact.Submit)
		r.Get("/downloads", downloads.List)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", authHandler.Login)

			// Authenticated admin routes.
			r.Group(func(r chi.Router) {
				r.Use(RequireAuth(jwtSecret, st))

				r.Post("/logout", authHandler.Logout)
				r.Put("/password", authHandler.ChangePassword)

				r.Get("/stands", stands.List)
				r.Post("/stands", stands.Create)
				r.Put("/stands/{id}", stands.Update)
				r.Delete("/stands/{id}", stands.Delete)

				r.Get("/blog", blog.List)
				r.Post("/blog", blog.Create)
				r.Put("/blog/{id}", blog.Update)
				r.Delete("/blog/{id}", blog.Delete)

				r.Get("/gallery", gallery.List)
				r.Post("/gallery", gallery.Create)
				r.Delete("/gallery/{id}", gallery.Delete)

				r.Get("/messages", contact.List)
				r.Put("/messages/{id}/read", contact.MarkRead)

				r.Get("/downloads", downloads.List)
				r.Post("/downloads", downloads.Create)
				r.Delete("/downloads/{id}", downloads.Delete)

				r.Post("/media", media.Upload)
			})
		})
	})

	// Uploaded images are public so pages can reference them.
	r.Get("/media/{id}", media.Serve)
	r.Get("/media/{id}/thumb", media.ServeThumb)

	return r
}

package web

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/smkhize/erfsite/internal/auth"
)

// LoginPage handles GET /login.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "login.html", &PageData{Title: "Sign in"})
}

// LoginSubmit handles POST /login.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	if username == "" || password == "" {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Sign in",
			Error: "Enter a username and password.",
		})
		return
	}

	user, err := s.Store.GetUserByUsername(r.Context(), username)
	if err != nil || user == nil {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Sign in",
			Error: "Incorrect username or password.",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Sign in",
			Error: "Incorrect username or password.",
		})
		return
	}

	token, err := auth.GenerateToken(s.JWTSecret, user.ID, user.Username, user.Role)
	if err != nil {
		s.Log.Error("failed to generate token", zap.Error(err))
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Sign in",
			Error: "Sign in failed, try again.",
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(auth.TokenExpiry.Seconds()),
	})

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout handles POST /logout. The token is revoked so it cannot be
// replayed after the cookie is cleared.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("token"); err == nil && cookie.Value != "" {
		if claims, err := auth.ValidateToken(s.JWTSecret, cookie.Value); err == nil && claims.ID != "" && claims.ExpiresAt != nil {
			if err := s.Store.RevokeToken(r.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
				s.Log.Error("failed to revoke token", zap.Error(err))
			}
		}
	}

	clearAuthCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

package web

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/smkhize/erfsite/internal/auth"
	"github.com/smkhize/erfsite/internal/store"
)

type webContextKey string

const webClaimsKey webContextKey = "webclaims"

// CookieAuth validates the JWT cookie, checks revocation, and adds the
// claims to the request context. Unauthenticated requests are sent to
// the login page.
func CookieAuth(secret string, st store.Store, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("token")
			if err != nil || cookie.Value == "" {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			claims, err := auth.ValidateToken(secret, cookie.Value)
			if err != nil {
				clearAuthCookie(w)
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			if claims.ID != "" {
				revoked, err := st.IsTokenRevoked(r.Context(), claims.ID)
				if err != nil {
					logger.Error("failed to check token revocation", zap.Error(err))
					clearAuthCookie(w)
					http.Redirect(w, r, "/login", http.StatusSeeOther)
					return
				}
				if revoked {
					clearAuthCookie(w)
					http.Redirect(w, r, "/login", http.StatusSeeOther)
					return
				}
			}

			ctx := context.WithValue(r.Context(), webClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// clearAuthCookie clears the authentication cookie with consistent attributes.
func clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// GetWebClaims retrieves the JWT claims from web context.
func GetWebClaims(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(webClaimsKey).(*auth.Claims)
	return claims
}

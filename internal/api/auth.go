package api

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/smkhize/erfsite/internal/auth"
	"github.com/smkhize/erfsite/internal/model"
	"github.com/smkhize/erfsite/internal/store"
)

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	Store     store.Store
	JWTSecret string
	Log       *zap.Logger
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

// Login handles POST /api/admin/login. On success it returns a signed
// token with the non-secret user fields, and also sets the token as an
// HttpOnly cookie for the admin pages.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		jsonError(w, http.StatusBadRequest, "username and password required")
		return
	}

	user, err := h.Store.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		h.Log.Error("login lookup failed", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if user == nil {
		jsonError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		h.Log.Warn("login failed", zap.String("username", req.Username), zap.String("remote", r.RemoteAddr))
		jsonError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, user.ID, user.Username, user.Role)
	if err != nil {
		h.Log.Error("token generation failed", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(auth.TokenExpiry.Seconds()),
	})

	h.Log.Info("admin logged in", zap.String("username", user.Username))
	jsonResponse(w, http.StatusOK, loginResponse{
		Token: token,
		User:  loginUser{ID: user.ID, Username: user.Username, Role: user.Role},
	})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword handles PUT /api/admin/password. The caller proves
// knowledge of the current password before the stored hash is replaced.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req changePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.CurrentPassword == "" || req.NewPassword == "" {
		jsonError(w, http.StatusBadRequest, "current and new password required")
		return
	}

	if err := model.ValidatePassword(req.NewPassword); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Store.GetUser(r.Context(), claims.UserID)
	if err != nil {
		h.Log.Error("password change lookup failed", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if user == nil {
		jsonError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		jsonError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		h.Log.Error("password hashing failed", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	ok, err := h.Store.UpdateUserPassword(r.Context(), user.ID, string(hash))
	if err != nil {
		h.Log.Error("password update failed", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to update password")
		return
	}
	if !ok {
		jsonError(w, http.StatusNotFound, "user not found")
		return
	}

	h.Log.Info("admin password changed", zap.String("username", user.Username))
	jsonResponse(w, http.StatusOK, map[string]string{"message": "password changed"})
}

// Logout handles POST /api/admin/logout. It revokes the presented token
// and clears the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims != nil && claims.ID != "" && claims.ExpiresAt != nil {
		if err := h.Store.RevokeToken(r.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
			h.Log.Error("token revocation failed", zap.Error(err))
			jsonError(w, http.StatusInternalServerError, "failed to revoke token")
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	jsonResponse(w, http.StatusNoContent, nil)
}

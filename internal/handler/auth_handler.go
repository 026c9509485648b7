package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/pkg/auth"
)

// AuthHandler は管理者認証の HTTP ハンドラ
type AuthHandler struct {
	authService   service.AuthService
	sessions      *service.SessionService
	sessionSecret []byte
	secureCookies bool
}

// AuthConfig は AuthHandler の設定
type AuthConfig struct {
	SessionSecret string
	// SecureCookies sets the Secure attribute on the session cookie
	// (production only).
	SecureCookies bool
}

// NewAuthHandler は AuthHandler を生成する（DI: AuthService / SessionService を注入）
func NewAuthHandler(authService service.AuthService, sessions *service.SessionService, cfg AuthConfig) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		sessions:      sessions,
		sessionSecret: auth.SessionSecretBytes(cfg.SessionSecret),
		secureCookies: cfg.SecureCookies,
	}
}

// loginRequest is the expected JSON body for POST /api/auth/login.
type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
// A correct password establishes a session and sets the signed cookie;
// a wrong one is a 401 with no state change.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request"})
		return
	}

	if !h.authService.VerifyPassword(req.Password) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid password"})
		return
	}

	session, err := h.sessions.CreateSession(r.Context())
	if err != nil {
		slog.Error("session create failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to login"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    auth.SignSessionID(session.ID, h.sessionSecret),
		Path:     "/",
		MaxAge:   int(auth.SessionDuration / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secureCookies,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Logout handles POST /api/auth/logout.
// Destroys the server-side session and clears the cookie. Succeeds when no
// session exists; fails 500 only when the session store itself fails.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookieName()); err == nil {
		if id, err := auth.VerifySessionID(cookie.Value, h.sessionSecret); err == nil {
			if err := h.sessions.DeleteSession(r.Context(), id); err != nil {
				slog.Error("session destroy failed", "error", err)
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to logout"})
				return
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
	})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Check handles GET /api/auth/check.
// Reports whether the caller holds a live session; never errors and has no
// side effects beyond pruning an already-expired session.
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	authenticated := false
	if cookie, err := r.Cookie(auth.SessionCookieName()); err == nil {
		if id, err := auth.VerifySessionID(cookie.Value, h.sessionSecret); err == nil {
			authenticated = h.sessions.ValidateSession(r.Context(), id) == nil
		}
	}
	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": authenticated})
}

package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

const authenticatedKey contextKey = "authenticated"

// SessionValidator checks that a session id refers to a live, unexpired
// session. Implemented by service.SessionService.
type SessionValidator interface {
	ValidateSession(ctx context.Context, id string) error
}

// IsAuthenticatedFromContext は context から認証済みフラグを取得する
func IsAuthenticatedFromContext(ctx context.Context) bool {
	v, _ := ctx.Value(authenticatedKey).(bool)
	return v
}

// WithAuthenticated は context に認証済みフラグをセットする
func WithAuthenticated(ctx context.Context, authenticated bool) context.Context {
	return context.WithValue(ctx, authenticatedKey, authenticated)
}

// RequireAuth は認証必須ミドルウェア。署名付きクッキーとセッションの生存を検証する
func RequireAuth(sessions SessionValidator, sessionSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName())
			if err != nil {
				unauthorized(w)
				return
			}

			id, err := VerifySessionID(cookie.Value, sessionSecret)
			if err != nil {
				unauthorized(w)
				return
			}

			if err := sessions.ValidateSession(r.Context(), id); err != nil {
				unauthorized(w)
				return
			}

			ctx := WithAuthenticated(r.Context(), true)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pandamarket/api/pkg/auth"
	"github.com/pandamarket/api/pkg/httpx"
)

type contextKey string

const (
	// UserIDKey carries the authenticated user's ID in the request context.
	UserIDKey contextKey = "user_id"
	// NicknameKey carries the authenticated user's nickname.
	NicknameKey contextKey = "nickname"
)

// UserID extracts the authenticated user's ID from ctx.
func UserID(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(UserIDKey).(uint)
	return id, ok
}

// Nickname extracts the authenticated user's nickname from ctx.
func Nickname(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(NicknameKey).(string)
	return name, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// RequireAuth rejects requests without a valid bearer token and stores the
// token claims in the request context.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			httpx.RespondError(w, http.StatusUnauthorized, "로그인이 필요합니다.")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			httpx.RespondError(w, http.StatusUnauthorized, "유효하지 않은 토큰입니다.")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, NicknameKey, claims.Nickname)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// OptionalAuth stores token claims in the context when a valid token is
// present, and lets anonymous requests through untouched.
func OptionalAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token, ok := bearerToken(r); ok {
			if claims, err := auth.ValidateToken(token); err == nil {
				ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
				ctx = context.WithValue(ctx, NicknameKey, claims.Nickname)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	}
}

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/savorly/savorly-go/internal/crypto"
	"github.com/savorly/savorly-go/internal/session"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	claimsKey contextKey = "claims"
)

// JWTAuth returns middleware that validates a Bearer token from the
// Authorization header and rejects tokens revoked by logout.
func JWTAuth(secret string, revoked *session.RevocationStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, errMsg := claimsFromRequest(r, secret, revoked)
			if claims == nil {
				writeJSONError(w, http.StatusUnauthorized, errMsg)
				return
			}

			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), claims)))
		})
	}
}

// OptionalJWTAuth is JWTAuth for routes that work with or without a
// session, like the recipe detail page where the saved indicator is
// only advisory. A missing or bad token continues unauthenticated.
func OptionalJWTAuth(secret string, revoked *session.RevocationStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, _ := claimsFromRequest(r, secret, revoked); claims != nil {
				r = r.WithContext(withSession(r.Context(), claims))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// claimsFromRequest extracts and validates the bearer token. It
// returns nil claims and a message suitable for a 401 body when the
// request carries no usable session.
func claimsFromRequest(r *http.Request, secret string, revoked *session.RevocationStore) (*crypto.Claims, string) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, "missing authorization header"
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || token == "" {
		return nil, "invalid authorization format"
	}

	claims, err := crypto.ValidateToken(token, secret)
	if err != nil {
		return nil, "invalid or expired token"
	}

	if revoked != nil && revoked.IsRevoked(claims.ID) {
		return nil, "session has been logged out"
	}

	return claims, ""
}

func withSession(ctx context.Context, claims *crypto.Claims) context.Context {
	ctx = context.WithValue(ctx, userIDKey, claims.UserID)
	return context.WithValue(ctx, claimsKey, claims)
}

// UserIDFromContext extracts the authenticated user ID from the request
// context. The second return is false when there is no session.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// ClaimsFromContext extracts the full token claims, used by logout to
// revoke the presented token.
func ClaimsFromContext(ctx context.Context) (*crypto.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*crypto.Claims)
	return claims, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

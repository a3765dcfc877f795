package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/trivault/trivault-backend/internal/domain"
	"github.com/trivault/trivault-backend/pkg/ctxutil"
)

type tokenResolver interface {
	ResolveToken(ctx context.Context, token string) (domain.Identity, error)
}

// Auth returns middleware that requires a valid bearer token and stores
// the resolved admin identity in the request context. A missing, malformed,
// or invalid token is rejected with 401 before any handler executes; the
// vault has no anonymous surface behind this middleware.
func Auth(resolver tokenResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				unauthorized(w, "missing bearer token")
				return
			}
			identity, err := resolver.ResolveToken(r.Context(), token)
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}
			ctx := ctxutil.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

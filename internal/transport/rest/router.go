package rest

import (
	"net/http"

	"github.com/trivault/trivault-backend/internal/transport/middleware"
)

// RouterDeps bundles the handlers and the auth middleware for the router.
type RouterDeps struct {
	Auth      *AuthHandler
	Passwords *PasswordHandler
	Activity  *ActivityHandler
	// RequireAuth guards every route except login, register, and health.
	RequireAuth middleware.Middleware
}

// NewRouter builds the API route table. Method-qualified patterns make the
// mux return 405 for wrong methods on known paths; the literal
// /api/passwords/tags pattern takes precedence over /api/passwords/{id}.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Public routes.
	mux.HandleFunc("POST /api/auth/login", deps.Auth.Login)
	mux.HandleFunc("POST /api/auth/register", deps.Auth.Register)
	mux.HandleFunc("GET /api/health", Health)

	// Protected routes.
	protected := func(h http.HandlerFunc) http.Handler {
		return deps.RequireAuth(h)
	}

	mux.Handle("GET /api/auth/profile", protected(deps.Auth.Profile))

	mux.Handle("GET /api/passwords", protected(deps.Passwords.List))
	mux.Handle("GET /api/passwords/tags", protected(deps.Passwords.Tags))
	mux.Handle("GET /api/passwords/{id}", protected(deps.Passwords.Get))
	mux.Handle("POST /api/passwords", protected(deps.Passwords.Create))
	mux.Handle("PUT /api/passwords/{id}", protected(deps.Passwords.Update))
	mux.Handle("DELETE /api/passwords/{id}", protected(deps.Passwords.Delete))

	mux.Handle("GET /api/activity", protected(deps.Activity.List))
	mux.Handle("GET /api/activity/user/{adminName}", protected(deps.Activity.ListByAdmin))
	mux.Handle("GET /api/activity/stats", protected(deps.Activity.Stats))

	return mux
}

package auth

import "github.com/trivault/trivault-backend/internal/domain"

// AuthResult is the outcome of a successful login or registration.
type AuthResult struct {
	Token string
	Admin *domain.Admin
}

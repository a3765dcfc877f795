// Package auth implements admin authentication: registration, login, and
// bearer token resolution.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/trivault/trivault-backend/internal/config"
	"github.com/trivault/trivault-backend/internal/domain"
)

// adminRepo defines the admin repository interface needed by the auth service.
type adminRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	Create(ctx context.Context, a *domain.Admin) (*domain.Admin, error)
}

// jwtManager defines the token management interface needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(identity domain.Identity) (string, error)
	ValidateAccessToken(token string) (domain.Identity, error)
}

// Service implements auth operations.
type Service struct {
	log    *slog.Logger
	admins adminRepo
	jwt    jwtManager
	cfg    config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, admins adminRepo, jwt jwtManager, cfg config.AuthConfig) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		admins: admins,
		jwt:    jwt,
		cfg:    cfg,
	}
}

// ResolveToken validates a bearer token and returns the acting identity.
// Any failure (absent, malformed, expired, bad signature) maps to
// ErrUnauthorized without distinguishing the cause to the caller.
func (s *Service) ResolveToken(_ context.Context, token string) (domain.Identity, error) {
	identity, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return identity, nil
}

// identityOf maps a stored admin to the identity embedded in tokens.
func identityOf(a *domain.Admin) domain.Identity {
	return domain.Identity{ID: a.ID, Name: a.Name, Email: a.Email}
}

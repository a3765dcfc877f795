package auth

import (
	"context"
	"fmt"

	"github.com/trivault/trivault-backend/internal/domain"
	"github.com/trivault/trivault-backend/pkg/ctxutil"
)

// Profile returns the stored account for the acting admin.
func (s *Service) Profile(ctx context.Context) (*domain.Admin, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	admin, err := s.admins.GetByID(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.Profile: %w", err)
	}

	return admin, nil
}

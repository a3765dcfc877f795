package vault

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/trivault/trivault-backend/internal/domain"
)

// GetEntry returns a single entry by id and appends a `view` ledger record
// naming the entry. Returns ErrNotFound for an unknown id, with nothing
// audited.
func (s *Service) GetEntry(ctx context.Context, id uuid.UUID) (*domain.PasswordEntry, error) {
	identity, err := identityFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("vault.GetEntry: %w", err)
	}

	s.appendAudit(ctx, identity, domain.ActionView, entry.WebsiteName,
		fmt.Sprintf("Viewed password entry for %s", entry.WebsiteName))

	return entry, nil
}

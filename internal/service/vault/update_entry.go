package vault

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/trivault/trivault-backend/internal/domain"
)

// UpdateEntry applies a partial update to an entry and appends an `edit`
// ledger record. The record is written under the entry's ORIGINAL website
// name, captured before the update, so a rename is logged under the
// pre-rename name. Returns ErrNotFound for an unknown id.
func (s *Service) UpdateEntry(ctx context.Context, id uuid.UUID, input UpdateEntryInput) (*domain.PasswordEntry, error) {
	identity, err := identityFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	original, err := s.entries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("vault.UpdateEntry get original: %w", err)
	}

	updated, err := s.entries.Update(ctx, id, input.params())
	if err != nil {
		return nil, fmt.Errorf("vault.UpdateEntry: %w", err)
	}

	s.appendAudit(ctx, identity, domain.ActionEdit, original.WebsiteName,
		fmt.Sprintf("Updated password entry for %s", original.WebsiteName))

	s.log.InfoContext(ctx, "password entry updated",
		slog.String("entry_id", id.String()),
		slog.String("admin", identity.Name),
	)

	return updated, nil
}

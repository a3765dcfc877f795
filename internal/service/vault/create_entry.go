package vault

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trivault/trivault-backend/internal/domain"
)

// CreateEntry validates and persists a new password entry under the acting
// admin's name, then appends an `add` ledger record. A rejected request
// leaves no side effect: neither entry nor audit record is created.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.PasswordEntry, error) {
	identity, err := identityFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.entries.Create(ctx, &domain.PasswordEntry{
		WebsiteName: input.WebsiteName,
		ClientName:  input.ClientName,
		Email:       input.Email,
		Password:    input.Password,
		Notes:       input.Notes,
		Tags:        input.Tags,
		CreatedBy:   identity.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("vault.CreateEntry: %w", err)
	}

	s.appendAudit(ctx, identity, domain.ActionAdd, entry.WebsiteName,
		fmt.Sprintf("Added new password entry for %s", entry.WebsiteName))

	s.log.InfoContext(ctx, "password entry created",
		slog.String("entry_id", entry.ID.String()),
		slog.String("admin", identity.Name),
	)

	return entry, nil
}

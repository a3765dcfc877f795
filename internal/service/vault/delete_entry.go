package vault

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/trivault/trivault-backend/internal/domain"
)

// DeleteEntry permanently removes an entry and appends a `delete` ledger
// record carrying the entry's website name, so the ledger still names the
// subject after the row is gone. Returns ErrNotFound for an unknown id,
// with nothing deleted and nothing audited.
func (s *Service) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	identity, err := identityFromCtx(ctx)
	if err != nil {
		return err
	}

	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("vault.DeleteEntry get entry: %w", err)
	}

	if err := s.entries.Delete(ctx, id); err != nil {
		return fmt.Errorf("vault.DeleteEntry: %w", err)
	}

	s.appendAudit(ctx, identity, domain.ActionDelete, entry.WebsiteName,
		fmt.Sprintf("Deleted password entry for %s", entry.WebsiteName))

	s.log.InfoContext(ctx, "password entry deleted",
		slog.String("entry_id", id.String()),
		slog.String("admin", identity.Name),
	)

	return nil
}

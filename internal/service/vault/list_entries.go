package vault

import (
	"context"
	"fmt"

	"github.com/trivault/trivault-backend/internal/domain"
)

// ListEntries returns entries matching the filter, newest-created-first,
// and appends one `view` ledger record. The audit write happens regardless
// of result-set size, including zero matches.
func (s *Service) ListEntries(ctx context.Context, input ListEntriesInput) ([]domain.PasswordEntry, error) {
	identity, err := identityFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.entries.List(ctx, input.filter())
	if err != nil {
		return nil, fmt.Errorf("vault.ListEntries: %w", err)
	}

	s.appendAudit(ctx, identity, domain.ActionView,
		"Password entries", "Viewed password entries list")

	return entries, nil
}

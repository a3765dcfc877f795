package vault

import (
	"context"
	"fmt"
)

// ListTags returns the de-duplicated union of all entries' tags, sorted
// lexicographically. Tag listing is the one read that is not audited: it
// backs the filter UI, not an admin looking at credentials.
func (s *Service) ListTags(ctx context.Context) ([]string, error) {
	if _, err := identityFromCtx(ctx); err != nil {
		return nil, err
	}

	tags, err := s.entries.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("vault.ListTags: %w", err)
	}

	return tags, nil
}

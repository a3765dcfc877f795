// Package vault implements the vault service: the single orchestration
// point that couples every credential store operation to an activity
// ledger append under the identity of the requesting admin.
package vault

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/trivault/trivault-backend/internal/domain"
	"github.com/trivault/trivault-backend/pkg/ctxutil"
)

type entryRepo interface {
	List(ctx context.Context, filter domain.EntryFilter) ([]domain.PasswordEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PasswordEntry, error)
	Create(ctx context.Context, e *domain.PasswordEntry) (*domain.PasswordEntry, error)
	Update(ctx context.Context, id uuid.UUID, params domain.EntryUpdateParams) (*domain.PasswordEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListTags(ctx context.Context) ([]string, error)
}

type activityAppender interface {
	Append(ctx context.Context, log domain.ActivityLog) (domain.ActivityLog, error)
}

// Service provides password entry operations with audit coupling.
type Service struct {
	entries entryRepo
	ledger  activityAppender
	log     *slog.Logger
}

// NewService creates a new vault service.
func NewService(logger *slog.Logger, entries entryRepo, ledger activityAppender) *Service {
	return &Service{
		entries: entries,
		ledger:  ledger,
		log:     logger.With("service", "vault"),
	}
}

// identityFromCtx resolves the acting admin, failing with ErrUnauthorized
// before any store access when the request carries no identity.
func identityFromCtx(ctx context.Context) (domain.Identity, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return identity, nil
}

// appendAudit writes one activity ledger record for an operation that has
// already succeeded. The append is deliberately NOT transactional with the
// primary write: a ledger failure is logged and swallowed so it never
// claws back a completed operation or fails the client response.
func (s *Service) appendAudit(ctx context.Context, identity domain.Identity, action domain.Action, entryName, details string) {
	_, err := s.ledger.Append(ctx, domain.ActivityLog{
		AdminName: identity.Name,
		Action:    action,
		EntryName: entryName,
		Details:   details,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "audit append failed",
			slog.String("admin", identity.Name),
			slog.String("action", action.String()),
			slog.String("entry_name", entryName),
			slog.String("error", err.Error()),
		)
	}
}

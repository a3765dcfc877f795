// Package activity implements read access to the activity ledger:
// paginated listing, per-admin filtering, and aggregate stats. Ledger
// reads are not themselves audited.
package activity

import (
	"context"
	"log/slog"
	"strings"

	"github.com/trivault/trivault-backend/internal/config"
	"github.com/trivault/trivault-backend/internal/domain"
	"github.com/trivault/trivault-backend/pkg/ctxutil"
)

type activityRepo interface {
	List(ctx context.Context, adminName string, limit, offset int) ([]domain.ActivityLog, int, error)
	CountByAction(ctx context.Context) ([]domain.ActionCount, error)
	Recent(ctx context.Context, limit int) ([]domain.ActivityLog, error)
}

// Service provides activity ledger queries.
type Service struct {
	logs activityRepo
	cfg  config.ActivityConfig
	log  *slog.Logger
}

// NewService creates a new activity service.
func NewService(logger *slog.Logger, logs activityRepo, cfg config.ActivityConfig) *Service {
	return &Service{
		logs: logs,
		cfg:  cfg,
		log:  logger.With("service", "activity"),
	}
}

// LogPage is one page of ledger records plus pagination metadata.
type LogPage struct {
	Logs       []domain.ActivityLog
	Pagination domain.Pagination
}

// ListLogs returns one page of the full ledger, newest-first.
func (s *Service) ListLogs(ctx context.Context, page, limit int) (*LogPage, error) {
	return s.list(ctx, "", page, limit)
}

// ListLogsByAdmin returns one page of the ledger restricted to a single
// admin's actions, newest-first.
func (s *Service) ListLogsByAdmin(ctx context.Context, adminName string, page, limit int) (*LogPage, error) {
	adminName = strings.TrimSpace(adminName)
	if adminName == "" {
		return nil, domain.NewValidationError("adminName", "required")
	}
	return s.list(ctx, adminName, page, limit)
}

func (s *Service) list(ctx context.Context, adminName string, page, limit int) (*LogPage, error) {
	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	page, limit = s.clamp(page, limit)
	offset := (page - 1) * limit

	logs, total, err := s.logs.List(ctx, adminName, limit, offset)
	if err != nil {
		return nil, err
	}

	return &LogPage{
		Logs:       logs,
		Pagination: domain.NewPagination(page, limit, total),
	}, nil
}

// Stats returns per-action counts, the ledger total, and the most recent
// records for the dashboard.
func (s *Service) Stats(ctx context.Context) (*domain.ActivityStats, error) {
	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	counts, err := s.logs.CountByAction(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, c := range counts {
		total += c.Count
	}

	recent, err := s.logs.Recent(ctx, s.cfg.RecentCount)
	if err != nil {
		return nil, err
	}

	return &domain.ActivityStats{
		Counts:           counts,
		TotalActivities:  total,
		RecentActivities: recent,
	}, nil
}

// clamp applies pagination defaults and bounds: page floor 1, limit
// defaulted and capped by config.
func (s *Service) clamp(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = s.cfg.DefaultPageSize
	}
	if limit > s.cfg.MaxPageSize {
		limit = s.cfg.MaxPageSize
	}
	return page, limit
}

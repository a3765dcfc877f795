// Package activity implements the activity ledger repository using
// PostgreSQL. The ledger is append-only: there are no update or delete
// operations, and reads never mutate.
package activity

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/trivault/trivault-backend/internal/adapter/postgres"
	"github.com/trivault/trivault-backend/internal/domain"
)

const table = "activity_logs"

var columns = []string{"id", "admin_name", "action", "entry_name", "details", "created_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides activity log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append inserts a new activity log record and returns the persisted row.
func (r *Repo) Append(ctx context.Context, log domain.ActivityLog) (domain.ActivityLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if !log.Action.IsValid() {
		return domain.ActivityLog{}, fmt.Errorf("activity_log: %w: unknown action %q",
			domain.ErrValidation, log.Action)
	}

	id := uuid.New()
	sql, args, err := psql.Insert(table).
		Columns("id", "admin_name", "action", "entry_name", "details").
		Values(id, log.AdminName, log.Action, log.EntryName, log.Details).
		Suffix("RETURNING id, admin_name, action, entry_name, details, created_at").
		ToSql()
	if err != nil {
		return domain.ActivityLog{}, fmt.Errorf("build append activity_log: %w", err)
	}

	var created domain.ActivityLog
	if err := pgxscan.Get(ctx, q, &created, sql, args...); err != nil {
		return domain.ActivityLog{}, postgres.MapError(err, "activity_log", id)
	}

	return created, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns one page of activity logs, newest-first (created_at DESC,
// ties broken by id DESC), plus the total record count. adminName, when
// non-empty, restricts the page and the count to that admin.
func (r *Repo) List(ctx context.Context, adminName string, limit, offset int) ([]domain.ActivityLog, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	count := psql.Select("COUNT(*)").From(table)
	page := psql.Select(columns...).From(table).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if adminName != "" {
		count = count.Where(sq.Eq{"admin_name": adminName})
		page = page.Where(sq.Eq{"admin_name": adminName})
	}

	sql, args, err := count.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count activity_logs: %w", err)
	}
	var total int
	if err := pgxscan.Get(ctx, q, &total, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("count activity_logs: %w", err)
	}

	sql, args, err = page.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list activity_logs: %w", err)
	}
	logs := []domain.ActivityLog{}
	if err := pgxscan.Select(ctx, q, &logs, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("list activity_logs: %w", err)
	}

	return logs, total, nil
}

// CountByAction returns per-action record counts, most frequent first.
func (r *Repo) CountByAction(ctx context.Context) ([]domain.ActionCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	counts := []domain.ActionCount{}
	err := pgxscan.Select(ctx, q, &counts,
		`SELECT action, COUNT(*) AS count FROM activity_logs GROUP BY action ORDER BY count DESC, action`)
	if err != nil {
		return nil, fmt.Errorf("count activity_logs by action: %w", err)
	}

	return counts, nil
}

// Recent returns the `limit` most recent activity logs, newest-first.
func (r *Repo) Recent(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(columns...).From(table).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build recent activity_logs: %w", err)
	}

	logs := []domain.ActivityLog{}
	if err := pgxscan.Select(ctx, q, &logs, sql, args...); err != nil {
		return nil, fmt.Errorf("recent activity_logs: %w", err)
	}

	return logs, nil
}

// DeleteAll removes every log record. Used by the seeder only.
func (r *Repo) DeleteAll(ctx context.Context) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, `DELETE FROM activity_logs`); err != nil {
		return fmt.Errorf("delete all activity_logs: %w", err)
	}
	return nil
}

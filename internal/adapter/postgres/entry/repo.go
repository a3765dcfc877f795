// Package entry implements the password entry repository using PostgreSQL.
package entry

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/trivault/trivault-backend/internal/adapter/postgres"
	"github.com/trivault/trivault-backend/internal/domain"
)

const table = "password_entries"

var columns = []string{
	"id", "website_name", "client_name", "email", "password",
	"notes", "tags", "created_by", "created_at", "updated_at",
}

// psql builds queries with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides password entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new password entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns entries matching the filter, newest-created-first.
// An empty filter returns all entries. Returns an empty slice on no matches.
func (r *Repo) List(ctx context.Context, filter domain.EntryFilter) ([]domain.PasswordEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := applyFilter(psql.Select(columns...).From(table), filter).
		OrderBy("created_at DESC", "id DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list password_entries: %w", err)
	}

	entries := []domain.PasswordEntry{}
	if err := pgxscan.Select(ctx, q, &entries, sql, args...); err != nil {
		return nil, fmt.Errorf("list password_entries: %w", err)
	}

	return entries, nil
}

// GetByID returns an entry by primary key.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PasswordEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get password_entry: %w", err)
	}

	var e domain.PasswordEntry
	if err := pgxscan.Get(ctx, q, &e, sql, args...); err != nil {
		return nil, postgres.MapError(err, "password_entry", id)
	}

	return &e, nil
}

// ListTags returns the de-duplicated union of all entries' tags,
// sorted lexicographically.
func (r *Repo) ListTags(ctx context.Context) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tags := []string{}
	err := pgxscan.Select(ctx, q, &tags,
		`SELECT DISTINCT unnest(tags) AS tag FROM password_entries ORDER BY tag`)
	if err != nil {
		return nil, fmt.Errorf("list password_entry tags: %w", err)
	}

	return tags, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new entry and returns the persisted row with the
// store-generated id and timestamps.
func (r *Repo) Create(ctx context.Context, e *domain.PasswordEntry) (*domain.PasswordEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	sql, args, err := psql.Insert(table).
		Columns("id", "website_name", "client_name", "email", "password", "notes", "tags", "created_by").
		Values(id, e.WebsiteName, e.ClientName, e.Email, e.Password, e.Notes, e.Tags, e.CreatedBy).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create password_entry: %w", err)
	}

	var created domain.PasswordEntry
	if err := pgxscan.Get(ctx, q, &created, sql, args...); err != nil {
		return nil, postgres.MapError(err, "password_entry", id)
	}

	return &created, nil
}

// Update applies a partial update and returns the post-update entry.
// Only non-nil params are touched; updated_at is always refreshed.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.EntryUpdateParams) (*domain.PasswordEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := psql.Update(table).Set("updated_at", sq.Expr("now()"))
	if params.WebsiteName != nil {
		update = update.Set("website_name", *params.WebsiteName)
	}
	if params.ClientName != nil {
		update = update.Set("client_name", *params.ClientName)
	}
	if params.Email != nil {
		update = update.Set("email", *params.Email)
	}
	if params.Password != nil {
		update = update.Set("password", *params.Password)
	}
	if params.Notes != nil {
		update = update.Set("notes", *params.Notes)
	}
	if params.Tags != nil {
		update = update.Set("tags", params.Tags)
	}

	sql, args, err := update.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update password_entry: %w", err)
	}

	var updated domain.PasswordEntry
	if err := pgxscan.Get(ctx, q, &updated, sql, args...); err != nil {
		return nil, postgres.MapError(err, "password_entry", id)
	}

	return &updated, nil
}

// Delete removes an entry. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete password_entry: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "password_entry", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("password_entry %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteAll removes every entry. Used by the seeder only.
func (r *Repo) DeleteAll(ctx context.Context) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, `DELETE FROM password_entries`); err != nil {
		return fmt.Errorf("delete all password_entries: %w", err)
	}
	return nil
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}

// Package admin implements the administrator account repository using
// PostgreSQL.
package admin

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

const table = "admins"

var columns = []string{"id", "name", "email", "password_hash", "created_at", "updated_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides admin account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new admin repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns an admin by primary key.
// Returns domain.ErrNotFound if the admin does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get admin: %w", err)
	}

	var a domain.Admin
	if err := pgxscan.Get(ctx, q, &a, sql, args...); err != nil {
		return nil, postgres.MapError(err, "admin", id)
	}

	return &a, nil
}

// GetByEmail returns an admin by email.
// Returns domain.ErrNotFound if no admin has that email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"email": email}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get admin by email: %w", err)
	}

	var a domain.Admin
	if err := pgxscan.Get(ctx, q, &a, sql, args...); err != nil {
		return nil, postgres.MapError(err, "admin", email)
	}

	return &a, nil
}

// Create inserts a new admin and returns the persisted row.
// Returns domain.ErrAlreadyExists if the email is taken.
func (r *Repo) Create(ctx context.Context, a *domain.Admin) (*domain.Admin, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	sql, args, err := psql.Insert(table).
		Columns("id", "name", "email", "password_hash").
		Values(id, a.Name, a.Email, a.PasswordHash).
		Suffix("RETURNING id, name, email, password_hash, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create admin: %w", err)
	}

	var created domain.Admin
	if err := pgxscan.Get(ctx, q, &created, sql, args...); err != nil {
		return nil, postgres.MapError(err, "admin", a.Email)
	}

	return &created, nil
}

// DeleteAll removes every admin. Used by the seeder only.
func (r *Repo) DeleteAll(ctx context.Context) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, `DELETE FROM admins`); err != nil {
		return fmt.Errorf("delete all admins: %w", err)
	}
	return nil
}

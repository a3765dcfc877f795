package domain

import (
	"time"

	"github.com/google/uuid"
)

// Admin represents an authenticated vault administrator.
type Admin struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// Identity is the acting admin identity resolved from a bearer token.
// It is carried in the request context and stamped onto every audit record.
type Identity struct {
	ID    uuid.UUID
	Name  string
	Email string
}

package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// PasswordEntry represents one stored credential for a client-facing tool.
// The password field is stored verbatim; encryption-at-rest is an open
// product decision, not something this layer silently changes.
type PasswordEntry struct {
	ID          uuid.UUID `db:"id"`
	WebsiteName string    `db:"website_name"`
	ClientName  string    `db:"client_name"`
	Email       string    `db:"email"`
	Password    string    `db:"password"`
	Notes       string    `db:"notes"`
	Tags        []string  `db:"tags"`
	CreatedBy   string    `db:"created_by"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// EntryUpdateParams holds the editable fields of a password entry for a
// partial update. Nil fields are left untouched.
type EntryUpdateParams struct {
	WebsiteName *string
	ClientName  *string
	Email       *string
	Password    *string
	Notes       *string
	Tags        []string
}

// IsEmpty reports whether no field is set.
func (p EntryUpdateParams) IsEmpty() bool {
	return p.WebsiteName == nil && p.ClientName == nil && p.Email == nil &&
		p.Password == nil && p.Notes == nil && p.Tags == nil
}

// EntryFilter contains search/filter parameters for listing entries.
// Both conditions combine with AND; within Tags the semantics are OR
// (an entry matches if any of its tags is selected).
type EntryFilter struct {
	Search *string
	Tags   []string
}

// emailPattern mirrors the client-side rule: user@domain with a 2-3 letter TLD.
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// ValidEmail reports whether s matches the accepted email shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// NormalizeTags removes duplicate tags while preserving the order in which
// they first appear. Comparison is case-sensitive as entered.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return []string{}
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Action is the kind of admin operation recorded in the activity ledger.
type Action string

const (
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionView   Action = "view"
)

// IsValid reports whether a is one of the four known actions.
func (a Action) IsValid() bool {
	switch a {
	case ActionAdd, ActionEdit, ActionDelete, ActionView:
		return true
	}
	return false
}

func (a Action) String() string { return string(a) }

// ActivityLog is one immutable audit fact. EntryName is a denormalized copy
// of the subject's website name at the time of the action, not a foreign
// key: renames and deletes do not rewrite history.
type ActivityLog struct {
	ID        uuid.UUID `db:"id"`
	AdminName string    `db:"admin_name"`
	Action    Action    `db:"action"`
	EntryName string    `db:"entry_name"`
	Details   string    `db:"details"`
	CreatedAt time.Time `db:"created_at"`
}

// Pagination describes one page of activity log results.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalLogs   int
	HasNextPage bool
	HasPrevPage bool
}

// NewPagination computes page metadata for a total of `total` logs.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalLogs:   total,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// ActionCount is a per-action aggregate for activity stats.
type ActionCount struct {
	Action Action `db:"action"`
	Count  int    `db:"count"`
}

// ActivityStats aggregates the ledger for the dashboard.
type ActivityStats struct {
	Counts           []ActionCount
	TotalActivities  int
	RecentActivities []ActivityLog
}

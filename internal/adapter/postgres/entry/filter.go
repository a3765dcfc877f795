package entry

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/trivault/trivault-backend/internal/domain"
)

// applyFilter appends the WHERE conditions for an EntryFilter to a select.
//
// Search matches case-insensitively as a substring against website_name,
// client_name, email, and each tag (entry matches if ANY field contains the
// term). Tags match on overlap: an entry qualifies if any of its tags is in
// the selected set. The two conditions combine with AND. Neither condition
// touches the ordering, which is applied by the caller.
func applyFilter(b sq.SelectBuilder, f domain.EntryFilter) sq.SelectBuilder {
	if f.Search != nil && *f.Search != "" {
		pattern := "%" + escapeLike(*f.Search) + "%"
		b = b.Where(sq.Or{
			sq.ILike{"website_name": pattern},
			sq.ILike{"client_name": pattern},
			sq.ILike{"email": pattern},
			sq.Expr("EXISTS (SELECT 1 FROM unnest(tags) AS t(tag) WHERE t.tag ILIKE ?)", pattern),
		})
	}

	if len(f.Tags) > 0 {
		b = b.Where(sq.Expr("tags && ?", f.Tags))
	}

	return b
}

// escapeLike escapes LIKE/ILIKE metacharacters so the search term is
// matched literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

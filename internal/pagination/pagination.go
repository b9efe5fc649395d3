// Package pagination normalizes raw list-query parameters into a bounded,
// validated descriptor used to parameterize LIMIT/OFFSET/ORDER BY queries.
package pagination

import (
	"net/http"
	"slices"
	"strconv"

	"go-movie-watchlist/pkg/apierror"
)

const (
	DirectionAsc  = "ASC"
	DirectionDesc = "DESC"

	defaultSortColumn = "id"
)

// Raw carries the query parameters exactly as the client sent them.
type Raw struct {
	Page     string
	PageSize string
	SortExp  string
	SortOrd  string
}

// Query is the normalized descriptor. SortColumn is guaranteed to come from
// the caller's allow-list (or be the default), so it is safe to interpolate
// into an ORDER BY clause.
type Query struct {
	Page          int
	PageSize      int
	SortColumn    string
	SortDirection string
	Offset        int
}

// FromRequest pulls the pagination parameters out of a request's query
// string.
func FromRequest(r *http.Request) Raw {
	q := r.URL.Query()
	return Raw{
		Page:     q.Get("page"),
		PageSize: q.Get("pageSize"),
		SortExp:  q.Get("sortExp"),
		SortOrd:  q.Get("sortOrd"),
	}
}

// Normalize validates raw parameters against the permitted sort columns.
// Page and page size are clamped to a minimum of 1; no upper bound is
// imposed here. A sort expression outside the allow-list is rejected, never
// silently corrected.
func Normalize(raw Raw, sortColumns []string) (Query, error) {
	page, err := strconv.Atoi(raw.Page)
	if err != nil {
		return Query{}, apierror.BadRequest("Page and page size must be numbers.")
	}

	pageSize, err := strconv.Atoi(raw.PageSize)
	if err != nil {
		return Query{}, apierror.BadRequest("Page and page size must be numbers.")
	}

	page = max(1, page)
	pageSize = max(1, pageSize)

	sortColumn := raw.SortExp
	if sortColumn == "" {
		sortColumn = defaultSortColumn
	} else if !slices.Contains(sortColumns, sortColumn) {
		return Query{}, apierror.BadRequest("Unknown column: " + raw.SortExp)
	}

	direction := raw.SortOrd
	if direction != DirectionAsc && direction != DirectionDesc {
		direction = DirectionDesc
	}

	return Query{
		Page:          page,
		PageSize:      pageSize,
		SortColumn:    sortColumn,
		SortDirection: direction,
		Offset:        (page - 1) * pageSize,
	}, nil
}

package listing

import (
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Query is the validated product-listing query. Page and Limit are
// always >= 1; results are ordered newest-first by the store.
type Query struct {
	Search   string
	Category string
	Page     int
	Limit    int
}

// BuildQuery turns untrusted request parameters into a Query. Missing,
// non-numeric or non-positive page/limit silently fall back to the
// defaults; no error is surfaced for bad input.
func BuildQuery(page, limit, search, category string) Query {
	return Query{
		Search:   search,
		Category: category,
		Page:     parsePositive(page, DefaultPage),
		Limit:    parsePositive(limit, DefaultLimit),
	}
}

// Skip is the number of rows to pass over before the current page.
func (q Query) Skip() int {
	return (q.Page - 1) * q.Limit
}

// NamePattern returns the LIKE pattern for the name filter, or ""
// when no search term was given.
func (q Query) NamePattern() string {
	if q.Search == "" {
		return ""
	}
	return "%" + escapeLike(q.Search) + "%"
}

// CategoryPattern returns the LIKE pattern for the category filter,
// or "" when no category was given.
func (q Query) CategoryPattern() string {
	if q.Category == "" {
		return ""
	}
	return "%" + escapeLike(q.Category) + "%"
}

func parsePositive(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return def
	}
	return v
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters so user input always
// matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

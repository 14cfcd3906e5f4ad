package repository

import (
	"strings"
	"time"
)

// Predicate is one WHERE-clause term that always lowers to bound
// parameters. User input never reaches the SQL text itself.
type Predicate struct {
	expr string
	args []any
}

func Equals(column string, value any) Predicate {
	return Predicate{expr: column + " = ?", args: []any{value}}
}

// EqualsFold compares case-insensitively via LOWER on both sides.
func EqualsFold(column string, value string) Predicate {
	return Predicate{expr: "LOWER(" + column + ") = LOWER(?)", args: []any{value}}
}

// LikeInsensitive matches value as a case-insensitive substring of any
// of the given columns.
func LikeInsensitive(value string, columns ...string) Predicate {
	terms := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, col := range columns {
		terms = append(terms, "LOWER("+col+") LIKE LOWER(?)")
		args = append(args, "%"+value+"%")
	}
	return Predicate{expr: "(" + strings.Join(terms, " OR ") + ")", args: args}
}

func GreaterOrEqual(column string, value any) Predicate {
	return Predicate{expr: column + " >= ?", args: []any{value}}
}

func LessOrEqual(column string, value any) Predicate {
	return Predicate{expr: column + " <= ?", args: []any{value}}
}

// whereClause joins predicates with AND. Zero predicates yield an
// empty clause and an unfiltered listing.
func whereClause(preds []Predicate) (string, []any) {
	if len(preds) == 0 {
		return "", nil
	}
	exprs := make([]string, 0, len(preds))
	var args []any
	for _, p := range preds {
		exprs = append(exprs, p.expr)
		args = append(args, p.args...)
	}
	return "WHERE " + strings.Join(exprs, " AND "), args
}

// RequestFilter is the optional criteria set for history listings.
// Zero-value fields contribute no predicate.
type RequestFilter struct {
	City     string
	Status   string
	Role     string
	Search   string
	DateFrom *time.Time
	DateTo   *time.Time
}

// predicates centralizes the filter-to-predicate mapping for every
// read that lists requests.
func (f RequestFilter) predicates() []Predicate {
	var preds []Predicate
	if f.City != "" {
		preds = append(preds, EqualsFold("ci.name", f.City))
	}
	if f.Status != "" {
		preds = append(preds, Equals("r.status", strings.ToLower(f.Status)))
	}
	if f.Role != "" {
		preds = append(preds, EqualsFold("u.role", f.Role))
	}
	if f.Search != "" {
		preds = append(preds, LikeInsensitive(f.Search, "u.name", "u.email"))
	}
	if f.DateFrom != nil {
		preds = append(preds, GreaterOrEqual("r.date_from", *f.DateFrom))
	}
	if f.DateTo != nil {
		preds = append(preds, LessOrEqual("r.date_to", *f.DateTo))
	}
	return preds
}

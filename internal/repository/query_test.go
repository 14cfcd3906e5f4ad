package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWhereClauseEmpty(t *testing.T) {
	clause, args := whereClause(nil)
	assert.Equal(t, "", clause)
	assert.Nil(t, args)
}

func TestWhereClauseJoinsWithAND(t *testing.T) {
	clause, args := whereClause([]Predicate{
		EqualsFold("ci.name", "Berlin"),
		Equals("r.status", "pending"),
	})
	assert.Equal(t, "WHERE LOWER(ci.name) = LOWER(?) AND r.status = ?", clause)
	assert.Equal(t, []any{"Berlin", "pending"}, args)
}

func TestLikeInsensitiveMultiColumn(t *testing.T) {
	p := LikeInsensitive("smith", "u.name", "u.email")
	assert.Equal(t, "(LOWER(u.name) LIKE LOWER(?) OR LOWER(u.email) LIKE LOWER(?))", p.expr)
	assert.Equal(t, []any{"%smith%", "%smith%"}, p.args)
}

func TestRangePredicates(t *testing.T) {
	ge := GreaterOrEqual("r.date_from", "2026-01-01")
	le := LessOrEqual("r.date_to", "2026-01-31")
	assert.Equal(t, "r.date_from >= ?", ge.expr)
	assert.Equal(t, "r.date_to <= ?", le.expr)
}

func TestRequestFilterZeroValueHasNoPredicates(t *testing.T) {
	assert.Empty(t, RequestFilter{}.predicates())
}

func TestRequestFilterFullSet(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	f := RequestFilter{
		City:     "Berlin",
		Status:   "Pending",
		Role:     "Employee",
		Search:   "alice",
		DateFrom: &from,
		DateTo:   &to,
	}

	preds := f.predicates()
	assert.Len(t, preds, 6)

	clause, args := whereClause(preds)
	assert.Equal(t,
		"WHERE LOWER(ci.name) = LOWER(?)"+
			" AND r.status = ?"+
			" AND LOWER(u.role) = LOWER(?)"+
			" AND (LOWER(u.name) LIKE LOWER(?) OR LOWER(u.email) LIKE LOWER(?))"+
			" AND r.date_from >= ?"+
			" AND r.date_to <= ?",
		clause,
	)
	// status is lowered before binding, text filters bind verbatim
	assert.Equal(t, []any{"Berlin", "pending", "Employee", "%alice%", "%alice%", from, to}, args)
}

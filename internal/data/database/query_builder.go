// Package database builds parameterized list queries with sanitized
// identifiers. It covers the shapes this service needs: filtered selects over
// a base table with optional LEFT JOINs, multi-column ordering, count-only
// variants, and limit/offset pagination.
package database

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

type ConditionType string

const (
	Equal    ConditionType = "="
	NotEqual ConditionType = "!="
	ILike    ConditionType = "ILIKE"

	defaultLimit  = -1
	defaultOffset = -1
)

// Condition is a single WHERE predicate. Field may be qualified ("jobs.title").
// When Fields is set the condition matches the value against any of them (OR).
type Condition struct {
	Field  string
	Fields []string
	Type   ConditionType
	Value  any
}

// WhereCond builds a condition for WithCondition.
func WhereCond(field string, condType ConditionType, value any) Condition {
	return Condition{Field: field, Type: condType, Value: value}
}

// WhereAnyILike builds a condition matching value case-insensitively against
// any of the given fields, e.g. "(title ILIKE $1 OR description ILIKE $2)".
func WhereAnyILike(value any, fields ...string) Condition {
	return Condition{Fields: fields, Type: ILike, Value: value}
}

// OrderClause is one ORDER BY term.
type OrderClause struct {
	Column    string
	Direction string
}

// Join is a LEFT JOIN onto the base table.
type Join struct {
	Table string
	// Left and Right are the qualified join columns, e.g. "jobs.location_id"
	// and "locations.id".
	Left  string
	Right string
}

type ListQueryOptions struct {
	Table      string
	Columns    []string
	Joins      []Join
	CountOnly  bool
	Conditions []Condition
	OrderBy    []OrderClause
	Limit      int
	Offset     int
}

type ListQueryOption func(*ListQueryOptions)

func NewListQueryOptions(table string, opts ...ListQueryOption) *ListQueryOptions {
	options := &ListQueryOptions{
		Table:  table,
		Limit:  defaultLimit,
		Offset: defaultOffset,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithColumns sets the columns to select. Each entry is either a plain or
// qualified identifier, optionally aliased with " AS ".
func WithColumns(cols ...string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Columns = cols
	}
}

// WithLeftJoin adds a LEFT JOIN clause.
func WithLeftJoin(table, left, right string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Joins = append(o.Joins, Join{Table: table, Left: left, Right: right})
	}
}

// WithCondition adds a single condition. Conditions are combined with AND.
func WithCondition(cond Condition) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Conditions = append(o.Conditions, cond)
	}
}

// WithOrderBy appends an ordering term. Call repeatedly for tie-breaks.
func WithOrderBy(column, direction string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.OrderBy = append(o.OrderBy, OrderClause{Column: column, Direction: direction})
	}
}

// WithLimit sets the limit. Accepts 0.
func WithLimit(limit int) ListQueryOption {
	return func(o *ListQueryOptions) {
		if limit >= 0 {
			o.Limit = limit
		}
	}
}

// WithOffset sets the offset. Accepts 0.
func WithOffset(offset int) ListQueryOption {
	return func(o *ListQueryOptions) {
		if offset >= 0 {
			o.Offset = offset
		}
	}
}

// WithCountOnly sets the query to count only. Ordering and pagination are
// skipped so the count is independent of the page requested.
func WithCountOnly() ListQueryOption {
	return func(o *ListQueryOptions) {
		o.CountOnly = true
	}
}

// BuildListQuery constructs a SQL query string and arguments from options,
// sanitizing every identifier through pgx.Identifier.
//
// Example usage:
//
//	options := NewListQueryOptions("jobs",
//		WithColumns("jobs.id", "jobs.title", "locations.title AS location_title"),
//		WithLeftJoin("locations", "jobs.location_id", "locations.id"),
//		WithCondition(WhereCond("jobs.department_id", Equal, 7)),
//		WithOrderBy("jobs.posted_at", "DESC"),
//		WithOrderBy("jobs.id", "DESC"),
//		WithLimit(10),
//		WithOffset(0),
//	)
//	query, args := BuildListQuery(options)
func BuildListQuery(options *ListQueryOptions) (string, []any) {
	if options == nil {
		return "", nil
	}

	var query strings.Builder

	query.WriteString(buildSelectClause(options))
	query.WriteString("FROM ")
	query.WriteString(sanitizeIdentifier(options.Table))

	for _, j := range options.Joins {
		query.WriteString(" LEFT JOIN ")
		query.WriteString(sanitizeIdentifier(j.Table))
		query.WriteString(" ON ")
		query.WriteString(sanitizeQualifiedIdentifier(j.Left))
		query.WriteString(" = ")
		query.WriteString(sanitizeQualifiedIdentifier(j.Right))
	}

	whereClause, args, nextParam := buildWhereClause(options.Conditions, 1)
	if whereClause != "" {
		query.WriteString(" ")
		query.WriteString(whereClause)
	}

	// return early for CountOnly
	if options.CountOnly {
		return query.String(), args
	}

	if len(options.OrderBy) > 0 {
		query.WriteString(" ORDER BY ")
		terms := make([]string, 0, len(options.OrderBy))
		for _, ord := range options.OrderBy {
			term := sanitizeQualifiedIdentifier(ord.Column)
			if dir := strings.ToUpper(ord.Direction); dir == "ASC" || dir == "DESC" {
				term += " " + dir
			}
			terms = append(terms, term)
		}
		query.WriteString(strings.Join(terms, ", "))
	}

	if options.Limit != defaultLimit {
		query.WriteString(fmt.Sprintf(" LIMIT $%d", nextParam))
		args = append(args, options.Limit)
		nextParam++
	}
	if options.Offset != defaultOffset {
		query.WriteString(fmt.Sprintf(" OFFSET $%d", nextParam))
		args = append(args, options.Offset)
	}

	return query.String(), args
}

// buildSelectClause generates the SELECT part of the query with sanitized columns.
func buildSelectClause(options *ListQueryOptions) string {
	if options.CountOnly {
		return "SELECT COUNT(*) "
	}
	if len(options.Columns) == 0 {
		return "SELECT * "
	}

	processed := make([]string, len(options.Columns))
	for i, col := range options.Columns {
		processed[i] = processColumnSpec(col)
	}
	return "SELECT " + strings.Join(processed, ", ") + " "
}

// buildWhereClause generates the WHERE part of the query with sanitized
// fields, numbering parameters from startParamIndex.
func buildWhereClause(inputConditions []Condition, startParamIndex int) (string, []any, int) {
	conditions := make([]string, 0, len(inputConditions))
	args := make([]any, 0, len(inputConditions))
	paramCount := startParamIndex

	for _, cond := range inputConditions {
		if len(cond.Fields) > 0 {
			alternatives := make([]string, 0, len(cond.Fields))
			for _, f := range cond.Fields {
				alternatives = append(alternatives,
					fmt.Sprintf("%s %s $%d", sanitizeQualifiedIdentifier(f), cond.Type, paramCount))
				args = append(args, cond.Value)
				paramCount++
			}
			conditions = append(conditions, "("+strings.Join(alternatives, " OR ")+")")
			continue
		}
		if cond.Field == "" {
			continue
		}
		field := sanitizeQualifiedIdentifier(cond.Field)
		conditions = append(conditions, fmt.Sprintf("%s %s $%d", field, cond.Type, paramCount))
		args = append(args, cond.Value)
		paramCount++
	}

	if len(conditions) == 0 {
		return "", args, paramCount
	}
	return "WHERE " + strings.Join(conditions, " AND "), args, paramCount
}

// processColumnSpec handles "column", "table.column" and "... AS alias" forms.
func processColumnSpec(columnSpec string) string {
	if idx := strings.Index(strings.ToUpper(columnSpec), " AS "); idx >= 0 {
		expr := strings.TrimSpace(columnSpec[:idx])
		alias := strings.TrimSpace(columnSpec[idx+len(" AS "):])
		return sanitizeQualifiedIdentifier(expr) + " AS " + sanitizeIdentifier(alias)
	}
	return sanitizeQualifiedIdentifier(columnSpec)
}

// sanitizeIdentifier wraps a single string identifier for sanitization.
func sanitizeIdentifier(ident string) string {
	return pgx.Identifier{ident}.Sanitize()
}

// sanitizeQualifiedIdentifier sanitizes qualified identifiers like "table.column".
// It splits on '.' and uses pgx.Identifier to properly quote each part.
func sanitizeQualifiedIdentifier(ident string) string {
	parts := strings.Split(ident, ".")
	return pgx.Identifier(parts).Sanitize()
}

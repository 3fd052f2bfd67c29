// Package query describes catalog reads as plain values and executes them
// against a PostgREST endpoint or a gorm connection.
package query

import (
	"context"
	"errors"
	"strings"
)

// ErrInvalidQuery is returned for a query without collection or with an incomplete join.
var ErrInvalidQuery = errors.New("invalid query")

// Executor runs a Query and decodes the records into dest, a pointer to a slice.
type Executor interface {
	Execute(ctx context.Context, q Query, dest any) error
}

// Query is a read against one collection.
type Query struct {
	Collection string
	Fields     []string // empty selects every column
	Filters    []Filter
	Order      *Order
	Joins      []Join
}

// Filter is an equality condition.
type Filter struct {
	Column string
	Value  any
}

// Order sorts by a single column.
type Order struct {
	Column string
	Desc   bool
}

// Join embeds a related collection.
// Collection is the name used by the REST endpoint, Relation the gorm association field.
type Join struct {
	Collection string
	Relation   string
	Fields     []string
	Order      *Order
	Nested     *Join
}

// Eq returns an equality filter.
func Eq(column string, value any) Filter {
	return Filter{Column: column, Value: value}
}

// Validate reports whether the query can be executed.
func (q Query) Validate() error {
	if q.Collection == "" {
		return errors.Join(ErrInvalidQuery, errors.New("collection is empty"))
	}

	for _, f := range q.Filters {
		if f.Column == "" {
			return errors.Join(ErrInvalidQuery, errors.New("filter column is empty"))
		}
	}

	for _, j := range q.Joins {
		for n := &j; n != nil; n = n.Nested {
			if n.Collection == "" || n.Relation == "" {
				return errors.Join(ErrInvalidQuery, errors.New("join needs collection and relation"))
			}
		}
	}

	return nil
}

// Select renders the column list with embedded joins, e.g.
// "id,title,bundle_datasets(datasets(title))".
func (q Query) Select() string {
	parts := append([]string(nil), q.Fields...)
	if len(parts) == 0 {
		parts = append(parts, "*")
	}

	for _, j := range q.Joins {
		parts = append(parts, j.selectExpr())
	}

	return strings.Join(parts, ",")
}

func (j Join) selectExpr() string {
	inner := append([]string(nil), j.Fields...)

	if j.Nested != nil {
		inner = append(inner, j.Nested.selectExpr())
	} else if len(inner) == 0 {
		inner = append(inner, "*")
	}

	return j.Collection + "(" + strings.Join(inner, ",") + ")"
}

// String renders an order as "column.desc" or "column.asc".
func (o Order) String() string {
	if o.Desc {
		return o.Column + ".desc"
	}

	return o.Column + ".asc"
}

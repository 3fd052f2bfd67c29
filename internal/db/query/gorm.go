package query

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDBNil is returned by a Gorm executor without connection.
var ErrDBNil = errors.New("database connection is nil")

const primaryKey = "id"

// Gorm executes queries through gorm. dest must point to a slice of models
// whose associations are named by Join.Relation.
type Gorm struct {
	db *gorm.DB
}

// NewGorm returns an executor over db.
func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// Execute implements Executor.
func (g *Gorm) Execute(ctx context.Context, q Query, dest any) error {
	if g == nil || g.db == nil {
		return ErrDBNil
	}

	if err := q.Validate(); err != nil {
		return err
	}

	tx := g.db.WithContext(ctx).Table(q.Collection)

	if len(q.Fields) > 0 {
		tx = tx.Select(withPrimaryKey(q.Fields))
	}

	for _, f := range q.Filters {
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: f.Column}, Value: f.Value})
	}

	if q.Order != nil {
		tx = tx.Order(orderBy(*q.Order))
	}

	for _, j := range q.Joins {
		tx = preload(tx, "", j)
	}

	if err := tx.Find(dest).Error; err != nil {
		return fmt.Errorf("query %s: %w", q.Collection, err)
	}

	return nil
}

func preload(tx *gorm.DB, parent string, j Join) *gorm.DB {
	path := j.Relation
	if parent != "" {
		path = parent + "." + j.Relation
	}

	tx = tx.Preload(path, func(db *gorm.DB) *gorm.DB {
		if len(j.Fields) > 0 {
			db = db.Select(withPrimaryKey(j.Fields))
		}

		if j.Order != nil {
			db = db.Order(orderBy(*j.Order))
		}

		return db
	})

	if j.Nested != nil {
		tx = preload(tx, path, *j.Nested)
	}

	return tx
}

func orderBy(o Order) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc}
}

// withPrimaryKey keeps the key selected so associations can be matched.
func withPrimaryKey(fields []string) []string {
	if slices.Contains(fields, primaryKey) {
		return fields
	}

	return append([]string{primaryKey}, fields...)
}

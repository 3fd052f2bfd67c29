// Package catalog reads the published catalog and drives the catalog tabs.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/datasetsmx/storefront/internal/db/models"
	"github.com/datasetsmx/storefront/internal/db/query"
)

// ErrNoExecutor is returned by a Client built without executor.
var ErrNoExecutor = errors.New("catalog client has no query executor")

// Client reads published datasets and bundles.
type Client struct {
	exec query.Executor
}

// NewClient returns a client running its queries through exec.
func NewClient(exec query.Executor) *Client {
	return &Client{exec: exec}
}

// DatasetsQuery selects published datasets, newest first.
func DatasetsQuery() query.Query {
	return query.Query{
		Collection: models.CollectionDatasets,
		Fields:     []string{"id", "title", "description", "price_mxn", "records_count", "category"},
		Filters:    []query.Filter{query.Eq("is_published", true)},
		Order:      &query.Order{Column: "created_at", Desc: true},
	}
}

// BundlesQuery selects published bundles with the titles of their datasets.
func BundlesQuery() query.Query {
	return query.Query{
		Collection: models.CollectionBundles,
		Fields: []string{
			"id", "title", "description", "price_mxn",
			"original_price_mxn", "discount_percentage", "ideal_for",
		},
		Filters: []query.Filter{query.Eq("is_published", true)},
		Joins: []query.Join{{
			Collection: models.CollectionBundleDatasets,
			Relation:   "BundleDatasets",
			Order:      &query.Order{Column: "created_at"},
			Nested: &query.Join{
				Collection: models.CollectionDatasets,
				Relation:   "Dataset",
				Fields:     []string{"title"},
			},
		}},
	}
}

// PublishedDatasets returns the published datasets, newest first.
// An empty slice with nil error means the catalog is empty.
func (c *Client) PublishedDatasets(ctx context.Context) ([]models.Dataset, error) {
	out := []models.Dataset{}

	if err := c.run(ctx, DatasetsQuery(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

// PublishedBundles returns the published bundles with their joined datasets.
func (c *Client) PublishedBundles(ctx context.Context) ([]models.Bundle, error) {
	out := []models.Bundle{}

	if err := c.run(ctx, BundlesQuery(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) run(ctx context.Context, q query.Query, dest any) (err error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("query %s: panic: %v", q.Collection, r)
		}

		observe(q.Collection, start, err)

		if err != nil {
			log.Error().Err(err).Str("collection", q.Collection).Msg("catalog fetch failed")
		}
	}()

	if c == nil || c.exec == nil {
		return ErrNoExecutor
	}

	return c.exec.Execute(ctx, q, dest) //nolint:wrapcheck
}

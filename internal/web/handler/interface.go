// Package handler holds what the page handlers share.
package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/datasetsmx/storefront/internal/brand"
	"github.com/datasetsmx/storefront/internal/config"
	"github.com/datasetsmx/storefront/internal/db/models"
	"github.com/datasetsmx/storefront/internal/env"
)

// ErrNilDeps is returned by Init when a required dependency is missing.
var ErrNilDeps = errors.New(ErrNilDepsFatalLogMsg)

// CatalogReader reads the published catalog.
type CatalogReader interface {
	PublishedDatasets(ctx context.Context) ([]models.Dataset, error)
	PublishedBundles(ctx context.Context) ([]models.Bundle, error)
}

// Deps are injected into every handler at startup.
// Only the browser-safe environment profile reaches the handlers.
type Deps struct {
	Config  *config.Config
	Brand   brand.Config
	Public  env.Public
	Catalog CatalogReader
}

// Validate reports missing dependencies.
func (d Deps) Validate() error {
	if d.Config == nil || d.Catalog == nil {
		return ErrNilDeps
	}

	return nil
}

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, deps Deps) error
}

// Package bundles serves the bundles panel as an HTML fragment.
package bundles

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/datasetsmx/storefront/internal/catalog"
	"github.com/datasetsmx/storefront/internal/web/handler"
	"github.com/datasetsmx/storefront/internal/web/view"
)

const (
	// Path is the path of the fragment.
	Path = handler.BundlesPath

	// TemplateName is the name of the fragment template.
	TemplateName = "catalog/bundles"

	// HeaderState carries the bundles state of the fragment.
	HeaderState = "X-Bundles-State"
)

// Service is the bundles fragment handler service.
type Service struct {
	deps handler.Deps
}

// Handler is the bundles fragment handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init registers the fragment route.
func (s *Service) Init(app *fiber.App, deps handler.Deps) error {
	if app == nil {
		return handler.ErrNilDeps
	}

	if err := deps.Validate(); err != nil {
		return err
	}

	s.deps = deps

	app.Get(Path, s.Get)

	return nil
}

// Get renders the bundles panel. A failed or timed out fetch renders the error panel
// with status 200, the page script keeps it and does not retry.
func (s *Service) Get(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), s.deps.Config.Webserver.FetchTimeoutDuration())
	defer cancel()

	ctrl := catalog.NewController(nil, false, s.deps.Catalog.PublishedBundles)
	ctrl.SelectTab(ctx, catalog.TabBundles)

	snap, err := ctrl.Settle(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("bundles fetch past the deadline, rendered as failed")
	}

	panel := view.BundlesPanel(snap, s.deps.Brand)

	c.Set(HeaderState, string(snap.BundlesState))
	c.Set(fiber.HeaderCacheControl, "no-store")

	return c.Render(TemplateName, fiber.Map{
		"Panel": panel,
	})
}

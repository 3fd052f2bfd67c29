// Package home renders the landing page.
package home

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/datasetsmx/storefront/internal/catalog"
	"github.com/datasetsmx/storefront/internal/web/handler"
	"github.com/datasetsmx/storefront/internal/web/view"
)

const (
	// Path is the path to the landing page.
	Path = handler.RootPath

	// TemplateName is the name of the landing page template.
	TemplateName = "home/index"
)

// Service is the landing page handler service.
type Service struct {
	deps handler.Deps
	now  func() time.Time
}

// Handler is the landing page handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init registers the landing page route.
func (s *Service) Init(app *fiber.App, deps handler.Deps) error {
	if app == nil {
		return handler.ErrNilDeps
	}

	if err := deps.Validate(); err != nil {
		return err
	}

	s.deps = deps
	s.now = time.Now

	app.Get(Path, s.Get)

	return nil
}

// Get renders the page. Datasets are fetched on every request; with
// ?tab=bundles the bundles are fetched too before rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), s.deps.Config.Webserver.FetchTimeoutDuration())
	defer cancel()

	datasets, err := s.deps.Catalog.PublishedDatasets(ctx)

	ctrl := catalog.NewController(datasets, err != nil, s.deps.Catalog.PublishedBundles)

	if tab, ok := catalog.ParseTab(c.Query("tab")); ok {
		ctrl.SelectTab(ctx, tab)
	}

	snap, err := ctrl.Settle(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("bundles fetch past the deadline, rendered as failed")
	}

	log.Debug().
		Int("datasets", len(snap.Datasets)).
		Bool("datasets_failed", snap.DatasetsFailed).
		Str("active_tab", string(snap.Tab)).
		Str("bundles_state", string(snap.BundlesState)).
		Msg("landing page rendered")

	page := view.BuildPage(view.PageInput{
		Brand:        s.deps.Brand,
		Snapshot:     snap,
		SiteURL:      s.deps.Public.SiteURL,
		BundlesRoute: handler.BundlesPath,
		Now:          s.now(),
	})

	return c.Render(TemplateName, fiber.Map{
		"Page": page,
	}, handler.BaseLayout)
}

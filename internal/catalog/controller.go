package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/datasetsmx/storefront/internal/db/models"
)

// ErrNoFetcher is recorded when the bundles tab is opened on a controller without fetcher.
var ErrNoFetcher = errors.New("no bundle fetcher configured")

// Tab is a catalog tab.
type Tab string

// Catalog tabs.
const (
	TabIndividual Tab = "individual"
	TabBundles    Tab = "bundles"
)

// ParseTab returns the tab named s.
func ParseTab(s string) (Tab, bool) {
	switch Tab(s) {
	case TabIndividual, TabBundles:
		return Tab(s), true
	default:
		return "", false
	}
}

// BundlesState is the load state of the bundles tab.
type BundlesState string

// Bundle load states. idle -> loading -> loaded | error, nothing leaves loaded or error.
const (
	BundlesIdle    BundlesState = "idle"
	BundlesLoading BundlesState = "loading"
	BundlesLoaded  BundlesState = "loaded"
	BundlesError   BundlesState = "error"
)

// BundleFetcher loads the published bundles.
type BundleFetcher func(ctx context.Context) ([]models.Bundle, error)

// Snapshot is the controller state at one point in time.
type Snapshot struct {
	Tab            Tab
	Datasets       []models.Dataset
	DatasetsFailed bool
	Bundles        []models.Bundle
	BundlesState   BundlesState
}

// Controller holds the catalog tab state of one page.
// Bundles are fetched at most once, on the first switch to the bundles tab.
// A failed fetch is kept as error and not retried.
type Controller struct {
	mu sync.Mutex

	tab            Tab
	datasets       []models.Dataset
	datasetsFailed bool

	fetch   BundleFetcher
	state   BundlesState
	bundles []models.Bundle
	done    chan struct{}
}

// NewController starts on the individual tab with bundles idle.
func NewController(datasets []models.Dataset, datasetsFailed bool, fetch BundleFetcher) *Controller {
	return &Controller{
		tab:            TabIndividual,
		datasets:       datasets,
		datasetsFailed: datasetsFailed,
		fetch:          fetch,
		state:          BundlesIdle,
	}
}

// SelectTab activates tab. The first switch to bundles starts the fetch in
// the background; Wait blocks until it settles. Unknown tabs are ignored.
func (c *Controller) SelectTab(ctx context.Context, tab Tab) {
	if _, ok := ParseTab(string(tab)); !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.tab = tab

	if tab != TabBundles || c.state != BundlesIdle {
		return
	}

	c.state = BundlesLoading
	c.done = make(chan struct{})

	go c.load(ctx, c.fetch, c.done)
}

func (c *Controller) load(ctx context.Context, fetch BundleFetcher, done chan struct{}) {
	defer close(done)

	var (
		bundles []models.Bundle
		err     error
	)

	if fetch == nil {
		err = ErrNoFetcher
	} else {
		bundles, err = fetch(ctx)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		log.Error().Err(err).Msg("bundles could not be loaded")

		c.state = BundlesError

		return
	}

	if bundles == nil {
		bundles = []models.Bundle{}
	}

	c.bundles = bundles
	c.state = BundlesLoaded
}

// Wait blocks until a started bundles fetch has settled or ctx is done.
// It returns immediately when no fetch was started.
func (c *Controller) Wait(ctx context.Context) error {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()

	if done == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck
	}
}

// Settle waits like Wait and returns the snapshot to render. When ctx ends
// before the fetch settles, the snapshot reports the bundles as failed so a
// rendered page never shows a loading panel nothing will complete.
func (c *Controller) Settle(ctx context.Context) (Snapshot, error) {
	err := c.Wait(ctx)

	s := c.Snapshot()
	if err != nil && s.BundlesState == BundlesLoading {
		s.BundlesState = BundlesError
	}

	return s, err
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		Tab:            c.tab,
		Datasets:       c.datasets,
		DatasetsFailed: c.datasetsFailed,
		Bundles:        c.bundles,
		BundlesState:   c.state,
	}
}

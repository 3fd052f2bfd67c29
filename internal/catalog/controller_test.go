package catalog

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datasetsmx/storefront/internal/db/models"
)

func twoBundles() []models.Bundle {
	return []models.Bundle{{Title: "Pack Profesional"}, {Title: "All Access"}}
}

// countingFetcher returns a fetcher counting its calls. It blocks until release is closed.
func countingFetcher(calls *atomic.Int32, release <-chan struct{}, bundles []models.Bundle, err error) BundleFetcher {
	return func(ctx context.Context) ([]models.Bundle, error) {
		calls.Add(1)

		if release != nil {
			select {
			case <-release:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		return bundles, err
	}
}

func TestParseTab(t *testing.T) {
	tab, ok := ParseTab("bundles")
	assert.True(t, ok)
	assert.Equal(t, TabBundles, tab)

	tab, ok = ParseTab("individual")
	assert.True(t, ok)
	assert.Equal(t, TabIndividual, tab)

	_, ok = ParseTab("Bundles")
	assert.False(t, ok)
}

func TestController_InitialState(t *testing.T) {
	c := NewController([]models.Dataset{{Title: "RFC"}}, false, nil)

	s := c.Snapshot()
	assert.Equal(t, TabIndividual, s.Tab)
	assert.Equal(t, BundlesIdle, s.BundlesState)
	assert.Len(t, s.Datasets, 1)
	assert.NoError(t, c.Wait(context.Background()), "nothing to wait for")
}

func TestController_IndividualHasNoDataEffect(t *testing.T) {
	var calls atomic.Int32

	c := NewController(nil, false, countingFetcher(&calls, nil, twoBundles(), nil))
	c.SelectTab(context.Background(), TabIndividual)
	c.SelectTab(context.Background(), TabIndividual)

	assert.Equal(t, BundlesIdle, c.Snapshot().BundlesState)
	assert.Zero(t, calls.Load())
}

func TestController_FetchOnce(t *testing.T) {
	var calls atomic.Int32

	release := make(chan struct{})
	c := NewController(nil, false, countingFetcher(&calls, release, twoBundles(), nil))

	ctx := context.Background()

	c.SelectTab(ctx, TabBundles)
	assert.Equal(t, BundlesLoading, c.Snapshot().BundlesState)

	// switching back and forth while loading starts no second fetch
	c.SelectTab(ctx, TabIndividual)
	c.SelectTab(ctx, TabBundles)
	assert.Equal(t, BundlesLoading, c.Snapshot().BundlesState)

	close(release)
	require.NoError(t, c.Wait(ctx))

	s := c.Snapshot()
	assert.Equal(t, TabBundles, s.Tab)
	assert.Equal(t, BundlesLoaded, s.BundlesState)
	assert.Len(t, s.Bundles, 2)

	// loaded is final
	c.SelectTab(ctx, TabIndividual)
	c.SelectTab(ctx, TabBundles)
	require.NoError(t, c.Wait(ctx))

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, BundlesLoaded, c.Snapshot().BundlesState)
}

func TestController_ErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32

	c := NewController(nil, false, countingFetcher(&calls, nil, nil, errors.New("network down")))

	ctx := context.Background()

	c.SelectTab(ctx, TabBundles)
	require.NoError(t, c.Wait(ctx))
	assert.Equal(t, BundlesError, c.Snapshot().BundlesState)

	for range 3 {
		c.SelectTab(ctx, TabIndividual)
		c.SelectTab(ctx, TabBundles)
		require.NoError(t, c.Wait(ctx))
	}

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, BundlesError, c.Snapshot().BundlesState)
}

func TestController_EmptyBundles(t *testing.T) {
	var calls atomic.Int32

	c := NewController(nil, false, countingFetcher(&calls, nil, nil, nil))
	c.SelectTab(context.Background(), TabBundles)
	require.NoError(t, c.Wait(context.Background()))

	s := c.Snapshot()
	assert.Equal(t, BundlesLoaded, s.BundlesState)
	assert.NotNil(t, s.Bundles)
	assert.Empty(t, s.Bundles)
}

func TestController_NoFetcher(t *testing.T) {
	c := NewController(nil, false, nil)
	c.SelectTab(context.Background(), TabBundles)
	require.NoError(t, c.Wait(context.Background()))

	assert.Equal(t, BundlesError, c.Snapshot().BundlesState)
}

func TestController_UnknownTabIgnored(t *testing.T) {
	c := NewController(nil, false, nil)
	c.SelectTab(context.Background(), Tab("pricing"))

	assert.Equal(t, TabIndividual, c.Snapshot().Tab)
}

func TestController_WaitHonoursContext(t *testing.T) {
	var calls atomic.Int32

	release := make(chan struct{})
	defer close(release)

	c := NewController(nil, false, countingFetcher(&calls, release, twoBundles(), nil))
	c.SelectTab(context.Background(), TabBundles)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, c.Wait(ctx), context.DeadlineExceeded)
	assert.Equal(t, BundlesLoading, c.Snapshot().BundlesState)
}

func TestController_FetchContextCanceled(t *testing.T) {
	var calls atomic.Int32

	release := make(chan struct{})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())

	c := NewController(nil, false, countingFetcher(&calls, release, twoBundles(), nil))
	c.SelectTab(ctx, TabBundles)
	cancel()

	require.NoError(t, c.Wait(context.Background()))
	assert.Equal(t, BundlesError, c.Snapshot().BundlesState)
}

func TestController_ConcurrentSelect(t *testing.T) {
	var calls atomic.Int32

	c := NewController(nil, false, countingFetcher(&calls, nil, twoBundles(), nil))

	done := make(chan struct{})

	for range 20 {
		go func() {
			c.SelectTab(context.Background(), TabBundles)
			done <- struct{}{}
		}()
	}

	for range 20 {
		<-done
	}

	require.NoError(t, c.Wait(context.Background()))
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, BundlesLoaded, c.Snapshot().BundlesState)
}

func TestController_SettleAfterDeadlineReportsError(t *testing.T) {
	var calls atomic.Int32

	release := make(chan struct{})
	defer close(release)

	// the fetcher ignores the request context and outlives it
	fetch := func(context.Context) ([]models.Bundle, error) {
		calls.Add(1)
		<-release

		return twoBundles(), nil
	}

	c := NewController(nil, false, fetch)
	c.SelectTab(context.Background(), TabBundles)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	s, err := c.Settle(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, BundlesError, s.BundlesState)
	assert.Empty(t, s.Bundles)

	assert.Equal(t, BundlesLoading, c.Snapshot().BundlesState, "the controller itself is untouched")
	assert.Equal(t, int32(1), calls.Load())
}

func TestController_SettleWithoutFetch(t *testing.T) {
	c := NewController([]models.Dataset{{Title: "RFC"}}, false, nil)

	s, err := c.Settle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, BundlesIdle, s.BundlesState)
	assert.Len(t, s.Datasets, 1)
}

func TestController_SettleLoaded(t *testing.T) {
	var calls atomic.Int32

	c := NewController(nil, false, countingFetcher(&calls, nil, twoBundles(), nil))
	c.SelectTab(context.Background(), TabBundles)

	s, err := c.Settle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, BundlesLoaded, s.BundlesState)
	assert.Len(t, s.Bundles, 2)
}

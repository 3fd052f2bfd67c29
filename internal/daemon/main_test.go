package daemon

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datasetsmx/storefront/internal/catalog"
	"github.com/datasetsmx/storefront/internal/config"
	"github.com/datasetsmx/storefront/internal/db/query"
	"github.com/datasetsmx/storefront/internal/env"
)

func sqliteConfig(t *testing.T, seed bool) *config.Config {
	t.Helper()

	return &config.Config{
		Title: "Datasets MX",
		Webserver: config.Webserver{
			Port:         3000,
			URL:          "http://localhost:3000",
			FetchTimeout: 5,
		},
		DB: config.DB{
			Driver: config.DriverSQLite,
			Path:   filepath.Join(t.TempDir(), "catalog.db"),
			Seed:   seed,
		},
	}
}

func TestNewExecutor_REST(t *testing.T) {
	cfg := &config.Config{DB: config.DB{Driver: config.DriverREST}}

	exec, err := NewExecutor(cfg, env.Public{SupabaseURL: "https://abc.supabase.co", SupabaseAnonKey: "sb_publishable_x"})
	require.NoError(t, err)
	assert.IsType(t, &query.REST{}, exec)
}

func TestNewExecutor_UnknownDriver(t *testing.T) {
	_, err := NewExecutor(&config.Config{DB: config.DB{Driver: "mysql"}}, env.Public{})
	assert.ErrorIs(t, err, config.ErrUnknownDriver)
}

func TestNewExecutor_SQLiteSeeded(t *testing.T) {
	cfg := sqliteConfig(t, true)

	exec, err := NewExecutor(cfg, env.Public{})
	require.NoError(t, err)

	client := catalog.NewClient(exec)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	datasets, err := client.PublishedDatasets(ctx)
	require.NoError(t, err)
	require.Len(t, datasets, 5, "the unpublished dataset is hidden")
	assert.Equal(t, "RFC Sintéticos", datasets[0].Title)
	assert.Equal(t, "Transacciones Bancarias", datasets[4].Title)

	bundles, err := client.PublishedBundles(ctx)
	require.NoError(t, err)
	require.Len(t, bundles, 2)

	byTitle := map[string][]string{}
	for _, b := range bundles {
		for _, d := range b.IncludedDatasets() {
			byTitle[b.Title] = append(byTitle[b.Title], d.Title)
		}
	}

	assert.Equal(t, []string{"RFC Sintéticos", "CURP Sintéticos", "Direcciones de México"}, byTitle["Pack Profesional"])
	assert.Len(t, byTitle["All Access"], 5)
}

func TestNewExecutor_SeedIsIdempotent(t *testing.T) {
	cfg := sqliteConfig(t, true)

	_, err := NewExecutor(cfg, env.Public{})
	require.NoError(t, err)

	exec, err := NewExecutor(cfg, env.Public{})
	require.NoError(t, err)

	datasets, err := catalog.NewClient(exec).PublishedDatasets(context.Background())
	require.NoError(t, err)
	assert.Len(t, datasets, 5)
}

func TestNewExecutor_SQLiteEmpty(t *testing.T) {
	exec, err := NewExecutor(sqliteConfig(t, false), env.Public{})
	require.NoError(t, err)

	datasets, err := catalog.NewClient(exec).PublishedDatasets(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, datasets)
	assert.Empty(t, datasets)
}

func TestNew(t *testing.T) {
	_, err := New(nil, env.Public{})
	assert.ErrorIs(t, err, ErrNilConfig)

	d, err := New(sqliteConfig(t, true), env.Public{SiteURL: "http://localhost:3000"})
	require.NoError(t, err)
	assert.NotNil(t, d.webService)
	assert.True(t, d.webService.Alive())
}

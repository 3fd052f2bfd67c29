// Package daemon wires the catalog source, the catalog client and the web service.
package daemon

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/datasetsmx/storefront/internal/brand"
	"github.com/datasetsmx/storefront/internal/catalog"
	"github.com/datasetsmx/storefront/internal/config"
	"github.com/datasetsmx/storefront/internal/db/dsn"
	"github.com/datasetsmx/storefront/internal/db/models"
	"github.com/datasetsmx/storefront/internal/db/query"
	"github.com/datasetsmx/storefront/internal/env"
	"github.com/datasetsmx/storefront/internal/logger/adapter/gormlog"
	"github.com/datasetsmx/storefront/internal/web"
	"github.com/datasetsmx/storefront/internal/web/handler"
)

// ErrNilConfig is returned by New without configuration.
var ErrNilConfig = errors.New("config is nil")

const slowQuery = 200 * time.Millisecond

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
}

// Start serves until SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start()
}

// New creates a daemon reading the catalog through the configured driver.
func New(cfg *config.Config, public env.Public) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	exec, err := NewExecutor(cfg, public)
	if err != nil {
		return nil, err
	}

	ws, err := web.New(handler.Deps{
		Config:  cfg,
		Brand:   brand.Default(),
		Public:  public,
		Catalog: catalog.NewClient(exec),
	})
	if err != nil {
		return nil, err
	}

	return &Daemon{webService: ws}, nil
}

// NewExecutor returns the query executor of cfg.DB.Driver.
func NewExecutor(cfg *config.Config, public env.Public) (query.Executor, error) {
	log.Info().Str("driver", cfg.DB.Driver).Msg("catalog source")

	switch cfg.DB.Driver {
	case config.DriverREST:
		return query.NewREST(public.SupabaseURL, public.SupabaseAnonKey, cfg.Webserver.FetchTimeoutDuration()), nil

	case config.DriverPostgres:
		// the hosted schema is owned by the database, never migrated from here
		db, err := open(postgres.Open(dsn.Create(cfg)))
		if err != nil {
			return nil, err
		}

		return query.NewGorm(db), nil

	case config.DriverSQLite:
		db, err := open(sqlite.Open(cfg.DB.Path))
		if err != nil {
			return nil, err
		}

		if err = db.AutoMigrate(&models.Dataset{}, &models.Bundle{}, &models.BundleDataset{}); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}

		if cfg.DB.Seed {
			if err = seed(db, time.Now()); err != nil {
				return nil, fmt.Errorf("failed to seed database: %w", err)
			}
		}

		return query.NewGorm(db), nil

	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.DB.Driver)
	}
}

func open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   gormlog.New(slowQuery),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	return db, nil
}

package app

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/datasetsmx/storefront/internal/daemon"
	"github.com/datasetsmx/storefront/internal/env"
	"github.com/datasetsmx/storefront/internal/logger"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	startCmd.Flags().BoolVar(
		&browseStatic,
		"browse",
		false,
		"Enable static file browsing (for development purposes only)",
	)

	rootCmd.AddCommand(startCmd)
}

var (
	devMode      bool
	browseStatic bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the storefront web service",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := readConfig(cmd, args); err != nil {
				return err
			}

			if devMode {
				cfg.DevMode = true
			}

			if browseStatic {
				cfg.Webserver.BrowseStatic = true
			}

			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			full, err := loadEnv(cfg.Webserver.DotEnv)
			if err != nil {
				return envFailure(err)
			}

			if cfg.Log.LogEnv == "" {
				cfg.Log.LogEnv = full.AppEnv
			}

			if err = logger.Init(cfg.Log); err != nil {
				return err
			}

			log.Info().
				Str("env", full.AppEnv).
				Bool("dev", cfg.DevMode).
				Str("driver", cfg.DB.Driver).
				Msg("starting storefront")

			d, err := daemon.New(&cfg, full.Public)
			if err != nil {
				return err
			}

			return d.Start()
		},
	}
)

// exit is os.Exit, replaced in tests.
var exit = os.Exit //nolint:gochecknoglobals

// envFailure exits with status 1 on a validation error, whose diagnostic is
// already on stderr. Any other error is returned for cobra to print.
func envFailure(err error) error {
	var verr *env.Error
	if errors.As(err, &verr) {
		exit(1)
	}

	return err
}

// loadEnv validates the full profile from the process environment and
// the optional dotenv file.
func loadEnv(dotenv string) (env.Full, error) {
	v, err := env.NewViper(dotenv)
	if err != nil {
		return env.Full{}, err
	}

	return env.Load(env.FromViper(v), os.Stderr)
}

package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/datasetsmx/storefront/internal/env"
)

func init() { //nolint: gochecknoinits
	envCheckCmd.Flags().BoolVar(&publicOnly, "public", false, "Validate the browser-safe profile only")

	envCmd.AddCommand(envCheckCmd)
	rootCmd.AddCommand(envCmd)
}

var (
	publicOnly bool

	envCmd = &cobra.Command{
		Use:   "env",
		Short: "Inspect the environment variables",
	}

	envCheckCmd = &cobra.Command{
		Use:     "check",
		Short:   "Validate the environment variables without starting the server",
		PreRunE: readConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				public env.Public
				err    error
			)

			if publicOnly {
				public, err = loadPublicEnv(cfg.Webserver.DotEnv)
			} else {
				var full env.Full

				full, err = loadEnv(cfg.Webserver.DotEnv)
				public = full.Public
			}

			if err != nil {
				return envFailure(err)
			}

			printPublic(cmd, public)

			return nil
		},
	}
)

// loadPublicEnv validates the browser-safe profile only.
func loadPublicEnv(dotenv string) (env.Public, error) {
	v, err := env.NewViper(dotenv)
	if err != nil {
		return env.Public{}, err
	}

	return env.LoadPublic(env.FromViper(v), os.Stderr)
}

// printPublic prints the browser-safe values. Secrets are never printed.
func printPublic(cmd *cobra.Command, p env.Public) {
	out := cmd.OutOrStdout()

	_, _ = fmt.Fprintln(out, "environment OK")
	_, _ = fmt.Fprintf(out, "  PUBLIC_SITE_URL=%s\n", p.SiteURL)
	_, _ = fmt.Fprintf(out, "  PUBLIC_SUPABASE_URL=%s\n", p.SupabaseURL)
	_, _ = fmt.Fprintf(out, "  APP_ENV=%s\n", p.AppEnv)
}

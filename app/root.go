// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/datasetsmx/storefront/internal/config"
)

var (
	configPath string // directory holding main.toml
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "datasetsmx",
	Short: "Datasets MX serves the dataset marketplace landing page",
	Long: `Datasets MX serves the landing page and catalog of the dataset marketplace:
published datasets, discounted bundles and the free sample download.`,
	Args:          cobra.OnlyValidArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./etc/", "directory holding main.toml")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// readConfig loads cfg from configPath.
func readConfig(_ *cobra.Command, _ []string) error {
	var err error

	cfg, err = config.ReadConfig(configPath)

	return err
}

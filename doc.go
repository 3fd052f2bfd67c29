// Package main is the entry point of the Datasets MX storefront.
// It validates the environment, reads etc/main.toml and serves the
// landing page with the dataset and bundle catalog using the Fiber
// framework. The catalog is read from the hosted REST API, from
// PostgreSQL or from a local SQLite file, depending on the configuration.
package main

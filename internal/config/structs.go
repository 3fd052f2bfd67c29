package config

import (
	"github.com/datasetsmx/storefront/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool   // enable static file browsing (for development purposes only)
	CacheEnabled   bool   // true = enable cache, false = disable cache
	DisableRecover bool   // disable recover middleware
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	FetchTimeout   int    // seconds a single catalog fetch may take
	URL            string // base url for the webserver
	PublicDir      string // directory served under /muestras (sample files)
	DotEnv         string // optional dotenv file with the process variables
}

// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"strings"

	"github.com/datasetsmx/storefront/internal/config"
)

// Create builds the key/value postgres DSN from the configuration.
// Extras are appended as they are, e.g. "sslmode=disable TimeZone=UTC".
func Create(cfg *config.Config) string {
	parts := []string{
		"host=" + quote(cfg.DB.Host),
		fmt.Sprintf("port=%d", cfg.DB.Port),
		"user=" + quote(cfg.DB.User),
		"password=" + quote(cfg.DB.Password),
		"dbname=" + quote(cfg.DB.Name),
	}

	if cfg.DB.Extras != "" {
		parts = append(parts, cfg.DB.Extras)
	}

	return strings.Join(parts, " ")
}

// quote wraps values holding spaces or quotes as libpq expects.
func quote(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}

	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)

	return "'" + r.Replace(v) + "'"
}

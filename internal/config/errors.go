package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownDriver error if config db.driver is not one of rest, postgres or sqlite.
	ErrUnknownDriver = errors.New("toml config db.driver must be rest, postgres or sqlite")

	// ErrEmptySQLitePath error if the sqlite driver is selected without db.path.
	ErrEmptySQLitePath = errors.New("toml config db.path can not be empty for the sqlite driver")

	// ErrSeedNeedsSQLite error if db.seed is enabled for a driver other than sqlite.
	ErrSeedNeedsSQLite = errors.New("toml config db.seed is only supported with the sqlite driver")
)

// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// EnvConfigJSON names the variable holding a JSON document merged over main.toml.
const EnvConfigJSON = "DATASETSMX_CONFIG_JSON"

const (
	defaultShutDownTime = 5  // seconds
	defaultFetchTimeout = 10 // seconds
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	c = applyDefaults(c)

	return c, validate(c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config from "+EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// FetchTimeoutDuration returns the catalog fetch deadline as a duration.
func (w Webserver) FetchTimeoutDuration() time.Duration {
	return time.Duration(w.FetchTimeout) * time.Second
}

func applyDefaults(c Config) Config {
	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Webserver.FetchTimeout <= 0 {
		c.Webserver.FetchTimeout = defaultFetchTimeout
	}

	if c.DB.Driver == "" {
		c.DB.Driver = DriverREST
	}

	return c
}

// validate minimal config settings.
func validate(c Config) error {
	invalidErrMessage := "invalid config"

	// validate webserver listening port
	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	switch c.DB.Driver {
	case DriverREST, DriverPostgres:
		if c.DB.Seed {
			return errors.Wrap(ErrSeedNeedsSQLite, invalidErrMessage)
		}
	case DriverSQLite:
		if c.DB.Path == "" {
			return errors.Wrap(ErrEmptySQLitePath, invalidErrMessage)
		}
	default:
		return errors.Wrapf(ErrUnknownDriver, "%s: got %q", invalidErrMessage, c.DB.Driver)
	}

	return nil
}

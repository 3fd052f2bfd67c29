package env

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// NewViper returns a viper instance reading the process environment and,
// if dotenvPath points to an existing file, the variables declared in it.
// Process environment values win over the file.
func NewViper(dotenvPath string) (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()

	if dotenvPath == "" {
		return v, nil
	}

	if _, err := os.Stat(dotenvPath); err != nil {
		if os.IsNotExist(err) {
			return v, nil
		}

		return nil, errors.Wrap(err, "failed to stat dotenv file")
	}

	v.SetConfigFile(dotenvPath)
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read dotenv file %s", dotenvPath)
	}

	return v, nil
}

// FromViper looks variables up in v.
func FromViper(v *viper.Viper) Lookup {
	return func(key string) (string, bool) {
		value := v.GetString(key)
		return value, value != ""
	}
}

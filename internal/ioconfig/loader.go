package ioconfig

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/gnames/winedb/pkg/config"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override
// config.yaml values.
const EnvPrefix = "WINEDB"

// Load reads config.yaml from the config directory of homeDir and
// applies environment overrides. A missing file is not an error,
// in that case only environment variables are used. Fields that
// are not set stay empty, use Config.ToOptions to merge them with
// defaults.
func Load(homeDir string) (*config.Config, error) {
	cfgPath := config.ConfigFilePath(homeDir)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if _, err := os.Stat(cfgPath); err == nil {
		if err = v.ReadInConfig(); err != nil {
			return nil, ReadConfigError(cfgPath, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, ReadConfigError(cfgPath, err)
	}

	var res config.Config
	if err := v.Unmarshal(&res); err != nil {
		return nil, ReadConfigError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Env variables are bound one by one to make it clear which of
	// them are allowed. They match fields of Config.ToOptions().
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	_ = v.BindEnv("database.driver", "WINEDB_DATABASE_DRIVER")
	_ = v.BindEnv("database.path", "WINEDB_DATABASE_PATH")
	_ = v.BindEnv("database.host", "WINEDB_DATABASE_HOST")
	_ = v.BindEnv("database.port", "WINEDB_DATABASE_PORT")
	_ = v.BindEnv("database.user", "WINEDB_DATABASE_USER")
	_ = v.BindEnv("database.password", "WINEDB_DATABASE_PASSWORD")
	_ = v.BindEnv("database.database", "WINEDB_DATABASE_DATABASE")
	_ = v.BindEnv("database.ssl_mode", "WINEDB_DATABASE_SSL_MODE")

	// Log configuration
	_ = v.BindEnv("log.level", "WINEDB_LOG_LEVEL")
	_ = v.BindEnv("log.format", "WINEDB_LOG_FORMAT")
	_ = v.BindEnv("log.destination", "WINEDB_LOG_DESTINATION")

	// General configuration
	_ = v.BindEnv("jobs_number", "WINEDB_JOBS_NUMBER")

	v.AutomaticEnv()
}

// Package config loads server configuration from flags, environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ivoronin/databoxes/internal/logger"
)

// EnvPrefix prefixes every environment variable, e.g. DATABOXES_DB_DSN.
const EnvPrefix = "DATABOXES"

// DB holds database configuration.
type DB struct {
	Driver  string `mapstructure:"driver"`
	DSN     string `mapstructure:"dsn"`
	Migrate bool   `mapstructure:"migrate"`
}

// Config is the server configuration.
type Config struct {
	Listen string        `mapstructure:"listen"`
	DB     DB            `mapstructure:"db"`
	Log    logger.Config `mapstructure:"log"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Listen: ":8080",
		DB:     DB{Driver: "sqlite", DSN: "databoxes.db", Migrate: true},
		Log:    logger.Config{Level: "info", Format: "text"},
	}
}

// Load merges, lowest to highest precedence: defaults, the config file
// (if path is set), DATABOXES_* environment variables and changed flags.
// Flag names use dots for nesting, e.g. --db.dsn.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault("listen", d.Listen)
	v.SetDefault("db.driver", d.DB.Driver)
	v.SetDefault("db.dsn", d.DB.DSN)
	v.SetDefault("db.migrate", d.DB.Migrate)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Package config loads runtime settings from defaults, an optional config
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the service settings.
type Config struct {
	AppPort          string
	DBDriver         string
	DatabaseDSN      string
	DBLogLevel       string
	RabbitMQURL      string
	EventsQueue      string
	CORSAllowOrigins string
	ShutdownTimeout  time.Duration
}

// New returns a viper instance with every default applied and environment
// lookup enabled.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_DSN", "productorders.db")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("EVENTS_QUEUE", "catalog_events")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.AutomaticEnv()
	return v
}

// Load reads config.yaml from the given search paths (the working
// directory when none are given) and overlays the environment. A missing
// config file is not an error.
func Load(paths ...string) (*Config, error) {
	v := New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppPort:          v.GetString("APP_PORT"),
		DBDriver:         strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseDSN:      v.GetString("DATABASE_DSN"),
		DBLogLevel:       strings.ToLower(v.GetString("DB_LOG_LEVEL")),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		EventsQueue:      v.GetString("EVENTS_QUEUE"),
		CORSAllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		ShutdownTimeout:  v.GetDuration("SHUTDOWN_TIMEOUT"),
	}
	switch cfg.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if cfg.DatabaseDSN == "" {
		return nil, errors.New("DATABASE_DSN must be provided")
	}
	if cfg.EventsQueue == "" {
		return nil, errors.New("EVENTS_QUEUE must not be empty")
	}
	return cfg, nil
}

// EventsEnabled reports whether a RabbitMQ broker is configured.
func (c *Config) EventsEnabled() bool {
	return c != nil && c.RabbitMQURL != ""
}

// Package config loads settings from the environment with envconfig.
//
// Everything except the session secret lives under the APP_ prefix with flat
// names (APP_PORT, APP_DB_HOST, APP_LOG_LEVEL). The secret is SESSION_SECRET.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "APP"

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	App      AppConfig
	Session  SessionConfig
}

type ServerConfig struct {
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"jokeshare"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// Pool sizing. MaxIdleConns maps to the pool's minimum size.
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`

	// ConnectRetries is how many extra pings New makes before giving up.
	ConnectRetries uint64 `envconfig:"DB_CONNECT_RETRIES" default:"5"`

	// AutoMigrate applies pending migrations when the server starts.
	AutoMigrate bool `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

// DSN returns a postgres:// URL with the credentials escaped.
func (c *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`  // debug, info, warn, error
	Format string `envconfig:"LOG_FORMAT" default:"json"` // json, text, plain
}

type AppConfig struct {
	Env string `envconfig:"ENV" default:"development"`
}

// IsProduction reports whether Env is "production"; session cookies are
// marked Secure only then.
func (c *AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

type SessionConfig struct {
	Secret string `envconfig:"SESSION_SECRET" required:"true"`
}

// ErrMissingSessionSecret is returned when SESSION_SECRET is unset or empty.
var ErrMissingSessionSecret = errors.New("SESSION_SECRET must be set")

// Load reads the whole configuration. A missing session secret is fatal.
func Load() (*Config, error) {
	var cfg Config
	sections := []struct {
		name   string
		target any
	}{
		{"server", &cfg.Server},
		{"database", &cfg.Database},
		{"log", &cfg.Log},
		{"app", &cfg.App},
	}
	for _, s := range sections {
		if err := envconfig.Process(envPrefix, s.target); err != nil {
			return nil, fmt.Errorf("load %s config: %w", s.name, err)
		}
	}

	if err := envconfig.Process("", &cfg.Session); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingSessionSecret, err)
	}
	if cfg.Session.Secret == "" {
		return nil, ErrMissingSessionSecret
	}
	return &cfg, nil
}

// LoadDatabase reads only the database section, so the migrate command runs
// without a session secret.
func LoadDatabase() (*DatabaseConfig, error) {
	var db DatabaseConfig
	if err := envconfig.Process(envPrefix, &db); err != nil {
		return nil, fmt.Errorf("load database config: %w", err)
	}
	return &db, nil
}

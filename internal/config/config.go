// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Data     DataConfig
	Store    StoreConfig
	Generate GenerateConfig
	Server   ServerConfig
	Logging  LoggingConfig
}

// DataConfig holds the location of the generated CSV files.
type DataConfig struct {
	// Dir is the directory the generator writes to and the loader reads from (default: data)
	Dir string `env:"DATA_DIR" default:"data"`
}

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// StoreConfig holds relational store settings.
type StoreConfig struct {
	// Driver selects the store: sqlite or postgres (default: sqlite)
	Driver string `env:"STORE_DRIVER" default:"sqlite"`

	// SQLitePath is the database file (default: <DATA_DIR>/ecommerce.db)
	SQLitePath string `env:"SQLITE_PATH"`

	// URL is the PostgreSQL connection string (required for the postgres driver)
	// Supports both DATABASE_URL and DB_URL env vars for compatibility
	URL string `env:"DATABASE_URL" envAlt:"DB_URL"`

	// MaxConns is the maximum number of connections in the pool (default: 4)
	MaxConns int `env:"DB_MAX_CONNS" default:"4"`

	// MinConns is the minimum number of connections to keep open (default: 0)
	MinConns int `env:"DB_MIN_CONNS" default:"0"`

	// MaxConnLifetime is the maximum lifetime of a connection (default: 1h)
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" default:"1h"`

	// MaxConnIdleTime is the maximum idle time before a connection is closed (default: 30m)
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`

	// LoadTimeout bounds a complete load run (default: 10m)
	LoadTimeout time.Duration `env:"LOAD_TIMEOUT" default:"10m"`
}

// GenerateConfig holds dataset generation settings.
type GenerateConfig struct {
	// Seed drives the pseudo-random stream (default: 42)
	Seed uint32 `env:"GEN_SEED" default:"42"`

	Customers  int `env:"GEN_CUSTOMERS" default:"1000"`
	Categories int `env:"GEN_CATEGORIES" default:"1000"`
	Products   int `env:"GEN_PRODUCTS" default:"1000"`
	Orders     int `env:"GEN_ORDERS" default:"1000"`

	// MinItems and MaxItems bound the lines per order, inclusive (default: 1-6)
	MinItems int `env:"GEN_MIN_ITEMS" default:"1"`
	MaxItems int `env:"GEN_MAX_ITEMS" default:"6"`

	// HistoryWindow is how far back customer creation dates reach (default: 3 years)
	HistoryWindow time.Duration `env:"GEN_HISTORY_WINDOW" default:"26280h"`

	// Now pins the generation clock (RFC 3339). Zero means the process start time.
	Now time.Time `env:"GEN_NOW"`

	// Profile is an optional YAML file whose values override the above
	Profile string `env:"GEN_PROFILE"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

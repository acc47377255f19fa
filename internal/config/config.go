// Package config loads service configuration from environment variables,
// an optional .env file, and defaults.
package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default configuration values.
const (
	defaultServiceName    = "ingestor"
	defaultServiceVersion = "1.0.0"
	defaultServicePort    = 8090
	defaultLogLevel       = "info"

	defaultDBHost    = "localhost"
	defaultDBPort    = 5432
	defaultDBUser    = "postgres"
	defaultDBName    = "questionforge"
	defaultDBSSLMode = "disable"

	defaultFetchTimeout    = 15 * time.Second
	defaultBlogContentCap  = 10000
	defaultGenericContCap  = 5000
	defaultListLimit       = 10
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 30 * time.Second
)

// Config holds all configuration for the ingestor service.
type Config struct {
	Service  ServiceConfig
	Database DatabaseConfig
	Fetch    FetchConfig
	Server   ServerConfig
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name     string
	Version  string
	Port     int
	LogLevel string
	Debug    bool
}

// DatabaseConfig holds PostgreSQL configuration.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// FetchConfig bounds remote page fetches and extracted content size.
type FetchConfig struct {
	Timeout           time.Duration
	BlogContentCap    int
	GenericContentCap int
}

// ServerConfig holds HTTP server timeouts.
type ServerConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load reads configuration. A .env file in the working directory is applied
// first when present; explicit environment variables win.
func Load() (*Config, error) {
	// Missing .env is not an error; containers inject env directly.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("INGESTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", defaultServicePort)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("debug", false)
	v.SetDefault("db.host", defaultDBHost)
	v.SetDefault("db.port", defaultDBPort)
	v.SetDefault("db.user", defaultDBUser)
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", defaultDBName)
	v.SetDefault("db.sslmode", defaultDBSSLMode)
	v.SetDefault("fetch.timeout", defaultFetchTimeout)
	v.SetDefault("fetch.blog_cap", defaultBlogContentCap)
	v.SetDefault("fetch.generic_cap", defaultGenericContCap)

	cfg := &Config{
		Service: ServiceConfig{
			Name:     defaultServiceName,
			Version:  defaultServiceVersion,
			Port:     v.GetInt("port"),
			LogLevel: v.GetString("log_level"),
			Debug:    v.GetBool("debug"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			Database: v.GetString("db.name"),
			SSLMode:  v.GetString("db.sslmode"),
		},
		Fetch: FetchConfig{
			Timeout:           v.GetDuration("fetch.timeout"),
			BlogContentCap:    v.GetInt("fetch.blog_cap"),
			GenericContentCap: v.GetInt("fetch.generic_cap"),
		},
		Server: ServerConfig{
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			IdleTimeout:     defaultIdleTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
	}

	return cfg, nil
}

// DefaultListLimit is the listing page size when the caller omits one.
const DefaultListLimit = defaultListLimit

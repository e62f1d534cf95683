package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	// Server configuration
	Environment string
	Port        int
	MetricsPort int

	// Storage configuration
	StorageBackend  string
	DatabaseURL     string
	MigrationsPath  string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration

	// Board behaviour
	StrictDensity bool

	// Authentication
	JWTSecret     string
	JWTExpiration time.Duration

	// TLS Configuration
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string

	// Observability
	JaegerEndpoint string
	LogLevel       string
	LogFormat      string // json or console

	// Graceful Shutdown
	ShutdownTimeout time.Duration

	// Feature Flags
	EnableMetrics    bool
	EnableTracing    bool
	EnableReflection bool

	// List cache
	CacheEnabled bool
	RedisURL     string
	CacheTTL     time.Duration

	// Timeouts
	RequestTimeout  time.Duration
	DatabaseTimeout time.Duration
}

// Load reads the configuration from the environment, after merging a local
// .env file when one exists. Malformed values fall back to their defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment: env("ENVIRONMENT", "development", asString),
		Port:        env("PORT", 8080, strconv.Atoi),
		MetricsPort: env("METRICS_PORT", 9090, strconv.Atoi),

		StorageBackend:  env("STORAGE_BACKEND", BackendPostgres, asString),
		DatabaseURL:     env("DATABASE_URL", "", asString),
		MigrationsPath:  env("MIGRATIONS_PATH", "./internal/infrastructure/postgres/migrations", asString),
		MaxOpenConns:    env("DB_MAX_OPEN_CONNS", 25, strconv.Atoi),
		MaxIdleConns:    env("DB_MAX_IDLE_CONNS", 5, strconv.Atoi),
		ConnMaxLifetime: env("DB_CONN_MAX_LIFETIME", 5*time.Minute, time.ParseDuration),
		ConnMaxIdleTime: env("DB_CONN_MAX_IDLE_TIME", time.Minute, time.ParseDuration),

		StrictDensity: env("STRICT_DENSITY", true, strconv.ParseBool),

		JWTSecret:     env("JWT_SECRET", "", asString),
		JWTExpiration: env("JWT_EXPIRATION", 24*time.Hour, time.ParseDuration),

		TLSEnabled:  env("TLS_ENABLED", false, strconv.ParseBool),
		TLSCertFile: env("TLS_CERT_FILE", "/etc/tls/tls.crt", asString),
		TLSKeyFile:  env("TLS_KEY_FILE", "/etc/tls/tls.key", asString),

		JaegerEndpoint: env("JAEGER_ENDPOINT", "localhost:4317", asString),
		LogLevel:       env("LOG_LEVEL", "info", asString),
		LogFormat:      env("LOG_FORMAT", "json", asString),

		ShutdownTimeout: env("SHUTDOWN_TIMEOUT", 30*time.Second, time.ParseDuration),

		EnableMetrics:    env("ENABLE_METRICS", true, strconv.ParseBool),
		EnableTracing:    env("ENABLE_TRACING", true, strconv.ParseBool),
		EnableReflection: env("ENABLE_REFLECTION", false, strconv.ParseBool),

		CacheEnabled: env("CACHE_ENABLED", false, strconv.ParseBool),
		RedisURL:     env("REDIS_URL", "redis://localhost:6379/0", asString),
		CacheTTL:     env("CACHE_TTL", 10*time.Minute, time.ParseDuration),

		RequestTimeout:  env("REQUEST_TIMEOUT", 30*time.Second, time.ParseDuration),
		DatabaseTimeout: env("DATABASE_TIMEOUT", 10*time.Second, time.ParseDuration),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate reports every problem with the configuration, not just the first.
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	switch c.StorageBackend {
	case BackendPostgres:
		if c.DatabaseURL == "" {
			fail("DATABASE_URL is required for the postgres backend")
		}
	case BackendMemory:
	default:
		fail("invalid storage backend: %s (valid: %s, %s)", c.StorageBackend, BackendPostgres, BackendMemory)
	}

	if c.JWTSecret == "" {
		switch {
		case c.IsProduction():
			fail("JWT_SECRET is required in production")
		case c.StorageBackend == BackendPostgres:
			fail("JWT_SECRET is required for the postgres backend")
		}
	}

	if c.TLSEnabled {
		for name, path := range map[string]string{"certificate": c.TLSCertFile, "key": c.TLSKeyFile} {
			if path == "" {
				fail("TLS %s file is required when TLS is enabled", name)
			} else if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				fail("TLS %s file not found: %s", name, path)
			}
		}
	}

	if !validPort(c.Port) {
		fail("invalid port: %d", c.Port)
	}
	if c.EnableMetrics {
		if !validPort(c.MetricsPort) {
			fail("invalid metrics port: %d", c.MetricsPort)
		} else if c.MetricsPort == c.Port {
			fail("metrics port must differ from the gRPC port")
		}
	}

	if c.MaxOpenConns < c.MaxIdleConns {
		fail("max_open_conns (%d) must be >= max_idle_conns (%d)", c.MaxOpenConns, c.MaxIdleConns)
	}

	if c.CacheEnabled && c.RedisURL == "" {
		fail("REDIS_URL is required when the cache is enabled")
	}

	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.LogLevel) {
		fail("invalid log level: %s (valid: debug, info, warn, error)", c.LogLevel)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		fail("invalid log format: %s (valid: json, console)", c.LogFormat)
	}

	return errors.Join(errs...)
}

// Warnings lists settings that are accepted but unsafe outside local use.
func (c *Config) Warnings() []string {
	var warnings []string
	if c.JWTSecret == "" {
		warnings = append(warnings, "JWT_SECRET is empty; any client can sign tokens for any user")
	}
	if c.EnableReflection && c.IsProduction() {
		warnings = append(warnings, "gRPC reflection is enabled in production")
	}
	return warnings
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development" || c.Environment == "dev"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

func validPort(p int) bool {
	return p >= 1 && p <= 65535
}

func asString(s string) (string, error) {
	return s, nil
}

// env parses the variable named key, returning def when it is unset, empty
// or malformed.
func env[T any](key string, def T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		return def
	}
	return v
}

// DatabaseConfig is the subset of Config the postgres package needs.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	Timeout         time.Duration
}

func (c *Config) GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URL:             c.DatabaseURL,
		MaxOpenConns:    c.MaxOpenConns,
		MaxIdleConns:    c.MaxIdleConns,
		ConnMaxLifetime: c.ConnMaxLifetime,
		ConnMaxIdleTime: c.ConnMaxIdleTime,
		Timeout:         c.DatabaseTimeout,
	}
}

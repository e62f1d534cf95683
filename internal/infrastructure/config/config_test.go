package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("DATABASE_URL", "postgres://localhost/ideas?sslmode=disable")
	t.Setenv("JWT_SECRET", "dev-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendPostgres, cfg.StorageBackend)
	assert.True(t, cfg.StrictDensity)
	assert.False(t, cfg.CacheEnabled)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 9090, cfg.MetricsPort)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("STORAGE_BACKEND", BackendMemory)
	t.Setenv("STRICT_DENSITY", "false")
	t.Setenv("PORT", "7000")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.StorageBackend)
	assert.False(t, cfg.StrictDensity)
	assert.Equal(t, 7000, cfg.Port)
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("STORAGE_BACKEND", BackendMemory)
	t.Setenv("PORT", "eighty")
	t.Setenv("STRICT_DENSITY", "sometimes")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.StrictDensity)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Environment:    "development",
			Port:           8080,
			MetricsPort:    9090,
			StorageBackend: BackendMemory,
			MaxOpenConns:   10,
			MaxIdleConns:   5,
			EnableMetrics:  true,
			LogLevel:       "info",
			LogFormat:      "json",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{
			name:    "postgres without url",
			mutate:  func(c *Config) { c.StorageBackend = BackendPostgres },
			wantErr: "DATABASE_URL",
		},
		{
			name: "postgres without secret",
			mutate: func(c *Config) {
				c.StorageBackend = BackendPostgres
				c.DatabaseURL = "postgres://db"
			},
			wantErr: "JWT_SECRET is required for the postgres backend",
		},
		{
			name: "postgres with secret",
			mutate: func(c *Config) {
				c.StorageBackend = BackendPostgres
				c.DatabaseURL = "postgres://db"
				c.JWTSecret = "s3cret"
			},
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.StorageBackend = "sqlite" },
			wantErr: "invalid storage backend",
		},
		{
			name:    "production without secret",
			mutate:  func(c *Config) { c.Environment = "production" },
			wantErr: "JWT_SECRET",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Port = 70000 },
			wantErr: "invalid port",
		},
		{
			name:    "metrics port clashes",
			mutate:  func(c *Config) { c.MetricsPort = c.Port },
			wantErr: "metrics port must differ",
		},
		{
			name: "metrics port ignored when metrics disabled",
			mutate: func(c *Config) {
				c.EnableMetrics = false
				c.MetricsPort = c.Port
			},
		},
		{
			name:    "idle above open",
			mutate:  func(c *Config) { c.MaxIdleConns = 20 },
			wantErr: "max_open_conns",
		},
		{
			name: "cache without redis url",
			mutate: func(c *Config) {
				c.CacheEnabled = true
				c.RedisURL = ""
			},
			wantErr: "REDIS_URL",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.LogLevel = "trace" },
			wantErr: "invalid log level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: "invalid log format",
		},
		{
			name: "tls files missing",
			mutate: func(c *Config) {
				c.TLSEnabled = true
				c.TLSCertFile = "/nonexistent/tls.crt"
				c.TLSKeyFile = "/nonexistent/tls.key"
			},
			wantErr: "TLS certificate file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetDatabaseConfig(t *testing.T) {
	cfg := &Config{
		DatabaseURL:     "postgres://db",
		MaxOpenConns:    7,
		MaxIdleConns:    3,
		ConnMaxLifetime: time.Minute,
		DatabaseTimeout: 2 * time.Second,
	}

	db := cfg.GetDatabaseConfig()
	assert.Equal(t, "postgres://db", db.URL)
	assert.Equal(t, 7, db.MaxOpenConns)
	assert.Equal(t, 3, db.MaxIdleConns)
	assert.Equal(t, time.Minute, db.ConnMaxLifetime)
	assert.Equal(t, 2*time.Second, db.Timeout)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := &Config{
		Environment:    "production",
		Port:           0,
		StorageBackend: BackendPostgres,
		LogLevel:       "loud",
		LogFormat:      "json",
	}

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"DATABASE_URL", "JWT_SECRET", "invalid port", "invalid log level"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestWarnings(t *testing.T) {
	cfg := &Config{Environment: "development", StorageBackend: BackendMemory}
	warnings := cfg.Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "JWT_SECRET is empty")

	cfg.JWTSecret = "s3cret"
	assert.Empty(t, cfg.Warnings())

	cfg.Environment = "production"
	cfg.EnableReflection = true
	assert.Equal(t, []string{"gRPC reflection is enabled in production"}, cfg.Warnings())
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "discussion_planner", cfg.Database.Name)
	assert.Equal(t, 25, cfg.Database.MaxConns)
	assert.Equal(t, "migrations", cfg.Database.MigrationDir)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 30*time.Second, cfg.Planner.LockTTL)
	assert.Equal(t, 2*time.Second, cfg.Planner.LockWait)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_CONNS", "50")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("PLANNER_LOCK_TTL", "1m")
	t.Setenv("PLANNER_LOCK_WAIT", "0s")
	t.Setenv("METRICS_NAMESPACE", "planner")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 50, cfg.Database.MaxConns)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Minute, cfg.Planner.LockTTL)
	assert.Zero(t, cfg.Planner.LockWait)
	assert.Equal(t, "planner", cfg.Metrics.Namespace)

	assert.Contains(t, cfg.GetDatabaseDSN(), "host=db.internal")
	assert.Equal(t, cfg.Redis.Host+":6380", cfg.GetRedisAddr())
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("PLANNER_LOCK_TTL", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080"},
			Database: DatabaseConfig{Host: "localhost", Name: "planner"},
			Planner:  PlannerConfig{LockTTL: time.Second, LockWait: time.Second},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing port", func(c *Config) { c.Server.Port = "" }, "PORT is required"},
		{"missing database name", func(c *Config) { c.Database.Name = "" }, "DB_HOST and DB_NAME are required"},
		{"zero lock ttl", func(c *Config) { c.Planner.LockTTL = 0 }, "PLANNER_LOCK_TTL must be positive"},
		{"negative lock wait", func(c *Config) { c.Planner.LockWait = -time.Second }, "PLANNER_LOCK_WAIT must not be negative"},
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
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

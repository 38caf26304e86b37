package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Planner  PlannerConfig
	Metrics  MetricsConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// DatabaseConfig holds database configuration (DB_*)
type DatabaseConfig struct {
	Host         string `default:"localhost"`
	Port         string `default:"5432"`
	User         string `default:"postgres"`
	Password     string `default:"postgres"`
	Name         string `default:"discussion_planner"`
	SSLMode      string `default:"disable"`
	MaxConns     int    `split_words:"true" default:"25"`
	MinConns     int    `split_words:"true" default:"5"`
	MigrationDir string `split_words:"true" default:"migrations"`
	AutoMigrate  bool   `split_words:"true" default:"false"`
}

// RedisConfig holds Redis configuration (REDIS_*)
type RedisConfig struct {
	Enabled  bool   `default:"true"`
	Host     string `default:"localhost"`
	Port     string `default:"6379"`
	Password string
	DB       int `default:"0"`
}

// PlannerConfig holds assignment generation settings (PLANNER_*)
type PlannerConfig struct {
	LockTTL  time.Duration `split_words:"true" default:"30s"`
	LockWait time.Duration `split_words:"true" default:"2s"`
}

// MetricsConfig holds Prometheus settings (METRICS_*)
type MetricsConfig struct {
	Enabled   bool   `default:"true"`
	Path      string `default:"/metrics"`
	Namespace string `default:"discussion_planner"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{}
	sections := []struct {
		prefix string
		spec   interface{}
	}{
		{"", &config.Server},
		{"DB", &config.Database},
		{"REDIS", &config.Redis},
		{"PLANNER", &config.Planner},
		{"METRICS", &config.Metrics},
	}
	for _, s := range sections {
		if err := envconfig.Process(s.prefix, s.spec); err != nil {
			return nil, fmt.Errorf("failed to process %s config: %w", s.prefix, err)
		}
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Database.Host == "" || c.Database.Name == "" {
		return fmt.Errorf("DB_HOST and DB_NAME are required")
	}
	if c.Planner.LockTTL <= 0 {
		return fmt.Errorf("PLANNER_LOCK_TTL must be positive")
	}
	if c.Planner.LockWait < 0 {
		return fmt.Errorf("PLANNER_LOCK_WAIT must not be negative")
	}
	return nil
}

// IsProduction reports whether the server runs in production
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

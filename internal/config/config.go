package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Supported persistence drivers.
const (
	DriverMongo    = "mongodb"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration values
type Config struct {
	Server         ServerConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	JWT            JWTConfig
	RateLimit      RateLimitConfig
	Jobs           JobsConfig
	AdminBootstrap AdminBootstrapConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string   `env:"SERVER_PORT" env-default:"8080"`
	Env            string   `env:"SERVER_ENV" env-default:"development"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:3000"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver         string        `env:"DB_DRIVER" env-default:"mongodb"`
	MongoURI       string        `env:"MONGODB_URI"`
	MongoDatabase  string        `env:"MONGODB_DATABASE" env-default:"oysterkode"`
	SQLDSN         string        `env:"DATABASE_DSN"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" env-default:"10s"`
}

// RedisConfig holds Redis configuration. An empty URL disables token
// revocation and idempotent contact submissions.
type RedisConfig struct {
	URL      string `env:"REDIS_URL"`
	Password string `env:"REDIS_PASSWORD"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string `env:"JWT_SECRET" env-required:"true"`
}

// RateLimitConfig throttles login attempts per client IP.
type RateLimitConfig struct {
	LoginPerMinute int `env:"LOGIN_RATE_PER_MINUTE" env-default:"10"`
	LoginBurst     int `env:"LOGIN_RATE_BURST" env-default:"5"`
}

// JobsConfig controls background jobs. A zero interval disables the job.
type JobsConfig struct {
	EventStatusInterval time.Duration `env:"EVENT_STATUS_SWEEP_INTERVAL" env-default:"0s"`
}

// AdminBootstrapConfig provisions the first administrator at startup when
// both values are set.
type AdminBootstrapConfig struct {
	Username string `env:"ADMIN_BOOTSTRAP_USERNAME"`
	Password string `env:"ADMIN_BOOTSTRAP_PASSWORD"`
}

// Enabled reports whether bootstrap credentials were supplied.
func (c AdminBootstrapConfig) Enabled() bool {
	return c.Username != "" && c.Password != ""
}

var readEnv = cleanenv.ReadEnv

// Load loads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := readEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg.Database.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDatabase reads only the persistence settings. Operator tooling uses it
// so it does not need server secrets.
func LoadDatabase() (*DatabaseConfig, error) {
	var db DatabaseConfig
	if err := readEnv(&db); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	db.normalize()
	if err := db.Validate(); err != nil {
		return nil, err
	}
	return &db, nil
}

func (d *DatabaseConfig) normalize() {
	d.Driver = strings.ToLower(strings.TrimSpace(d.Driver))
}

// Validate checks cross-field requirements cleanenv tags cannot express.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return errors.New("JWT_SECRET is required")
	}
	return c.Database.Validate()
}

// Validate checks the connection settings required by the selected driver.
func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case DriverMongo:
		if d.MongoURI == "" {
			return errors.New("MONGODB_URI is required when DB_DRIVER=mongodb")
		}
	case DriverSQLite, DriverPostgres:
		if d.SQLDSN == "" {
			return fmt.Errorf("DATABASE_DSN is required when DB_DRIVER=%s", d.Driver)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", d.Driver)
	}
	return nil
}

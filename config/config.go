// Package config provides configuration management for the blog backend.
// It loads and validates configuration values from environment variables,
// with support for required variables, default values, and collective error reporting.
// The result is a single immutable *AppConfig that main builds once at startup and
// hands to every component that needs it; nothing else reads the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	// `go-multierror` aggregates every configuration problem into one error.
	"github.com/hashicorp/go-multierror"
)

const (
	minPoolSize       = 2
	maxPoolSize       = 100
	minSecretLength   = 32
	defaultPoolSize   = 10
	defaultBcryptCost = 10
)

// PoolConfig represents configuration for the database connection pool.
type PoolConfig struct {
	// URL is a full connection string. When set it takes precedence over the parts below.
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	MaxSize  int
}

// DSN returns the connection string for the pool.
// pgx and golang-migrate's postgres driver both accept the URL form.
func (c *PoolConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	JWTSecret       string        // Secret key for signing JWTs
	SessionDuration time.Duration // Lifetime of the session token and its cookie
	BcryptCost      int           // Work factor for password hashing
	CookieSecure    bool          // Whether the session cookie carries the Secure flag
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port                  string   // Port for the HTTP server
	AllowedOrigins        []string // CORS origins
	MaxConcurrentRequests int      // Coarse admission control in front of the handlers
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	DB             *PoolConfig
	Auth           *AuthConfig
	Server         *ServerConfig
	MigrationsPath string
}

// loader reads typed values from the environment and remembers every failure.
type loader struct {
	errs *multierror.Error
}

func (l *loader) fail(format string, args ...interface{}) {
	l.errs = multierror.Append(l.errs, fmt.Errorf(format, args...))
}

// required returns the value of key, recording an error if it is unset or empty.
func (l *loader) required(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		l.fail("missing required environment variable: %s", key)
		return ""
	}
	return value
}

func (l *loader) optional(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func (l *loader) optionalInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		l.fail("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err)
		return defaultValue
	}
	return valueInt
}

func (l *loader) optionalBool(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	valueBool, err := strconv.ParseBool(valueStr)
	if err != nil {
		l.fail("invalid value for %s: expected boolean, got '%s': %v", key, valueStr, err)
		return defaultValue
	}
	return valueBool
}

// `time.ParseDuration` expects a string like "15m" or "72h".
func (l *loader) optionalDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		l.fail("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err)
		return defaultValue
	}
	if valueDuration <= 0 {
		l.fail("invalid value for %s: duration must be positive, got '%s'", key, valueStr)
		return defaultValue
	}
	return valueDuration
}

// clampPoolSize keeps the pool size inside [minPoolSize, maxPoolSize] without failing the load.
func clampPoolSize(size int) int {
	if size < minPoolSize {
		return minPoolSize
	}
	if size > maxPoolSize {
		return maxPoolSize
	}
	return size
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// LoadConfig creates and returns an AppConfig by reading and validating environment variables.
// It collects all errors encountered during loading and returns them as a single error.
func LoadConfig() (*AppConfig, error) {
	l := &loader{}

	// Database Configuration
	// DATABASE_URL wins; otherwise the individual parts are required.
	db := &PoolConfig{
		URL:     l.optional("DATABASE_URL", ""),
		MaxSize: clampPoolSize(l.optionalInt("DB_POOL_SIZE", defaultPoolSize)),
	}
	if db.URL == "" {
		db.User = l.required("DB_USER")
		db.Password = l.required("DB_PASSWORD")
		db.DBName = l.required("DB_NAME")
		db.Host = l.optional("DB_HOST", "localhost")
		db.Port = l.optionalInt("DB_PORT", 5432)
	}

	// Auth Configuration
	jwtSecret := l.required("JWT_SECRET")
	if jwtSecret != "" && len(jwtSecret) < minSecretLength {
		l.fail("JWT_SECRET must be at least %d bytes long", minSecretLength)
	}
	bcryptCost := l.optionalInt("BCRYPT_COST", defaultBcryptCost)
	if bcryptCost < 4 || bcryptCost > 31 {
		l.fail("invalid value for BCRYPT_COST: %d is outside [4, 31]", bcryptCost)
	}
	authConfig := &AuthConfig{
		JWTSecret:       jwtSecret,
		SessionDuration: l.optionalDuration("SESSION_DURATION", 72*time.Hour), // 3 days
		BcryptCost:      bcryptCost,
		CookieSecure:    l.optionalBool("COOKIE_SECURE", true),
	}

	// Server Configuration
	// Note: Server port stays a string because it is used directly in the listen address.
	serverConfig := &ServerConfig{
		Port:                  l.optional("PORT", "8080"),
		AllowedOrigins:        splitList(l.optional("CORS_ALLOWED_ORIGINS", "*")),
		MaxConcurrentRequests: l.optionalInt("MAX_CONCURRENT_REQUESTS", 100),
	}
	if serverConfig.MaxConcurrentRequests < 1 {
		l.fail("invalid value for MAX_CONCURRENT_REQUESTS: must be at least 1")
	}

	if err := l.errs.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("configuration errors: %w", err)
	}

	return &AppConfig{
		DB:             db,
		Auth:           authConfig,
		Server:         serverConfig,
		MigrationsPath: l.optional("MIGRATIONS_PATH", "./migrations"),
	}, nil
}

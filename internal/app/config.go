package app

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

const defaultAddr = "0.0.0.0:8080"

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// Config holds the complete application configuration, loadable from
// environment variables (STORE_ prefix), flags, or YAML config files.
type Config struct {
	Addr         string `default:"0.0.0.0:8080" usage:"API server listen address"`
	DatabaseURL  string `usage:"PostgreSQL URL of the catalog (STORE_DATABASE_URL or DATABASE_URL); sample data is served when empty" flag:"database-url"`
	ImageBaseURL string `default:"" usage:"Base URL for relative product image paths" flag:"image-base-url"`
	Storage      StorageConfig
	Order        OrderConfig
	Session      SessionConfig
	Store        StoreConfig
	RateLimit    RateLimitConfig
	CORS         CORSConfig
	Graceful     GracefulConfig
}

// StorageConfig selects where cart snapshots and language preferences live.
type StorageConfig struct {
	Driver   string        `default:"sqlite" usage:"Session storage driver: sqlite, postgres, redis or memory"`
	Path     string        `default:"storefront.db" usage:"SQLite database file"`
	RedisURL string        `usage:"Redis URL (STORE_STORAGE_REDIS_URL or REDIS_URL)" flag:"redis-url"`
	Prefix   string        `default:"storefront:" usage:"Redis key prefix"`
	TTL      time.Duration `default:"720h" usage:"Redis key expiry, 0 keeps keys forever"`
}

// OrderConfig controls the order link.
type OrderConfig struct {
	Endpoint       string `default:"https://wa.me" usage:"Messaging link endpoint"`
	CountryCode    string `default:"91" usage:"Country code prepended to the destination number"`
	WhatsAppNumber string `default:"8058124167" usage:"Destination number when the store settings have none" flag:"whatsapp-number"`
}

// SessionConfig controls visitor sessions.
type SessionConfig struct {
	IdleTTL      time.Duration `default:"30m" usage:"Drop idle sessions from memory after this long"`
	Sweep        time.Duration `default:"1m" usage:"Idle session sweep interval"`
	CookieName   string        `default:"sid" usage:"Session cookie name"`
	CookieMaxAge time.Duration `default:"720h" usage:"Session cookie lifetime"`
	CookieSecure bool          `default:"false" usage:"Send the session cookie over HTTPS only" flag:"cookie-secure"`
}

// StoreConfig is the store identity served when the catalog has no settings
// record.
type StoreConfig struct {
	Name  string `default:"Harshita General Store" usage:"Store name"`
	Phone string `default:"+91 80581 24167" usage:"Store phone"`
	City  string `default:"Jaipur" usage:"Store city"`
}

// RateLimitConfig controls the per-client sliding window rate limiter.
type RateLimitConfig struct {
	Max    int           `default:"100" usage:"Max requests per window"`
	Window time.Duration `default:"1m"  usage:"Rate limit window duration"`
}

// CORSConfig controls Cross-Origin Resource Sharing headers.
type CORSConfig struct {
	Origins          []string `default:"*" usage:"Allowed CORS origins"`
	AllowCredentials bool     `default:"false" usage:"Allow credentials (session cookie)" flag:"cors-credentials"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"3s"  usage:"Delay after readiness=false before shutdown" flag:"readiness-delay"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// LoadConfig loads configuration from environment variables and YAML config
// files, then applies platform defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "STORE",
		Files:     []string{"config.yaml", "/etc/storefront/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the selected storage driver has what it needs.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.Path == "" {
			return errors.New("sqlite storage needs a path: set STORE_STORAGE_PATH")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("postgres storage needs a database URL: set STORE_DATABASE_URL or DATABASE_URL")
		}
	case DriverRedis:
		if c.Storage.RedisURL == "" {
			return errors.New("redis storage needs a URL: set STORE_STORAGE_REDIS_URL or REDIS_URL")
		}
	case DriverMemory:
	default:
		return errors.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Session.IdleTTL <= 0 || c.Session.Sweep <= 0 {
		return errors.New("session idle TTL and sweep interval must be positive")
	}
	return nil
}

// applyPlatformDefaults maps platform-provided environment variables (Railway,
// Render, etc.) such as DATABASE_URL, REDIS_URL and PORT onto the
// STORE_-prefixed configuration.
func (c *Config) applyPlatformDefaults() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.Storage.RedisURL == "" {
		c.Storage.RedisURL = os.Getenv("REDIS_URL")
	}
	if port := os.Getenv("PORT"); port != "" && c.Addr == defaultAddr {
		c.Addr = "0.0.0.0:" + port
	}
}

package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Session store backends.
const (
	SessionStoreBolt  = "bolt"
	SessionStoreRedis = "redis"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	API     APIConfig
	Session SessionConfig
	Panel   PanelConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

// APIConfig points at the remote catalog API.
type APIConfig struct {
	BaseURL string        `env:"API_BASE_URL, default=http://localhost:5000/api"`
	Timeout time.Duration `env:"API_TIMEOUT,  default=10s"`
}

type SessionConfig struct {
	Store string `env:"SESSION_STORE, default=bolt"`
	File  string `env:"SESSION_FILE,  default=data/session.db"`
}

type PanelConfig struct {
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL, default=10m"`
	MaxImageBytes  int64         `env:"MAX_IMAGE_BYTES, default=5242880"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=store_admin"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// IsDevelopment reports whether the panel runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	switch cfg.Session.Store {
	case SessionStoreBolt, SessionStoreRedis:
	default:
		return nil, fmt.Errorf("config: SESSION_STORE must be %q or %q, got %q",
			SessionStoreBolt, SessionStoreRedis, cfg.Session.Store)
	}
	return &cfg, nil
}

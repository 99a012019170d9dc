package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// AllowedOrigins is the CORS allow-list, comma-separated in the
	// environment (e.g. "http://localhost:5500,https://members.example.org").
	AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=http://localhost:5500"`

	// AdminToken is the static token handed out on a successful admin
	// login. It is an opaque marker, not an issued credential.
	AdminToken string `env:"ADMIN_TOKEN, default=admin-token"`

	Mongo MongoConfig
	Redis RedisConfig
	Admin AdminSeedConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=membership"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// AdminSeedConfig bootstraps the admin credential at startup. Both fields
// must be set for seeding to happen; the credential is only inserted when
// the username is not present yet.
type AdminSeedConfig struct {
	SeedUsername string `env:"ADMIN_SEED_USERNAME"`
	SeedPassword string `env:"ADMIN_SEED_PASSWORD"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

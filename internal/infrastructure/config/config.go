package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// Bootstrap admin seed. One-time operational bootstrap — rotate the
	// password after first deploy.
	AdminName     string `env:"ADMIN_NAME,     default=Admin"`
	AdminEmail    string `env:"ADMIN_EMAIL,    default=admin@admin.com.ar"`
	AdminPassword string `env:"ADMIN_PASSWORD, default=admin123"`

	Swapi SwapiConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type SwapiConfig struct {
	BaseURL string `env:"SWAPI_BASE_URL, default=https://swapi.dev/api"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=starwars_api"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}
	return &cfg, nil
}

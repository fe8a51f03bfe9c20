// Package config loads process configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings. Defaults target local development;
// JWT_SECRET has no default and must be set before the process starts.
type Config struct {
	MongoURI string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB  string `env:"MONGO_DB" envDefault:"portfolio"`

	JWTSecret string `env:"JWT_SECRET,required"`

	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	SeedAdminName     string `env:"SEED_ADMIN_NAME" envDefault:"Admin"`
	SeedAdminEmail    string `env:"SEED_ADMIN_EMAIL" envDefault:"admin@localhost"`
	SeedAdminPassword string `env:"SEED_ADMIN_PASSWORD" envDefault:"changeme"`

	MinioEndpoint  string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY" envDefault:"minioadmin"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY" envDefault:"minioadmin"`
	MinioBucket    string `env:"MINIO_BUCKET" envDefault:"portfolio-media"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if len(cfg.JWTSecret) < 16 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Addr                string        `env:"RUN_ADDRESS" env-default:":8080"`
	BackendBaseURL      string        `env:"BACKEND_BASE_URL" env-default:"http://localhost:9000"`
	BackendServiceToken string        `env:"BACKEND_SERVICE_TOKEN"`
	DatabaseURL         string        `env:"DATABASE_URL"`
	JWTSecret           string        `env:"JWT_SECRET" env-default:"devsecret"`
	SessionTTL          time.Duration `env:"SESSION_TTL" env-default:"60s"`
	PayoutPollInterval  time.Duration `env:"PAYOUT_POLL_INTERVAL" env-default:"30s"`
	BodyLimit           string        `env:"BODY_LIMIT" env-default:"10M"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("couldn't read environment variables: %w", err)
	}

	return cfg, nil
}

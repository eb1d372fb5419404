package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,         default=8080"`
	Env      string `env:"ENV,          default=development"`
	LogLevel string `env:"LOG_LEVEL,    default=info"`

	// FrontendURL is the dashboard origin: the allowed CORS origin and the
	// fallback page for PDF exports when no Referer is available.
	FrontendURL string `env:"FRONTEND_URL, default=http://localhost:3000"`

	Backend BackendConfig
}

type BackendConfig struct {
	// APIURL is the root of the external user backend.
	APIURL  string        `env:"BACKEND_API_URL, default=http://localhost:5000/api"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT, default=15s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

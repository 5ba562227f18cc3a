package app

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Operating environments.
const (
	Development = "development"
	Test        = "test"
	Production  = "production"
)

// Config holds all the configuration settings for our Application. Values
// come from WORLDDEATHS_* environment variables and may be overridden by
// command-line flags.
type Config struct {
	Port        int    `env:"PORT" envDefault:"4000"`
	Env         string `env:"ENV" envDefault:"development"`
	DataPath    string `env:"DATA_PATH" envDefault:"cause_of_deaths.csv"`
	ImagePath   string `env:"IMAGE_PATH" envDefault:"death.jpg"`
	ContentPath string `env:"CONTENT_PATH"`
	Year        int    `env:"YEAR" envDefault:"2019"`
	Country     string `env:"COUNTRY" envDefault:"Indonesia"`
	TrendCause  string `env:"TREND_CAUSE" envDefault:"Cardiovascular Diseases"`
	TopN        int    `env:"TOP_N" envDefault:"3"`
	RateLimit   int    `env:"RATE_LIMIT" envDefault:"100"`
	TrustProxy  bool   `env:"TRUST_PROXY"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "WORLDDEATHS_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	var errs []error
	if cfg.Port < 0 || cfg.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d", cfg.Port))
	}
	switch cfg.Env {
	case Development, Test, Production:
	default:
		errs = append(errs, fmt.Errorf("invalid env %q", cfg.Env))
	}
	if cfg.DataPath == "" {
		errs = append(errs, errors.New("data path is required"))
	}
	if cfg.TopN < 1 {
		errs = append(errs, fmt.Errorf("top n must be positive, got %d", cfg.TopN))
	}
	if cfg.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("rate limit must not be negative, got %d", cfg.RateLimit))
	}
	return errors.Join(errs...)
}

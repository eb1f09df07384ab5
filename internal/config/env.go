package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Profiles select log verbosity and router mode.
const (
	ProfileDevelopment = "development"
	ProfileProduction  = "production"
	ProfileTesting     = "testing"
)

// AppConfig is process configuration read from WEALTHJOURNEY_* variables.
type AppConfig struct {
	Profile        string        `env:"WEALTHJOURNEY_PROFILE"         envDefault:"development"`
	DataPath       string        `env:"WEALTHJOURNEY_DATA_PATH"       envDefault:"data"`
	Addr           string        `env:"WEALTHJOURNEY_ADDR"            envDefault:":8080"`
	LogLevel       string        `env:"WEALTHJOURNEY_LOG_LEVEL"` // empty uses the profile default
	DBPath         string        `env:"WEALTHJOURNEY_DB_PATH"`   // empty disables run history
	Workers        int           `env:"WEALTHJOURNEY_WORKERS"         envDefault:"0"`
	Seed           int64         `env:"WEALTHJOURNEY_SEED"            envDefault:"0"`
	MaxTrials      int           `env:"WEALTHJOURNEY_MAX_TRIALS"      envDefault:"1000000"`
	RequestTimeout time.Duration `env:"WEALTHJOURNEY_REQUEST_TIMEOUT" envDefault:"60s"`
	CORSOrigins    []string      `env:"WEALTHJOURNEY_CORS_ORIGINS"    envDefault:"*" envSeparator:","`
	OTelEndpoint   string        `env:"WEALTHJOURNEY_OTEL_ENDPOINT"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadAppConfig parses the environment and fills profile-derived defaults.
func LoadAppConfig() (AppConfig, error) {
	var cfg AppConfig
	if err := ParseEnv(&cfg); err != nil {
		return AppConfig{}, err
	}
	cfg.Profile = strings.ToLower(strings.TrimSpace(cfg.Profile))
	switch cfg.Profile {
	case ProfileDevelopment, ProfileProduction, ProfileTesting:
	default:
		return AppConfig{}, fmt.Errorf("unknown profile %q", cfg.Profile)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = cfg.DefaultLogLevel()
	}
	if cfg.MaxTrials <= 0 {
		return AppConfig{}, fmt.Errorf("max trials must be positive, got %d", cfg.MaxTrials)
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}
	return cfg, nil
}

// DefaultLogLevel is debug everywhere except production, which logs warnings and above.
func (c AppConfig) DefaultLogLevel() string {
	if c.Profile == ProfileProduction {
		return "warn"
	}
	return "debug"
}

// GinMode maps the profile onto gin's debug/release/test modes.
func (c AppConfig) GinMode() string {
	switch c.Profile {
	case ProfileProduction:
		return "release"
	case ProfileTesting:
		return "test"
	default:
		return "debug"
	}
}

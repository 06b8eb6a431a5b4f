package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	ServerAddr string `mapstructure:"SERVER_ADDR"`
	GinMode    string `mapstructure:"GIN_MODE"`

	DatabaseDriver string `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`

	JWTSecret       string `mapstructure:"JWT_SECRET"`
	SessionTTLHours int    `mapstructure:"SESSION_TTL_HOURS"`

	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	ReviewMinPlayHours float64 `mapstructure:"REVIEW_MIN_PLAY_HOURS"`
	ReviewMaxAttempts  int     `mapstructure:"REVIEW_MAX_ATTEMPTS"`
}

var AppConfig *Config

var defaults = map[string]any{
	"SERVER_ADDR":           ":8080",
	"GIN_MODE":              "release",
	"DATABASE_DRIVER":       "postgres",
	"DATABASE_URL":          "",
	"JWT_SECRET":            "change-me",
	"SESSION_TTL_HOURS":     24 * 7,
	"CORS_ALLOWED_ORIGINS":  "*",
	"LOG_LEVEL":             "info",
	"LOG_FORMAT":            "json",
	"REVIEW_MIN_PLAY_HOURS": 1.0,
	"REVIEW_MAX_ATTEMPTS":   3,
}

// LoadConfig loads the configuration from a .env file in dir and environment variables.
// Environment variables win over the file. A missing file is not an error.
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	AppConfig = &cfg
	return &cfg, nil
}

// Validate checks values that have no sensible fallback.
func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case "postgres":
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres driver")
		}
	case "sqlite":
		if c.DatabaseURL == "" {
			c.DatabaseURL = "file:gamereviews.db"
		}
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	if c.ReviewMaxAttempts < 1 {
		return errors.New("REVIEW_MAX_ATTEMPTS must be at least 1")
	}
	if c.ReviewMinPlayHours < 0 {
		return errors.New("REVIEW_MIN_PLAY_HOURS must not be negative")
	}
	return nil
}

// SessionTTL is the lifetime of issued session tokens.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

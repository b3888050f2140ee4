package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string   `mapstructure:"PORT"`
	Env            string   `mapstructure:"ENV"`
	StorageDriver  string   `mapstructure:"STORAGE_DRIVER"`
	DataFile       string   `mapstructure:"DATA_FILE"`
	DatabaseURL    string   `mapstructure:"DATABASE_URL"`
	AccessCode     string   `mapstructure:"ACCESS_CODE"`
	SessionSignKey string   `mapstructure:"SESSION_SIGNING_KEY"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("STORAGE_DRIVER", "file")
	v.SetDefault("DATA_FILE", "data/murarihealth_data.json")
	v.SetDefault("ACCESS_CODE", "4242")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("STORAGE_DRIVER")
	v.BindEnv("DATA_FILE")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("ACCESS_CODE")
	v.BindEnv("SESSION_SIGNING_KEY")
	v.BindEnv("CORS_ORIGINS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is safe to run. The access
// code must be exactly four digits; the postgres driver needs a
// DATABASE_URL; production needs an explicit signing key (development
// falls back to a fixed one).
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case "file", "postgres", "memory":
	default:
		return fmt.Errorf("STORAGE_DRIVER must be \"file\", \"postgres\", or \"memory\", got %q", c.StorageDriver)
	}

	if c.StorageDriver == "postgres" && c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required when STORAGE_DRIVER is \"postgres\"")
	}
	if c.StorageDriver == "file" && c.DataFile == "" {
		return fmt.Errorf("DATA_FILE is required when STORAGE_DRIVER is \"file\"")
	}

	if len(c.AccessCode) != 4 {
		return fmt.Errorf("ACCESS_CODE must be exactly 4 digits, got %d characters", len(c.AccessCode))
	}
	for _, r := range c.AccessCode {
		if r < '0' || r > '9' {
			return fmt.Errorf("ACCESS_CODE must be exactly 4 digits")
		}
	}

	if !c.IsDev() && c.SessionSignKey == "" {
		return fmt.Errorf("SESSION_SIGNING_KEY is required outside development")
	}

	return nil
}

// SigningKey returns the session signing key, substituting a fixed
// development key when none is configured. Validate rejects that
// substitution outside development.
func (c *Config) SigningKey() []byte {
	if c.SessionSignKey == "" {
		return []byte("murarihealth-dev-signing-key")
	}
	return []byte(c.SessionSignKey)
}

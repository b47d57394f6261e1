package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string   `mapstructure:"PORT"`
	Env           string   `mapstructure:"ENV"`
	DataDir       string   `mapstructure:"DATA_DIR"`
	DatabaseURL   string   `mapstructure:"DATABASE_URL"`
	DBMaxConns    int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns    int32    `mapstructure:"DB_MIN_CONNS"`
	SessionSecret string   `mapstructure:"SESSION_SECRET"`
	CORSOrigins   []string `mapstructure:"CORS_ORIGINS"`
	SubmitDelayMS int      `mapstructure:"SUBMIT_DELAY_MS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DATA_DIR", ".booking")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("SUBMIT_DELAY_MS", 1000)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATA_DIR")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("SESSION_SECRET")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("SUBMIT_DELAY_MS")

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

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// SubmitDelay returns the simulated booking submit latency.
func (c *Config) SubmitDelay() time.Duration {
	if c.SubmitDelayMS < 0 {
		return 0
	}
	return time.Duration(c.SubmitDelayMS) * time.Millisecond
}

// Validate checks that the configuration is safe to run. Development
// falls back to a fixed session secret; production refuses to start
// without one.
func (c *Config) Validate() error {
	if c.IsProduction() && c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required in production")
	}
	if c.SubmitDelayMS < 0 {
		return fmt.Errorf("SUBMIT_DELAY_MS must not be negative, got %d", c.SubmitDelayMS)
	}
	if c.DataDir == "" && c.DatabaseURL == "" {
		return fmt.Errorf("either DATA_DIR or DATABASE_URL must be set")
	}
	return nil
}

// Package config loads danted settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds server settings. Every field maps to a DANTE_* variable.
type Config struct {
	Addr        string        `env:"DANTE_ADDR"          envDefault:":5000"`
	DBPath      string        `env:"DANTE_DB_PATH"       envDefault:"dante.db"`
	UploadDir   string        `env:"DANTE_UPLOAD_DIR"    envDefault:"uploads"`
	JWTSecret   string        `env:"DANTE_JWT_SECRET,required"`
	TokenTTL    time.Duration `env:"DANTE_TOKEN_TTL"     envDefault:"24h"`
	LogLevel    string        `env:"DANTE_LOG_LEVEL"     envDefault:"info"`
	GeminiKey   string        `env:"DANTE_GEMINI_API_KEY"`
	GeminiModel string        `env:"DANTE_GEMINI_MODEL"  envDefault:"gemini-2.5-flash"`
	LoginRate   float64       `env:"DANTE_LOGIN_RATE"    envDefault:"1"`
	LoginBurst  int           `env:"DANTE_LOGIN_BURST"   envDefault:"5"`
	MaxUpload   int64         `env:"DANTE_MAX_UPLOAD"    envDefault:"8388608"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads envFile (if present) into the process environment and parses
// Config from it. A missing file is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env tags cannot express.
func (c Config) Validate() error {
	if len(c.JWTSecret) < 16 {
		return errors.New("DANTE_JWT_SECRET must be at least 16 bytes")
	}
	if c.TokenTTL <= 0 {
		return errors.New("DANTE_TOKEN_TTL must be positive")
	}
	if c.LoginRate <= 0 || c.LoginBurst <= 0 {
		return errors.New("DANTE_LOGIN_RATE and DANTE_LOGIN_BURST must be positive")
	}
	return nil
}

package config

import (
	"errors"
	"os"
)

// Config holds everything read from the environment at startup. There is
// no hot-reload; a missing secret aborts the process instead of falling
// back to a forgeable default.
type Config struct {
	Port            string
	DatabaseURL     string
	JWTSecret       string
	RecaptchaSecret string
	// CaptchaVerifyURL overrides the verification endpoint, mainly for tests.
	CaptchaVerifyURL string
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             os.Getenv("PORT"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		RecaptchaSecret:  os.Getenv("RECAPTCHA_SECRET_KEY"),
		CaptchaVerifyURL: os.Getenv("CAPTCHA_VERIFY_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is required")
	}
	if cfg.RecaptchaSecret == "" {
		return nil, errors.New("RECAPTCHA_SECRET_KEY environment variable is required")
	}

	return cfg, nil
}

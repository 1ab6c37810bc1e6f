// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"cartcalc/internal/pricing"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv         string `validate:"required"`
	LogLevel       string `validate:"required"`
	LogFormat      string `validate:"required,oneof=console text json"`
	CurrencySymbol string `validate:"required"`

	// OfferPairHalfPriceCode enables the paired half-price offer for the
	// given product code. Explicitly setting it empty disables the offer.
	OfferPairHalfPriceCode string
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:                 valueOrDefault(k.String("APP_ENV"), "development"),
		LogLevel:               valueOrDefault(k.String("LOG_LEVEL"), "info"),
		LogFormat:              valueOrDefault(k.String("LOG_FORMAT"), "console"),
		CurrencySymbol:         valueOrDefault(k.String("CURRENCY_SYMBOL"), "$"),
		OfferPairHalfPriceCode: strings.TrimSpace(k.String("OFFER_PAIR_HALF_PRICE_CODE")),
	}
	if !k.Exists("OFFER_PAIR_HALF_PRICE_CODE") {
		cfg.OfferPairHalfPriceCode = "R01"
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Offers maps the configured offer flags into the pricing configuration.
func (c *Config) Offers() pricing.Offers {
	return pricing.Offers{PairHalfPriceCode: c.OfferPairHalfPriceCode}
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

// LoadForTests allows tests to override environment variables without touching the real environment.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}

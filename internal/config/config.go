// Package config содержит логику чтения конфигурации сервиса проверки карт.
package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/mmeshcher/cardcheck/internal/validation"
)

const (
	defaultRunAddress      = "localhost:8080"
	defaultLogLevel        = "info"
	defaultShutdownTimeout = 5 * time.Second
)

// Config содержит параметры конфигурации сервиса проверки карт.
type Config struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	CardMinLength   int           `env:"CARD_MIN_LENGTH"`
	CardMaxLength   int           `env:"CARD_MAX_LENGTH"`
	LogLevel        string        `env:"LOG_LEVEL"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Policy возвращает политику длины номера карты из конфигурации.
func (c *Config) Policy() validation.Policy {
	return validation.Policy{
		MinLength: c.CardMinLength,
		MaxLength: c.CardMaxLength,
	}
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
// Заданные переменные окружения имеют приоритет над флагами; явный ноль
// в числовых переменных не считается отсутствием значения и отклоняется проверкой.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envCfg := *cfg

	flag.StringVar(&cfg.RunAddress, "a", defaultRunAddress, "address and port for HTTP server")
	flag.IntVar(&cfg.CardMinLength, "min", validation.DefaultMinLength, "minimum card number length")
	flag.IntVar(&cfg.CardMaxLength, "max", validation.DefaultMaxLength, "maximum card number length")
	flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level (debug, info)")
	flag.DurationVar(&cfg.ShutdownTimeout, "t", defaultShutdownTimeout, "graceful shutdown timeout")

	flag.Parse()

	if envCfg.RunAddress != "" {
		cfg.RunAddress = envCfg.RunAddress
	}
	if isEnvSet("CARD_MIN_LENGTH") {
		cfg.CardMinLength = envCfg.CardMinLength
	}
	if isEnvSet("CARD_MAX_LENGTH") {
		cfg.CardMaxLength = envCfg.CardMaxLength
	}
	if envCfg.LogLevel != "" {
		cfg.LogLevel = envCfg.LogLevel
	}
	if isEnvSet("SHUTDOWN_TIMEOUT") {
		cfg.ShutdownTimeout = envCfg.ShutdownTimeout
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = defaultRunAddress
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func isEnvSet(key string) bool {
	v, ok := os.LookupEnv(key)
	return ok && v != ""
}

func (c *Config) validate() error {
	if c.CardMinLength < 1 {
		return fmt.Errorf("invalid card min length %d: must be positive", c.CardMinLength)
	}
	if c.CardMaxLength < c.CardMinLength {
		return fmt.Errorf("invalid card length range [%d, %d]", c.CardMinLength, c.CardMaxLength)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid shutdown timeout %s", c.ShutdownTimeout)
	}
	return nil
}

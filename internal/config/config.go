// Package config читает настройки cardform из переменных окружения и флагов.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v6"

	"github.com/iudanet/cardform/internal/validation"
)

var (
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrInvalidLocale    = errors.New("invalid locale")
	ErrInvalidAttempts  = errors.New("attempts must be at least 1")
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

type Config struct {
	LogLevel    string `env:"CARDFORM_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"CARDFORM_LOG_FORMAT" envDefault:"text"`
	Locale      string `env:"CARDFORM_LOCALE" envDefault:"ru"`
	MaxAttempts int    `env:"CARDFORM_MAX_ATTEMPTS" envDefault:"3"`
	ShowVersion bool
}

// ReadConfig читает переменные окружения, затем разбирает args флагами fs.
// Флаги имеют приоритет над окружением.
func ReadConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfgEnv := Config{}

	if err := env.Parse(&cfgEnv); err != nil {
		return cfgEnv, err
	}

	cfgFlag := Config{}

	fs.BoolVar(&cfgFlag.ShowVersion, "version", false, "show version information")
	fs.StringVar(&cfgFlag.LogLevel, "log-level", cfgEnv.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfgFlag.LogFormat, "log-format", cfgEnv.LogFormat, "log format: text, json")
	fs.StringVar(&cfgFlag.Locale, "locale", cfgEnv.Locale, "form language: ru, en")
	fs.IntVar(&cfgFlag.MaxAttempts, "attempts", cfgEnv.MaxAttempts, "attempts per field")

	if err := fs.Parse(args); err != nil {
		return cfgFlag, err
	}

	return cfgFlag, cfgFlag.Validate()
}

// Validate проверяет значения настроек
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
	if !validation.SupportedLocale(c.Locale) {
		return fmt.Errorf("%w: %q", ErrInvalidLocale, c.Locale)
	}
	if c.MaxAttempts < 1 {
		return ErrInvalidAttempts
	}
	return nil
}

// Level возвращает уровень логирования slog
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return level, nil
}

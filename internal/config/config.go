// Package config resolves wordlink settings from defaults, an optional YAML file,
// .env files and WORDLINK_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment key.
const EnvPrefix = "WORDLINK_"

// Config holds all application configuration
type Config struct {
	Words        string        `yaml:"words" env:"WORDS"`
	TimerEnabled bool          `yaml:"timer_enabled" env:"TIMER"`
	RoundSeconds int           `yaml:"round_seconds" env:"ROUND_SECONDS"`
	WarnSeconds  int           `yaml:"warn_seconds" env:"WARN_SECONDS"` // 0 turns the warning off
	FetchTimeout time.Duration `yaml:"fetch_timeout" env:"FETCH_TIMEOUT"`

	Style    string `yaml:"style" env:"STYLE"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFile  string `yaml:"log_file" env:"LOG_FILE"`

	Addr string `yaml:"addr" env:"ADDR"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		RoundSeconds: 60,
		WarnSeconds:  10,
		FetchTimeout: 5 * time.Second,
		Style:        "classic",
		LogLevel:     "info",
		Addr:         "127.0.0.1:8080",
	}
}

// Load applies the YAML file at path (or $WORDLINK_CONFIG when path is empty) and then
// the environment on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDotEnv loads .env style files into the process environment. Missing files are skipped;
// variables already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	if c.RoundSeconds <= 0 {
		return fmt.Errorf("round_seconds must be positive, got %d", c.RoundSeconds)
	}
	if c.WarnSeconds < 0 || c.WarnSeconds >= c.RoundSeconds {
		return fmt.Errorf("warn_seconds must be in [0, %d), got %d", c.RoundSeconds, c.WarnSeconds)
	}
	switch strings.ToLower(c.Style) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("unknown style %q (want classic, neon or mono)", c.Style)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Level returns the parsed log level, info when unset.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

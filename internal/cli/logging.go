package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/wordlink/internal/config"
)

// newLogger writes human-readable lines to w, or JSON lines to cfg.LogFile when set.
func newLogger(cfg config.Config, w io.Writer) (zerolog.Logger, func() error, error) {
	if cfg.LogFile == "" {
		l := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
			With().Timestamp().Logger().
			Level(cfg.Level())
		return l, func() error { return nil }, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	l := zerolog.New(f).With().Timestamp().Logger().Level(cfg.Level())
	return l, f.Close, nil
}

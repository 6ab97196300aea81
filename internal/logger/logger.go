// Package logger создает slog.Logger по настройкам приложения.
package logger

import (
	"io"
	"log/slog"

	"github.com/iudanet/cardform/internal/config"
)

// New создает логгер, пишущий в w в формате cfg.LogFormat
func New(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("app", "cardform")), nil
}

// Package cli реализует интерактивную платежную форму в терминале.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/cardform/internal/client/iocli"
	"github.com/iudanet/cardform/internal/form"
)

var (
	// ErrUnknownCommand неизвестная команда
	ErrUnknownCommand = errors.New("unknown command")
	// ErrTooManyAttempts поле так и не прошло проверку
	ErrTooManyAttempts = errors.New("too many invalid attempts")
)

// Cli выполняет команды cardform
type Cli struct {
	io          iocli.IO
	validator   form.Validator
	submitter   form.Submitter
	logger      *slog.Logger
	labels      labels
	maxAttempts int
}

// Options параметры Cli
type Options struct {
	Locale      string
	MaxAttempts int
}

// New создает Cli
func New(io iocli.IO, validator form.Validator, submitter form.Submitter, logger *slog.Logger, opts Options) *Cli {
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}
	return &Cli{
		io:          io,
		validator:   validator,
		submitter:   submitter,
		logger:      logger.With(slog.String("component", "cli")),
		labels:      labelsFor(opts.Locale),
		maxAttempts: opts.MaxAttempts,
	}
}

// Run выполняет команду
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "pay":
		return c.runPay(ctx)
	case "check":
		return c.runCheck(args)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

func PrintUsage(io iocli.IO) {
	_, _ = io.Write([]byte(usageTemplate))
}

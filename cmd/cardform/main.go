package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/cardform/internal/client/cli"
	"github.com/iudanet/cardform/internal/client/iocli"
	"github.com/iudanet/cardform/internal/config"
	"github.com/iudanet/cardform/internal/lib/sl"
	"github.com/iudanet/cardform/internal/logger"
	"github.com/iudanet/cardform/internal/submit"
	"github.com/iudanet/cardform/internal/validation"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	stdio := iocli.NewStdio()

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	cfg, err := config.ReadConfig(fs, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintUsage(stdio)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Failed to read config: %v\n", err)
		os.Exit(1)
	}

	if cfg.ShowVersion {
		printVersion()
		os.Exit(0)
	}

	args := fs.Args()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		os.Exit(1)
	}

	log, err := logger.New(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	validator, err := validation.New(cfg.Locale)
	if err != nil {
		log.Error("failed to create validator", sl.Err(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := cli.New(stdio, validator, submit.NewLogSubmitter(log), log, cli.Options{
		Locale:      cfg.Locale,
		MaxAttempts: cfg.MaxAttempts,
	})

	if err := c.Run(ctx, args[0], args[1:]); err != nil {
		if errors.Is(err, cli.ErrUnknownCommand) {
			cli.PrintUsage(stdio)
		}
		log.Debug("command failed", slog.String("command", args[0]), sl.Err(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("cardform\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}

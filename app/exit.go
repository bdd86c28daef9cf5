package app

import (
	"errors"
	"log/slog"

	"github.com/go-theft-auto/quadcolor/config"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitError    = 1
	ExitPlatform = -1
)

// ExitCode maps the error that ended the program to its exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrWindowCreation), errors.Is(err, ErrContextCreation):
		return ExitPlatform
	default:
		return ExitError
	}
}

// Execute opens the platform, runs the loop to completion and returns the
// exit code.
func Execute(p Platform, cfg config.Config, logger *slog.Logger) int {
	win, dev, err := p.Open(cfg.Window)
	if err != nil {
		logger.Error("startup failed", "err", err)
		return ExitCode(err)
	}

	a, err := New(cfg, win, dev, p.NewRenderer, WithLogger(logger))
	if err != nil {
		logger.Error("startup failed", "err", err)
		return ExitCode(err)
	}
	return ExitCode(a.Run())
}

package main

import (
	"errors"

	flag "github.com/spf13/pflag"
)

// Exit codes for the mdpress CLI.
// Follows Unix conventions: 0=success, 1=general failure, 2=usage.
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, flag.ErrHelp):
		return ExitSuccess
	case errors.Is(err, ErrNoInput),
		errors.Is(err, ErrInvalidTimeout):
		return ExitUsage
	default:
		return ExitError
	}
}

package cli

import (
	"context"
	"errors"

	"github.com/yaklabco/mdlinkcheck/pkg/checker"
)

// Exit codes for mdlinkcheck.
const (
	// ExitSuccess indicates a clean run with no findings.
	ExitSuccess = 0

	// ExitIssuesFound indicates one or more link or heading errors.
	ExitIssuesFound = 1

	// ExitInputError indicates a named input path does not exist.
	ExitInputError = 2

	// ExitInterrupted indicates the run was interrupted (SIGINT).
	ExitInterrupted = 130

	// exitFailure is the fallback for unexpected errors.
	exitFailure = 1
)

// ErrIssuesFound signals that checking completed and found problems.
// It carries no message worth logging; it exists to pick the exit code.
var ErrIssuesFound = errors.New("link issues found")

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrIssuesFound):
		return ExitIssuesFound
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		var notFound *checker.InputNotFoundError
		if errors.As(err, &notFound) {
			return ExitInputError
		}
		return exitFailure
	}
}

// Package main is the entry point for the mdlinkcheck CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/yaklabco/mdlinkcheck/internal/cli"
	"github.com/yaklabco/mdlinkcheck/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// An interrupt cancels the context so the run stops between files
	// and exits cleanly instead of dumping a stack trace.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	logger := logging.Default()
	switch {
	case errors.Is(err, cli.ErrIssuesFound):
		// Findings were already reported; the error only picks the exit code.
	case errors.Is(err, context.Canceled):
		logger.Error("Operation interrupted.")
	default:
		logger.Errorf("error: %v.", err)
	}

	return cli.ExitCode(err)
}

// Package cli provides the Cobra command structure for mdlinkcheck.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlinkcheck/internal/logging"
	"github.com/yaklabco/mdlinkcheck/pkg/checker"
	"github.com/yaklabco/mdlinkcheck/pkg/config"
	"github.com/yaklabco/mdlinkcheck/pkg/reporter"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type rootFlags struct {
	debug      bool
	configPath string
	color      string
	ignore     []string
	stats      bool
}

// NewRootCommand creates the root mdlinkcheck command.
//
// The root command itself runs the check; the tool is single-purpose,
// so there is no separate "check" subcommand.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "mdlinkcheck [paths...]",
		Short: "Check Markdown files for broken links to local files",
		Long: `mdlinkcheck validates internal hyperlinks and image references across
a tree of Markdown documents.

Every locally-referenced file must exist, and a link such as
[guide](docs/guide.md#setup) must point at a heading in docs/guide.md
that renders to the anchor id "setup" (GitLab heading-id rules).

Directories are searched recursively for Markdown files, skipping
hidden entries. Explicitly named files are checked regardless of
extension. With no arguments, the current directory is checked.

Exit codes:
  0  no problems found
  1  one or more broken links or missing anchors
  2  a named input path does not exist
  130  interrupted`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.Flags().StringArrayVar(&flags.ignore, "ignore", nil,
		"glob pattern to exclude during directory expansion (repeatable)")
	rootCmd.Flags().BoolVar(&flags.stats, "stats", false, "show a statistics table instead of the one-line summary")

	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

func runCheck(cmd *cobra.Command, args []string, flags *rootFlags) error {
	logger := logging.Default()

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(workDir, flags.configPath)
	if err != nil {
		return err
	}

	color := cfg.Color
	if cmd.Flags().Changed("color") {
		color = flags.color
	}

	logger.Debug("configuration resolved",
		logging.FieldWorkingDir, workDir,
		logging.FieldPaths, args,
	)

	chk, err := checker.New(checker.Options{
		Paths:       args,
		WorkingDir:  workDir,
		Extensions:  cfg.Extensions,
		IgnoreGlobs: append(append([]string{}, cfg.Ignore...), flags.ignore...),
	})
	if err != nil {
		return err
	}

	result, runErr := chk.Run(cmd.Context())

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}

	textReporter := reporter.NewTextReporter(reporter.Options{
		Writer:        cmd.ErrOrStderr(),
		SummaryWriter: cmd.OutOrStdout(),
		Color:         color,
		ShowStats:     flags.stats,
	})

	if runErr != nil {
		// The run aborted, but findings recorded before the abort must
		// still reach the user. The summary is withheld; its counters
		// describe a run that did not finish.
		if _, reportErr := textReporter.ReportIssues(result); reportErr != nil {
			return fmt.Errorf("write report: %w", reportErr)
		}
		return runErr
	}

	if _, err := textReporter.Report(result); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	logger.Debug("run complete",
		logging.FieldFilesChecked, result.FilesChecked,
		logging.FieldLinksChecked, result.LinksChecked,
		logging.FieldAdditionalParsed, result.AdditionalParsed,
		logging.FieldIssuesTotal, len(result.Issues),
	)

	if result.HasIssues() {
		return ErrIssuesFound
	}

	return nil
}

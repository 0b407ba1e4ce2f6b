package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdlinkcheck/internal/cli"
	"github.com/yaklabco/mdlinkcheck/pkg/checker"
)

func buildInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := cli.NewRootCommand(buildInfo())

	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestIntegration_CleanTree(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "See [b](b.md#intro).\n")
	writeFile(t, dir, "b.md", "## Intro\n")

	stdout, stderr, err := execute(t, "--color", "never", dir)

	require.NoError(t, err)
	assert.Equal(t, cli.ExitSuccess, cli.ExitCode(err))
	assert.Contains(t, stdout, "Checked 1 links in 2 files.")
	assert.Empty(t, stderr)
}

func TestIntegration_MissingAnchor(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "See [b](b.md#intro).\n")
	writeFile(t, dir, "b.md", "## Introduction\n")

	stdout, stderr, err := execute(t, "--color", "never", dir)

	require.ErrorIs(t, err, cli.ErrIssuesFound)
	assert.Equal(t, cli.ExitIssuesFound, cli.ExitCode(err))
	assert.Contains(t, stderr, "No heading #intro exists in referenced file")
	assert.Contains(t, stderr, "    #introduction")
	// The summary is still emitted on failure.
	assert.Contains(t, stdout, "Checked 1 links in 2 files.")
}

func TestIntegration_BrokenFileReference(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "A [broken](gone.md) link.\n")

	_, stderr, err := execute(t, "--color", "never", dir)

	require.ErrorIs(t, err, cli.ErrIssuesFound)
	assert.Contains(t, stderr, "does not exist.")
	assert.Contains(t, stderr, "a.md:1:")
}

func TestIntegration_InputPathDoesNotExist(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, filepath.Join(dir, "missing"))

	var notFound *checker.InputNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, cli.ExitInputError, cli.ExitCode(err))
}

func TestIntegration_ReferencedFileSummaryLine(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "docs/a.md", "[lib](../lib/b.md#intro)\n")
	writeFile(t, root, "lib/b.md", "## Intro\n")

	stdout, _, err := execute(t, "--color", "never", filepath.Join(root, "docs"))

	require.NoError(t, err)
	assert.Contains(t, stdout, "Checked 1 links in 1 files.")
	assert.Contains(t, stdout, "Parsed 1 additional referenced files.")
}

func TestIntegration_ConfigIgnore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.md", "# Keep\n")
	writeFile(t, dir, "vendor/broken.md", "[x](nope.md)\n")

	cfgDir := t.TempDir()
	cfgFile := filepath.Join(cfgDir, ".mdlinkcheck.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("ignore: [vendor]\n"), 0o644))

	stdout, _, err := execute(t, "--color", "never", "--config", cfgFile, dir)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Checked 0 links in 1 files.")
}

func TestIntegration_IgnoreFlag(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.md", "# Keep\n")
	writeFile(t, dir, "drafts/broken.md", "[x](nope.md)\n")

	_, _, err := execute(t, "--color", "never", "--ignore", "drafts", dir)

	require.NoError(t, err)
}

func TestIntegration_StatsTable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "# A\n")

	stdout, _, err := execute(t, "--color", "never", "--stats", dir)

	require.NoError(t, err)
	assert.Contains(t, stdout, "STATISTICS")
	assert.Contains(t, stdout, "OK")
}

func TestIntegration_VersionCommand(t *testing.T) {
	_, _, err := execute(t, "version")
	require.NoError(t, err)
}

func TestIntegration_ImageFragmentNotChecked(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "![pic](b.md#not-a-heading)\n")
	writeFile(t, dir, "b.md", "## Intro\n")

	_, stderr, err := execute(t, "--color", "never", dir)

	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestIntegration_ExternalURLSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "[site](https://example.com/missing.md#frag)\n")

	stdout, _, err := execute(t, "--color", "never", dir)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Checked 1 links in 1 files.")
}

func TestIntegration_ErrorLineNumbers(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "# Title\n\nfine text\n\nA [broken](gone.md) link.\n")

	_, stderr, err := execute(t, "--color", "never", dir)

	require.ErrorIs(t, err, cli.ErrIssuesFound)
	assert.Contains(t, stderr, "a.md:5:")
}

func TestIntegration_FindingsReportedBeforeInputError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "A [broken](missing.md) link.\n")

	stdout, stderr, err := execute(t, "--color", "never", dir, filepath.Join(dir, "absent"))

	var notFound *checker.InputNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, cli.ExitInputError, cli.ExitCode(err))

	// Findings recorded before the aborting root stay visible; the
	// summary is withheld because the run did not finish.
	assert.Contains(t, stderr, "does not exist.")
	assert.Contains(t, stderr, "a.md:1:")
	assert.NotContains(t, stdout, "Checked")
}

func TestIntegration_NonexistentErr(t *testing.T) {
	// errors.Is must not confuse input errors with lint findings.
	err := &checker.InputNotFoundError{Path: "x"}
	assert.False(t, errors.Is(err, cli.ErrIssuesFound))
}

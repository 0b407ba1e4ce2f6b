package checker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/yaklabco/mdlinkcheck/pkg/document"
)

// Checker validates local link and image references across Markdown
// files. It owns the loader cache, so a file referenced by many
// documents is parsed exactly once per run.
type Checker struct {
	opts    Options
	workDir string
	cache   *document.Cache
	result  *Result
}

// New creates a Checker for the given options.
func New(opts Options) (*Checker, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	absWorkDir, err := filepath.Abs(workDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	return &Checker{
		opts:    opts,
		workDir: canonicalize(absWorkDir),
		cache:   document.NewCache(),
	}, nil
}

// Run expands every configured path and checks each file sequentially.
// Validation findings accumulate in the Result; a missing input path
// aborts the run with an InputNotFoundError.
func (c *Checker) Run(ctx context.Context) (*Result, error) {
	c.result = &Result{}

	for _, root := range c.opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return c.result, err
		}

		files, isDir, err := c.expandRoot(ctx, root)
		if err != nil {
			return c.result, err
		}

		if isDir && len(files) == 0 {
			c.result.Warnings = append(c.result.Warnings, fmt.Sprintf(
				"No files ending in '%s' found in '%s'.",
				strings.Join(c.opts.effectiveExtensions(), "', '"), root))
		}

		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return c.result, err
			}
			if err := c.checkFile(canonicalize(file)); err != nil {
				return c.result, err
			}
		}
	}

	c.result.AdditionalParsed = c.cache.Len() - c.result.FilesChecked

	return c.result, nil
}

// checkFile loads one document and validates every link and image in it.
func (c *Checker) checkFile(path string) error {
	c.result.FilesChecked++

	loaded, err := c.cache.Load(path)
	if err != nil {
		return err
	}

	cursor := document.NewCursor(loaded.Doc.Root)
	for n := cursor.Next(); n != nil; n = cursor.Next() {
		switch node := n.(type) {
		case *ast.Link:
			c.checkLink(path, loaded.Doc, node, string(node.Destination), false)
		case *ast.Image:
			c.checkLink(path, loaded.Doc, node, string(node.Destination), true)
		}
	}

	return nil
}

// checkLink validates a single link or image destination against the
// filesystem and, for Markdown link targets with a fragment, against
// the target's heading anchor ids.
func (c *Checker) checkLink(sourcePath string, doc *document.Document, node ast.Node, dest string, isImage bool) {
	c.result.LinksChecked++

	scheme, rawPath, fragment := splitDestination(dest)

	// Only schemeless (local) references are checked.
	if scheme != "" {
		return
	}

	// An empty path component is a same-document fragment reference.
	target := sourcePath
	if rawPath != "" {
		// Symlinks must resolve before ".." components collapse, so the
		// joined path is canonicalized rather than cleaned lexically.
		target = canonicalize(filepath.Dir(sourcePath) + string(filepath.Separator) + filepath.FromSlash(rawPath))
	}

	if _, err := os.Stat(target); err != nil {
		c.record(sourcePath, doc.BlockLine(node),
			fmt.Sprintf("Referenced file '%s' does not exist.", c.relPath(target)))
		return
	}

	// Images are never checked against headings, fragment or not.
	if isImage || fragment == "" {
		return
	}
	if !hasMatchingExtension(target, c.opts.effectiveExtensions()) {
		return
	}

	loaded, err := c.cache.Load(target)
	if err != nil {
		// Target exists but became unreadable between Stat and Load.
		c.record(sourcePath, doc.BlockLine(node),
			fmt.Sprintf("Referenced file '%s' could not be read: %v.", c.relPath(target), err))
		return
	}

	if !slices.Contains(loaded.HeadingIDs, fragment) {
		c.record(sourcePath, doc.BlockLine(node),
			missingHeadingMessage(fragment, c.relPath(target), loaded.HeadingIDs))
	}
}

// record appends one validation finding.
func (c *Checker) record(path string, line int, message string) {
	c.result.Issues = append(c.result.Issues, Issue{
		Path:    path,
		Line:    line,
		Message: message,
	})
}

// relPath returns path relative to the working directory, for use in
// diagnostics. Falls back to the input when no relative form exists.
func (c *Checker) relPath(path string) string {
	rel, err := filepath.Rel(c.workDir, path)
	if err != nil {
		return path
	}
	return rel
}

// missingHeadingMessage enumerates the available anchors of a target
// file, preserving document order with duplicates kept, so the reader
// can see what the fragment could have been.
func missingHeadingMessage(fragment, target string, headingIDs []string) string {
	lines := make([]string, len(headingIDs))
	for i, id := range headingIDs {
		lines[i] = "    #" + id
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "No heading #%s exists in referenced file '%s'.\n", fragment, target)
	buf.WriteString("The following headings are available:\n")
	buf.WriteString(strings.Join(lines, "\n"))
	// Trailing newline leaves a blank line after the list.
	buf.WriteByte('\n')

	return buf.String()
}

// canonicalize resolves symlinks where possible. When resolution fails
// (the path does not exist), the lexically cleaned path stands in as a
// stable form for diagnostics and cache keys.
func canonicalize(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return filepath.Clean(path)
}

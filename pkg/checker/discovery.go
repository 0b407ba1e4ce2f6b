package checker

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// InputNotFoundError reports that a user-named input path does not
// exist. It is fatal for the run and maps to a distinct exit code.
type InputNotFoundError struct {
	Path string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("'%s' does not exist", e.Path)
}

// expandRoot resolves one user-specified root into the files to check,
// reporting whether the root was a directory.
//
// Directories are walked recursively: entries whose name starts with a
// dot are skipped at every level, and only files with a Markdown
// extension are yielded. A file argument is yielded unconditionally,
// regardless of extension. A missing root is an InputNotFoundError.
func (c *Checker) expandRoot(ctx context.Context, root string) ([]string, bool, error) {
	absRoot := root
	if !filepath.IsAbs(absRoot) {
		absRoot = filepath.Join(c.workDir, root)
	}
	absRoot = filepath.Clean(absRoot)

	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, &InputNotFoundError{Path: root}
		}
		return nil, false, fmt.Errorf("stat %s: %w", root, err)
	}

	if !info.IsDir() {
		return []string{absRoot}, false, nil
	}

	files, err := c.walkDirectory(ctx, absRoot)
	if err != nil {
		return nil, true, err
	}

	return files, true, nil
}

// walkDirectory recursively walks a directory, skipping hidden entries
// and collecting Markdown files in traversal order.
func (c *Checker) walkDirectory(ctx context.Context, root string) ([]string, error) {
	extensions := c.opts.effectiveExtensions()
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			return walkErr
		}

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if c.matchesIgnore(path, entry.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}
		if c.matchesIgnore(path, entry.Name()) {
			return nil
		}

		if hasMatchingExtension(path, extensions) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// matchesIgnore checks path against the configured ignore globs. Each
// pattern is tried against the path relative to the working directory
// and against the entry's base name.
func (c *Checker) matchesIgnore(path, name string) bool {
	if len(c.opts.IgnoreGlobs) == 0 {
		return false
	}

	relPath, err := filepath.Rel(c.workDir, path)
	if err != nil {
		relPath = path
	}
	relPath = filepath.ToSlash(relPath)

	for _, pattern := range c.opts.IgnoreGlobs {
		if matched, _ := filepath.Match(pattern, relPath); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}

	return false
}

// hasMatchingExtension checks if the file has a Markdown extension.
func hasMatchingExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// Package checker provides link and heading-anchor validation across a
// tree of Markdown documents.
package checker

// Options controls a checking run.
type Options struct {
	// Paths are the user-specified files or directories to check.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths
	// and to relativize paths in diagnostics. If empty, the current
	// process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading
	// dot) considered Markdown when expanding directories. Explicitly
	// named files bypass this filter. Defaults to DefaultExtensions().
	Extensions []string

	// IgnoreGlobs are glob patterns used to skip files or directories
	// during directory expansion, matched against paths relative to
	// WorkingDir and against entry base names.
	IgnoreGlobs []string
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

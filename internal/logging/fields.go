// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldConfig     = "config"
	FieldWorkingDir = "working_dir"

	// Statistics fields.
	FieldFilesChecked     = "files_checked"
	FieldLinksChecked     = "links_checked"
	FieldAdditionalParsed = "additional_parsed"
	FieldIssuesTotal      = "issues_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)

package checker

// Issue is one validation finding: a broken file reference or a missing
// heading anchor.
type Issue struct {
	// Path is the absolute path of the file containing the offending
	// link or image.
	Path string

	// Line is the 1-based source line of the smallest block construct
	// enclosing the offending span.
	Line int

	// Message is the user-facing description.
	Message string
}

// Result captures the aggregate outcome of a run.
type Result struct {
	// FilesChecked is the number of files whose links were validated.
	FilesChecked int

	// LinksChecked is the number of link and image tokens observed.
	LinksChecked int

	// AdditionalParsed is the number of files parsed only because they
	// were referenced as link targets, not named as inputs.
	AdditionalParsed int

	// Issues holds every validation finding, in discovery order.
	Issues []Issue

	// Warnings holds non-fatal notices, such as a directory argument
	// containing no Markdown files.
	Warnings []string
}

// HasIssues reports whether any validation finding was recorded.
func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}

// Package reporter renders checking results for terminal consumption.
package reporter

import (
	"io"
	"os"

	"golang.org/x/term"
)

const bufWriterSize = 32 * 1024

// Options controls reporter output.
type Options struct {
	// Writer receives validation findings. Typically stderr.
	Writer io.Writer

	// SummaryWriter receives the end-of-run summary. Typically stdout.
	SummaryWriter io.Writer

	// Color is the color mode: "auto", "always", or "never".
	Color string

	// ShowStats renders the statistics table instead of the one-line
	// summary.
	ShowStats bool
}

// terminalWidth returns the column count of w when it is a terminal,
// or 0 when the width cannot be determined.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

package reporter

import (
	"bufio"
	"fmt"

	"github.com/yaklabco/mdlinkcheck/internal/ui/pretty"
	"github.com/yaklabco/mdlinkcheck/pkg/checker"
)

// TextReporter writes findings and the run summary as styled text.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
}

// NewTextReporter creates a text reporter. Color mode is resolved
// against the findings writer.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
	}
}

// Report writes every finding as "<path>:<line>: <message>" to the
// findings writer, then the summary to the summary writer. It returns
// the number of findings written.
func (r *TextReporter) Report(result *checker.Result) (_ int, err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	r.writeIssues(bw, result)

	if r.opts.ShowStats {
		fmt.Fprint(r.opts.SummaryWriter,
			r.styles.FormatStatsTable(result, terminalWidth(r.opts.SummaryWriter)))
	} else {
		fmt.Fprint(r.opts.SummaryWriter, r.styles.FormatSummary(result))
	}

	return len(result.Issues), nil
}

// ReportIssues writes only the findings, without a summary. Used when a
// run aborts partway so everything found up to that point stays
// visible.
func (r *TextReporter) ReportIssues(result *checker.Result) (_ int, err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	r.writeIssues(bw, result)

	return len(result.Issues), nil
}

func (r *TextReporter) writeIssues(bw *bufio.Writer, result *checker.Result) {
	for _, issue := range result.Issues {
		fmt.Fprintln(bw, r.styles.FormatIssue(issue.Path, issue.Line, issue.Message))
	}
}

package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdlinkcheck/pkg/checker"
)

const (
	minTableWidth     = 24
	defaultTableWidth = 40
)

// FormatSummary renders the end-of-run statistics lines.
// The first line is always "Checked N links in M files."; a second line
// reports files that were parsed only because they were referenced.
func (s *Styles) FormatSummary(result *checker.Result) string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Checked %d links in %d files.\n",
		result.LinksChecked, result.FilesChecked)

	if result.AdditionalParsed > 0 {
		fmt.Fprintf(&buf, "Parsed %d additional referenced files.\n",
			result.AdditionalParsed)
	}

	return buf.String()
}

// FormatStatsTable renders run statistics as a small bordered table,
// clamped to the given terminal width.
func (s *Styles) FormatStatsTable(result *checker.Result, termWidth int) string {
	width := defaultTableWidth
	if termWidth > 0 && termWidth < width {
		width = termWidth
	}
	if width < minTableWidth {
		width = minTableWidth
	}

	rows := []struct {
		label string
		value int
	}{
		{"Files checked", result.FilesChecked},
		{"Links checked", result.LinksChecked},
		{"Referenced files parsed", result.AdditionalParsed},
		{"Issues", len(result.Issues)},
	}

	divider := s.TableBorder.Render(strings.Repeat("-", width))

	var buf strings.Builder
	buf.WriteString(s.TableHeader.Render("STATISTICS"))
	buf.WriteByte('\n')
	buf.WriteString(divider)
	buf.WriteByte('\n')

	for _, row := range rows {
		value := strconv.Itoa(row.value)
		pad := width - len(row.label) - len(value)
		if pad < 1 {
			pad = 1
		}
		buf.WriteString(s.SummaryTitle.Render(row.label))
		buf.WriteString(strings.Repeat(" ", pad))
		buf.WriteString(s.SummaryValue.Render(value))
		buf.WriteByte('\n')
	}

	buf.WriteString(divider)
	buf.WriteByte('\n')

	if result.HasIssues() {
		buf.WriteString(s.Failure.Render("FAIL"))
	} else {
		buf.WriteString(s.Success.Render("OK"))
	}
	buf.WriteByte('\n')

	return buf.String()
}

package pretty

import (
	"fmt"
	"strconv"
)

// FormatIssue renders one validation finding as
// "<path>:<line>: <message>". The path stays absolute so editors and CI
// viewers can open it directly; only the styling varies with color mode.
func (s *Styles) FormatIssue(path string, line int, message string) string {
	location := s.Location.Render(":" + strconv.Itoa(line) + ":")
	return fmt.Sprintf("%s%s %s",
		s.FilePath.Render(path),
		location,
		s.Message.Render(message),
	)
}

// FormatWarning renders a non-fatal notice.
func (s *Styles) FormatWarning(message string) string {
	return s.Warning.Render("warning: ") + s.Message.Render(message)
}

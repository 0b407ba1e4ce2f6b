package document

import "sort"

// LineInfo holds byte-offset metadata for a single line.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// BuildLines constructs the line index for content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			lines = append(lines, LineInfo{
				StartOffset: lineStart,
				EndOffset:   idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Last line may not have a trailing newline.
	if lineStart < len(content) {
		lines = append(lines, LineInfo{
			StartOffset: lineStart,
			EndOffset:   len(content),
		})
	}

	return lines
}

// LineAt converts a byte offset to a 1-based line number.
// Returns 0 if the offset is out of range.
func (d *Document) LineAt(offset int) int {
	if offset < 0 || len(d.Lines) == 0 {
		return 0
	}

	if offset >= len(d.Content) {
		return len(d.Lines)
	}

	lineIdx := sort.Search(len(d.Lines), func(i int) bool {
		return d.Lines[i].EndOffset > offset
	})

	if lineIdx >= len(d.Lines) {
		return len(d.Lines)
	}

	return lineIdx + 1
}

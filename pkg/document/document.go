// Package document provides parsed, immutable views of Markdown files
// plus a process-lifetime loader cache keyed by canonical absolute path.
package document

import (
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/mdlinkcheck/pkg/slug"
)

// Document is an immutable parsed view of one Markdown file.
// It is never mutated after Parse returns.
type Document struct {
	// Path is the canonical absolute path of the source file.
	Path string

	// Content is the full file bytes the AST segments index into.
	Content []byte

	// Lines is the byte-offset line index for Content.
	Lines []LineInfo

	// Root is the goldmark AST root.
	Root ast.Node
}

// LoadedFile pairs a Document with the anchor ids of its headings.
type LoadedFile struct {
	Doc *Document

	// HeadingIDs holds the derived anchor id of every heading in
	// document order. Duplicates are kept as-is; ids are not
	// disambiguated the way a renderer would suffix them.
	HeadingIDs []string
}

// Parse parses Markdown content into a Document.
// Content that is not valid UTF-8 is repaired by replacement-character
// substitution rather than rejected.
func Parse(path string, content []byte) *Document {
	content = sanitizeUTF8(content)

	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(content))

	return &Document{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
		Root:    root,
	}
}

// HeadingIDs walks the document once and derives the anchor id of every
// heading, in document order.
func (d *Document) HeadingIDs() []string {
	var ids []string

	cursor := NewCursor(d.Root)
	for n := cursor.Next(); n != nil; n = cursor.Next() {
		if heading, ok := n.(*ast.Heading); ok {
			ids = append(ids, slug.Heading(NodeText(heading, d.Content)))
		}
	}

	return ids
}

// sanitizeUTF8 replaces invalid byte sequences with U+FFFD so a single
// badly-encoded file never fails a run.
func sanitizeUTF8(content []byte) []byte {
	if utf8.Valid(content) {
		return content
	}
	return []byte(strings.ToValidUTF8(string(content), string(utf8.RuneError)))
}

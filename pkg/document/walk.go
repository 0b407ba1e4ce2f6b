package document

import (
	"strings"

	"github.com/yuin/goldmark/ast"
)

// Cursor is a one-shot, depth-first, pre-order iterator over a goldmark
// AST. It maintains an explicit stack instead of recursing, so callers
// can pull nodes one at a time without building an intermediate slice.
type Cursor struct {
	stack []ast.Node
}

// NewCursor creates a cursor rooted at node. The root itself is the
// first node yielded.
func NewCursor(root ast.Node) *Cursor {
	c := &Cursor{}
	if root != nil {
		c.stack = append(c.stack, root)
	}
	return c
}

// Next returns the next node in pre-order, or nil when the traversal is
// exhausted. The cursor cannot be restarted.
func (c *Cursor) Next() ast.Node {
	if len(c.stack) == 0 {
		return nil
	}

	node := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]

	// Push children in reverse so the first child is popped first.
	for child := node.LastChild(); child != nil; child = child.PreviousSibling() {
		c.stack = append(c.stack, child)
	}

	return node
}

// NodeText returns the literal text content of the subtree under node
// with all formatting markup stripped, concatenated in document order.
func NodeText(node ast.Node, source []byte) string {
	var buf strings.Builder

	cursor := NewCursor(node)
	for n := cursor.Next(); n != nil; n = cursor.Next() {
		switch t := n.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
		case *ast.String:
			buf.Write(t.Value)
		}
	}

	return buf.String()
}

// BlockLine returns the 1-based source line of the nearest block-level
// ancestor of node (including node itself). Inline nodes carry no
// position of their own, so the line reported is always that of the
// smallest enclosing block construct. Returns 0 if no position can be
// determined.
func (d *Document) BlockLine(node ast.Node) int {
	for n := node; n != nil; n = n.Parent() {
		if n.Type() != ast.TypeBlock {
			continue
		}
		if lines := n.Lines(); lines != nil && lines.Len() > 0 {
			return d.LineAt(lines.At(0).Start)
		}
	}
	return 0
}

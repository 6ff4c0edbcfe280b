package huffman

import (
	"fmt"
	"io"
	"strings"
)

// Print draws the tree sideways with the left branch on top, one symbol per
// line.
func (t *Tree) Print(w io.Writer) error {
	var sb strings.Builder
	if t.IsLeaf(t.root) {
		fmt.Fprintf(&sb, "---%q\n", t.nodes[t.root].symbol)
	} else {
		t.print(&sb, t.root, 1, 0)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func padd(sb *strings.Builder, depth int) {
	const padding = "    "
	for i := 0; i < depth; i++ {
		sb.WriteString(padding)
	}
}

func (t *Tree) print(sb *strings.Builder, id NodeID, depth, isAbove int) {
	n := &t.nodes[id]

	if l := &t.nodes[n.left]; l.leaf() {
		padd(sb, depth)
		fmt.Fprintf(sb, "/--%q\n", l.symbol)
	} else {
		t.print(sb, n.left, depth+1, 1)
	}

	padd(sb, depth-1)
	switch {
	case isAbove > 0:
		sb.WriteString("/--<\n")
	case isAbove == 0:
		sb.WriteString("---<\n")
	default:
		sb.WriteString("\\--<\n")
	}

	if r := &t.nodes[n.right]; r.leaf() {
		padd(sb, depth)
		fmt.Fprintf(sb, "\\--%q\n", r.symbol)
	} else {
		t.print(sb, n.right, depth+1, -1)
	}
}

// PrintCodes writes one "symbol code" line per coded symbol.
func (c *CodeTable) PrintCodes(w io.Writer) error {
	var sb strings.Builder
	for _, s := range c.Symbols() {
		code, _ := c.Code(s)
		fmt.Fprintf(&sb, "%q %s\n", s, code.String())
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

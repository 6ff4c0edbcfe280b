package huffman

// CodeTable maps every symbol of a tree to its bit string. Left edges
// contribute a 0, right edges a 1.
type CodeTable struct {
	codes   [256]Bits
	present [256]bool
	n       int
}

// BuildCodes walks the tree and records the path to each leaf. The lone leaf
// of a single-symbol tree gets the empty code.
func BuildCodes(t *Tree) *CodeTable {
	c := &CodeTable{}
	c.walk(t, t.root, Bits{})
	return c
}

func (c *CodeTable) walk(t *Tree, id NodeID, prefix Bits) {
	n := &t.nodes[id]
	if n.leaf() {
		c.codes[n.symbol] = prefix
		c.present[n.symbol] = true
		c.n++
		return
	}
	left := prefix.Clone()
	left.AppendBit(0)
	c.walk(t, n.left, left)

	right := prefix.Clone()
	right.AppendBit(1)
	c.walk(t, n.right, right)
}

// Code returns the code for s and whether s is in the table.
func (c *CodeTable) Code(s Symbol) (*Bits, bool) {
	if !c.present[s] {
		return nil, false
	}
	return &c.codes[s], true
}

// Len returns the number of symbols with a code.
func (c *CodeTable) Len() int { return c.n }

// Symbols returns the coded symbols in ascending order.
func (c *CodeTable) Symbols() []Symbol {
	out := make([]Symbol, 0, c.n)
	for i, ok := range c.present {
		if ok {
			out = append(out, Symbol(i))
		}
	}
	return out
}

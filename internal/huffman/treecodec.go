package huffman

import "fmt"

// maxTreeNodes is the size of a full tree over all 256 byte values.
const maxTreeNodes = 2*256 - 1

// SerializeTree writes the tree in pre-order: a leaf is a 1 bit followed by
// its 8-bit symbol, an internal node is a 0 bit followed by its left and
// right subtrees.
func SerializeTree(t *Tree) Bits {
	var b Bits
	t.serialize(t.root, &b)
	return b
}

func (t *Tree) serialize(id NodeID, b *Bits) {
	n := &t.nodes[id]
	if n.leaf() {
		b.AppendBit(1)
		b.AppendUint(uint64(n.symbol), 8)
		return
	}
	b.AppendBit(0)
	t.serialize(n.left, b)
	t.serialize(n.right, b)
}

// DeserializeTree reads a tree written by SerializeTree starting at bit
// cursor. It returns the tree and the position of the first bit after it.
func DeserializeTree(bits *Bits, cursor int) (*Tree, int, error) {
	t := &Tree{}
	root, next, err := t.deserialize(bits, cursor)
	if err != nil {
		return nil, next, err
	}
	t.root = root
	return t, next, nil
}

func (t *Tree) deserialize(bits *Bits, cursor int) (NodeID, int, error) {
	if len(t.nodes) >= maxTreeNodes {
		return noNode, cursor, fmt.Errorf("%w: more than %d nodes", ErrMalformedTree, maxTreeNodes)
	}
	if cursor >= bits.Len() {
		return noNode, cursor, fmt.Errorf("%w: stream ends at bit %d inside the tree", ErrMalformedTree, cursor)
	}

	if bits.At(cursor) == 1 {
		cursor++
		if cursor+8 > bits.Len() {
			return noNode, cursor, fmt.Errorf("%w: leaf symbol truncated at bit %d", ErrMalformedTree, cursor)
		}
		return t.addLeaf(Symbol(bits.Uint(cursor, 8)), 0), cursor + 8, nil
	}
	cursor++

	// Reserve the slot first so handles follow pre-order.
	t.nodes = append(t.nodes, node{})
	id := NodeID(len(t.nodes) - 1)

	left, cursor, err := t.deserialize(bits, cursor)
	if err != nil {
		return noNode, cursor, err
	}
	right, cursor, err := t.deserialize(bits, cursor)
	if err != nil {
		return noNode, cursor, err
	}
	t.nodes[id].left, t.nodes[id].right = left, right
	return id, cursor, nil
}

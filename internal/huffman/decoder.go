package huffman

import "fmt"

// Decoder reverses Encoder. Like Encoder it is safe for concurrent use.
type Decoder struct {
	config Config
}

// NewDecoder creates a decoder with the given options.
func NewDecoder(opts ...Option) *Decoder {
	return &Decoder{config: newConfig(opts)}
}

// Decompress decodes a stream produced by Encoder.Compress.
func (d *Decoder) Decompress(input []byte) ([]byte, error) {
	bits, err := Unpack(input)
	if err != nil {
		return nil, err
	}

	tree, cursor, err := DeserializeTree(&bits, 0)
	if err != nil {
		return nil, err
	}
	treeBits := cursor
	d.config.Observer.Observe(Event{Kind: EventTree, Symbols: countLeaves(tree), TreeBits: treeBits})

	pad, err := readPadCount(&bits, cursor)
	if err != nil {
		return nil, err
	}
	cursor += 8 + pad

	out, err := decodeText(tree, &bits, cursor)
	if err != nil {
		return nil, err
	}
	d.config.Observer.Observe(Event{Kind: EventText, TextBits: bits.Len() - cursor, PadBits: pad})
	d.config.Observer.Observe(Event{
		Kind:        EventDecompressed,
		Symbols:     countLeaves(tree),
		TreeBits:    treeBits,
		PadBits:     pad,
		TextBits:    bits.Len() - cursor,
		InputBytes:  len(input),
		OutputBytes: len(out),
	})
	return out, nil
}

// readPadCount reads the 8-bit pad-count field at cursor and checks that the
// padding it announces is present and zero.
func readPadCount(bits *Bits, cursor int) (int, error) {
	if cursor+8 > bits.Len() {
		return 0, fmt.Errorf("%w: pad-count field truncated at bit %d", ErrCorruptStream, cursor)
	}
	pad := int(bits.Uint(cursor, 8))
	if pad > 7 {
		return 0, fmt.Errorf("%w: pad count %d out of range", ErrCorruptStream, pad)
	}
	cursor += 8
	if cursor+pad > bits.Len() {
		return 0, fmt.Errorf("%w: %d padding bits announced, %d left", ErrCorruptStream, pad, bits.Len()-cursor)
	}
	if bits.Uint(cursor, pad) != 0 {
		return 0, fmt.Errorf("%w: non-zero padding at bit %d", ErrCorruptStream, cursor)
	}
	return pad, nil
}

// decodeText walks the tree from the root for every code, emitting a symbol
// at each leaf.
func decodeText(t *Tree, bits *Bits, cursor int) ([]byte, error) {
	root := t.root
	if t.IsLeaf(root) {
		sym := byte(t.nodes[root].symbol)
		out := make([]byte, 0, bits.Len()-cursor)
		for i := cursor; i < bits.Len(); i++ {
			if bits.At(i) != 0 {
				return nil, fmt.Errorf("%w: set bit %d under a single-symbol tree", ErrCorruptStream, i)
			}
			out = append(out, sym)
		}
		return out, nil
	}

	out := make([]byte, 0, bits.Len()-cursor)
	id := root
	for i := cursor; i < bits.Len(); i++ {
		n := &t.nodes[id]
		if bits.At(i) == 0 {
			id = n.left
		} else {
			id = n.right
		}
		if t.nodes[id].leaf() {
			out = append(out, byte(t.nodes[id].symbol))
			id = root
		}
	}
	if id != root {
		return nil, fmt.Errorf("%w: stream ends inside a code", ErrCorruptStream)
	}
	return out, nil
}

func countLeaves(t *Tree) int {
	n := 0
	for i := range t.nodes {
		if t.nodes[i].leaf() {
			n++
		}
	}
	return n
}

var defaultDecoder = NewDecoder()

// Decompress decodes input with a default Decoder.
func Decompress(input []byte) ([]byte, error) {
	return defaultDecoder.Decompress(input)
}

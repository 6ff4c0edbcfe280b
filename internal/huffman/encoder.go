package huffman

// Encoder compresses byte slices. It holds no per-call state, so a single
// Encoder may be used from several goroutines.
type Encoder struct {
	config Config
}

// NewEncoder creates an encoder with the given options.
func NewEncoder(opts ...Option) *Encoder {
	return &Encoder{config: newConfig(opts)}
}

// Compress encodes input as
//
//	[tree bits][pad count, 8 bits][pad count zero bits][text bits]
//
// packed into bytes. The pad count makes the total a multiple of 8.
func (e *Encoder) Compress(input []byte) ([]byte, error) {
	table := Count(input)
	tree, err := BuildTree(table)
	if err != nil {
		return nil, err
	}
	e.config.Observer.Observe(Event{Kind: EventFrequencies, Frequencies: &table, Symbols: table.Len(), InputBytes: len(input)})

	codes := BuildCodes(tree)
	treeBits := SerializeTree(tree)
	e.config.Observer.Observe(Event{Kind: EventTree, Symbols: table.Len(), TreeBits: treeBits.Len()})

	text := encodeText(tree, codes, &table, input)
	pad := padCount(treeBits.Len(), text.Len())
	e.config.Observer.Observe(Event{Kind: EventText, TextBits: text.Len(), PadBits: pad})

	var stream Bits
	stream.Grow(treeBits.Len() + 8 + pad + text.Len())
	stream.Append(&treeBits)
	stream.AppendUint(uint64(pad), 8)
	stream.AppendUint(0, pad)
	stream.Append(&text)

	out, err := Pack(&stream)
	if err != nil {
		return nil, err
	}
	e.config.Observer.Observe(Event{
		Kind:        EventCompressed,
		Symbols:     table.Len(),
		TreeBits:    treeBits.Len(),
		PadBits:     pad,
		TextBits:    text.Len(),
		InputBytes:  len(input),
		OutputBytes: len(out),
	})
	return out, nil
}

// padCount is the number of zero bits needed after the 8-bit pad-count
// field so that the stream ends on a byte boundary.
func padCount(treeBits, textBits int) int {
	return (8 - (treeBits+8+textBits)%8) % 8
}

// encodeText concatenates the code of every input byte. A single-symbol
// tree has an empty code, so each occurrence is written as one 0 bit.
func encodeText(t *Tree, codes *CodeTable, table *FrequencyTable, input []byte) Bits {
	var text Bits
	if t.IsLeaf(t.root) {
		text.Grow(len(input))
		for range input {
			text.AppendBit(0)
		}
		return text
	}

	size := 0
	for _, s := range codes.Symbols() {
		code, _ := codes.Code(s)
		size += int(table.Count(s)) * code.Len()
	}
	text.Grow(size)
	for _, b := range input {
		code, _ := codes.Code(Symbol(b))
		text.Append(code)
	}
	return text
}

var defaultEncoder = NewEncoder()

// Compress encodes input with a default Encoder.
func Compress(input []byte) ([]byte, error) {
	return defaultEncoder.Compress(input)
}

package huffman

// Symbol is one byte of input.
type Symbol byte

// FrequencyTable holds per-symbol occurrence counts of one input.
// It is never modified after Count returns it.
type FrequencyTable struct {
	counts   [256]uint64
	total    uint64
	distinct int
}

// Count builds the frequency table of input in a single pass.
func Count(input []byte) FrequencyTable {
	var t FrequencyTable
	for _, b := range input {
		if t.counts[b] == 0 {
			t.distinct++
		}
		t.counts[b]++
	}
	t.total = uint64(len(input))
	return t
}

// Count returns the number of times s occurred.
func (t *FrequencyTable) Count(s Symbol) uint64 { return t.counts[s] }

// Len returns the number of distinct symbols.
func (t *FrequencyTable) Len() int { return t.distinct }

// Total returns the sum of all counts, which is the input length.
func (t *FrequencyTable) Total() uint64 { return t.total }

// Symbols returns the symbols with a non-zero count in ascending order.
func (t *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, t.distinct)
	for i, c := range t.counts {
		if c > 0 {
			out = append(out, Symbol(i))
		}
	}
	return out
}

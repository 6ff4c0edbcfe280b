package huffman

import "math/rand"

// randomInput returns n bytes drawn from the first alphabet byte values.
func randomInput(seed int64, n, alphabet int) []byte {
	r := rand.New(rand.NewSource(seed))
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(r.Intn(alphabet))
	}
	return out
}

func bitsFromString(s string) Bits {
	var b Bits
	for i := 0; i < len(s); i++ {
		b.AppendBit(s[i] - '0')
	}
	return b
}

type recorder struct {
	events []Event
}

func (r *recorder) Observe(ev Event) {
	ev.Frequencies = nil
	r.events = append(r.events, ev)
}

func (r *recorder) kinds() []EventKind {
	out := make([]EventKind, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Kind
	}
	return out
}

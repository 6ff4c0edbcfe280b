package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/icza/bitio"
)

const wordBits = 64

// Bits is a growable sequence of bits. Bits are stored most significant
// first inside 64-bit words, so bit i lives at words[i/64] bit 63-i%64.
// The zero value is an empty sequence ready to use.
type Bits struct {
	words []uint64
	n     int
}

// Len returns the number of bits in the sequence.
func (b *Bits) Len() int { return b.n }

// Grow reserves room for n more bits.
func (b *Bits) Grow(n int) {
	need := (b.n + n + wordBits - 1) / wordBits
	if need > cap(b.words) {
		words := make([]uint64, len(b.words), need)
		copy(words, b.words)
		b.words = words
	}
}

// At returns bit i as 0 or 1.
func (b *Bits) At(i int) byte {
	return byte(b.words[i/wordBits]>>(wordBits-1-i%wordBits)) & 1
}

// Uint reads width bits starting at bit i as a big-endian unsigned value.
// width must be at most 64 and i+width at most Len.
func (b *Bits) Uint(i, width int) uint64 {
	var v uint64
	for k := 0; k < width; k++ {
		v = v<<1 | uint64(b.At(i+k))
	}
	return v
}

// AppendBit appends a single bit; any non-zero value appends 1.
func (b *Bits) AppendBit(bit byte) {
	if bit != 0 {
		bit = 1
	}
	b.AppendUint(uint64(bit), 1)
}

// AppendUint appends the low width bits of v, most significant first.
func (b *Bits) AppendUint(v uint64, width int) {
	if width <= 0 {
		return
	}
	if width < wordBits {
		v &= 1<<uint(width) - 1
	}
	off := b.n % wordBits
	if off == 0 {
		b.words = append(b.words, 0)
	}
	free := wordBits - off
	last := len(b.words) - 1
	if width <= free {
		b.words[last] |= v << uint(free-width)
	} else {
		rest := width - free
		b.words[last] |= v >> uint(rest)
		b.words = append(b.words, v<<uint(wordBits-rest))
	}
	b.n += width
}

// Append appends every bit of o.
func (b *Bits) Append(o *Bits) {
	full := o.n / wordBits
	for i := 0; i < full; i++ {
		b.AppendUint(o.words[i], wordBits)
	}
	if rem := o.n % wordBits; rem > 0 {
		b.AppendUint(o.words[full]>>uint(wordBits-rem), rem)
	}
}

// Clone returns an independent copy of b.
func (b *Bits) Clone() Bits {
	return Bits{words: append([]uint64(nil), b.words...), n: b.n}
}

// String renders the bits as a string of '0' and '1'.
func (b *Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		sb.WriteByte('0' + b.At(i))
	}
	return sb.String()
}

// Pack groups bits into bytes, most significant bit first. The sequence
// must already be a whole number of bytes long.
func Pack(b *Bits) ([]byte, error) {
	if b.n%8 != 0 {
		return nil, fmt.Errorf("huffman: cannot pack %d bits, not a multiple of 8", b.n)
	}
	buf := bytes.NewBuffer(make([]byte, 0, b.n/8))
	w := bitio.NewWriter(buf)
	full := b.n / wordBits
	for i := 0; i < full; i++ {
		if err := w.WriteBits(b.words[i], wordBits); err != nil {
			return nil, err
		}
	}
	if rem := b.n % wordBits; rem > 0 {
		if err := w.WriteBits(b.words[full]>>uint(wordBits-rem), uint8(rem)); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unpack expands every byte of data into 8 bits, most significant first.
func Unpack(data []byte) (Bits, error) {
	var b Bits
	b.Grow(len(data) * 8)
	r := bitio.NewReader(bytes.NewReader(data))
	left := len(data)
	for left >= 8 {
		v, err := r.ReadBits(wordBits)
		if err != nil {
			return Bits{}, err
		}
		b.AppendUint(v, wordBits)
		left -= 8
	}
	for ; left > 0; left-- {
		v, err := r.ReadBits(8)
		if err != nil {
			return Bits{}, err
		}
		b.AppendUint(v, 8)
	}
	return b, nil
}

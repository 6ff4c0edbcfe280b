package huffman

import "errors"

var (
	// ErrEmptyInput is returned when compressing a zero-length input.
	ErrEmptyInput = errors.New("huffman: empty input")
	// ErrMalformedTree indicates the serialized tree ended early or is too large.
	ErrMalformedTree = errors.New("huffman: malformed tree")
	// ErrCorruptStream indicates the payload after the tree does not decode cleanly.
	ErrCorruptStream = errors.New("huffman: corrupt stream")
	// ErrBadMagic indicates a frame that does not start with the frame magic.
	ErrBadMagic = errors.New("huffman: bad frame magic")
)

package huffman

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Frame layout:
//
//	magic    [4]byte = "HUF1"
//	length   uint64 little-endian, original byte count
//	checksum uint64 little-endian, xxhash64 of the original bytes
//	payload  raw stream as written by Encoder.Compress
//
// The raw stream has no length field, so a cut that lands on a code
// boundary still decodes. The frame catches that.
const (
	frameMagic      = "HUF1"
	frameHeaderSize = len(frameMagic) + 8 + 8
)

// FrameHeader is the fixed-size prefix of a frame.
type FrameHeader struct {
	Length   uint64
	Checksum uint64
}

// Seal wraps a raw stream together with the length and checksum of the
// data it encodes.
func Seal(stream, original []byte) []byte {
	out := make([]byte, 0, frameHeaderSize+len(stream))
	out = append(out, frameMagic...)
	out = binary.LittleEndian.AppendUint64(out, uint64(len(original)))
	out = binary.LittleEndian.AppendUint64(out, xxhash.Sum64(original))
	return append(out, stream...)
}

// Open splits a frame into its header and raw stream.
func Open(frame []byte) ([]byte, FrameHeader, error) {
	if len(frame) < len(frameMagic) || string(frame[:len(frameMagic)]) != frameMagic {
		return nil, FrameHeader{}, ErrBadMagic
	}
	if len(frame) < frameHeaderSize {
		return nil, FrameHeader{}, fmt.Errorf("%w: frame header truncated (%d bytes)", ErrCorruptStream, len(frame))
	}
	h := FrameHeader{
		Length:   binary.LittleEndian.Uint64(frame[4:12]),
		Checksum: binary.LittleEndian.Uint64(frame[12:20]),
	}
	return frame[frameHeaderSize:], h, nil
}

// CompressFrame compresses input and seals the result in a frame.
func (e *Encoder) CompressFrame(input []byte) ([]byte, error) {
	stream, err := e.Compress(input)
	if err != nil {
		return nil, err
	}
	return Seal(stream, input), nil
}

// DecompressFrame opens a frame, decodes its stream and verifies the
// decoded length and checksum.
func (d *Decoder) DecompressFrame(frame []byte) ([]byte, error) {
	stream, h, err := Open(frame)
	if err != nil {
		return nil, err
	}
	out, err := d.Decompress(stream)
	if err != nil {
		return nil, err
	}
	if uint64(len(out)) != h.Length {
		return nil, fmt.Errorf("%w: decoded %d bytes, frame says %d", ErrCorruptStream, len(out), h.Length)
	}
	if sum := xxhash.Sum64(out); sum != h.Checksum {
		return nil, fmt.Errorf("%w: checksum %016x, frame says %016x", ErrCorruptStream, sum, h.Checksum)
	}
	return out, nil
}

// Package huffman implements a static Huffman coder whose output carries its
// own code tree.
//
// A compressed stream is the pre-order serialized tree, an 8-bit pad count,
// that many zero bits, and the encoded text, all packed most significant bit
// first. The whole input and output are held in memory.
package huffman

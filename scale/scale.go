// Package scale implements the SCALE codec ("Simple Concatenated
// Aggregate Little-Endian") used throughout the Substrate ecosystem.
//
// Every wire structure this library touches, from runtime metadata to
// signed extrinsics, is built from the same handful of shapes: fixed
// width little-endian integers, self-describing compact integers,
// tagged unions selected by a leading discriminant byte, and
// length-prefixed sequences. Encoder and Decoder cover exactly those
// shapes and nothing more; higher layers compose them.
//
// All operations are pure functions over owned buffers and are safe
// for concurrent use as long as each Encoder/Decoder is confined to a
// single goroutine.
package scale

// Compact integer mode tags, stored in the two low bits of the first
// encoded byte.
const (
	modeSingleByte = 0b00
	modeTwoBytes   = 0b01
	modeFourBytes  = 0b10
	modeBigInt     = 0b11
)

const (
	maxSingleByte = 0x3f
	maxTwoBytes   = 0x3fff
	maxFourBytes  = 0x3fffffff
)

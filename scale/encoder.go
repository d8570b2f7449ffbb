package scale

import (
	"bytes"
	"encoding/binary"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// Encoder accumulates SCALE-encoded values into an internal buffer.
// Encoding of fixed shapes cannot fail; only values that may exceed
// their declared width return an error.
type Encoder struct {
	buf bytes.Buffer
}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns a copy of everything encoded so far.
func (e *Encoder) Bytes() []byte {
	out := make([]byte, e.buf.Len())
	copy(out, e.buf.Bytes())
	return out
}

func (e *Encoder) Len() int {
	return e.buf.Len()
}

func (e *Encoder) EncodeU8(v uint8) {
	e.buf.WriteByte(v)
}

func (e *Encoder) EncodeU16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	e.buf.Write(b[:])
}

func (e *Encoder) EncodeU32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	e.buf.Write(b[:])
}

func (e *Encoder) EncodeU64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	e.buf.Write(b[:])
}

// EncodeU128 writes v as a fixed 16-byte little-endian integer.
func (e *Encoder) EncodeU128(v sdkmath.Uint) error {
	be := v.BigInt().Bytes()
	if len(be) > 16 {
		return errorsmod.Wrapf(ErrValueTooLarge, "u128 needs %d bytes", len(be))
	}

	var le [16]byte
	for i, b := range be {
		le[len(be)-1-i] = b
	}
	e.buf.Write(le[:])
	return nil
}

func (e *Encoder) EncodeBool(v bool) {
	if v {
		e.buf.WriteByte(1)
	} else {
		e.buf.WriteByte(0)
	}
}

// EncodeVariant writes the discriminant byte of a tagged union. The
// caller encodes the variant body afterwards.
func (e *Encoder) EncodeVariant(tag uint8) {
	e.buf.WriteByte(tag)
}

// EncodeOption writes the option tag: 0x00 for None, 0x01 for Some.
// For Some, the caller encodes the inner value afterwards.
func (e *Encoder) EncodeOption(some bool) {
	e.EncodeBool(some)
}

// EncodeCompactU64 writes v in the smallest compact size class that
// holds it.
func (e *Encoder) EncodeCompactU64(v uint64) {
	switch {
	case v <= maxSingleByte:
		e.buf.WriteByte(byte(v<<2) | modeSingleByte)
	case v <= maxTwoBytes:
		e.EncodeU16(uint16(v<<2) | modeTwoBytes)
	case v <= maxFourBytes:
		e.EncodeU32(uint32(v<<2) | modeFourBytes)
	default:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], v)
		n := 8
		for n > 4 && b[n-1] == 0 {
			n--
		}
		e.buf.WriteByte(byte((n-4)<<2) | modeBigInt)
		e.buf.Write(b[:n])
	}
}

// EncodeCompactUint writes an arbitrary-width unsigned integer in
// compact form. Values above 2^256-1 are rejected, which comfortably
// covers the u128 balance domain.
func (e *Encoder) EncodeCompactUint(v sdkmath.Uint) error {
	big := v.BigInt()
	if big.IsUint64() {
		e.EncodeCompactU64(big.Uint64())
		return nil
	}

	be := big.Bytes()
	if len(be) > 32 {
		return errorsmod.Wrapf(ErrValueTooLarge, "compact integer needs %d bytes", len(be))
	}

	e.buf.WriteByte(byte((len(be)-4)<<2) | modeBigInt)
	for i := len(be) - 1; i >= 0; i-- {
		e.buf.WriteByte(be[i])
	}
	return nil
}

// EncodeLen writes the compact length prefix of a sequence. The caller
// encodes the n elements afterwards.
func (e *Encoder) EncodeLen(n int) {
	e.EncodeCompactU64(uint64(n))
}

// EncodeBytes writes a length-prefixed byte string.
func (e *Encoder) EncodeBytes(b []byte) {
	e.EncodeLen(len(b))
	e.buf.Write(b)
}

func (e *Encoder) EncodeString(s string) {
	e.EncodeBytes([]byte(s))
}

// RawBytes appends b without a length prefix, for pre-encoded material
// such as call arguments or fixed-size hashes.
func (e *Encoder) RawBytes(b []byte) {
	e.buf.Write(b)
}

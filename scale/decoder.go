package scale

import (
	"encoding/binary"
	"math/big"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// Decoder reads SCALE-encoded values from an owned buffer, tracking the
// current offset so errors can report where decoding stopped. It never
// reads past the end of the buffer.
type Decoder struct {
	data []byte
	off  int
}

func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Offset reports how many bytes have been consumed.
func (d *Decoder) Offset() int {
	return d.off
}

// Remaining reports how many bytes are left.
func (d *Decoder) Remaining() int {
	return len(d.data) - d.off
}

func (d *Decoder) read(n int) ([]byte, error) {
	if d.Remaining() < n {
		return nil, errorsmod.Wrapf(ErrUnexpectedEOF, "need %d bytes at offset %d, have %d", n, d.off, d.Remaining())
	}
	b := d.data[d.off : d.off+n]
	d.off += n
	return b, nil
}

func (d *Decoder) DecodeU8() (uint8, error) {
	b, err := d.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *Decoder) DecodeU16() (uint16, error) {
	b, err := d.read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (d *Decoder) DecodeU32() (uint32, error) {
	b, err := d.read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (d *Decoder) DecodeU64() (uint64, error) {
	b, err := d.read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// DecodeU128 reads a fixed 16-byte little-endian integer.
func (d *Decoder) DecodeU128() (sdkmath.Uint, error) {
	b, err := d.read(16)
	if err != nil {
		return sdkmath.Uint{}, err
	}
	return sdkmath.NewUintFromBigInt(leToBig(b)), nil
}

func (d *Decoder) DecodeBool() (bool, error) {
	b, err := d.DecodeU8()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errorsmod.Wrapf(ErrUnknownVariant, "bool byte 0x%02x at offset %d", b, d.off-1)
	}
}

// DecodeVariant reads the discriminant byte of a tagged union.
func (d *Decoder) DecodeVariant() (uint8, error) {
	return d.DecodeU8()
}

// DecodeOption reads the option tag and reports whether an inner value
// follows.
func (d *Decoder) DecodeOption() (bool, error) {
	return d.DecodeBool()
}

// DecodeCompactU64 reads a compact integer that must fit in 64 bits.
func (d *Decoder) DecodeCompactU64() (uint64, error) {
	v, err := d.DecodeCompactUint()
	if err != nil {
		return 0, err
	}
	if !v.BigInt().IsUint64() {
		return 0, errorsmod.Wrapf(ErrValueTooLarge, "compact integer %s exceeds 64 bits", v)
	}
	return v.Uint64(), nil
}

// DecodeCompactUint reads a compact integer of any supported width.
// Non-minimal encodings are rejected: every value has exactly one valid
// compact form.
func (d *Decoder) DecodeCompactUint() (sdkmath.Uint, error) {
	first, err := d.DecodeU8()
	if err != nil {
		return sdkmath.Uint{}, err
	}

	switch first & 0b11 {
	case modeSingleByte:
		return sdkmath.NewUint(uint64(first >> 2)), nil

	case modeTwoBytes:
		rest, err := d.read(1)
		if err != nil {
			return sdkmath.Uint{}, err
		}
		v := uint64(binary.LittleEndian.Uint16([]byte{first, rest[0]})) >> 2
		if v <= maxSingleByte {
			return sdkmath.Uint{}, errorsmod.Wrapf(ErrNonMinimal, "value %d in two-byte mode", v)
		}
		return sdkmath.NewUint(v), nil

	case modeFourBytes:
		rest, err := d.read(3)
		if err != nil {
			return sdkmath.Uint{}, err
		}
		v := uint64(binary.LittleEndian.Uint32([]byte{first, rest[0], rest[1], rest[2]})) >> 2
		if v <= maxTwoBytes {
			return sdkmath.Uint{}, errorsmod.Wrapf(ErrNonMinimal, "value %d in four-byte mode", v)
		}
		return sdkmath.NewUint(v), nil

	default: // modeBigInt
		n := int(first>>2) + 4
		if n > 32 {
			return sdkmath.Uint{}, errorsmod.Wrapf(ErrValueTooLarge, "compact integer of %d bytes", n)
		}
		b, err := d.read(n)
		if err != nil {
			return sdkmath.Uint{}, err
		}
		if b[n-1] == 0 {
			return sdkmath.Uint{}, errorsmod.Wrapf(ErrNonMinimal, "big-integer mode with zero high byte")
		}
		v := leToBig(b)
		if v.Cmp(big.NewInt(maxFourBytes)) <= 0 {
			return sdkmath.Uint{}, errorsmod.Wrapf(ErrNonMinimal, "value %s in big-integer mode", v)
		}
		return sdkmath.NewUintFromBigInt(v), nil
	}
}

// DecodeLen reads the compact length prefix of a sequence. The length
// is bounded by the remaining buffer size so a corrupt prefix cannot
// drive allocations.
func (d *Decoder) DecodeLen() (int, error) {
	n, err := d.DecodeCompactU64()
	if err != nil {
		return 0, err
	}
	if n > uint64(d.Remaining()) {
		return 0, errorsmod.Wrapf(ErrUnexpectedEOF, "declared length %d exceeds %d remaining bytes at offset %d", n, d.Remaining(), d.off)
	}
	return int(n), nil
}

// DecodeBytes reads a length-prefixed byte string, returning a copy.
func (d *Decoder) DecodeBytes() ([]byte, error) {
	n, err := d.DecodeLen()
	if err != nil {
		return nil, err
	}
	b, err := d.read(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

func (d *Decoder) DecodeString() (string, error) {
	b, err := d.DecodeBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeFixed reads exactly n raw bytes, returning a copy.
func (d *Decoder) DecodeFixed(n int) ([]byte, error) {
	b, err := d.read(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

func leToBig(le []byte) *big.Int {
	be := make([]byte, len(le))
	for i, b := range le {
		be[len(le)-1-i] = b
	}
	return new(big.Int).SetBytes(be)
}

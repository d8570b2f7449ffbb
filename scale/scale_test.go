package scale

import (
	"encoding/hex"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func TestCompactRoundTrip(t *testing.T) {
	testCases := []struct {
		value   uint64
		encoded string
	}{
		{0, "00"},
		{1, "04"},
		{42, "a8"},
		{63, "fc"},
		{64, "0101"},
		{255, "fd03"},
		{16383, "fdff"},
		{16384, "02000100"},
		{1073741823, "feffffff"},
		{1073741824, "0300000040"},
		{4294967295, "03ffffffff"},
		{4294967296, "070000000001"},
		{1<<64 - 1, "13ffffffffffffffff"},
	}

	for _, tc := range testCases {
		enc := NewEncoder()
		enc.EncodeCompactU64(tc.value)
		require.Equal(t, tc.encoded, hex.EncodeToString(enc.Bytes()), "value %d", tc.value)

		dec := NewDecoder(enc.Bytes())
		got, err := dec.DecodeCompactU64()
		require.NoError(t, err, "value %d", tc.value)
		require.Equal(t, tc.value, got)
		require.Zero(t, dec.Remaining())
	}
}

func TestCompactU128(t *testing.T) {
	u := sdkmath.NewUintFromString("340282366920938463463374607431768211455") // 2^128-1

	enc := NewEncoder()
	require.NoError(t, enc.EncodeCompactUint(u))
	// 16 payload bytes, big-integer mode.
	require.Equal(t, "33"+"ffffffffffffffffffffffffffffffff", hex.EncodeToString(enc.Bytes()))

	dec := NewDecoder(enc.Bytes())
	got, err := dec.DecodeCompactUint()
	require.NoError(t, err)
	require.True(t, got.Equal(u))
}

func TestCompactRejectsNonMinimal(t *testing.T) {
	testCases := []struct {
		name    string
		encoded string
	}{
		{"small value in two-byte mode", "fd00"},
		{"small value in four-byte mode", "02000000"},
		{"small value in big-integer mode", "0300000001"},
		{"zero high byte in big-integer mode", "03ffffff00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := hex.DecodeString(tc.encoded)
			require.NoError(t, err)
			_, err = NewDecoder(raw).DecodeCompactUint()
			require.ErrorIs(t, err, ErrNonMinimal)
		})
	}
}

func TestCompactTruncated(t *testing.T) {
	for _, encoded := range []string{"01", "020001", "0300", "13ffff", ""} {
		raw, err := hex.DecodeString(encoded)
		require.NoError(t, err)
		_, err = NewDecoder(raw).DecodeCompactUint()
		require.ErrorIs(t, err, ErrUnexpectedEOF, "input %q", encoded)
	}
}

func TestFixedWidthRoundTrip(t *testing.T) {
	enc := NewEncoder()
	enc.EncodeU8(0xab)
	enc.EncodeU16(0xcdef)
	enc.EncodeU32(0xdeadbeef)
	enc.EncodeU64(0x0123456789abcdef)
	require.NoError(t, enc.EncodeU128(sdkmath.NewUintFromString("1000000000000000000000000000000000000")))

	dec := NewDecoder(enc.Bytes())

	u8, err := dec.DecodeU8()
	require.NoError(t, err)
	require.Equal(t, uint8(0xab), u8)

	u16, err := dec.DecodeU16()
	require.NoError(t, err)
	require.Equal(t, uint16(0xcdef), u16)

	u32, err := dec.DecodeU32()
	require.NoError(t, err)
	require.Equal(t, uint32(0xdeadbeef), u32)

	u64, err := dec.DecodeU64()
	require.NoError(t, err)
	require.Equal(t, uint64(0x0123456789abcdef), u64)

	u128, err := dec.DecodeU128()
	require.NoError(t, err)
	require.Equal(t, "1000000000000000000000000000000000000", u128.String())
	require.Zero(t, dec.Remaining())
}

func TestLittleEndianByteOrder(t *testing.T) {
	enc := NewEncoder()
	enc.EncodeU32(0x12345678)
	require.Equal(t, "78563412", hex.EncodeToString(enc.Bytes()))
}

func TestBytesAndString(t *testing.T) {
	enc := NewEncoder()
	enc.EncodeBytes([]byte{1, 2, 3})
	enc.EncodeString("transfer_keep_alive")

	dec := NewDecoder(enc.Bytes())
	b, err := dec.DecodeBytes()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, b)

	s, err := dec.DecodeString()
	require.NoError(t, err)
	require.Equal(t, "transfer_keep_alive", s)
}

func TestDecodeLenBoundsAllocations(t *testing.T) {
	// Length prefix claims 2^20 bytes but only 2 follow.
	enc := NewEncoder()
	enc.EncodeCompactU64(1 << 20)
	enc.RawBytes([]byte{1, 2})

	_, err := NewDecoder(enc.Bytes()).DecodeBytes()
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestVariantAndOption(t *testing.T) {
	enc := NewEncoder()
	enc.EncodeVariant(2)
	enc.EncodeOption(true)
	enc.EncodeU8(7)
	enc.EncodeOption(false)

	dec := NewDecoder(enc.Bytes())
	tag, err := dec.DecodeVariant()
	require.NoError(t, err)
	require.Equal(t, uint8(2), tag)

	some, err := dec.DecodeOption()
	require.NoError(t, err)
	require.True(t, some)

	v, err := dec.DecodeU8()
	require.NoError(t, err)
	require.Equal(t, uint8(7), v)

	some, err = dec.DecodeOption()
	require.NoError(t, err)
	require.False(t, some)
}

func TestBoolRejectsJunk(t *testing.T) {
	_, err := NewDecoder([]byte{2}).DecodeBool()
	require.ErrorIs(t, err, ErrUnknownVariant)
}

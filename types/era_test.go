package types

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/subkit-labs/subkit/scale"
)

func encodeEra(e Era) []byte {
	enc := scale.NewEncoder()
	e.Encode(enc)
	return enc.Bytes()
}

func TestImmortalEraEncoding(t *testing.T) {
	require.Equal(t, []byte{0}, encodeEra(ImmortalEra()))

	era, err := DecodeEra(scale.NewDecoder([]byte{0}))
	require.NoError(t, err)
	require.False(t, era.IsMortal)
}

func TestMortalEraEncoding(t *testing.T) {
	testCases := []struct {
		period, phase uint64
		encoded       string
	}{
		{64, 59, "b503"},
		{32768, 20000, "4e9c"},
		{4, 3, "3100"},
	}

	for _, tc := range testCases {
		era := Era{IsMortal: true, Period: tc.period, Phase: tc.phase}
		require.Equal(t, tc.encoded, hex.EncodeToString(encodeEra(era)), "period %d phase %d", tc.period, tc.phase)

		got, err := DecodeEra(scale.NewDecoder(encodeEra(era)))
		require.NoError(t, err)
		require.Equal(t, era, got)
	}
}

func TestMortalEraConstructor(t *testing.T) {
	era := MortalEra(64, 1000)
	require.True(t, era.IsMortal)
	require.Equal(t, uint64(64), era.Period)
	require.Equal(t, uint64(1000%64), era.Phase)
	require.Equal(t, uint64(1000), era.BirthBlock(1000))

	// Non-power-of-two periods round up.
	require.Equal(t, uint64(128), MortalEra(100, 0).Period)
	// Out-of-range periods clamp.
	require.Equal(t, uint64(4), MortalEra(1, 0).Period)
	require.Equal(t, uint64(1<<16), MortalEra(1<<20, 0).Period)
}

func TestDecodeEraRejectsInvalid(t *testing.T) {
	// Phase beyond period.
	_, err := DecodeEra(scale.NewDecoder([]byte{0x41, 0xff}))
	require.ErrorIs(t, err, ErrInvalidEra)

	// Truncated mortal era.
	_, err = DecodeEra(scale.NewDecoder([]byte{0x05}))
	require.ErrorIs(t, err, scale.ErrUnexpectedEOF)
}

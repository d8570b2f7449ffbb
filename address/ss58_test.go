package address

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Development account "Alice" (sr25519).
const alicePubHex = "d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"

func alicePub(t *testing.T) []byte {
	t.Helper()
	pub, err := hex.DecodeString(alicePubHex)
	require.NoError(t, err)
	return pub
}

func TestEncodeKnownAddresses(t *testing.T) {
	testCases := []struct {
		prefix uint16
		addr   string
	}{
		{SubstratePrefix, "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"},
		{PolkadotPrefix, "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5"},
	}

	for _, tc := range testCases {
		addr, err := Encode(alicePub(t), tc.prefix)
		require.NoError(t, err)
		require.Equal(t, tc.addr, addr)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, prefix := range []uint16{0, 1, 2, 42, 63, 64, 255, 8888, 16383} {
		addr, err := Encode(alicePub(t), prefix)
		require.NoError(t, err)

		pub, gotPrefix, err := Decode(addr)
		require.NoError(t, err, "prefix %d", prefix)
		require.Equal(t, alicePub(t), pub)
		require.Equal(t, prefix, gotPrefix)
	}
}

func TestRoundTrip33ByteKey(t *testing.T) {
	key := make([]byte, 33)
	key[0] = 0x02
	key[32] = 0xff

	addr, err := Encode(key, KusamaPrefix)
	require.NoError(t, err)

	pub, prefix, err := Decode(addr)
	require.NoError(t, err)
	require.Equal(t, key, pub)
	require.Equal(t, KusamaPrefix, prefix)
}

func TestDecodeRejectsMutations(t *testing.T) {
	const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	addr, err := Encode(alicePub(t), SubstratePrefix)
	require.NoError(t, err)

	// Every single-character substitution must be rejected.
	for i := 0; i < len(addr); i++ {
		replacement := alphabet[0]
		if addr[i] == replacement {
			replacement = alphabet[1]
		}
		mutated := addr[:i] + string(replacement) + addr[i+1:]
		_, _, err := Decode(mutated)
		require.Error(t, err, "mutation at %d survived", i)
	}

	// An interior substitution keeps the shape intact, so the checksum is
	// what catches it.
	i := len(addr) / 2
	replacement := byte('7')
	if addr[i] == replacement {
		replacement = '8'
	}
	mutated := addr[:i] + string(replacement) + addr[i+1:]
	_, _, err = Decode(mutated)
	require.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestDecodeErrorKinds(t *testing.T) {
	_, _, err := Decode("not base58 0OIl")
	require.ErrorIs(t, err, ErrInvalidBase58)

	_, _, err = Decode(strings.Repeat("1", 4))
	require.ErrorIs(t, err, ErrInvalidLength)

	_, err = Encode(alicePub(t), 16384)
	require.ErrorIs(t, err, ErrReservedPrefix)

	_, err = Encode([]byte{1, 2, 3}, SubstratePrefix)
	require.ErrorIs(t, err, ErrInvalidKeyLength)
}

func TestPrefixByName(t *testing.T) {
	prefix, err := PrefixByName("kusama")
	require.NoError(t, err)
	require.Equal(t, KusamaPrefix, prefix)

	_, err = PrefixByName("narnia")
	require.ErrorIs(t, err, ErrUnknownNetwork)
}

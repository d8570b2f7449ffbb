package types

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/subkit-labs/subkit/address"
	"github.com/subkit-labs/subkit/scale"
)

const aliceSS58 = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"

func TestAccountIDSS58RoundTrip(t *testing.T) {
	id, prefix, err := AccountIDFromSS58(aliceSS58)
	require.NoError(t, err)
	require.Equal(t, address.SubstratePrefix, prefix)
	require.Equal(t,
		"d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d",
		hex.EncodeToString(id.Bytes()),
	)

	addr, err := id.ToSS58(prefix)
	require.NoError(t, err)
	require.Equal(t, aliceSS58, addr)
}

func TestMultiAddressRoundTrip(t *testing.T) {
	id, _, err := AccountIDFromSS58(aliceSS58)
	require.NoError(t, err)

	enc := scale.NewEncoder()
	id.EncodeMultiAddress(enc)

	raw := enc.Bytes()
	require.Len(t, raw, 33)
	require.Equal(t, byte(0), raw[0])

	got, err := DecodeMultiAddress(scale.NewDecoder(raw))
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestDecodeMultiAddressRejectsOtherVariants(t *testing.T) {
	raw := make([]byte, 33)
	raw[0] = 1 // index variant

	_, err := DecodeMultiAddress(scale.NewDecoder(raw))
	require.ErrorIs(t, err, scale.ErrUnknownVariant)
}

func TestNewAccountIDLength(t *testing.T) {
	_, err := NewAccountID(make([]byte, 31))
	require.ErrorIs(t, err, ErrInvalidAccountID)
}

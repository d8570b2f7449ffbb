package tx

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/subkit-labs/subkit/crypto"
	"github.com/subkit-labs/subkit/metadata"
	"github.com/subkit-labs/subkit/scale"
	"github.com/subkit-labs/subkit/types"
)

func TestUnsignedExtrinsicRoundTrip(t *testing.T) {
	ext := &SignedExtrinsic{
		Version: TxVersion,
		Call:    NewCall(0, 1, []byte{0x04, 0xff}),
	}

	raw, err := ext.Encode()
	require.NoError(t, err)
	// compact length, version byte 0x04, module 0, dispatch 1, args.
	require.Equal(t, []byte{0x14, 0x04, 0x00, 0x01, 0x04, 0xff}, raw)

	decoded, err := Decode(raw)
	require.NoError(t, err)
	require.False(t, decoded.Signed)
	require.Equal(t, uint8(TxVersion), decoded.Version)
	require.Equal(t, ext.Call.EncodedArgs(), decoded.Call.EncodedArgs())
}

func TestDecodeVersion3Signer(t *testing.T) {
	var signer types.AccountID
	for i := range signer {
		signer[i] = byte(i)
	}

	body := scale.NewEncoder()
	body.EncodeU8(3 | 0x80)
	body.RawBytes(signer[:]) // bare account id, no MultiAddress tag
	body.EncodeVariant(0)    // ed25519
	body.RawBytes(make([]byte, 64))
	body.EncodeU8(0) // immortal
	body.EncodeCompactU64(5)
	body.EncodeCompactU64(100)
	body.EncodeU8(4) // call
	body.EncodeU8(3)

	out := scale.NewEncoder()
	out.EncodeBytes(body.Bytes())

	decoded, err := Decode(out.Bytes())
	require.NoError(t, err)
	require.Equal(t, uint8(3), decoded.Version)
	require.True(t, decoded.Signed)
	require.Equal(t, signer, decoded.Signer)
	require.Equal(t, crypto.Ed25519, decoded.Signature.Scheme)
	require.False(t, decoded.Era.IsMortal)
	require.Equal(t, uint32(5), decoded.Nonce)
	require.True(t, decoded.Payment.BaseUnits().Equal(sdkmath.NewUint(100)))
	require.Equal(t, uint8(4), decoded.Call.ModuleID)
	require.Equal(t, uint8(3), decoded.Call.DispatchID)

	// Version 3 is decode-only.
	decoded.Version = 3
	_, err = decoded.Encode()
	require.ErrorIs(t, err, ErrUnknownVersion)
}

func TestDecodeRejectsUnknownVersion(t *testing.T) {
	for _, versionByte := range []uint8{0x02, 0x05, 0x85, 0x7f} {
		body := scale.NewEncoder()
		body.EncodeU8(versionByte)
		out := scale.NewEncoder()
		out.EncodeBytes(body.Bytes())

		_, err := Decode(out.Bytes())
		require.ErrorIs(t, err, ErrUnknownVersion, "version byte 0x%02x", versionByte)
	}
}

func TestDecodeRejectsTrailingBytes(t *testing.T) {
	ext := &SignedExtrinsic{Version: TxVersion, Call: NewCall(0, 0)}
	raw, err := ext.Encode()
	require.NoError(t, err)

	_, err = Decode(append(raw, 0xff))
	require.ErrorIs(t, err, ErrTrailingBytes)
}

func TestDecodeRejectsTruncation(t *testing.T) {
	kp := testKeyPair(t, crypto.Sr25519)
	ext, err := NewBuilder().
		WithSigner(kp).
		WithCall(NewCall(4, 3, []byte{0x00})).
		WithNonce(1).
		WithPayment(types.DOT.Amount(0)).
		WithNetwork(types.Polkadot).
		Build()
	require.NoError(t, err)

	raw, err := ext.Encode()
	require.NoError(t, err)

	for _, n := range []int{0, 1, 10, len(raw) / 2, len(raw) - 1} {
		_, err := Decode(raw[:n])
		require.ErrorIs(t, err, scale.ErrUnexpectedEOF, "truncated at %d", n)
	}
}

func TestDecodeRejectsUnknownSignatureScheme(t *testing.T) {
	body := scale.NewEncoder()
	body.EncodeU8(TxVersion | 0x80)
	var signer types.AccountID
	signer.EncodeMultiAddress(body)
	body.EncodeVariant(9) // no such scheme
	body.RawBytes(make([]byte, 64))

	out := scale.NewEncoder()
	out.EncodeBytes(body.Bytes())

	_, err := Decode(out.Bytes())
	require.ErrorIs(t, err, crypto.ErrUnknownScheme)
}

func TestNewCallFromMetadata(t *testing.T) {
	doc := scale.NewEncoder()
	doc.RawBytes([]byte("meta"))
	doc.EncodeU8(13)
	doc.EncodeLen(1)
	doc.EncodeString("Balances")
	doc.EncodeOption(false)
	doc.EncodeOption(true)
	doc.EncodeLen(4)
	for _, name := range []string{"transfer", "set_balance", "force_transfer", "transfer_keep_alive"} {
		doc.EncodeString(name)
		doc.EncodeLen(2)
		doc.EncodeString("dest")
		doc.EncodeString("<T::Lookup as StaticLookup>::Source")
		doc.EncodeString("value")
		doc.EncodeString("Compact<T::Balance>")
		doc.EncodeLen(0)
	}
	doc.EncodeOption(false)
	doc.EncodeLen(0)
	doc.EncodeLen(0)
	doc.EncodeU8(4)
	doc.EncodeU8(4)
	doc.EncodeLen(0)

	m, err := metadata.Parse(doc.Bytes())
	require.NoError(t, err)

	dest := make([]byte, 33)
	value := []byte{0x0b, 0x00}

	call, err := NewCallFromMetadata(m, "Balances", "transfer_keep_alive", dest, value)
	require.NoError(t, err)
	require.Equal(t, uint8(4), call.ModuleID)
	require.Equal(t, uint8(3), call.DispatchID)

	_, err = NewCallFromMetadata(m, "Balances", "transfer_keep_alive", dest)
	require.ErrorIs(t, err, ErrArgCount)

	_, err = NewCallFromMetadata(m, "Balances", "teleport", dest, value)
	require.ErrorIs(t, err, metadata.ErrNotFound)
}

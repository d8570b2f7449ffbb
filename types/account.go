// Package types holds the chain-level primitives shared by the
// transaction layer: account identifiers, transaction mortality,
// network descriptors and native-currency balances.
package types

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/subkit-labs/subkit/address"
	"github.com/subkit-labs/subkit/scale"
)

// AccountIDLength is the size of an on-chain account identifier.
const AccountIDLength = 32

// multiAddressIDTag is the MultiAddress discriminant for a raw
// 32-byte account id.
const multiAddressIDTag = 0

// AccountID is an opaque 32-byte identifier of an on-chain account,
// usually a public key (or its hash for secp256k1 keys).
type AccountID [AccountIDLength]byte

// NewAccountID builds an AccountID from raw bytes.
func NewAccountID(b []byte) (AccountID, error) {
	var id AccountID
	if len(b) != AccountIDLength {
		return id, errorsmod.Wrapf(ErrInvalidAccountID, "got %d bytes", len(b))
	}
	copy(id[:], b)
	return id, nil
}

// AccountIDFromSS58 parses an SS58 address into an account id and its
// network prefix.
func AccountIDFromSS58(addr string) (AccountID, uint16, error) {
	pub, prefix, err := address.Decode(addr)
	if err != nil {
		return AccountID{}, 0, err
	}
	id, err := NewAccountID(pub)
	if err != nil {
		return AccountID{}, 0, err
	}
	return id, prefix, nil
}

// ToSS58 renders the account id as an SS58 address under the given
// network prefix.
func (id AccountID) ToSS58(prefix uint16) (string, error) {
	return address.Encode(id[:], prefix)
}

// Bytes returns a copy of the raw identifier.
func (id AccountID) Bytes() []byte {
	out := make([]byte, AccountIDLength)
	copy(out, id[:])
	return out
}

// EncodeMultiAddress writes the id in MultiAddress form: discriminant
// 0x00 followed by the raw bytes. This is the signer format of modern
// extrinsic versions.
func (id AccountID) EncodeMultiAddress(enc *scale.Encoder) {
	enc.EncodeVariant(multiAddressIDTag)
	enc.RawBytes(id[:])
}

// DecodeMultiAddress reads a MultiAddress-form account id. Only the
// raw-id variant is supported; the index/raw/address variants never
// appear in the transactions this library produces.
func DecodeMultiAddress(dec *scale.Decoder) (AccountID, error) {
	tag, err := dec.DecodeVariant()
	if err != nil {
		return AccountID{}, err
	}
	if tag != multiAddressIDTag {
		return AccountID{}, errorsmod.Wrapf(scale.ErrUnknownVariant, "multi-address tag 0x%02x", tag)
	}
	return decodeRawAccountID(dec)
}

// DecodeRawAccountID reads a bare 32-byte account id, the signer format
// of historic extrinsic versions.
func DecodeRawAccountID(dec *scale.Decoder) (AccountID, error) {
	return decodeRawAccountID(dec)
}

func decodeRawAccountID(dec *scale.Decoder) (AccountID, error) {
	b, err := dec.DecodeFixed(AccountIDLength)
	if err != nil {
		return AccountID{}, err
	}
	var id AccountID
	copy(id[:], b)
	return id, nil
}

// Package address implements the SS58 textual address format: a
// network prefix and a public key wrapped with a blake2b checksum and
// rendered as base58.
package address

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

const (
	// ChecksumLength is the number of checksum bytes appended to account
	// addresses.
	ChecksumLength = 2

	// MaxPrefix is the largest encodable network prefix; identifiers at
	// or above it are reserved by the registry.
	MaxPrefix = 16384
)

// checksumContext is the fixed context string mixed into the checksum
// hash, preventing collisions with other blake2b uses.
var checksumContext = []byte("SS58PRE")

// Encode renders a public key and network prefix as an SS58 address.
// Account keys are 32 bytes (ed25519, sr25519) or 33 bytes (compressed
// secp256k1).
func Encode(pubKey []byte, prefix uint16) (string, error) {
	if len(pubKey) != 32 && len(pubKey) != 33 {
		return "", errorsmod.Wrapf(ErrInvalidKeyLength, "got %d bytes", len(pubKey))
	}
	if prefix >= MaxPrefix {
		return "", errorsmod.Wrapf(ErrReservedPrefix, "prefix %d", prefix)
	}

	payload := make([]byte, 0, 2+len(pubKey)+ChecksumLength)
	if prefix < 64 {
		payload = append(payload, byte(prefix))
	} else {
		// Two-byte form. The first byte carries bits 2..7 of the identifier
		// under the 0b01 marker; the second carries bits 0..1 in its high
		// positions and bits 8..13 in its low positions.
		payload = append(payload,
			byte((prefix&0b0000_0000_1111_1100)>>2)|0b0100_0000,
			byte(prefix>>8)|byte(prefix&0b11)<<6,
		)
	}
	payload = append(payload, pubKey...)

	sum := checksum(payload)
	payload = append(payload, sum[:ChecksumLength]...)

	return base58.Encode(payload), nil
}

// Decode parses an SS58 address back into its public key and network
// prefix, verifying the checksum.
func Decode(addr string) ([]byte, uint16, error) {
	data, err := base58.Decode(addr)
	if err != nil {
		return nil, 0, errorsmod.Wrap(ErrInvalidBase58, err.Error())
	}
	if len(data) < 2 {
		return nil, 0, errorsmod.Wrapf(ErrInvalidLength, "decoded %d bytes", len(data))
	}

	var prefix uint16
	var prefixLen int
	switch {
	case data[0] < 64:
		prefix, prefixLen = uint16(data[0]), 1
	case data[0] < 128:
		lower := byte(data[0]<<2) | data[1]>>6
		upper := data[1] & 0b0011_1111
		prefix, prefixLen = uint16(lower)|uint16(upper)<<8, 2
	default:
		return nil, 0, errorsmod.Wrapf(ErrReservedPrefix, "leading byte 0x%02x", data[0])
	}

	keyLen := len(data) - prefixLen - ChecksumLength
	if keyLen != 32 && keyLen != 33 {
		return nil, 0, errorsmod.Wrapf(ErrInvalidLength, "decoded %d bytes leaves %d key bytes", len(data), keyLen)
	}

	body := data[:prefixLen+keyLen]
	sum := checksum(body)
	embedded := data[prefixLen+keyLen:]
	if sum[0] != embedded[0] || sum[1] != embedded[1] {
		return nil, 0, errorsmod.Wrapf(ErrChecksumMismatch, "computed %02x%02x, embedded %02x%02x", sum[0], sum[1], embedded[0], embedded[1])
	}

	pubKey := make([]byte, keyLen)
	copy(pubKey, data[prefixLen:prefixLen+keyLen])
	return pubKey, prefix, nil
}

func checksum(body []byte) [64]byte {
	buf := make([]byte, 0, len(checksumContext)+len(body))
	buf = append(buf, checksumContext...)
	buf = append(buf, body...)
	return blake2b.Sum512(buf)
}

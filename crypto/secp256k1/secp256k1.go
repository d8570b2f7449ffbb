// Package secp256k1 implements the ECDSA signature scheme over the
// secp256k1 curve as Substrate chains use it: messages are hashed with
// blake2b-256 before signing, and signatures carry a trailing recovery
// id so the public key can be recovered from signature and message.
package secp256k1

import (
	"bytes"
	"crypto/subtle"

	errorsmod "cosmossdk.io/errors"
	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/blake2b"
)

const (
	// SeedSize defines the size of the private scalar bytes.
	SeedSize = 32
	// PubKeySize defines the size of the compressed PubKey bytes.
	PubKeySize = 33
	// SignatureSize defines the size of the signature including the
	// recovery id.
	SignatureSize = 65
	// KeyType is the string constant for the secp256k1 algorithm.
	KeyType = "secp256k1"
)

// compactRecoveryOffset is the constant the compact signature format
// adds to the recovery id.
const compactRecoveryOffset = 27

const codespace = "crypto/secp256k1"

var (
	// ErrInvalidSeed is returned for seeds that are not a valid private
	// scalar.
	ErrInvalidSeed = errorsmod.Register(codespace, 2, "invalid secp256k1 seed")
	// ErrKeyZeroized is returned when signing with a key whose material
	// has been released.
	ErrKeyZeroized = errorsmod.Register(codespace, 3, "secp256k1 key has been zeroized")
	// ErrInvalidSignature is returned when recovery input is malformed.
	ErrInvalidSignature = errorsmod.Register(codespace, 4, "invalid secp256k1 signature")
)

// PrivKey holds a secp256k1 private scalar. The scalar is never
// exposed after construction.
type PrivKey struct {
	key *secp256k1.PrivateKey
}

// GenerateKey generates a new random private key and returns it along
// with the scalar seed it can be reconstructed from.
func GenerateKey() (*PrivKey, []byte, error) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, nil, err
	}
	return &PrivKey{key: key}, key.Serialize(), nil
}

// PrivKeyFromSeed builds the private key from a 32-byte scalar.
func PrivKeyFromSeed(seed []byte) (*PrivKey, error) {
	if len(seed) != SeedSize {
		return nil, errorsmod.Wrapf(ErrInvalidSeed, "got %d bytes", len(seed))
	}

	var zero [SeedSize]byte
	if subtle.ConstantTimeCompare(seed, zero[:]) == 1 {
		return nil, errorsmod.Wrap(ErrInvalidSeed, "zero scalar")
	}

	return &PrivKey{key: secp256k1.PrivKeyFromBytes(seed)}, nil
}

// Sign creates a recoverable ECDSA signature over blake2b-256 of the
// message. The produced signature is 65 bytes where the last byte
// contains the recovery id.
func (privKey *PrivKey) Sign(msg []byte) ([]byte, error) {
	if privKey.key == nil {
		return nil, ErrKeyZeroized
	}

	digest := blake2b.Sum256(msg)
	compact := ecdsa.SignCompact(privKey.key, digest[:], false)

	// Move the leading recovery code to the trailing position and strip
	// the compact-format offset.
	sig := make([]byte, 0, SignatureSize)
	sig = append(sig, compact[1:]...)
	sig = append(sig, compact[0]-compactRecoveryOffset)
	return sig, nil
}

// PubKey returns the public half of the key in compressed form.
func (privKey *PrivKey) PubKey() *PubKey {
	return &PubKey{Key: privKey.key.PubKey().SerializeCompressed()}
}

// Equals returns true if two private keys hold the same scalar.
func (privKey *PrivKey) Equals(other *PrivKey) bool {
	return subtle.ConstantTimeCompare(privKey.key.Serialize(), other.key.Serialize()) == 1
}

// Zeroize overwrites the private scalar. The key is unusable
// afterwards.
func (privKey *PrivKey) Zeroize() {
	if privKey.key != nil {
		privKey.key.Zero()
		privKey.key = nil
	}
}

// PubKey is a compressed secp256k1 public key.
type PubKey struct {
	Key []byte
}

// Bytes returns the raw bytes of the compressed public key.
func (pubKey *PubKey) Bytes() []byte {
	bz := make([]byte, len(pubKey.Key))
	copy(bz, pubKey.Key)
	return bz
}

// Type returns secp256k1.
func (pubKey *PubKey) Type() string {
	return KeyType
}

// AccountID returns the 32-byte on-chain identifier of this key:
// blake2b-256 of the compressed public key, since the key itself does
// not fit the 32-byte account format.
func (pubKey *PubKey) AccountID() [32]byte {
	return blake2b.Sum256(pubKey.Key)
}

// VerifySignature reports whether sig is a valid recoverable signature
// of msg under this key.
func (pubKey *PubKey) VerifySignature(msg, sig []byte) bool {
	recovered, err := RecoverPubKey(msg, sig)
	if err != nil {
		return false
	}
	return bytes.Equal(recovered.Key, pubKey.Key)
}

// Equals returns true if two public keys are byte-equal.
func (pubKey *PubKey) Equals(other *PubKey) bool {
	return bytes.Equal(pubKey.Key, other.Key)
}

// RecoverPubKey recovers the compressed public key that produced a
// 65-byte recoverable signature over msg.
func RecoverPubKey(msg, sig []byte) (*PubKey, error) {
	if len(sig) != SignatureSize {
		return nil, errorsmod.Wrapf(ErrInvalidSignature, "got %d bytes", len(sig))
	}

	compact := make([]byte, 0, SignatureSize)
	compact = append(compact, sig[SignatureSize-1]+compactRecoveryOffset)
	compact = append(compact, sig[:SignatureSize-1]...)

	digest := blake2b.Sum256(msg)
	recovered, _, err := ecdsa.RecoverCompact(compact, digest[:])
	if err != nil {
		return nil, errorsmod.Wrap(ErrInvalidSignature, err.Error())
	}
	return &PubKey{Key: recovered.SerializeCompressed()}, nil
}

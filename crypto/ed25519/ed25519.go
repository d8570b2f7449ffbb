// Package ed25519 implements the Edwards-curve signature scheme used
// by Substrate accounts. Signatures are deterministic; signing is safe
// from concurrent goroutines.
package ed25519

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/subtle"
	"io"

	errorsmod "cosmossdk.io/errors"
)

const (
	// SeedSize defines the size of the private seed bytes.
	SeedSize = 32
	// PubKeySize defines the size of the PubKey bytes.
	PubKeySize = 32
	// SignatureSize defines the size of an ed25519 signature.
	SignatureSize = 64
	// KeyType is the string constant for the ed25519 algorithm.
	KeyType = "ed25519"
)

const codespace = "crypto/ed25519"

var (
	// ErrInvalidSeed is returned for seeds that are not exactly SeedSize
	// bytes.
	ErrInvalidSeed = errorsmod.Register(codespace, 2, "invalid ed25519 seed")
	// ErrKeyZeroized is returned when signing with a key whose material
	// has been released.
	ErrKeyZeroized = errorsmod.Register(codespace, 3, "ed25519 key has been zeroized")
)

// PrivKey holds an expanded ed25519 signing key. The key material is
// never exposed after construction; callers persist the seed returned
// by GenerateKey instead.
type PrivKey struct {
	key ed25519.PrivateKey
}

// GenerateKey generates a new random private key and returns it along
// with the seed it can be reconstructed from.
func GenerateKey() (*PrivKey, []byte, error) {
	seed := make([]byte, SeedSize)
	if _, err := io.ReadFull(rand.Reader, seed); err != nil {
		return nil, nil, err
	}

	priv, err := PrivKeyFromSeed(seed)
	if err != nil {
		return nil, nil, err
	}
	return priv, seed, nil
}

// PrivKeyFromSeed derives the private key from a 32-byte seed.
func PrivKeyFromSeed(seed []byte) (*PrivKey, error) {
	if len(seed) != SeedSize {
		return nil, errorsmod.Wrapf(ErrInvalidSeed, "got %d bytes", len(seed))
	}
	return &PrivKey{key: ed25519.NewKeyFromSeed(seed)}, nil
}

// Sign signs the message. Ed25519 signs the raw message; any hashing
// policy is applied by the caller.
func (privKey *PrivKey) Sign(msg []byte) ([]byte, error) {
	if privKey.key == nil {
		return nil, ErrKeyZeroized
	}
	return ed25519.Sign(privKey.key, msg), nil
}

// PubKey returns the public half of the key.
func (privKey *PrivKey) PubKey() *PubKey {
	pub := make([]byte, PubKeySize)
	copy(pub, privKey.key[SeedSize:])
	return &PubKey{Key: pub}
}

// Equals returns true if two private keys hold the same material.
func (privKey *PrivKey) Equals(other *PrivKey) bool {
	return subtle.ConstantTimeCompare(privKey.key, other.key) == 1
}

// Zeroize overwrites the private key material. The key is unusable
// afterwards.
func (privKey *PrivKey) Zeroize() {
	for i := range privKey.key {
		privKey.key[i] = 0
	}
	privKey.key = nil
}

// PubKey is an ed25519 public key.
type PubKey struct {
	Key []byte
}

// Bytes returns the raw bytes of the public key.
func (pubKey *PubKey) Bytes() []byte {
	bz := make([]byte, len(pubKey.Key))
	copy(bz, pubKey.Key)
	return bz
}

// Type returns ed25519.
func (pubKey *PubKey) Type() string {
	return KeyType
}

// VerifySignature reports whether sig is a valid signature of msg under
// this key.
func (pubKey *PubKey) VerifySignature(msg, sig []byte) bool {
	if len(pubKey.Key) != PubKeySize || len(sig) != SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pubKey.Key), msg, sig)
}

// Equals returns true if two public keys are byte-equal.
func (pubKey *PubKey) Equals(other *PubKey) bool {
	return bytes.Equal(pubKey.Key, other.Key)
}

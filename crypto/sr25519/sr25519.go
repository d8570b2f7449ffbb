// Package sr25519 implements the Schnorr/Ristretto signature scheme
// native to most current Substrate chains. Signing draws a fresh nonce
// from crypto/rand per signature, so a key may be used from concurrent
// goroutines; signatures over the same message differ between calls.
package sr25519

import (
	"bytes"
	"crypto/subtle"

	errorsmod "cosmossdk.io/errors"
	schnorrkel "github.com/ChainSafe/go-schnorrkel"
)

const (
	// SeedSize defines the size of the mini secret seed bytes.
	SeedSize = 32
	// PubKeySize defines the size of the PubKey bytes.
	PubKeySize = 32
	// SignatureSize defines the size of an sr25519 signature.
	SignatureSize = 64
	// KeyType is the string constant for the sr25519 algorithm.
	KeyType = "sr25519"
)

const codespace = "crypto/sr25519"

var (
	// ErrInvalidSeed is returned for seeds that are not exactly SeedSize
	// bytes.
	ErrInvalidSeed = errorsmod.Register(codespace, 2, "invalid sr25519 seed")
	// ErrKeyZeroized is returned when signing with a key whose material
	// has been released.
	ErrKeyZeroized = errorsmod.Register(codespace, 3, "sr25519 key has been zeroized")
)

// signingContext is the domain separator every Substrate chain uses for
// sr25519 transcripts.
var signingContext = []byte("substrate")

// PrivKey holds an expanded sr25519 secret key. The mini secret is
// retained only to support zeroization; it is never exposed.
type PrivKey struct {
	seed   [SeedSize]byte
	secret *schnorrkel.SecretKey
	pub    *schnorrkel.PublicKey
}

// GenerateKey generates a new random private key and returns it along
// with the mini-secret seed it can be reconstructed from.
func GenerateKey() (*PrivKey, []byte, error) {
	msk, err := schnorrkel.GenerateMiniSecretKey()
	if err != nil {
		return nil, nil, err
	}

	seed := msk.Encode()
	priv, err := PrivKeyFromSeed(seed[:])
	if err != nil {
		return nil, nil, err
	}
	return priv, seed[:], nil
}

// PrivKeyFromSeed expands a 32-byte mini secret into a private key,
// using the Ed25519-style expansion Substrate chains expect.
func PrivKeyFromSeed(seed []byte) (*PrivKey, error) {
	if len(seed) != SeedSize {
		return nil, errorsmod.Wrapf(ErrInvalidSeed, "got %d bytes", len(seed))
	}

	var raw [SeedSize]byte
	copy(raw[:], seed)

	msk, err := schnorrkel.NewMiniSecretKeyFromRaw(raw)
	if err != nil {
		return nil, errorsmod.Wrap(ErrInvalidSeed, err.Error())
	}

	return &PrivKey{
		seed:   raw,
		secret: msk.ExpandEd25519(),
		pub:    msk.Public(),
	}, nil
}

// Sign signs the message under the "substrate" signing context.
func (privKey *PrivKey) Sign(msg []byte) ([]byte, error) {
	if privKey.secret == nil {
		return nil, ErrKeyZeroized
	}

	transcript := schnorrkel.NewSigningContext(signingContext, msg)
	sig, err := privKey.secret.Sign(transcript)
	if err != nil {
		return nil, err
	}

	raw := sig.Encode()
	return raw[:], nil
}

// PubKey returns the public half of the key.
func (privKey *PrivKey) PubKey() *PubKey {
	raw := privKey.pub.Encode()
	return &PubKey{Key: raw[:]}
}

// Equals returns true if two private keys hold the same mini secret.
func (privKey *PrivKey) Equals(other *PrivKey) bool {
	return subtle.ConstantTimeCompare(privKey.seed[:], other.seed[:]) == 1
}

// Zeroize overwrites the retained seed and drops the expanded key. The
// key is unusable afterwards.
func (privKey *PrivKey) Zeroize() {
	for i := range privKey.seed {
		privKey.seed[i] = 0
	}
	privKey.secret = nil
	privKey.pub = nil
}

// PubKey is an sr25519 public key.
type PubKey struct {
	Key []byte
}

// Bytes returns the raw bytes of the public key.
func (pubKey *PubKey) Bytes() []byte {
	bz := make([]byte, len(pubKey.Key))
	copy(bz, pubKey.Key)
	return bz
}

// Type returns sr25519.
func (pubKey *PubKey) Type() string {
	return KeyType
}

// VerifySignature reports whether sig is a valid signature of msg under
// this key and the "substrate" signing context.
func (pubKey *PubKey) VerifySignature(msg, sig []byte) bool {
	if len(pubKey.Key) != PubKeySize || len(sig) != SignatureSize {
		return false
	}

	var rawPub [PubKeySize]byte
	copy(rawPub[:], pubKey.Key)
	pub := &schnorrkel.PublicKey{}
	if err := pub.Decode(rawPub); err != nil {
		return false
	}

	var rawSig [SignatureSize]byte
	copy(rawSig[:], sig)
	signature := &schnorrkel.Signature{}
	if err := signature.Decode(rawSig); err != nil {
		return false
	}

	transcript := schnorrkel.NewSigningContext(signingContext, msg)
	ok, err := pub.Verify(signature, transcript)
	return err == nil && ok
}

// Equals returns true if two public keys are byte-equal.
func (pubKey *PubKey) Equals(other *PubKey) bool {
	return bytes.Equal(pubKey.Key, other.Key)
}

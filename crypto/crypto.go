// Package crypto models the signature capability shared by the three
// schemes Substrate accounts use. A Scheme tag selects the algorithm
// explicitly; the tag travels ahead of the raw signature bytes on the
// wire so decoders dispatch to the matching verifier without
// inspecting the bytes themselves.
//
// Sr25519 is the scheme native to current chains and the sensible
// default for new keys; the choice stays with the caller per keypair.
package crypto

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/subkit-labs/subkit/crypto/ed25519"
	"github.com/subkit-labs/subkit/crypto/secp256k1"
	"github.com/subkit-labs/subkit/crypto/sr25519"
	"github.com/subkit-labs/subkit/scale"
	"github.com/subkit-labs/subkit/types"
)

// Scheme tags a signature algorithm. The numeric values are the wire
// discriminants of the MultiSignature union and must never change.
type Scheme uint8

const (
	Ed25519   Scheme = 0
	Sr25519   Scheme = 1
	Secp256k1 Scheme = 2
)

// SchemeFromTag maps a wire discriminant back to its scheme.
func SchemeFromTag(tag uint8) (Scheme, error) {
	switch Scheme(tag) {
	case Ed25519, Sr25519, Secp256k1:
		return Scheme(tag), nil
	default:
		return 0, errorsmod.Wrapf(ErrUnknownScheme, "tag 0x%02x", tag)
	}
}

func (s Scheme) String() string {
	switch s {
	case Ed25519:
		return ed25519.KeyType
	case Sr25519:
		return sr25519.KeyType
	case Secp256k1:
		return secp256k1.KeyType
	default:
		return "unknown"
	}
}

// SignatureSize returns the raw signature size of the scheme,
// excluding the tag byte.
func (s Scheme) SignatureSize() int {
	if s == Secp256k1 {
		return secp256k1.SignatureSize
	}
	return ed25519.SignatureSize
}

// Signature is a scheme-tagged signature.
type Signature struct {
	Scheme Scheme
	Bytes  []byte
}

// Encode writes the signature in wire form: tag byte, then the raw
// signature bytes (fixed size per scheme, no length prefix).
func (s Signature) Encode(enc *scale.Encoder) error {
	if len(s.Bytes) != s.Scheme.SignatureSize() {
		return errorsmod.Wrapf(ErrInvalidSignature, "%s signature of %d bytes", s.Scheme, len(s.Bytes))
	}
	enc.EncodeVariant(uint8(s.Scheme))
	enc.RawBytes(s.Bytes)
	return nil
}

// DecodeSignature reads a scheme-tagged signature.
func DecodeSignature(dec *scale.Decoder) (Signature, error) {
	tag, err := dec.DecodeVariant()
	if err != nil {
		return Signature{}, err
	}
	scheme, err := SchemeFromTag(tag)
	if err != nil {
		return Signature{}, err
	}

	raw, err := dec.DecodeFixed(scheme.SignatureSize())
	if err != nil {
		return Signature{}, err
	}
	return Signature{Scheme: scheme, Bytes: raw}, nil
}

// Verify dispatches to the scheme's verifier. The public key is raw
// bytes in the scheme's native format (32 bytes, or 33 compressed for
// secp256k1).
func Verify(pubKey, msg []byte, sig Signature) bool {
	switch sig.Scheme {
	case Ed25519:
		return (&ed25519.PubKey{Key: pubKey}).VerifySignature(msg, sig.Bytes)
	case Sr25519:
		return (&sr25519.PubKey{Key: pubKey}).VerifySignature(msg, sig.Bytes)
	case Secp256k1:
		return (&secp256k1.PubKey{Key: pubKey}).VerifySignature(msg, sig.Bytes)
	default:
		return false
	}
}

// KeyPair owns the private key of one account. Implementations expose
// signing only; the key material itself stays inside. Zeroize releases
// it when the keypair is no longer needed.
type KeyPair interface {
	Scheme() Scheme
	Sign(msg []byte) (Signature, error)
	PublicKey() []byte
	AccountID() types.AccountID
	Zeroize()
}

// GenerateKeyPair generates a fresh keypair for the scheme, returning
// it along with the seed it can be reconstructed from. The caller owns
// the seed and should zero it once stored.
func GenerateKeyPair(scheme Scheme) (KeyPair, []byte, error) {
	switch scheme {
	case Ed25519:
		priv, seed, err := ed25519.GenerateKey()
		if err != nil {
			return nil, nil, err
		}
		return ed25519KeyPair{priv: priv}, seed, nil
	case Sr25519:
		priv, seed, err := sr25519.GenerateKey()
		if err != nil {
			return nil, nil, err
		}
		return sr25519KeyPair{priv: priv}, seed, nil
	case Secp256k1:
		priv, seed, err := secp256k1.GenerateKey()
		if err != nil {
			return nil, nil, err
		}
		return secp256k1KeyPair{priv: priv}, seed, nil
	default:
		return nil, nil, errorsmod.Wrapf(ErrUnknownScheme, "tag 0x%02x", uint8(scheme))
	}
}

// KeyPairFromSeed reconstructs a keypair from a 32-byte seed.
func KeyPairFromSeed(scheme Scheme, seed []byte) (KeyPair, error) {
	switch scheme {
	case Ed25519:
		priv, err := ed25519.PrivKeyFromSeed(seed)
		if err != nil {
			return nil, err
		}
		return ed25519KeyPair{priv: priv}, nil
	case Sr25519:
		priv, err := sr25519.PrivKeyFromSeed(seed)
		if err != nil {
			return nil, err
		}
		return sr25519KeyPair{priv: priv}, nil
	case Secp256k1:
		priv, err := secp256k1.PrivKeyFromSeed(seed)
		if err != nil {
			return nil, err
		}
		return secp256k1KeyPair{priv: priv}, nil
	default:
		return nil, errorsmod.Wrapf(ErrUnknownScheme, "tag 0x%02x", uint8(scheme))
	}
}

type ed25519KeyPair struct {
	priv *ed25519.PrivKey
}

func (kp ed25519KeyPair) Scheme() Scheme { return Ed25519 }

func (kp ed25519KeyPair) Sign(msg []byte) (Signature, error) {
	raw, err := kp.priv.Sign(msg)
	if err != nil {
		return Signature{}, err
	}
	return Signature{Scheme: Ed25519, Bytes: raw}, nil
}

func (kp ed25519KeyPair) PublicKey() []byte { return kp.priv.PubKey().Bytes() }

func (kp ed25519KeyPair) AccountID() types.AccountID {
	var id types.AccountID
	copy(id[:], kp.priv.PubKey().Bytes())
	return id
}

func (kp ed25519KeyPair) Zeroize() { kp.priv.Zeroize() }

type sr25519KeyPair struct {
	priv *sr25519.PrivKey
}

func (kp sr25519KeyPair) Scheme() Scheme { return Sr25519 }

func (kp sr25519KeyPair) Sign(msg []byte) (Signature, error) {
	raw, err := kp.priv.Sign(msg)
	if err != nil {
		return Signature{}, err
	}
	return Signature{Scheme: Sr25519, Bytes: raw}, nil
}

func (kp sr25519KeyPair) PublicKey() []byte { return kp.priv.PubKey().Bytes() }

func (kp sr25519KeyPair) AccountID() types.AccountID {
	var id types.AccountID
	copy(id[:], kp.priv.PubKey().Bytes())
	return id
}

func (kp sr25519KeyPair) Zeroize() { kp.priv.Zeroize() }

type secp256k1KeyPair struct {
	priv *secp256k1.PrivKey
}

func (kp secp256k1KeyPair) Scheme() Scheme { return Secp256k1 }

func (kp secp256k1KeyPair) Sign(msg []byte) (Signature, error) {
	raw, err := kp.priv.Sign(msg)
	if err != nil {
		return Signature{}, err
	}
	return Signature{Scheme: Secp256k1, Bytes: raw}, nil
}

func (kp secp256k1KeyPair) PublicKey() []byte { return kp.priv.PubKey().Bytes() }

func (kp secp256k1KeyPair) AccountID() types.AccountID {
	return types.AccountID(kp.priv.PubKey().AccountID())
}

func (kp secp256k1KeyPair) Zeroize() { kp.priv.Zeroize() }

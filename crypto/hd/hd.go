// Package hd derives signing keys from BIP-39 mnemonic phrases so
// accounts can be backed up and imported as words rather than raw
// seeds.
package hd

import (
	"github.com/cosmos/go-bip39"
	"github.com/pkg/errors"

	"github.com/subkit-labs/subkit/crypto"
)

// DefaultEntropyBits yields a 12-word mnemonic, the common wallet
// default.
const DefaultEntropyBits = 128

// NewMnemonic generates a fresh mnemonic phrase.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(DefaultEntropyBits)
	if err != nil {
		return "", errors.Wrap(err, "generate entropy")
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.Wrap(err, "build mnemonic")
	}
	return mnemonic, nil
}

// SeedFromMnemonic derives the 32-byte signing seed from a mnemonic
// phrase and optional password.
func SeedFromMnemonic(mnemonic, password string) ([]byte, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, password)
	if err != nil {
		return nil, errors.Wrap(err, "invalid mnemonic")
	}
	return seed[:32], nil
}

// KeyPairFromMnemonic derives a keypair of the given scheme from a
// mnemonic phrase and optional password.
func KeyPairFromMnemonic(scheme crypto.Scheme, mnemonic, password string) (crypto.KeyPair, error) {
	seed, err := SeedFromMnemonic(mnemonic, password)
	if err != nil {
		return nil, err
	}
	defer func() {
		for i := range seed {
			seed[i] = 0
		}
	}()

	return crypto.KeyPairFromSeed(scheme, seed)
}

// Package tx assembles, signs and decodes substrate extrinsics. A
// Builder accumulates the transaction fields in any order, signs the
// resulting payload and produces a SignedExtrinsic ready to be encoded
// and submitted over any transport.
package tx

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/subkit-labs/subkit/crypto"
	"github.com/subkit-labs/subkit/types"
)

// Builder accumulates the fields of one transaction. Setters may run in
// any order and overwrite prior values; Build finalizes the builder, and
// a finalized builder rejects further use.
//
// Required before Build: signer, call, nonce, payment and network. The
// spec version falls back to the network's known one when it has any;
// the era defaults to immortal. A mortal era additionally requires the
// birth block hash.
type Builder struct {
	signer      crypto.KeyPair
	call        *Call
	nonce       *uint32
	payment     *types.Balance
	network     *types.Network
	specVersion *uint32
	txVersion   uint32
	era         types.Era
	birthHash   *[32]byte

	hashThreshold int
	done          bool
}

func NewBuilder() *Builder {
	return &Builder{txVersion: TxVersion}
}

// WithSigner sets the keypair that signs and whose account id becomes
// the extrinsic's signer address.
func (b *Builder) WithSigner(kp crypto.KeyPair) *Builder {
	if !b.done {
		b.signer = kp
	}
	return b
}

// WithCall sets the extrinsic to dispatch.
func (b *Builder) WithCall(c Call) *Builder {
	if !b.done {
		b.call = &c
	}
	return b
}

// WithNonce sets the signer's account nonce. The caller tracks and
// increments it, keeping pending transactions in mind.
func (b *Builder) WithNonce(nonce uint32) *Builder {
	if !b.done {
		b.nonce = &nonce
	}
	return b
}

// WithPayment sets the fee paid for inclusion.
func (b *Builder) WithPayment(payment types.Balance) *Builder {
	if !b.done {
		b.payment = &payment
	}
	return b
}

// WithNetwork sets the destination chain, pinning the signature to its
// genesis hash.
func (b *Builder) WithNetwork(network types.Network) *Builder {
	if !b.done {
		b.network = &network
	}
	return b
}

// WithSpecVersion sets the runtime build the transaction targets,
// overriding the network's default.
func (b *Builder) WithSpecVersion(version uint32) *Builder {
	if !b.done {
		b.specVersion = &version
	}
	return b
}

// WithTxVersion sets the transaction format version the runtime
// advertises in its metadata.
func (b *Builder) WithTxVersion(version uint32) *Builder {
	if !b.done {
		b.txVersion = version
	}
	return b
}

// WithEra sets the mortality window. Immortal by default.
func (b *Builder) WithEra(era types.Era) *Builder {
	if !b.done {
		b.era = era
	}
	return b
}

// WithBirthHash sets the hash of the block where a mortal era's window
// begins. Ignored for immortal transactions.
func (b *Builder) WithBirthHash(hash [32]byte) *Builder {
	if !b.done {
		b.birthHash = &hash
	}
	return b
}

// WithHashThreshold overrides the payload size above which the
// signature commits to a digest rather than the raw payload.
func (b *Builder) WithHashThreshold(threshold int) *Builder {
	if !b.done {
		b.hashThreshold = threshold
	}
	return b
}

// Build validates the accumulated fields, signs the payload and returns
// the assembled extrinsic. It fails without partial output when a
// required field is missing, naming the field. The builder is finalized
// either way; a second Build returns ErrBuilt.
func (b *Builder) Build() (*SignedExtrinsic, error) {
	if b.done {
		return nil, ErrBuilt
	}
	b.done = true

	if b.signer == nil {
		return nil, errorsmod.Wrap(ErrMissingField, "signer")
	}
	if b.call == nil {
		return nil, errorsmod.Wrap(ErrMissingField, "call")
	}
	if b.nonce == nil {
		return nil, errorsmod.Wrap(ErrMissingField, "nonce")
	}
	if b.payment == nil {
		return nil, errorsmod.Wrap(ErrMissingField, "payment")
	}
	if b.network == nil {
		return nil, errorsmod.Wrap(ErrMissingField, "network")
	}

	specVersion := b.network.SpecVersion
	if b.specVersion != nil {
		specVersion = *b.specVersion
	}
	if specVersion == 0 {
		return nil, errorsmod.Wrap(ErrMissingField, "spec_version")
	}

	genesis := b.network.Genesis()
	birthHash := genesis
	if b.era.IsMortal {
		if b.birthHash == nil {
			return nil, errorsmod.Wrap(ErrMissingField, "birth_hash")
		}
		birthHash = *b.birthHash
	}

	payload := Payload{
		Call:        *b.call,
		Era:         b.era,
		Nonce:       *b.nonce,
		Payment:     *b.payment,
		SpecVersion: specVersion,
		TxVersion:   b.txVersion,
		Genesis:     genesis,
		BirthHash:   birthHash,
	}

	signingBytes, err := payload.SigningBytes(b.hashThreshold)
	if err != nil {
		return nil, err
	}
	sig, err := b.signer.Sign(signingBytes)
	if err != nil {
		return nil, err
	}

	return &SignedExtrinsic{
		Version:   TxVersion,
		Signed:    true,
		Signer:    b.signer.AccountID(),
		Signature: sig,
		Era:       b.era,
		Nonce:     *b.nonce,
		Payment:   *b.payment,
		Call:      *b.call,
	}, nil
}

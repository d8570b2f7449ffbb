package tx

import (
	"golang.org/x/crypto/blake2b"

	"github.com/subkit-labs/subkit/scale"
	"github.com/subkit-labs/subkit/types"
)

// DefaultHashThreshold is the payload size in bytes above which the
// signature is made over a blake2b-256 digest instead of the raw
// payload. 256 is the convention current runtimes check against; chains
// that deviate configure their own threshold on the builder.
const DefaultHashThreshold = 256

// Payload is the unsigned material a transaction signature commits to:
// the call and its mortality window, plus the chain context that pins
// the signature to one runtime build of one chain. The context fields
// travel inside the signature only, never in the extrinsic itself.
type Payload struct {
	Call    Call
	Era     types.Era
	Nonce   uint32
	Payment types.Balance

	SpecVersion uint32
	TxVersion   uint32
	Genesis     [32]byte

	// BirthHash anchors a mortal transaction to the hash of its birth
	// block. Immortal transactions anchor to the genesis hash.
	BirthHash [32]byte
}

// Encode returns the SCALE encoding of the payload.
func (p Payload) Encode() ([]byte, error) {
	enc := scale.NewEncoder()
	p.Call.Encode(enc)
	p.Era.Encode(enc)
	enc.EncodeCompactU64(uint64(p.Nonce))
	if err := p.Payment.EncodeCompact(enc); err != nil {
		return nil, err
	}
	enc.EncodeU32(p.SpecVersion)
	enc.EncodeU32(p.TxVersion)
	enc.RawBytes(p.Genesis[:])
	enc.RawBytes(p.BirthHash[:])
	return enc.Bytes(), nil
}

// SigningBytes returns the bytes the signer actually signs: the encoded
// payload itself, or its blake2b-256 digest when the encoding exceeds
// the threshold. A threshold of zero or less selects the default.
func (p Payload) SigningBytes(hashThreshold int) ([]byte, error) {
	if hashThreshold <= 0 {
		hashThreshold = DefaultHashThreshold
	}

	raw, err := p.Encode()
	if err != nil {
		return nil, err
	}
	if len(raw) > hashThreshold {
		digest := blake2b.Sum256(raw)
		return digest[:], nil
	}
	return raw, nil
}

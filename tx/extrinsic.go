package tx

import (
	"math"

	errorsmod "cosmossdk.io/errors"

	"github.com/subkit-labs/subkit/crypto"
	"github.com/subkit-labs/subkit/scale"
	"github.com/subkit-labs/subkit/types"
)

// TxVersion is the extrinsic format this package encodes. Version 3 is
// retained for decoding only; it predates the MultiAddress signer and
// carries a bare 32-byte account id instead.
const (
	TxVersion        = 4
	minDecodeVersion = 3

	signedFlag  = 0x80
	versionMask = 0x7f
)

// SignedExtrinsic is a fully assembled transaction, aka
// "UncheckedExtrinsic" in substrate terms. Signed is false for bare
// (unsigned) extrinsics, in which case only Version and Call are set.
type SignedExtrinsic struct {
	Version uint8
	Signed  bool

	Signer    types.AccountID
	Signature crypto.Signature
	Era       types.Era
	Nonce     uint32
	Payment   types.Balance

	Call Call
}

// Encode returns the wire form: a compact length prefix covering
// everything after itself, the version byte with the signed flag, then
// the signature block and the call. Only the current version encodes.
func (ext *SignedExtrinsic) Encode() ([]byte, error) {
	if ext.Version != TxVersion {
		return nil, errorsmod.Wrapf(ErrUnknownVersion, "cannot encode version %d", ext.Version)
	}

	body := scale.NewEncoder()
	if ext.Signed {
		body.EncodeU8(TxVersion | signedFlag)
		ext.Signer.EncodeMultiAddress(body)
		if err := ext.Signature.Encode(body); err != nil {
			return nil, err
		}
		ext.Era.Encode(body)
		body.EncodeCompactU64(uint64(ext.Nonce))
		if err := ext.Payment.EncodeCompact(body); err != nil {
			return nil, err
		}
	} else {
		body.EncodeU8(TxVersion)
	}
	ext.Call.Encode(body)

	out := scale.NewEncoder()
	out.EncodeBytes(body.Bytes())
	return out.Bytes(), nil
}

// Decode parses an extrinsic buffer. Versions 4 and 3 are understood;
// anything else fails with ErrUnknownVersion. The buffer must contain
// exactly one extrinsic.
func Decode(raw []byte) (*SignedExtrinsic, error) {
	outer := scale.NewDecoder(raw)
	body, err := outer.DecodeBytes()
	if err != nil {
		return nil, err
	}
	if outer.Remaining() != 0 {
		return nil, errorsmod.Wrapf(ErrTrailingBytes, "%d bytes past declared length", outer.Remaining())
	}

	dec := scale.NewDecoder(body)
	versionByte, err := dec.DecodeU8()
	if err != nil {
		return nil, err
	}

	ext := &SignedExtrinsic{
		Version: versionByte & versionMask,
		Signed:  versionByte&signedFlag != 0,
	}
	if ext.Version < minDecodeVersion || ext.Version > TxVersion {
		return nil, errorsmod.Wrapf(ErrUnknownVersion, "version byte 0x%02x", versionByte)
	}

	if ext.Signed {
		if err := ext.decodeSignatureBlock(dec); err != nil {
			return nil, err
		}
	}

	if ext.Call, err = decodeCall(dec); err != nil {
		return nil, err
	}
	return ext, nil
}

func (ext *SignedExtrinsic) decodeSignatureBlock(dec *scale.Decoder) error {
	var err error

	// Version 3 signers are bare account ids; the MultiAddress union
	// arrived with version 4.
	if ext.Version == TxVersion {
		ext.Signer, err = types.DecodeMultiAddress(dec)
	} else {
		ext.Signer, err = types.DecodeRawAccountID(dec)
	}
	if err != nil {
		return err
	}

	if ext.Signature, err = crypto.DecodeSignature(dec); err != nil {
		return err
	}
	if ext.Era, err = types.DecodeEra(dec); err != nil {
		return err
	}

	nonce, err := dec.DecodeCompactU64()
	if err != nil {
		return err
	}
	if nonce > math.MaxUint32 {
		return errorsmod.Wrapf(scale.ErrValueTooLarge, "nonce %d exceeds 32 bits", nonce)
	}
	ext.Nonce = uint32(nonce)

	payment, err := dec.DecodeCompactUint()
	if err != nil {
		return err
	}
	ext.Payment = types.FromBaseUnits(payment)
	return nil
}

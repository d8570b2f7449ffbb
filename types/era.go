package types

import (
	"math/bits"

	errorsmod "cosmossdk.io/errors"

	"github.com/subkit-labs/subkit/scale"
)

// Era describes the mortality window of a transaction: either immortal
// (valid forever, anchored at the genesis hash) or mortal with a
// power-of-two period and a phase within it.
type Era struct {
	IsMortal bool
	Period   uint64
	Phase    uint64
}

// ImmortalEra returns the era of a transaction that never expires.
func ImmortalEra() Era {
	return Era{}
}

// MortalEra returns the era of a transaction valid for period blocks,
// anchored at the current block number. The period is rounded to the
// nearest supported power of two between 4 and 65536.
func MortalEra(period, current uint64) Era {
	if period < 4 {
		period = 4
	}
	if period > 1<<16 {
		period = 1 << 16
	}
	// Round up to a power of two.
	if period&(period-1) != 0 {
		period = 1 << bits.Len64(period)
	}

	quantize := max(period>>12, 1)
	phase := current % period / quantize * quantize

	return Era{IsMortal: true, Period: period, Phase: phase}
}

// BirthBlock returns the block number where this era's mortality window
// begins, given the current block number. The caller fetches that
// block's hash from the chain to anchor the signature payload.
func (e Era) BirthBlock(current uint64) uint64 {
	if !e.IsMortal {
		return 0
	}
	return (max(current, e.Phase)-e.Phase)/e.Period*e.Period + e.Phase
}

// Encode writes the era in its packed wire form: a single zero byte
// for immortal, otherwise two bytes carrying log2(period) and the
// quantized phase.
func (e Era) Encode(enc *scale.Encoder) {
	if !e.IsMortal {
		enc.EncodeU8(0)
		return
	}

	quantize := max(e.Period>>12, 1)
	trailing := uint64(bits.TrailingZeros64(e.Period))
	encoded := uint16(min(15, max(1, trailing-1))) | uint16(e.Phase/quantize)<<4
	enc.EncodeU16(encoded)
}

// DecodeEra reads a packed era.
func DecodeEra(dec *scale.Decoder) (Era, error) {
	first, err := dec.DecodeU8()
	if err != nil {
		return Era{}, err
	}
	if first == 0 {
		return ImmortalEra(), nil
	}

	second, err := dec.DecodeU8()
	if err != nil {
		return Era{}, err
	}

	encoded := uint64(first) | uint64(second)<<8
	period := uint64(2) << (encoded % (1 << 4))
	quantize := max(period>>12, 1)
	phase := (encoded >> 4) * quantize

	if period < 4 || phase >= period {
		return Era{}, errorsmod.Wrapf(ErrInvalidEra, "period %d, phase %d", period, phase)
	}
	return Era{IsMortal: true, Period: period, Phase: phase}, nil
}

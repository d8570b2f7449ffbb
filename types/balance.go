package types

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	"github.com/subkit-labs/subkit/scale"
)

// Metric is a decimal scaling exponent applied on top of a currency's
// whole unit, so callers can express amounts as e.g. milli-DOT without
// tracking base-unit ("planck") magnitudes by hand.
type Metric int

const (
	Peta  Metric = 15
	Tera  Metric = 12
	Giga  Metric = 9
	Mega  Metric = 6
	Kilo  Metric = 3
	One   Metric = 0
	Milli Metric = -3
	Micro Metric = -6
	Nano  Metric = -9
	Pico  Metric = -12
	Femto Metric = -15
)

// Currency describes a chain's native token: how many base units make
// one whole unit.
type Currency struct {
	name     string
	baseUnit sdkmath.Uint
}

// The relay-chain native currencies. One DOT is 1e10 planck; one KSM
// or WND is 1e12 planck.
var (
	DOT = Currency{name: "DOT", baseUnit: sdkmath.NewUint(10_000_000_000)}
	KSM = Currency{name: "KSM", baseUnit: sdkmath.NewUint(1_000_000_000_000)}
	WND = Currency{name: "WND", baseUnit: sdkmath.NewUint(1_000_000_000_000)}
)

// NewCurrency describes the native token of any other chain.
func NewCurrency(name string, baseUnit uint64) (Currency, error) {
	if baseUnit == 0 {
		return Currency{}, ErrZeroUnit
	}
	return Currency{name: name, baseUnit: sdkmath.NewUint(baseUnit)}, nil
}

func (c Currency) Name() string {
	return c.name
}

// Amount returns a balance of the given number of whole units.
func (c Currency) Amount(whole uint64) Balance {
	return Balance{planck: c.baseUnit.Mul(sdkmath.NewUint(whole))}
}

// AmountMetric returns a balance of the given number of metric-scaled
// units, e.g. AmountMetric(Milli, 500) for half a whole unit. Amounts
// that do not land on a whole number of base units are rejected.
func (c Currency) AmountMetric(m Metric, v uint64) (Balance, error) {
	scaled := c.baseUnit.Mul(sdkmath.NewUint(v))
	if m >= 0 {
		return Balance{planck: scaled.Mul(pow10(int(m)))}, nil
	}

	div := pow10(-int(m))
	if !scaled.Mod(div).IsZero() {
		return Balance{}, errorsmod.Wrapf(ErrInexactMetric, "%d at metric 1e%d in %s", v, m, c.name)
	}
	return Balance{planck: scaled.Quo(div)}, nil
}

// FromBaseUnits returns a balance of raw base units ("planck").
func FromBaseUnits(v sdkmath.Uint) Balance {
	return Balance{planck: v}
}

// Balance is an amount of a chain's native currency, held in base
// units. It encodes to SCALE compact form, which is how every balance
// argument and fee field travels on the wire.
type Balance struct {
	planck sdkmath.Uint
}

// BaseUnits returns the amount in base units.
func (b Balance) BaseUnits() sdkmath.Uint {
	return b.planck
}

// InMetric converts the balance to metric-scaled whole units of the
// currency, rejecting inexact conversions.
func (b Balance) InMetric(c Currency, m Metric) (sdkmath.Uint, error) {
	div := c.baseUnit
	if m > 0 {
		div = div.Mul(pow10(int(m)))
	}

	scaled := b.planck
	if m < 0 {
		scaled = scaled.Mul(pow10(-int(m)))
	}

	if !scaled.Mod(div).IsZero() {
		return sdkmath.Uint{}, errorsmod.Wrapf(ErrInexactMetric, "%s base units at metric 1e%d", b.planck, m)
	}
	return scaled.Quo(div), nil
}

// EncodeCompact writes the balance in SCALE compact form.
func (b Balance) EncodeCompact(enc *scale.Encoder) error {
	return enc.EncodeCompactUint(b.planck)
}

func (b Balance) String() string {
	return b.planck.String()
}

func pow10(exp int) sdkmath.Uint {
	out := sdkmath.NewUint(1)
	ten := sdkmath.NewUint(10)
	for i := 0; i < exp; i++ {
		out = out.Mul(ten)
	}
	return out
}

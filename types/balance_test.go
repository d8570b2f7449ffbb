package types

import (
	"encoding/hex"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/subkit-labs/subkit/scale"
)

func TestCurrencyAmounts(t *testing.T) {
	require.Equal(t, "500000000000000000000", DOT.Amount(50_000_000_000).String())
	require.Equal(t, "10000000000", DOT.Amount(1).String())
	require.Equal(t, "1000000000000", KSM.Amount(1).String())
}

func TestAmountMetric(t *testing.T) {
	// 500 milli-DOT = 0.5 DOT = 5e9 planck.
	b, err := DOT.AmountMetric(Milli, 500)
	require.NoError(t, err)
	require.Equal(t, "5000000000", b.String())

	// 2 kilo-KSM.
	b, err = KSM.AmountMetric(Kilo, 2)
	require.NoError(t, err)
	require.Equal(t, "2000000000000000", b.String())

	// One femto-DOT is below a single planck.
	_, err = DOT.AmountMetric(Femto, 1)
	require.ErrorIs(t, err, ErrInexactMetric)
}

func TestInMetric(t *testing.T) {
	b := DOT.Amount(50)

	micro, err := b.InMetric(DOT, Micro)
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewUint(50_000_000), micro)

	milli, err := b.InMetric(DOT, Milli)
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewUint(50_000), milli)

	one, err := b.InMetric(DOT, One)
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewUint(50), one)

	_, err = b.InMetric(DOT, Kilo)
	require.ErrorIs(t, err, ErrInexactMetric)
}

func TestBalanceEncodesCompact(t *testing.T) {
	enc := scale.NewEncoder()
	require.NoError(t, FromBaseUnits(sdkmath.NewUint(42)).EncodeCompact(enc))
	require.Equal(t, "a8", hex.EncodeToString(enc.Bytes()))
}

func TestNewCurrencyRejectsZeroUnit(t *testing.T) {
	_, err := NewCurrency("NIL", 0)
	require.ErrorIs(t, err, ErrZeroUnit)
}

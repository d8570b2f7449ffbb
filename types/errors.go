package types

import (
	errorsmod "cosmossdk.io/errors"
)

const Codespace = "types"

var (
	// ErrInvalidAccountID is returned for account identifiers that are
	// not exactly 32 bytes.
	ErrInvalidAccountID = errorsmod.Register(Codespace, 2, "invalid account id")

	// ErrInvalidEra is returned when a mortal era's period and phase do
	// not describe a valid mortality window.
	ErrInvalidEra = errorsmod.Register(Codespace, 3, "invalid era")

	// ErrInvalidGenesis is returned for malformed genesis hash input.
	ErrInvalidGenesis = errorsmod.Register(Codespace, 4, "invalid genesis hash")

	// ErrZeroUnit is returned when a currency is configured with a zero
	// base unit.
	ErrZeroUnit = errorsmod.Register(Codespace, 5, "currency base unit is zero")

	// ErrInexactMetric is returned when a balance cannot be represented
	// exactly in the requested metric.
	ErrInexactMetric = errorsmod.Register(Codespace, 6, "balance not representable in metric")
)

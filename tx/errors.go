package tx

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace is the codespace for all errors defined in this package.
const Codespace = "tx"

var (
	// ErrMissingField is returned by Build when a required field was
	// never supplied. The wrapped message names the field.
	ErrMissingField = errorsmod.Register(Codespace, 2, "missing required field")

	// ErrUnknownVersion is returned when decoding an extrinsic whose
	// version byte matches no supported format.
	ErrUnknownVersion = errorsmod.Register(Codespace, 3, "unknown extrinsic version")

	// ErrBuilt is returned when Build is called on a finalized builder.
	ErrBuilt = errorsmod.Register(Codespace, 4, "builder already finalized")

	// ErrArgCount is returned when a call is constructed with a number
	// of arguments that contradicts the runtime metadata.
	ErrArgCount = errorsmod.Register(Codespace, 5, "argument count mismatch")

	// ErrTrailingBytes is returned when an extrinsic buffer carries data
	// past its declared length prefix.
	ErrTrailingBytes = errorsmod.Register(Codespace, 6, "trailing bytes after extrinsic")
)

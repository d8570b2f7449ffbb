package crypto

import (
	errorsmod "cosmossdk.io/errors"
)

const Codespace = "crypto"

var (
	// ErrUnknownScheme is returned when a signature algorithm tag matches
	// no supported scheme.
	ErrUnknownScheme = errorsmod.Register(Codespace, 2, "unknown signature scheme")

	// ErrInvalidSignature is returned for signature bytes of the wrong
	// size for their scheme.
	ErrInvalidSignature = errorsmod.Register(Codespace, 3, "invalid signature bytes")
)

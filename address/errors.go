package address

import (
	errorsmod "cosmossdk.io/errors"
)

const Codespace = "address"

var (
	// ErrInvalidBase58 is returned when the address contains characters
	// outside the base58 alphabet.
	ErrInvalidBase58 = errorsmod.Register(Codespace, 2, "invalid base58 string")

	// ErrInvalidLength is returned when the decoded payload matches no
	// known prefix + key + checksum combination.
	ErrInvalidLength = errorsmod.Register(Codespace, 3, "invalid address length")

	// ErrChecksumMismatch is returned when the embedded checksum does not
	// match the recomputed one. This is the primary typo defense and is
	// never skipped.
	ErrChecksumMismatch = errorsmod.Register(Codespace, 4, "address checksum mismatch")

	// ErrReservedPrefix is returned for network identifiers in the
	// reserved range (>= 16384).
	ErrReservedPrefix = errorsmod.Register(Codespace, 5, "reserved network prefix")

	// ErrUnknownNetwork is returned when a network name has no registered
	// prefix.
	ErrUnknownNetwork = errorsmod.Register(Codespace, 6, "unknown network")

	// ErrInvalidKeyLength is returned when the public key is not a
	// supported size.
	ErrInvalidKeyLength = errorsmod.Register(Codespace, 7, "invalid public key length")
)

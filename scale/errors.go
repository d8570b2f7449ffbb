package scale

import (
	errorsmod "cosmossdk.io/errors"
)

const Codespace = "scale"

var (
	// ErrUnexpectedEOF is returned when the input buffer ends before the
	// declared shape is fully decoded.
	ErrUnexpectedEOF = errorsmod.Register(Codespace, 2, "unexpected end of input")

	// ErrUnknownVariant is returned when a tagged-union discriminant byte
	// matches no known variant.
	ErrUnknownVariant = errorsmod.Register(Codespace, 3, "unknown variant")

	// ErrNonMinimal is returned when a compact integer uses a larger size
	// class than its value requires.
	ErrNonMinimal = errorsmod.Register(Codespace, 4, "compact integer is not minimally encoded")

	// ErrValueTooLarge is returned when a decoded value does not fit the
	// requested integer width.
	ErrValueTooLarge = errorsmod.Register(Codespace, 5, "value out of range")
)

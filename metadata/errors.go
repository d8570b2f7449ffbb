package metadata

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace is the codespace for all errors defined in this package.
const Codespace = "metadata"

var (
	// ErrBadMagic is returned when a document does not start with the
	// "meta" marker.
	ErrBadMagic = errorsmod.Register(Codespace, 2, "bad metadata magic marker")

	// ErrUnsupportedVersion is returned for version discriminants the
	// parser recognizes but cannot decode, or does not recognize at all.
	ErrUnsupportedVersion = errorsmod.Register(Codespace, 3, "unsupported metadata version")

	// ErrDuplicateName is returned when two modules, or two items of the
	// same kind within one module, share a name. Lookups would become
	// nondeterministic, so the document is rejected outright.
	ErrDuplicateName = errorsmod.Register(Codespace, 4, "duplicate name in metadata scope")

	// ErrNotFound is returned by lookups for names or ids absent from
	// the document.
	ErrNotFound = errorsmod.Register(Codespace, 5, "not found in metadata")

	// ErrBadDocument is returned when the surrounding envelope (hex text
	// or JSON-RPC response) cannot be read.
	ErrBadDocument = errorsmod.Register(Codespace, 6, "malformed metadata document")
)

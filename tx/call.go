package tx

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/subkit-labs/subkit/metadata"
	"github.com/subkit-labs/subkit/scale"
)

// Call identifies one runtime extrinsic by its wire-level dispatch pair
// and carries its pre-encoded arguments. Arguments are opaque here; the
// caller encodes each one for the concrete type the runtime expects,
// either by hand or via generated bindings.
type Call struct {
	ModuleID   uint8
	DispatchID uint8
	Args       [][]byte
}

// NewCall builds a call from a known (module id, dispatch id) pair.
func NewCall(moduleID, dispatchID uint8, args ...[]byte) Call {
	return Call{ModuleID: moduleID, DispatchID: dispatchID, Args: args}
}

// NewCallFromMetadata resolves the dispatch pair by name against parsed
// runtime metadata and checks the argument count against the extrinsic's
// declared arguments.
func NewCallFromMetadata(m *metadata.Metadata, moduleName, extrinsicName string, args ...[]byte) (Call, error) {
	mod, def, err := m.FindModuleExtrinsic(moduleName, extrinsicName)
	if err != nil {
		return Call{}, err
	}
	if len(args) != len(def.Args) {
		return Call{}, errorsmod.Wrapf(ErrArgCount,
			"%s.%s takes %d arguments, got %d", moduleName, extrinsicName, len(def.Args), len(args))
	}
	return NewCall(mod.ModuleID, def.DispatchID, args...), nil
}

// Encode writes the call: module id byte, dispatch id byte, then the
// concatenated argument bytes.
func (c Call) Encode(enc *scale.Encoder) {
	enc.EncodeU8(c.ModuleID)
	enc.EncodeU8(c.DispatchID)
	for _, arg := range c.Args {
		enc.RawBytes(arg)
	}
}

// EncodedArgs returns the concatenated argument bytes.
func (c Call) EncodedArgs() []byte {
	var n int
	for _, arg := range c.Args {
		n += len(arg)
	}
	out := make([]byte, 0, n)
	for _, arg := range c.Args {
		out = append(out, arg...)
	}
	return out
}

// decodeCall reads a call occupying the rest of the decoder's buffer.
// Argument boundaries are not recoverable without metadata, so the
// arguments come back as a single pre-encoded buffer.
func decodeCall(dec *scale.Decoder) (Call, error) {
	moduleID, err := dec.DecodeU8()
	if err != nil {
		return Call{}, err
	}
	dispatchID, err := dec.DecodeU8()
	if err != nil {
		return Call{}, err
	}

	c := Call{ModuleID: moduleID, DispatchID: dispatchID}
	if n := dec.Remaining(); n > 0 {
		blob, err := dec.DecodeFixed(n)
		if err != nil {
			return Call{}, err
		}
		c.Args = [][]byte{blob}
	}
	return c, nil
}
